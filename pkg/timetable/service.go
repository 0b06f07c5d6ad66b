package timetable

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/travigo/timetable/pkg/ctdf"
	"golang.org/x/exp/slices"
)

// Service is the registry of stations, vehicles and lines and answers departure queries
// against it. It is safe for concurrent use.
type Service struct {
	config Config

	mu       sync.RWMutex
	stations map[int]*ctdf.Station
	vehicles map[int]*ctdf.TransportationVehicle
	lines    map[int]*ctdf.Line

	nextStationID int
	nextVehicleID int
	nextLineID    int
}

func NewService(config Config) *Service {
	if config.IdentifierMode == "" {
		config.IdentifierMode = IdentifierModeMonotonic
	}
	if config.MaxGoroutines < 1 {
		config.MaxGoroutines = 1
	}

	return &Service{
		config:   config,
		stations: map[int]*ctdf.Station{},
		vehicles: map[int]*ctdf.TransportationVehicle{},
		lines:    map[int]*ctdf.Line{},
	}
}

func (s *Service) Config() Config {
	return s.config
}

// allocate returns the identifier for a new entry of a collection currently holding size
// entries and advances the per-kind counter.
func (s *Service) allocate(counter *int, size int) int {
	if s.config.IdentifierMode == IdentifierModeLegacy {
		return size
	}

	id := *counter
	*counter++
	return id
}

func (s *Service) AddStation(station *ctdf.Station) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.allocate(&s.nextStationID, len(s.stations))
	station.ID = id
	s.stations[id] = station

	log.Debug().Int("id", id).Str("name", station.Name).Msg("Added station")

	return id
}

func (s *Service) RemoveStation(stationID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.stations[stationID]; !exists {
		return fmt.Errorf("%w: %d", ctdf.ErrStationNotFound, stationID)
	}

	delete(s.stations, stationID)
	log.Debug().Int("id", stationID).Msg("Removed station")

	return nil
}

func (s *Service) GetStation(stationID int) (*ctdf.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getStation(stationID)
}

func (s *Service) getStation(stationID int) (*ctdf.Station, error) {
	station, exists := s.stations[stationID]
	if !exists {
		return nil, fmt.Errorf("%w: %d", ctdf.ErrStationNotFound, stationID)
	}

	return station, nil
}

// GetStationsByName returns up to limit stations whose name contains name (case sensitive) in
// identifier order. Finding nothing is reported as ErrStationNotFound.
func (s *Service) GetStationsByName(name string, limit int) ([]*ctdf.Station, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", ctdf.ErrInvalidArgument, limit)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var stations []*ctdf.Station
	for _, id := range sortedKeys(s.stations) {
		if len(stations) == limit {
			break
		}

		if station := s.stations[id]; strings.Contains(station.Name, name) {
			stations = append(stations, station)
		}
	}

	if len(stations) == 0 {
		return nil, fmt.Errorf("%w: no station name contains %q", ctdf.ErrStationNotFound, name)
	}

	return stations, nil
}

func (s *Service) Stations() []*ctdf.Station {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedValues(s.stations)
}

func (s *Service) StationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.stations)
}

func (s *Service) AddVehicle(vehicle *ctdf.TransportationVehicle) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.allocate(&s.nextVehicleID, len(s.vehicles))
	vehicle.ID = id
	s.vehicles[id] = vehicle

	log.Debug().Int("id", id).Str("type", string(vehicle.Type)).Msg("Added transportation vehicle")

	return id
}

func (s *Service) RemoveVehicle(vehicleID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.vehicles[vehicleID]; !exists {
		return fmt.Errorf("%w: %d", ctdf.ErrVehicleNotFound, vehicleID)
	}

	delete(s.vehicles, vehicleID)
	log.Debug().Int("id", vehicleID).Msg("Removed transportation vehicle")

	return nil
}

func (s *Service) GetVehicle(vehicleID int) (*ctdf.TransportationVehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vehicle, exists := s.vehicles[vehicleID]
	if !exists {
		return nil, fmt.Errorf("%w: %d", ctdf.ErrVehicleNotFound, vehicleID)
	}

	return vehicle, nil
}

func (s *Service) Vehicles() []*ctdf.TransportationVehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedValues(s.vehicles)
}

func (s *Service) VehicleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.vehicles)
}

// AddLine stores line under a new identifier. A line whose name is already registered is
// rejected with ErrLineAlreadyServed.
func (s *Service) AddLine(line *ctdf.Line) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lineNameTaken(line.Name) {
		log.Error().Str("name", line.Name).Msg("AddLine rejected line that is already served")
		return 0, fmt.Errorf("%w: %q", ctdf.ErrLineAlreadyServed, line.Name)
	}

	id := s.allocate(&s.nextLineID, len(s.lines))
	s.storeLine(id, line)

	return id, nil
}

// AddLines stores several lines at once and returns their identifiers in input order.
//
// In monotonic mode the batch is rejected as a whole when any name is already registered or
// appears twice in the batch. In legacy mode the lines are stored under their position in the
// batch without any name check, replacing whatever was stored there.
func (s *Service) AddLines(lines []*ctdf.Line) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, len(lines))

	if s.config.IdentifierMode == IdentifierModeLegacy {
		for i, line := range lines {
			s.storeLine(i, line)
			ids[i] = i
		}

		return ids, nil
	}

	batchNames := map[string]bool{}
	for _, line := range lines {
		if s.lineNameTaken(line.Name) || batchNames[line.Name] {
			log.Error().Str("name", line.Name).Msg("AddLines rejected batch with a line that is already served")
			return nil, fmt.Errorf("%w: %q", ctdf.ErrLineAlreadyServed, line.Name)
		}
		batchNames[line.Name] = true
	}

	for i, line := range lines {
		ids[i] = s.allocate(&s.nextLineID, len(s.lines))
		s.storeLine(ids[i], line)
	}

	return ids, nil
}

func (s *Service) storeLine(id int, line *ctdf.Line) {
	line.ID = id
	s.lines[id] = line

	log.Debug().Int("id", id).Str("name", line.Name).Str("days", line.ServingDays.String()).Msg("Added line")
}

func (s *Service) lineNameTaken(name string) bool {
	for _, line := range s.lines {
		if line.Name == name {
			return true
		}
	}

	return false
}

func (s *Service) RemoveLine(lineID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.lines[lineID]; !exists {
		return fmt.Errorf("%w: %d", ctdf.ErrLineNotFound, lineID)
	}

	delete(s.lines, lineID)
	log.Debug().Int("id", lineID).Msg("Removed line")

	return nil
}

func (s *Service) GetLine(lineID int) (*ctdf.Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	line, exists := s.lines[lineID]
	if !exists {
		return nil, fmt.Errorf("%w: %d", ctdf.ErrLineNotFound, lineID)
	}

	return line, nil
}

// GetLinesByName mirrors GetStationsByName for lines.
func (s *Service) GetLinesByName(name string, limit int) ([]*ctdf.Line, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", ctdf.ErrInvalidArgument, limit)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var lines []*ctdf.Line
	for _, id := range sortedKeys(s.lines) {
		if len(lines) == limit {
			break
		}

		if line := s.lines[id]; strings.Contains(line.Name, name) {
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no line name contains %q", ctdf.ErrLineNotFound, name)
	}

	return lines, nil
}

func (s *Service) Lines() []*ctdf.Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedValues(s.lines)
}

func (s *Service) LineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.lines)
}

func sortedKeys[T any](m map[int]T) []int {
	keys := make([]int, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys
}

func sortedValues[T any](m map[int]T) []T {
	values := make([]T, 0, len(m))
	for _, key := range sortedKeys(m) {
		values = append(values, m[key])
	}

	return values
}
