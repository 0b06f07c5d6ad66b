package ctdf

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slices"
)

// Line is a named route operating on a set of weekdays and served by exactly one vehicle.
type Line struct {
	ID   int
	Name string

	ServingDays WeekdaySet
	Vehicle     *TransportationVehicle

	mu    sync.RWMutex
	stops []*Stop
}

func NewLine(name string, servingDays WeekdaySet, vehicle *TransportationVehicle) *Line {
	return &Line{
		Name:        name,
		ServingDays: servingDays,
		Vehicle:     vehicle,
	}
}

// CreateStop appends a new stop and returns it.
func (l *Line) CreateStop(time TimeOfDay, station *Station, name string) *Stop {
	stop := NewStop(time, station, name)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.stops = append(l.stops, stop)
	return stop
}

func (l *Line) AddStops(stops []*Stop) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stops = append(l.stops, stops...)
}

// RemoveStop removes the first stop, in insertion order, labelled name.
func (l *Line) RemoveStop(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	index := slices.IndexFunc(l.stops, func(s *Stop) bool { return s.Name == name })
	if index == -1 {
		return fmt.Errorf("%w: %q on line %q", ErrStopNotFound, name, l.Name)
	}

	l.stops = slices.Delete(l.stops, index, index+1)
	return nil
}

// Stop returns the first stop, in time order, labelled name.
func (l *Line) Stop(name string) (*Stop, error) {
	for _, stop := range l.Stops() {
		if stop.Name == name {
			return stop, nil
		}
	}

	return nil, fmt.Errorf("%w: %q on line %q", ErrStopNotFound, name, l.Name)
}

// Stops returns a new slice of the stops ordered by time of day. Stops sharing a time keep
// their insertion order. The stored order is never changed.
func (l *Line) Stops() []*Stop {
	l.mu.RLock()
	stops := slices.Clone(l.stops)
	l.mu.RUnlock()

	slices.SortStableFunc(stops, func(a, b *Stop) int {
		return a.Time.Compare(b.Time)
	})

	return stops
}

// StopAt returns the earliest stop at station, or nil if the line does not call there.
func (l *Line) StopAt(station *Station) *Stop {
	for _, stop := range l.Stops() {
		if stop.Station == station {
			return stop
		}
	}

	return nil
}

func (l *Line) StopCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.stops)
}

func (l *Line) String() string {
	return l.Name
}
