package timetable

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/util"
	"golang.org/x/exp/slices"
)

// GetDepartures lists the departures from a station in the horizonMinutes after reference,
// ordered by scheduled time.
//
// A departure is listed when reference is before its scheduled time plus the current vehicle
// delay, and its scheduled time (without delay) is at most horizonMinutes whole minutes after
// reference. Lines served by an out of service vehicle are skipped, and only the first stop of a
// line at the station is considered. The time provider is only attached to the results for
// formatting.
func (s *Service) GetDepartures(stationID int, reference time.Time, horizonMinutes int64, timeProvider ctdf.CurrentTimeProvider) ([]*ctdf.Departure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getDepartures(stationID, reference, horizonMinutes, timeProvider)
}

// DepartureBoard resolves and renders the departures of a station without letting registry
// changes interleave between the two steps.
func (s *Service) DepartureBoard(stationID int, reference time.Time, horizonMinutes int64, timeProvider ctdf.CurrentTimeProvider) ([]*ctdf.DepartureBoard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	departures, err := s.getDepartures(stationID, reference, horizonMinutes, timeProvider)
	if err != nil {
		return nil, err
	}

	return ctdf.GenerateDepartureBoardFromDepartures(departures), nil
}

func (s *Service) getDepartures(stationID int, reference time.Time, horizonMinutes int64, timeProvider ctdf.CurrentTimeProvider) ([]*ctdf.Departure, error) {
	log.Debug().
		Int("station", stationID).
		Time("reference", reference).
		Int64("horizon", horizonMinutes).
		Msg("Departures requested")

	station, err := s.getStation(stationID)
	if err != nil {
		return nil, err
	}

	lines := sortedValues(s.lines)

	// Each line writes only its own slot so the merge below keeps line order
	lineDepartures := make([][]*ctdf.Departure, len(lines))

	p := pool.New().WithMaxGoroutines(s.config.MaxGoroutines)
	for i, line := range lines {
		i, line := i, line
		p.Go(func() {
			lineDepartures[i] = resolveLineDepartures(line, station, reference, horizonMinutes, timeProvider)
		})
	}
	p.Wait()

	departures := []*ctdf.Departure{}
	for _, resolved := range lineDepartures {
		departures = append(departures, resolved...)
	}

	slices.SortStableFunc(departures, func(a, b *ctdf.Departure) int {
		return a.ConcreteTime.Compare(b.ConcreteTime)
	})

	return departures, nil
}

func resolveLineDepartures(line *ctdf.Line, station *ctdf.Station, reference time.Time, horizonMinutes int64, timeProvider ctdf.CurrentTimeProvider) []*ctdf.Departure {
	vehicle := line.Vehicle
	if vehicle == nil || !vehicle.IsFunctional() {
		return nil
	}

	stop := line.StopAt(station)
	if stop == nil {
		return nil
	}

	delay := time.Duration(vehicle.Delay()) * time.Minute

	var departures []*ctdf.Departure
	for _, day := range line.ServingDays.Days() {
		concreteTime := stop.Time.On(ctdf.NextOrSame(reference, day))

		notYetDeparted := reference.Before(concreteTime.Add(delay))
		withinHorizon := util.WholeMinutesBetween(reference, concreteTime) <= horizonMinutes

		if notYetDeparted && withinHorizon {
			departures = append(departures, ctdf.NewDeparture(line, stop, concreteTime, timeProvider))
		}
	}

	return departures
}
