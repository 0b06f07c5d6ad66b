package localdepartureboard

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/dataaggregator/query"
)

func (s Source) DepartureBoardQuery(q query.DepartureBoard) ([]*ctdf.DepartureBoard, error) {
	currentTime := time.Now()

	departureBoard, err := s.Service.DepartureBoard(q.StationID, q.StartDateTime, q.HorizonMinutes, q.TimeProvider)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("Length", time.Since(currentTime).String()).Int("station", q.StationID).Msg("Departure Board generation")

	// Already sorted by time so only cut off
	if q.Count > 0 && len(departureBoard) > q.Count {
		departureBoard = departureBoard[:q.Count]
	}

	return departureBoard, nil
}
