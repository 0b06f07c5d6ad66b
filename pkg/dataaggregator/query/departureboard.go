package query

import (
	"time"

	"github.com/travigo/timetable/pkg/ctdf"
)

type DepartureBoard struct {
	StationID     int
	StartDateTime time.Time

	// HorizonMinutes bounds the scheduled departure time after StartDateTime
	HorizonMinutes int64

	// Count cuts the board off after this many rows when positive
	Count int

	TimeProvider ctdf.CurrentTimeProvider
}

type Departures struct {
	StationID      int
	StartDateTime  time.Time
	HorizonMinutes int64

	TimeProvider ctdf.CurrentTimeProvider
}
