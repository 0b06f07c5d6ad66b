package ctdf

import (
	"fmt"
	"time"

	"github.com/travigo/timetable/pkg/util"
)

// Departure is a dated occurrence of a line calling at one of its stops. ConcreteTime is the
// scheduled time; the vehicle delay is applied only when displaying.
type Departure struct {
	Line         *Line
	FocusedStop  *Stop
	ConcreteTime time.Time

	TimeProvider CurrentTimeProvider
}

func NewDeparture(line *Line, focusedStop *Stop, concreteTime time.Time, timeProvider CurrentTimeProvider) *Departure {
	return &Departure{
		Line:         line,
		FocusedStop:  focusedStop,
		ConcreteTime: concreteTime,
		TimeProvider: timeProvider,
	}
}

func (d *Departure) Delay() int {
	return d.Line.Vehicle.Delay()
}

func (d *Departure) LineType() TransportType {
	return d.Line.Vehicle.Type
}

func (d *Departure) LineName() string {
	return d.Line.Name
}

// Destination is the label of the line's last stop of the day.
func (d *Departure) Destination() string {
	stops := d.Line.Stops()
	if len(stops) == 0 {
		return ""
	}

	return stops[len(stops)-1].Name
}

// ArrivalMessage renders the countdown shown on a departure board.
//
// Without a time provider it is the bare stop time. Otherwise departures less than an hour away
// count down in minutes, later ones today show the clock time and departures on later dates are
// prefixed with the number of days. A positive delay is appended as "+ N min". When the scheduled
// time has already passed, the overdue minutes are taken off the delay.
func (d *Departure) ArrivalMessage() string {
	if d.TimeProvider == nil {
		return d.FocusedStop.Time.String()
	}

	currentTime := d.TimeProvider.CurrentTime()

	plannedIn := util.WholeMinutesBetween(currentTime, d.ConcreteTime)
	delay := int64(d.Delay())

	if plannedIn < 0 {
		delay += plannedIn
		plannedIn = 0
	}

	delaySuffix := ""
	if delay > 0 {
		delaySuffix = fmt.Sprintf(" + %d min", delay)
	}

	if plannedIn < 60 {
		if delay > 0 {
			return fmt.Sprintf("%d + %d min", plannedIn, delay)
		}
		return fmt.Sprintf("%d min", plannedIn)
	}

	clockTime := fmt.Sprintf("%02d:%02d", d.ConcreteTime.Hour(), d.ConcreteTime.Minute())

	daysDifference := util.DaysBetween(currentTime, d.ConcreteTime)
	if daysDifference == 0 {
		return clockTime + delaySuffix
	}

	return fmt.Sprintf("+%d day(s) %s%s", daysDifference, clockTime, delaySuffix)
}

func (d *Departure) String() string {
	return fmt.Sprintf("%s %s %s", d.ConcreteTime.Format("Mon 15:04"), d.LineName(), d.FocusedStop.Name)
}
