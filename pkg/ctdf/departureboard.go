package ctdf

import (
	"time"
)

// DepartureBoard is one rendered row of a station's departure board.
type DepartureBoard struct {
	LineID      int           `groups:"basic,departures-llm"`
	LineName    string        `groups:"basic,departures-llm"`
	LineType    TransportType `groups:"basic,departures-llm"`
	Destination string        `groups:"basic,departures-llm"`
	StopName    string        `groups:"basic,departures-llm"`

	Type DepartureBoardRecordType `groups:"basic,departures-llm"`

	Time           time.Time `groups:"basic,departures-llm"`
	Delay          int       `groups:"basic,departures-llm"`
	ArrivalMessage string    `groups:"basic,departures-llm"`
}

type DepartureBoardRecordType string

const (
	DepartureBoardRecordTypeScheduled DepartureBoardRecordType = "Scheduled"
	DepartureBoardRecordTypeDelayed   DepartureBoardRecordType = "Delayed"
)

// GenerateDepartureBoardFromDepartures renders departures in the order given. The vehicle delay
// is read once per row so Delay, Type and ArrivalMessage agree with each other as far as the
// vehicle is not changed concurrently.
func GenerateDepartureBoardFromDepartures(departures []*Departure) []*DepartureBoard {
	departureBoard := make([]*DepartureBoard, 0, len(departures))

	for _, departure := range departures {
		delay := departure.Delay()

		recordType := DepartureBoardRecordTypeScheduled
		if delay > 0 {
			recordType = DepartureBoardRecordTypeDelayed
		}

		departureBoard = append(departureBoard, &DepartureBoard{
			LineID:         departure.Line.ID,
			LineName:       departure.LineName(),
			LineType:       departure.LineType(),
			Destination:    departure.Destination(),
			StopName:       departure.FocusedStop.Name,
			Type:           recordType,
			Time:           departure.ConcreteTime,
			Delay:          delay,
			ArrivalMessage: departure.ArrivalMessage(),
		})
	}

	return departureBoard
}
