package localdepartureboard

import (
	"reflect"

	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/dataaggregator/query"
	"github.com/travigo/timetable/pkg/dataaggregator/source"
	"github.com/travigo/timetable/pkg/timetable"
)

type Source struct {
	Service *timetable.Service
}

func (s Source) GetName() string {
	return "Local Departure Board Generator"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]*ctdf.DepartureBoard{}),
		reflect.TypeOf([]*ctdf.Departure{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.DepartureBoard:
		return s.DepartureBoardQuery(q)
	case query.Departures:
		return s.Service.GetDepartures(q.StationID, q.StartDateTime, q.HorizonMinutes, q.TimeProvider)
	default:
		return nil, source.UnsupportedSourceError
	}
}
