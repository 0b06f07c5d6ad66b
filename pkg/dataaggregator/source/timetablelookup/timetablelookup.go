package timetablelookup

import (
	"reflect"

	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/dataaggregator/query"
	"github.com/travigo/timetable/pkg/dataaggregator/source"
	"github.com/travigo/timetable/pkg/timetable"
)

// Source answers entity lookups from the in memory timetable registry.
type Source struct {
	Service *timetable.Service
}

func (s Source) GetName() string {
	return "Timetable Lookup"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.Station{}),
		reflect.TypeOf([]*ctdf.Station{}),
		reflect.TypeOf(ctdf.Line{}),
		reflect.TypeOf([]*ctdf.Line{}),
		reflect.TypeOf(ctdf.TransportationVehicle{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Station:
		return s.StationQuery(q)
	case query.StationsByName:
		return s.StationsByNameQuery(q)
	case query.Line:
		return s.LineQuery(q)
	case query.LinesByName:
		return s.LinesByNameQuery(q)
	case query.Vehicle:
		return s.VehicleQuery(q)
	default:
		return nil, source.UnsupportedSourceError
	}
}
