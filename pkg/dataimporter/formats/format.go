package formats

import (
	"io"

	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/timetable"
)

type Format interface {
	ParseFile(io.Reader) error
	Import(*ImportContext) error
}

// ImportContext carries the target service and the dataset keys resolved so far, so a line in
// one file can reference a station defined in another.
type ImportContext struct {
	Service *timetable.Service

	Stations map[string]*ctdf.Station
	Vehicles map[string]*ctdf.TransportationVehicle
	Lines    map[string]*ctdf.Line
}

func NewImportContext(service *timetable.Service) *ImportContext {
	return &ImportContext{
		Service:  service,
		Stations: map[string]*ctdf.Station{},
		Vehicles: map[string]*ctdf.TransportationVehicle{},
		Lines:    map[string]*ctdf.Line{},
	}
}
