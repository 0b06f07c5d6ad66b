package timetablelookup

import (
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/dataaggregator/query"
)

func (s Source) LineQuery(q query.Line) (*ctdf.Line, error) {
	return s.Service.GetLine(q.ID)
}

func (s Source) LinesByNameQuery(q query.LinesByName) ([]*ctdf.Line, error) {
	return s.Service.GetLinesByName(q.Name, q.Limit)
}

func (s Source) VehicleQuery(q query.Vehicle) (*ctdf.TransportationVehicle, error) {
	return s.Service.GetVehicle(q.ID)
}
