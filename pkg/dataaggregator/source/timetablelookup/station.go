package timetablelookup

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/dataaggregator/query"
	"github.com/travigo/timetable/pkg/util"
)

func (s Source) StationQuery(q query.Station) (*ctdf.Station, error) {
	return s.Service.GetStation(q.ID)
}

func (s Source) StationsByNameQuery(q query.StationsByName) ([]*ctdf.Station, error) {
	if q.Filter == "" {
		return s.Service.GetStationsByName(q.Name, q.Limit)
	}

	if q.Limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", ctdf.ErrInvalidArgument, q.Limit)
	}

	program, err := CompileStationFilter(q.Filter)
	if err != nil {
		return nil, err
	}

	stations, err := s.Service.GetStationsByName(q.Name, math.MaxInt)
	if err != nil {
		return nil, err
	}

	var filterErr error
	util.InPlaceFilter(&stations, func(station *ctdf.Station) bool {
		matches, err := MatchStation(program, station)
		if err != nil {
			filterErr = err
		}
		return matches
	})
	if filterErr != nil {
		return nil, filterErr
	}

	if len(stations) > q.Limit {
		stations = stations[:q.Limit]
	}

	if len(stations) == 0 {
		return nil, fmt.Errorf("%w: no station matches %q with filter %q", ctdf.ErrStationNotFound, q.Name, q.Filter)
	}

	return stations, nil
}

// CompileStationFilter compiles a boolean expression over the fields of ctdf.Station.
func CompileStationFilter(filter string) (*vm.Program, error) {
	program, err := expr.Compile(filter, expr.Env(ctdf.Station{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: station filter: %s", ctdf.ErrInvalidArgument, err)
	}

	return program, nil
}

func MatchStation(program *vm.Program, station *ctdf.Station) (bool, error) {
	output, err := expr.Run(program, *station)
	if err != nil {
		return false, fmt.Errorf("%w: station filter: %s", ctdf.ErrInvalidArgument, err)
	}

	matches, _ := output.(bool)
	return matches, nil
}
