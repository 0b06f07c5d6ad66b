package global

import (
	"github.com/travigo/timetable/pkg/dataaggregator"
	"github.com/travigo/timetable/pkg/dataaggregator/source/localdepartureboard"
	"github.com/travigo/timetable/pkg/dataaggregator/source/timetablelookup"
	"github.com/travigo/timetable/pkg/timetable"
)

// Setup points the global aggregator at service.
func Setup(service *timetable.Service) {
	dataaggregator.GlobalAggregator = New(service)
}

func New(service *timetable.Service) dataaggregator.Aggregator {
	aggregator := dataaggregator.Aggregator{}

	aggregator.RegisterSource(timetablelookup.Source{Service: service})
	aggregator.RegisterSource(localdepartureboard.Source{Service: service})

	return aggregator
}
