package dataaggregator

import (
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
)

var ErrNoMatchingSource = errors.New("failed to find a matching data source for type")

type Aggregator struct {
	Sources []DataSource
}

var GlobalAggregator Aggregator

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

// Lookup answers query with the first source of the global aggregator supporting T.
func Lookup[T any](query any) (T, error) {
	return LookupFrom[T](&GlobalAggregator, query)
}

func LookupFrom[T any](aggregator *Aggregator, query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))
	if lookupType.Kind() == reflect.Pointer {
		lookupType = lookupType.Elem()
	}

	for _, source := range aggregator.Sources {
		matches := false

		for _, supportedType := range source.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if matches {
			returnValue, returnError := source.Lookup(query)

			if returnValue == nil {
				return empty, returnError
			}

			typedValue, ok := returnValue.(T)
			if !ok {
				return empty, ErrNoMatchingSource
			}

			return typedValue, returnError
		}
	}

	return empty, ErrNoMatchingSource
}
