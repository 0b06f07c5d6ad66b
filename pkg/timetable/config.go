package timetable

import (
	"fmt"
	"runtime"

	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/util"
)

// IdentifierMode selects how the registry numbers new entities.
type IdentifierMode string

const (
	// IdentifierModeMonotonic numbers each entity kind from 0 upwards and never hands out an
	// identifier twice, even after the entity was removed.
	IdentifierModeMonotonic IdentifierMode = "monotonic"

	// IdentifierModeLegacy uses the current collection size as the next identifier and numbers
	// bulk inserted lines by their position in the batch. Identifiers may be reused after a
	// removal and bulk inserts may replace existing lines.
	IdentifierModeLegacy IdentifierMode = "legacy"
)

type Config struct {
	IdentifierMode IdentifierMode

	// Upper bound of lines evaluated in parallel by GetDepartures
	MaxGoroutines int
}

func DefaultConfig() Config {
	return Config{
		IdentifierMode: IdentifierModeMonotonic,
		MaxGoroutines:  runtime.GOMAXPROCS(0),
	}
}

// ConfigFromEnvironment reads TRAVIGO_IDENTIFIER_MODE and TRAVIGO_DEPARTURE_WORKERS on top of
// DefaultConfig.
func ConfigFromEnvironment() (Config, error) {
	config := DefaultConfig()

	mode, err := ParseIdentifierMode(util.GetEnvironmentVariable("IDENTIFIER_MODE", string(config.IdentifierMode)))
	if err != nil {
		return config, err
	}
	config.IdentifierMode = mode

	workers, err := util.GetEnvironmentInt("DEPARTURE_WORKERS", config.MaxGoroutines)
	if err != nil {
		return config, fmt.Errorf("%w: TRAVIGO_DEPARTURE_WORKERS: %s", ctdf.ErrInvalidArgument, err)
	}
	config.MaxGoroutines = workers

	return config, nil
}

func ParseIdentifierMode(s string) (IdentifierMode, error) {
	switch IdentifierMode(s) {
	case IdentifierModeMonotonic, IdentifierModeLegacy:
		return IdentifierMode(s), nil
	default:
		return "", fmt.Errorf("%w: unknown identifier mode %q", ctdf.ErrInvalidArgument, s)
	}
}
