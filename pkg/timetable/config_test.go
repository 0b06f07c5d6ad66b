package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/timetable/pkg/ctdf"
)

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("TRAVIGO_IDENTIFIER_MODE", "legacy")
	t.Setenv("TRAVIGO_DEPARTURE_WORKERS", "3")

	config, err := ConfigFromEnvironment()
	require.NoError(t, err)
	assert.Equal(t, IdentifierModeLegacy, config.IdentifierMode)
	assert.Equal(t, 3, config.MaxGoroutines)
}

func TestConfigFromEnvironmentDefaults(t *testing.T) {
	t.Setenv("TRAVIGO_IDENTIFIER_MODE", "")
	t.Setenv("TRAVIGO_DEPARTURE_WORKERS", "")

	config, err := ConfigFromEnvironment()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestConfigFromEnvironmentErrors(t *testing.T) {
	t.Setenv("TRAVIGO_IDENTIFIER_MODE", "random")
	_, err := ConfigFromEnvironment()
	assert.ErrorIs(t, err, ctdf.ErrInvalidArgument)

	t.Setenv("TRAVIGO_IDENTIFIER_MODE", "monotonic")
	t.Setenv("TRAVIGO_DEPARTURE_WORKERS", "many")
	_, err = ConfigFromEnvironment()
	assert.ErrorIs(t, err, ctdf.ErrInvalidArgument)
}

func TestNewServiceNormalisesConfig(t *testing.T) {
	service := NewService(Config{})

	assert.Equal(t, IdentifierModeMonotonic, service.Config().IdentifierMode)
	assert.Equal(t, 1, service.Config().MaxGoroutines)
}
