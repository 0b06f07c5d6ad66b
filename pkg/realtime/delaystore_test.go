package realtime

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/timetable/pkg/ctdf"
)

func TestDelayStoreMirrorsDelays(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewDelayStore(client)

	vehicle := ctdf.NewTransportationVehicle(ctdf.TransportTypeRail)
	vehicle.ID = 4
	require.NoError(t, vehicle.AddDelayListener(store))

	_, err := store.Get(context.Background(), 4)
	assert.ErrorIs(t, err, ctdf.ErrVehicleNotFound)

	vehicle.SetDelay(9)

	delay, err := store.Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 9, delay)

	value, err := server.Get("vehicledelay/4")
	require.NoError(t, err)
	assert.Equal(t, "9", value)
	assert.Equal(t, delayStoreExpiration, server.TTL("vehicledelay/4"))

	vehicle.SetDelay(0)
	delay, err = store.Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 0, delay)
}
