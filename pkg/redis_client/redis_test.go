package redis_client

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	server := miniredis.RunT(t)

	t.Setenv("TRAVIGO_REDIS_ADDRESS", server.Addr())
	t.Setenv("TRAVIGO_REDIS_DATABASE", "0")

	require.NoError(t, Connect())
	t.Cleanup(func() { Client.Close() })

	assert.NoError(t, Client.Ping(context.Background()).Err())

	queue, err := QueueConnection.OpenQueue("connect-test")
	require.NoError(t, err)
	assert.NoError(t, queue.Publish("payload"))

	count, err := queue.ReadyCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestConnectInvalidDatabase(t *testing.T) {
	t.Setenv("TRAVIGO_REDIS_DATABASE", "zero")

	assert.Error(t, Connect())
}
