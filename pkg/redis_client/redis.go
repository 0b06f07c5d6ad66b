package redis_client

import (
	"context"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/timetable/pkg/util"
)

var Client *redis.Client
var QueueConnection rmq.Connection

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

const queueConnectionTag = "timetable"

// Connect sets up Client and QueueConnection from the TRAVIGO_REDIS_* environment variables.
// The initial ping is retried with exponential backoff for up to a minute.
func Connect() error {
	address := util.GetEnvironmentVariable("REDIS_ADDRESS", defaultConnectionAddress)
	password := util.GetEnvironmentVariable("REDIS_PASSWORD", defaultConnectionPassword)

	database, err := util.GetEnvironmentInt("REDIS_DATABASE", defaultDatabase)
	if err != nil {
		return err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = time.Minute

	err = backoff.RetryNotify(func() error {
		return client.Ping(context.Background()).Err()
	}, retryBackoff, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("address", address).Dur("wait", wait).Msg("Redis not reachable, retrying")
	})
	if err != nil {
		return err
	}

	if err := ConnectWithClient(client); err != nil {
		return err
	}

	log.Info().Str("address", address).Int("database", database).Msg("Redis client setup")

	return nil
}

// ConnectWithClient uses an already configured client, e.g. one pointed at miniredis.
func ConnectWithClient(client *redis.Client) error {
	queueConnection, err := rmq.OpenConnectionWithRedisClient(queueConnectionTag, client, nil)
	if err != nil {
		return err
	}

	Client = client
	QueueConnection = queueConnection

	return nil
}
