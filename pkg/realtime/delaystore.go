package realtime

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/timetable/pkg/ctdf"
)

const delayStoreExpiration = 90 * time.Minute

// DelayStore mirrors the current delay of every vehicle it listens to into redis so processes
// without access to the timetable can read it.
type DelayStore struct {
	cache *cache.Cache[string]
}

func NewDelayStore(client *redis.Client) *DelayStore {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(delayStoreExpiration))

	return &DelayStore{
		cache: cache.New[string](redisStore),
	}
}

func delayKey(vehicleID int) string {
	return fmt.Sprintf("vehicledelay/%d", vehicleID)
}

func (s *DelayStore) NotifyDelay(vehicle *ctdf.TransportationVehicle, delay int) {
	if err := s.cache.Set(context.Background(), delayKey(vehicle.ID), strconv.Itoa(delay)); err != nil {
		log.Error().Err(err).Int("vehicle", vehicle.ID).Msg("Failed to store vehicle delay")
	}
}

// Get returns the last mirrored delay of a vehicle, wrapping ctdf.ErrVehicleNotFound when none
// has been stored.
func (s *DelayStore) Get(ctx context.Context, vehicleID int) (int, error) {
	value, err := s.cache.Get(ctx, delayKey(vehicleID))
	if err != nil {
		return 0, fmt.Errorf("%w: no delay stored for %d: %s", ctdf.ErrVehicleNotFound, vehicleID, err)
	}

	return strconv.Atoi(value)
}
