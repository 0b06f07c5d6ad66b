package events

import (
	"encoding/json"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/rs/zerolog/log"
	"github.com/travigo/timetable/pkg/ctdf"
)

const QueueName = "events-queue"

// QueueDelayListener publishes every delay change of the vehicles it is registered on as a
// VehicleDelayChanged event. Delivery to consumers happens outside the notifying goroutine.
type QueueDelayListener struct {
	queue rmq.Queue
	now   func() time.Time
}

func NewQueueDelayListener(queue rmq.Queue) *QueueDelayListener {
	return &QueueDelayListener{
		queue: queue,
		now:   time.Now,
	}
}

func (l *QueueDelayListener) NotifyDelay(vehicle *ctdf.TransportationVehicle, delay int) {
	event := ctdf.Event{
		Type:      ctdf.EventTypeVehicleDelayChanged,
		Timestamp: l.now(),
		Body: ctdf.VehicleDelayChange{
			VehicleID:   vehicle.ID,
			VehicleType: vehicle.Type,
			Delay:       delay,
		},
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Int("vehicle", vehicle.ID).Msg("Failed to encode delay event")
		return
	}

	if err := l.queue.PublishBytes(eventBytes); err != nil {
		log.Error().Err(err).Int("vehicle", vehicle.ID).Msg("Failed to publish delay event")
	}
}
