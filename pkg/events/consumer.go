package events

import (
	"encoding/json"

	"github.com/adjust/rmq/v5"
	"github.com/kr/pretty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/timetable/pkg/ctdf"
)

type BatchConsumer struct {
	// Handle is called for every decoded event
	Handle func(*ctdf.Event)
}

func NewEventsBatchConsumer() *BatchConsumer {
	return &BatchConsumer{
		Handle: logEvent,
	}
}

func (consumer *BatchConsumer) Consume(batch rmq.Deliveries) {
	payloads := batch.Payloads()

	for _, payload := range payloads {
		var event ctdf.Event
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			log.Error().Err(err).Str("payload", payload).Msg("Failed to decode event")
			continue
		}

		consumer.Handle(&event)
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Error().Err(err).Msg("Failed to consume event")
		}
	}
}

func logEvent(event *ctdf.Event) {
	notification := event.GetNotificationData()

	log.Info().
		Str("type", string(event.Type)).
		Time("timestamp", event.Timestamp).
		Str("title", notification.Title).
		Msg(notification.Message)

	if log.Logger.GetLevel() <= zerolog.DebugLevel {
		pretty.Println(event)
	}
}
