package event

import (
	"context"
	"strconv"
	"sync"
	"time"

	"galerij/infras/kafka"
	"galerij/shared/constant"
	"galerij/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Event is the envelope of every domain event written to the events topic. Messages are
// keyed by entity id so events of one entity stay ordered within a partition.
type Event struct {
	Type       string    `json:"type"`
	EntityID   int64     `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
	RequestID  string    `json:"request_id,omitempty"`
	Payload    any       `json:"payload,omitempty"`
}

var inflight sync.WaitGroup

func New(ctx context.Context, eventType string, entityID int64, payload any) Event {
	requestID, _ := ctx.Value(constant.ContextKeyRequestID).(string)

	return Event{
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: timezone.Now(),
		RequestID:  requestID,
		Payload:    payload,
	}
}

// Publish sends the event and only logs failures; callers never fail a request over it.
func Publish(ctx context.Context, client kafka.Client, evt Event) {
	message := kafka.Message{
		Key:   strconv.FormatInt(evt.EntityID, 10),
		Value: evt,
	}

	if err := client.SendMessages(ctx, message); err != nil {
		log.Error().Err(err).Str("event", evt.Type).Int64("entityID", evt.EntityID).Msg("failed to publish event")
	}
}

// PublishAsync publishes the event in the background, detached from the request's
// cancellation. Drain waits for it.
func PublishAsync(ctx context.Context, client kafka.Client, evt Event) {
	inflight.Add(1)

	go func() {
		defer inflight.Done()

		Publish(context.WithoutCancel(ctx), client, evt)
	}()
}

// Drain blocks until every background publish has finished or ctx is done.
func Drain(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
