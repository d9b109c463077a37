package notify

import (
	"context"

	"islatours/pkg/kafka"
	"islatours/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// Kafka publishes a private_tour_booking.created event keyed by booking id.
type Kafka struct {
	producer Publisher
	source   string
}

func NewKafka(producer Publisher, source string) *Kafka {
	return &Kafka{producer: producer, source: source}
}

func (k *Kafka) Name() string { return "kafka" }

func (k *Kafka) Notify(ctx context.Context, event BookingEvent) error {
	msg, err := kafka.NewMessage().
		WithKey(event.Booking.ID).
		WithEventType(EventBookingCreated).
		WithSchemaVersion("1").
		WithSource(k.source).
		WithCorrelationID(logger.RequestID(ctx)).
		WithValue(event).
		Build()
	if err != nil {
		return err
	}
	return k.producer.Publish(ctx, msg)
}
