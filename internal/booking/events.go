package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// EventBookingCreated is the event type emitted after a booking is stored.
const EventBookingCreated = "booking.created"

// KafkaConfig holds the event stream settings.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// CreatedEvent is the wire shape of a booking.created event.
type CreatedEvent struct {
	EventType  string    `json:"eventType"`
	BookingID  string    `json:"bookingId"`
	OrderID    string    `json:"orderId"`
	Reference  string    `json:"reference"`
	OfferID    string    `json:"offerId"`
	Email      string    `json:"email"`
	Price      string    `json:"price"`
	Currency   string    `json:"currency"`
	OccurredAt time.Time `json:"occurredAt"`
}

// KafkaPublisher emits booking events to a Kafka topic, keyed by booking id
// so one booking's events stay ordered.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher for the configured topic.
func NewKafkaPublisher(cfg KafkaConfig) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		MaxAttempts:            5,
		ReadTimeout:            10 * time.Second,
		WriteTimeout:           10 * time.Second,
		Async:                  false,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

// BookingCreated implements EventPublisher.BookingCreated.
func (p *KafkaPublisher) BookingCreated(ctx context.Context, b Booking) error {
	event := CreatedEvent{
		EventType:  EventBookingCreated,
		BookingID:  b.ID,
		OrderID:    b.OrderID,
		Reference:  b.Reference,
		OfferID:    b.OfferID,
		Email:      b.Email,
		Price:      b.Price,
		Currency:   b.Currency,
		OccurredAt: b.CreatedAt,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode booking event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(b.ID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write booking event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

var _ EventPublisher = (*KafkaPublisher)(nil)
