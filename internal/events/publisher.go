// Package events fans completion and skip actions out to Kafka.
package events

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/habitlog/pkg/cleanup"
	"github.com/segmentio/kafka-go"
)

const (
	TypeCompleted = "habit.completed"
	TypeSkipped   = "habit.skipped"
)

type HabitEvent struct {
	UserID     string    `json:"userId"`
	HabitID    string    `json:"habitId"`
	HabitName  string    `json:"habitName"`
	Date       string    `json:"date"`
	Completed  bool      `json:"completed"`
	Streak     int       `json:"streak"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (e HabitEvent) Type() string {
	if e.Completed {
		return TypeCompleted
	}
	return TypeSkipped
}

type Publisher interface {
	Publish(ctx context.Context, ev HabitEvent) error
}

// Writer is the part of kafka.Writer the publisher needs
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer Writer
}

// NewKafkaPublisher writes asynchronously; the writer is flushed and closed on cleanup
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		Async:                  true,
		AllowAutoTopicCreation: true,
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing kafka writer",
		F:    w.Close,
	})
	return &KafkaPublisher{
		writer: w,
	}
}

func NewKafkaPublisherWithWriter(w Writer) *KafkaPublisher {
	return &KafkaPublisher{
		writer: w,
	}
}

// Publish keys messages by user so one user's events keep their order
func (kp *KafkaPublisher) Publish(ctx context.Context, ev HabitEvent) error {
	payload, err := sonic.Marshal(ev)
	if err != nil {
		return errors.New("encoding event error: " + err.Error())
	}
	err = kp.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(ev.UserID),
		Value:   payload,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(ev.Type())}},
	})
	if err != nil {
		return errors.New("publishing event error: " + err.Error())
	}
	return nil
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, HabitEvent) error {
	return nil
}
