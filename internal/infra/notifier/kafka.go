package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/notification"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the notifier uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaNotifier struct {
	writer MessageWriter
	logger *slog.Logger
	now    func() time.Time
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}
}

func NewKafkaNotifier(writer MessageWriter, logger *slog.Logger) *KafkaNotifier {
	return &KafkaNotifier{writer: writer, logger: logger, now: time.Now}
}

// Send keys messages by listing so one listing's events stay ordered.
func (n *KafkaNotifier) Send(ctx context.Context, e notification.Event) error {
	now := n.now()
	body, err := encode(e, now)
	if err != nil {
		return err
	}
	key := e.ListingID
	if key == "" {
		key = e.ID
	}
	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: body,
		Time:  now,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	})
	if err != nil {
		return infra.BackendError(n.logger, infra.ErrBrokerFailure, "kafka write", err)
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
