package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/notification"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPNotifier publishes persistent messages to a durable queue on the default
// exchange. The connection is opened on first use and reopened after a failure.
type AMQPNotifier struct {
	url    string
	queue  string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPNotifier(url, queue string, logger *slog.Logger) *AMQPNotifier {
	return &AMQPNotifier{url: url, queue: queue, logger: logger}
}

func (n *AMQPNotifier) Send(ctx context.Context, e notification.Event) error {
	now := time.Now()
	body, err := encode(e, now)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.ensureChannel(); err != nil {
		return infra.BackendError(n.logger, infra.ErrBrokerFailure, "amqp connect", err)
	}

	err = n.ch.PublishWithContext(ctx,
		"",      // default exchange
		n.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    e.ID,
			Timestamp:    now.UTC(),
			Body:         body,
		},
	)
	if err != nil {
		n.reset()
		return infra.BackendError(n.logger, infra.ErrBrokerFailure, "amqp publish", err)
	}
	return nil
}

func (n *AMQPNotifier) ensureChannel() error {
	if n.ch != nil && !n.ch.IsClosed() {
		return nil
	}
	n.reset()

	conn, err := amqp.Dial(n.url)
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}
	if _, err := ch.QueueDeclare(n.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}
	n.conn, n.ch = conn, ch
	return nil
}

func (n *AMQPNotifier) reset() {
	if n.ch != nil {
		_ = n.ch.Close()
		n.ch = nil
	}
	if n.conn != nil {
		_ = n.conn.Close()
		n.conn = nil
	}
}

func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reset()
	return nil
}
