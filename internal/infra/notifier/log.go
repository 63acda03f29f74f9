package notifier

import (
	"context"
	"log/slog"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/notification"
)

// LogNotifier only records what would have been emailed.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(ctx context.Context, e notification.Event) error {
	n.logger.InfoContext(ctx, "email notification",
		slog.String("notification_id", e.ID),
		slog.String("type", string(e.Type)),
		slog.String("title", e.Title),
	)
	return nil
}
