package services

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/learning-service/internal/events"
	"github.com/SAP-F-2025/learning-service/internal/monitoring"
)

// publishEvent never fails the caller; the write it describes has already committed
func publishEvent(ctx context.Context, publisher events.EventPublisher, logger *slog.Logger, event *events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		monitoring.EventPublishFailures.WithLabelValues(event.Type).Inc()
		logger.Error("Failed to publish event", "event_id", event.ID, "type", event.Type, "error", err)
	}
}
