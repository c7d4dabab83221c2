// Package notify implements the notification sink as a structured log.
// Dispatch is best effort: a notification that cannot be delivered is
// logged and dropped, it never aborts the transition that produced it.
package notify

import (
	"context"
	"log/slog"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/ports"
	"freightline/internal/pkg/errs"
)

// SlogNotifier writes every notification to the application log, addressed
// by stakeholder role and aggregate id.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a log-backed notifier.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

var _ ports.Notifier = &SlogNotifier{}

// Notify records the notification. Invalid input is reported to the caller,
// who is expected to drop the error after logging it.
func (n *SlogNotifier) Notify(
	ctx context.Context,
	role ports.Role,
	recipientID kernel.UUID,
	message, eventType string,
	orderID *kernel.UUID,
) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	if eventType == "" {
		return errs.NewValueIsRequiredError("eventType")
	}

	attrs := []any{
		"role", string(role),
		"recipient_id", recipientID.String(),
		"event_type", eventType,
		"message", message,
	}
	if orderID != nil {
		attrs = append(attrs, "order_id", orderID.String())
	}

	n.logger.InfoContext(ctx, "Notification dispatched", attrs...)
	return nil
}
