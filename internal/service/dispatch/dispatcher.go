package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/hatchhr/hatchhr-backend-go/internal/domain/event"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/notification"
)

// ErrUnroutableEvent means no recipient admin could be resolved for an
// event. The triggering caller decides whether to proceed without a
// notification or abort.
var ErrUnroutableEvent = errors.New("No recipient admin for event")

// RecipientResolver resolves the admin who receives the notification for an
// event. Injected so the dispatcher stays testable without a live store.
type RecipientResolver func(ctx context.Context, e event.Event) (string, error)

// Dispatcher translates workflow events into feed notifications. It creates
// exactly one notification per dispatched event and never deduplicates;
// idempotency is the workflow engine's responsibility.
type Dispatcher struct {
	repo    notification.Repository
	resolve RecipientResolver
}

func NewDispatcher(repo notification.Repository, resolve RecipientResolver) *Dispatcher {
	return &Dispatcher{repo: repo, resolve: resolve}
}

func (d *Dispatcher) Dispatch(ctx context.Context, e event.Event) (notification.Notification, error) {
	recipientID, err := d.resolve(ctx, e)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("%w: %v", ErrUnroutableEvent, err)
	}
	if recipientID == "" {
		return notification.Notification{}, ErrUnroutableEvent
	}

	title, message := compose(e)

	created, err := d.repo.Create(ctx, notification.Notification{
		RecipientID:  recipientID,
		Title:        title,
		Message:      message,
		Type:         e.Kind.NotificationType(),
		RelatedModel: e.RelatedModel,
		RelatedID:    e.RelatedID,
	})
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to store notification: %w", err)
	}

	return created, nil
}

// compose derives the human-readable title and message from the event kind
// and payload.
func compose(e event.Event) (string, string) {
	p := e.Payload
	switch e.Kind {
	case event.KindLeaveSubmitted:
		return "New leave request",
			fmt.Sprintf("%s requested leave from %s to %s: %s",
				p["employee_name"], p["start_date"], p["end_date"], p["reason"])
	case event.KindLeaveDecided:
		msg := fmt.Sprintf("Leave request of %s was %s", p["employee_name"], p["decision"])
		if p["comments"] != "" {
			msg += ": " + p["comments"]
		}
		return "Leave request " + p["decision"], msg
	case event.KindSalaryPaid:
		return "Salary paid",
			fmt.Sprintf("Salary for %s (%s/%s) paid, net %s",
				p["employee_name"], p["month"], p["year"], p["net_amount"])
	case event.KindInventoryLow:
		return "Low stock alert",
			fmt.Sprintf("%s is running low: %s %s left (threshold %s)",
				p["item_name"], p["quantity"], p["unit"], p["threshold"])
	default:
		title := p["title"]
		if title == "" {
			title = "Notification"
		}
		return title, p["message"]
	}
}
