package event

import "github.com/hatchhr/hatchhr-backend-go/internal/domain/notification"

// Kind names a discrete business occurrence that warrants a notification.
type Kind string

const (
	KindLeaveSubmitted Kind = "leave.submitted"
	KindLeaveDecided   Kind = "leave.decided"
	KindSalaryPaid     Kind = "salary.paid"
	KindInventoryLow   Kind = "inventory.low"
	KindGeneral        Kind = "general"
)

// Event is what the workflow engine hands to the dispatcher. HatcheryID is
// the scope the recipient is resolved in; Payload carries the values the
// human-readable title and message are built from.
type Event struct {
	Kind         Kind
	HatcheryID   string
	RelatedModel notification.RelatedModel
	RelatedID    string
	Payload      map[string]string
}

// NotificationType maps an event kind onto the feed's type enum.
func (k Kind) NotificationType() notification.NotificationType {
	switch k {
	case KindLeaveSubmitted, KindLeaveDecided:
		return notification.TypeLeave
	case KindSalaryPaid:
		return notification.TypeSalary
	case KindInventoryLow:
		return notification.TypeInventory
	default:
		return notification.TypeGeneral
	}
}
