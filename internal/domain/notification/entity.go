package notification

import "time"

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeLeave      NotificationType = "leave"
	TypeSalary     NotificationType = "salary"
	TypeAttendance NotificationType = "attendance"
	TypeInventory  NotificationType = "inventory"
	TypeGeneral    NotificationType = "general"
)

// AllNotificationTypes returns all available notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		TypeLeave,
		TypeSalary,
		TypeAttendance,
		TypeInventory,
		TypeGeneral,
	}
}

// IsValidType reports whether t is one of the enumerated types.
func IsValidType(t NotificationType) bool {
	for _, known := range AllNotificationTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// RelatedModel tags which collection RelatedID points into. Lookups go
// through an explicit kind-to-store dispatch; the reference is never
// resolved implicitly.
type RelatedModel string

const (
	RelatedEmployee  RelatedModel = "employee"
	RelatedLeave     RelatedModel = "leave"
	RelatedSalary    RelatedModel = "salary"
	RelatedInventory RelatedModel = "inventory"
)

// Notification represents one entry in an admin's feed. Content is
// immutable after creation; only the read flag and the soft-delete
// timestamp ever change.
type Notification struct {
	ID          string
	RecipientID string
	Title       string
	Message     string
	Type        NotificationType

	RelatedModel RelatedModel
	RelatedID    string

	IsRead    bool
	ReadAt    *time.Time
	DeletedAt *time.Time
	CreatedAt time.Time
}

// IsDeleted reports whether the entry has been removed from the feed.
func (n Notification) IsDeleted() bool {
	return n.DeletedAt != nil
}
