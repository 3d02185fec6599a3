package notification

import (
	"context"
	"time"
)

// Repository - interface for the notifications table
type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	// ListActiveByRecipient returns non-soft-deleted entries for one
	// admin, newest first. A nil typeFilter means all types.
	ListActiveByRecipient(ctx context.Context, recipientID string, typeFilter *NotificationType) ([]Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
	// MarkRead flips is_read for an entry owned by recipientID. It is
	// idempotent: marking an already-read entry succeeds without change.
	// An entry that does not exist, is deleted, or belongs to another
	// admin yields ErrNotificationNotFound.
	MarkRead(ctx context.Context, id, recipientID string, readAt time.Time) error
	// SoftDelete stamps deleted_at under the same ownership rule.
	SoftDelete(ctx context.Context, id, recipientID string, deletedAt time.Time) error
}
