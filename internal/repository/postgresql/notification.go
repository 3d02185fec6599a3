package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/notification"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/database"
)

type notificationRepository struct {
	db database.Querier
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db database.Querier) notification.Repository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}

	query := `
		INSERT INTO notifications (id, recipient_id, title, message, type, related_model, related_id, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		n.ID, n.RecipientID, n.Title, n.Message,
		string(n.Type), string(n.RelatedModel), n.RelatedID,
	).Scan(&n.CreatedAt)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	n.IsRead = false
	return n, nil
}

func (r *notificationRepository) ListActiveByRecipient(ctx context.Context, recipientID string, typeFilter *notification.NotificationType) ([]notification.Notification, error) {
	// Soft-deleted entries are excluded here unconditionally; there is no
	// feed view that includes them.
	whereClause := "recipient_id = $1 AND deleted_at IS NULL"
	args := []interface{}{recipientID}

	if typeFilter != nil {
		whereClause += " AND type = $2"
		args = append(args, string(*typeFilter))
	}

	query := fmt.Sprintf(`
		SELECT id, recipient_id, title, message, type, related_model, related_id,
			is_read, read_at, deleted_at, created_at
		FROM notifications
		WHERE %s
		ORDER BY created_at DESC
	`, whereClause)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		var notifType, relatedModel string

		if err := rows.Scan(
			&n.ID, &n.RecipientID, &n.Title, &n.Message, &notifType,
			&relatedModel, &n.RelatedID, &n.IsRead, &n.ReadAt,
			&n.DeletedAt, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		n.Type = notification.NotificationType(notifType)
		n.RelatedModel = notification.RelatedModel(relatedModel)
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE recipient_id = $1 AND is_read = FALSE AND deleted_at IS NULL
	`

	var count int
	if err := r.db.QueryRow(ctx, query, recipientID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkRead matches already-read entries too, so a repeated call succeeds
// without moving read_at.
func (r *notificationRepository) MarkRead(ctx context.Context, id, recipientID string, readAt time.Time) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = COALESCE(read_at, $3)
		WHERE id = $1 AND recipient_id = $2 AND deleted_at IS NULL
	`

	tag, err := r.db.Exec(ctx, query, id, recipientID, readAt)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

func (r *notificationRepository) SoftDelete(ctx context.Context, id, recipientID string, deletedAt time.Time) error {
	query := `
		UPDATE notifications
		SET deleted_at = $3
		WHERE id = $1 AND recipient_id = $2 AND deleted_at IS NULL
	`

	tag, err := r.db.Exec(ctx, query, id, recipientID, deletedAt)
	if err != nil {
		return fmt.Errorf("failed to soft-delete notification: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}
