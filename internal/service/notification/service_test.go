package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/hatchhr/hatchhr-backend-go/internal/domain/notification"
	notificationService "github.com/hatchhr/hatchhr-backend-go/internal/service/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNotificationRepo keeps a feed in memory with the same visibility and
// ownership rules the store enforces.
type fakeNotificationRepo struct {
	entries    []notification.Notification
	lastFilter *notification.NotificationType
}

func (f *fakeNotificationRepo) Create(_ context.Context, n notification.Notification) (notification.Notification, error) {
	f.entries = append(f.entries, n)
	return n, nil
}

func (f *fakeNotificationRepo) ListActiveByRecipient(_ context.Context, recipientID string, typeFilter *notification.NotificationType) ([]notification.Notification, error) {
	f.lastFilter = typeFilter
	var out []notification.Notification
	for _, n := range f.entries {
		if n.RecipientID != recipientID || n.IsDeleted() {
			continue
		}
		if typeFilter != nil && n.Type != *typeFilter {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, recipientID string) (int, error) {
	count := 0
	for _, n := range f.entries {
		if n.RecipientID == recipientID && !n.IsRead && !n.IsDeleted() {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id, recipientID string, readAt time.Time) error {
	for i, n := range f.entries {
		if n.ID == id && n.RecipientID == recipientID && !n.IsDeleted() {
			f.entries[i].IsRead = true
			if f.entries[i].ReadAt == nil {
				f.entries[i].ReadAt = &readAt
			}
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) SoftDelete(_ context.Context, id, recipientID string, deletedAt time.Time) error {
	for i, n := range f.entries {
		if n.ID == id && n.RecipientID == recipientID && !n.IsDeleted() {
			f.entries[i].DeletedAt = &deletedAt
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

func seedFeed() *fakeNotificationRepo {
	return &fakeNotificationRepo{entries: []notification.Notification{
		{ID: "ntf-1", RecipientID: "admin-1", Title: "New leave request", Type: notification.TypeLeave},
		{ID: "ntf-2", RecipientID: "admin-1", Title: "Salary paid", Type: notification.TypeSalary, IsRead: true},
		{ID: "ntf-3", RecipientID: "admin-2", Title: "Low stock alert", Type: notification.TypeInventory},
	}}
}

func TestService_List(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("scopes the feed to the recipient", func(t *testing.T) {
		t.Parallel()
		svc := notificationService.NewService(seedFeed())

		feed, err := svc.List(ctx, "admin-1", "")

		require.NoError(t, err)
		assert.Len(t, feed.Notifications, 2)
		assert.Equal(t, 1, feed.UnreadCount)
	})

	t.Run("filters by type", func(t *testing.T) {
		t.Parallel()
		repo := seedFeed()
		svc := notificationService.NewService(repo)

		feed, err := svc.List(ctx, "admin-1", "leave")

		require.NoError(t, err)
		require.Len(t, feed.Notifications, 1)
		assert.Equal(t, "ntf-1", feed.Notifications[0].ID)
		require.NotNil(t, repo.lastFilter)
		assert.Equal(t, notification.TypeLeave, *repo.lastFilter)
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		t.Parallel()
		svc := notificationService.NewService(seedFeed())

		_, err := svc.List(ctx, "admin-1", "gossip")

		require.ErrorIs(t, err, notification.ErrInvalidType)
	})

	t.Run("excludes soft-deleted entries", func(t *testing.T) {
		t.Parallel()
		repo := seedFeed()
		svc := notificationService.NewService(repo)

		require.NoError(t, svc.SoftDelete(ctx, "ntf-1", "admin-1"))

		feed, err := svc.List(ctx, "admin-1", "")
		require.NoError(t, err)
		assert.Len(t, feed.Notifications, 1)
		assert.Equal(t, 0, feed.UnreadCount)
	})
}

func TestService_MarkRead(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("is idempotent and keeps the first read timestamp", func(t *testing.T) {
		t.Parallel()
		repo := seedFeed()
		svc := notificationService.NewService(repo)

		require.NoError(t, svc.MarkRead(ctx, "ntf-1", "admin-1"))
		first := repo.entries[0].ReadAt
		require.NotNil(t, first)

		require.NoError(t, svc.MarkRead(ctx, "ntf-1", "admin-1"))
		assert.Equal(t, first, repo.entries[0].ReadAt)
	})

	t.Run("another admin's entry reads as missing", func(t *testing.T) {
		t.Parallel()
		svc := notificationService.NewService(seedFeed())

		err := svc.MarkRead(ctx, "ntf-3", "admin-1")

		require.ErrorIs(t, err, notification.ErrNotificationNotFound)
	})
}

func TestService_SoftDelete(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("repeated delete reads as missing", func(t *testing.T) {
		t.Parallel()
		svc := notificationService.NewService(seedFeed())

		require.NoError(t, svc.SoftDelete(ctx, "ntf-1", "admin-1"))
		err := svc.SoftDelete(ctx, "ntf-1", "admin-1")

		require.ErrorIs(t, err, notification.ErrNotificationNotFound)
	})

	t.Run("another admin's entry reads as missing", func(t *testing.T) {
		t.Parallel()
		svc := notificationService.NewService(seedFeed())

		err := svc.SoftDelete(ctx, "ntf-3", "admin-1")

		require.ErrorIs(t, err, notification.ErrNotificationNotFound)
	})
}
