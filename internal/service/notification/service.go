package notification

import (
	"context"
	"time"

	"github.com/hatchhr/hatchhr-backend-go/internal/domain/notification"
)

// Service is the feed API for an admin's notifications. Every operation is
// scoped to the authenticated recipient; an entry owned by another admin is
// indistinguishable from a missing one.
type Service struct {
	repo notification.Repository
}

func NewService(repo notification.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the active feed for one admin, newest first, with the unread
// counter. typeFilter narrows by notification type; an empty string means
// all types.
func (s *Service) List(ctx context.Context, recipientID, typeFilter string) (notification.ListResponse, error) {
	var filter *notification.NotificationType
	if typeFilter != "" {
		t := notification.NotificationType(typeFilter)
		if !notification.IsValidType(t) {
			return notification.ListResponse{}, notification.ErrInvalidType
		}
		filter = &t
	}

	items, err := s.repo.ListActiveByRecipient(ctx, recipientID, filter)
	if err != nil {
		return notification.ListResponse{}, err
	}

	unread, err := s.repo.CountUnread(ctx, recipientID)
	if err != nil {
		return notification.ListResponse{}, err
	}

	responses := make([]notification.NotificationResponse, 0, len(items))
	for _, n := range items {
		responses = append(responses, notification.NotificationResponse{
			ID:           n.ID,
			Title:        n.Title,
			Message:      n.Message,
			Type:         n.Type,
			RelatedModel: n.RelatedModel,
			RelatedID:    n.RelatedID,
			IsRead:       n.IsRead,
			ReadAt:       n.ReadAt,
			CreatedAt:    n.CreatedAt,
		})
	}

	return notification.ListResponse{
		Notifications: responses,
		UnreadCount:   unread,
	}, nil
}

// MarkRead is idempotent: re-marking a read entry succeeds and keeps the
// original read timestamp.
func (s *Service) MarkRead(ctx context.Context, id, recipientID string) error {
	return s.repo.MarkRead(ctx, id, recipientID, time.Now())
}

func (s *Service) SoftDelete(ctx context.Context, id, recipientID string) error {
	return s.repo.SoftDelete(ctx, id, recipientID, time.Now())
}
