package notification

import "time"

// NotificationResponse - feed entry as returned to the admin UI
type NotificationResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	Type         NotificationType `json:"type"`
	RelatedModel RelatedModel     `json:"related_model"`
	RelatedID    string           `json:"related_id"`
	IsRead       bool             `json:"is_read"`
	ReadAt       *time.Time       `json:"read_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// ListResponse - feed page plus unread counter
type ListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}
