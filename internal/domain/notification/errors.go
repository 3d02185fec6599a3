package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("Notification not found")
	ErrInvalidType          = errors.New("Unknown notification type")
)
