package repository

import (
	"context"

	"gamification-service/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence.
// This service only creates records; reading and deletion belong to the
// notification API.
type NotificationRepository interface {
	// Create creates a new notification record
	Create(ctx context.Context, notification *entity.Notification) error
}
