package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	NotificationTypeBadgeEarned    NotificationType = "BADGE_EARNED"
	NotificationTypeAchievement    NotificationType = "ACHIEVEMENT"
	NotificationTypeStreakReminder NotificationType = "STREAK_REMINDER"
)

// Notification is a record created as a side effect of gamification events.
// Read/deletion lifecycle is owned by the notification API, not this service.
type Notification struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Type    NotificationType
	Title   string
	Message string
	Data    map[string]any // opaque structured payload, stored as JSON
	IsRead  bool

	CreatedAt time.Time
}
