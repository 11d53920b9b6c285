package entity

import (
	"time"

	"github.com/google/uuid"
)

// User carries the gamification profile of a platform user.
// Level is derived from TotalPoints; the level calculator is its sole writer
// and only ever moves it upward.
type User struct {
	ID          uuid.UUID
	Username    string
	TotalPoints int32
	Level       int32

	CreatedAt time.Time
	UpdatedAt time.Time
}
