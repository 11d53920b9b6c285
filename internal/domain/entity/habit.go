package entity

import (
	"time"

	"github.com/google/uuid"
)

// Habit represents a user's habit together with its cached gamification state.
// CurrentStreak and LongestStreak are derived fields: the streak calculator is
// their sole writer, and LongestStreak never decreases over the habit's lifetime.
type Habit struct {
	ID     uuid.UUID
	UserID uuid.UUID

	// Basic info
	Title       string
	Description *string
	Icon        *string
	Color       *string // HEX color, e.g., "#FF5722"

	// Gamification state
	CurrentStreak    int32
	LongestStreak    int32
	TotalCompletions int32
	Points           int32 // reward credited to the user per completion

	// Metadata
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
