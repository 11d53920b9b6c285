package entity

import (
	"time"

	"github.com/google/uuid"
)

// HabitCompletion represents a single completion of a habit.
// Completions are immutable once created; the API layer guarantees at most
// one per habit per calendar day.
type HabitCompletion struct {
	ID      uuid.UUID
	HabitID uuid.UUID
	UserID  uuid.UUID

	// Completion details
	CompletedAt time.Time
	Mood        *int32 // 1-5
	Energy      *int32 // 1-5
	Notes       *string

	// Metadata
	CreatedAt time.Time
}
