package repository

import (
	"context"
	"time"

	"gamification-service/internal/domain/entity"

	"github.com/google/uuid"
)

// HabitCompletionRepository defines the interface for completion persistence
type HabitCompletionRepository interface {
	// Create creates a new habit completion
	Create(ctx context.Context, completion *entity.HabitCompletion) error

	// GetByHabitIDSince retrieves completions for a habit with
	// completed_at >= since, ordered chronologically
	GetByHabitIDSince(ctx context.Context, habitID uuid.UUID, since time.Time) ([]*entity.HabitCompletion, error)

	// GetByUserIDSince retrieves completions for a user with
	// completed_at >= since, ordered chronologically
	GetByUserIDSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.HabitCompletion, error)

	// ExistsForHabitBetween checks whether the habit has any completion
	// with from <= completed_at < to
	ExistsForHabitBetween(ctx context.Context, habitID uuid.UUID, from, to time.Time) (bool, error)

	// CountByHabitID returns the total count of completions for a habit
	CountByHabitID(ctx context.Context, habitID uuid.UUID) (int32, error)
}
