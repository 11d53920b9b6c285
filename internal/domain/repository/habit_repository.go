package repository

import (
	"context"

	"gamification-service/internal/domain/entity"

	"github.com/google/uuid"
)

// HabitRepository defines the interface for habit persistence
type HabitRepository interface {
	// Create creates a new habit
	Create(ctx context.Context, habit *entity.Habit) error

	// GetByID retrieves a habit by ID
	GetByID(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error)

	// GetByIDAndUserID retrieves a habit by ID and user ID; returns
	// (nil, nil) when no matching habit exists
	GetByIDAndUserID(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)

	// GetByUserID retrieves all habits for a user
	GetByUserID(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Habit, error)

	// GetActiveWithStreak retrieves all active habits across all users
	// with a current streak greater than zero
	GetActiveWithStreak(ctx context.Context) ([]*entity.Habit, error)

	// UpdateStreaks persists recalculated streak values for a habit
	UpdateStreaks(ctx context.Context, habitID uuid.UUID, currentStreak, longestStreak int32) error

	// IncrementCompletions atomically increments the completion counter
	IncrementCompletions(ctx context.Context, habitID uuid.UUID, delta int32) error
}
