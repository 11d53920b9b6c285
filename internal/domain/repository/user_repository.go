package repository

import (
	"context"

	"gamification-service/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// GetByID retrieves a user by ID; returns (nil, nil) when absent
	GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// AddPoints atomically increments the user's total points
	AddPoints(ctx context.Context, userID uuid.UUID, delta int32) error

	// UpdateLevel persists a new level for the user
	UpdateLevel(ctx context.Context, userID uuid.UUID, level int32) error
}
