package repository

import (
	"context"
	"time"

	"gamification-service/internal/domain/entity"
)

// DailyChallengeRepository defines the interface for daily challenge persistence
type DailyChallengeRepository interface {
	// Create creates a new daily challenge instance
	Create(ctx context.Context, challenge *entity.DailyChallenge) error

	// GetByDateRange retrieves challenges with from <= date < to
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*entity.DailyChallenge, error)
}
