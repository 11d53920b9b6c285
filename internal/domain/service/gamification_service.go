package service

import (
	"context"

	"gamification-service/internal/domain/entity"

	"github.com/google/uuid"
)

// GamificationService defines the interface for the gamification rules engine
type GamificationService interface {
	// RecalculateStreak recomputes the current and longest streak of a
	// habit from its completion history and persists them. Returns
	// (nil, nil) when the habit does not exist for that user.
	RecalculateStreak(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)

	// EvaluateBadges evaluates the badge rule catalog against the user's
	// current state and awards any badge the user qualifies for but does
	// not yet hold. Returns only the badges newly awarded by this call.
	EvaluateBadges(ctx context.Context, userID uuid.UUID) ([]*entity.Badge, error)

	// RecalculateLevel derives the user's level from total points and
	// persists it when it increased. Levels never decrease. Returns
	// (nil, nil) when nothing changed or the user is absent.
	RecalculateLevel(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// EnsureDailyChallenges guarantees today's challenge instances exist,
	// creating the template catalog for today on first call of the day.
	EnsureDailyChallenges(ctx context.Context) ([]*entity.DailyChallenge, error)

	// NotifyStreaksAtRisk scans active habits with a live streak and no
	// completion today and, during the evening window, creates one
	// reminder notification per at-risk habit.
	NotifyStreaksAtRisk(ctx context.Context) ([]*entity.Notification, error)

	// ProcessCompletion runs the full pipeline for a recorded completion:
	// stat and point credit, streak recalculation, badge evaluation,
	// level recalculation.
	ProcessCompletion(ctx context.Context, habitID, userID uuid.UUID) error
}
