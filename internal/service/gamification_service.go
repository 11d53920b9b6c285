package service

import (
	"context"
	"fmt"
	"time"

	"gamification-service/internal/domain/repository"
	"gamification-service/internal/domain/service"

	"github.com/google/uuid"
)

type gamificationService struct {
	habitRepo        repository.HabitRepository
	completionRepo   repository.HabitCompletionRepository
	userRepo         repository.UserRepository
	badgeRepo        repository.BadgeRepository
	challengeRepo    repository.DailyChallengeRepository
	notificationRepo repository.NotificationRepository

	// now is the clock source for all date math; tests replace it to
	// simulate arbitrary dates
	now func() time.Time
}

// NewGamificationService creates a new gamification service
func NewGamificationService(
	habitRepo repository.HabitRepository,
	completionRepo repository.HabitCompletionRepository,
	userRepo repository.UserRepository,
	badgeRepo repository.BadgeRepository,
	challengeRepo repository.DailyChallengeRepository,
	notificationRepo repository.NotificationRepository,
) service.GamificationService {
	return &gamificationService{
		habitRepo:        habitRepo,
		completionRepo:   completionRepo,
		userRepo:         userRepo,
		badgeRepo:        badgeRepo,
		challengeRepo:    challengeRepo,
		notificationRepo: notificationRepo,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *gamificationService) ProcessCompletion(ctx context.Context, habitID, userID uuid.UUID) error {
	habit, err := s.habitRepo.GetByIDAndUserID(ctx, habitID, userID)
	if err != nil {
		return fmt.Errorf("failed to load habit: %w", err)
	}

	if habit == nil {
		// Habit deleted between completion and processing; nothing to do
		return nil
	}

	if err := s.habitRepo.IncrementCompletions(ctx, habitID, 1); err != nil {
		return fmt.Errorf("failed to increment completions: %w", err)
	}

	if err := s.userRepo.AddPoints(ctx, userID, habit.Points); err != nil {
		return fmt.Errorf("failed to credit completion points: %w", err)
	}

	// Badge and level evaluation depend on fresh streak and point totals,
	// so the order here matters
	if _, err := s.RecalculateStreak(ctx, habitID, userID); err != nil {
		return fmt.Errorf("failed to recalculate streak: %w", err)
	}

	if _, err := s.EvaluateBadges(ctx, userID); err != nil {
		return fmt.Errorf("failed to evaluate badges: %w", err)
	}

	if _, err := s.RecalculateLevel(ctx, userID); err != nil {
		return fmt.Errorf("failed to recalculate level: %w", err)
	}

	return nil
}

// truncateToDay returns the midnight preceding t, in t's location
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayKey returns the calendar-day key for t (YYYY-MM-DD)
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
