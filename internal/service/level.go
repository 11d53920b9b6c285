package service

import (
	"context"
	"fmt"

	"gamification-service/internal/domain/entity"

	"github.com/google/uuid"
)

// pointsPerLevel is the point cost of each level tier
const pointsPerLevel = 1000

func (s *gamificationService) RecalculateLevel(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if user == nil {
		return nil, nil
	}

	newLevel := user.TotalPoints/pointsPerLevel + 1

	// Monotonic ratchet: levels never decrease, even if points were
	// decremented elsewhere
	if newLevel <= user.Level {
		return nil, nil
	}

	if err := s.userRepo.UpdateLevel(ctx, userID, newLevel); err != nil {
		return nil, fmt.Errorf("failed to persist level: %w", err)
	}

	notification := &entity.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    entity.NotificationTypeAchievement,
		Title:   "Level Up!",
		Message: fmt.Sprintf("Congratulations! You are now level %d", newLevel),
		Data: map[string]any{
			"newLevel": newLevel,
			"oldLevel": user.Level,
		},
		CreatedAt: s.now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create level notification: %w", err)
	}

	user.Level = newLevel
	return user, nil
}
