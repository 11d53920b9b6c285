package service

import (
	"context"
	"fmt"

	"gamification-service/internal/domain/entity"

	"github.com/google/uuid"
)

// streakRiskHour is the wall-clock hour from which streak reminders fire
const streakRiskHour = 20

func (s *gamificationService) NotifyStreaksAtRisk(ctx context.Context) ([]*entity.Notification, error) {
	now := s.now()

	// Outside the evening window nothing is at risk yet
	if now.Hour() < streakRiskHour {
		return nil, nil
	}

	habits, err := s.habitRepo.GetActiveWithStreak(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active habits: %w", err)
	}

	today := truncateToDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	var notifications []*entity.Notification
	for _, habit := range habits {
		done, err := s.completionRepo.ExistsForHabitBetween(ctx, habit.ID, today, tomorrow)
		if err != nil {
			return notifications, fmt.Errorf("failed to check today's completion: %w", err)
		}

		if done {
			continue
		}

		notification := &entity.Notification{
			ID:      uuid.New(),
			UserID:  habit.UserID,
			Type:    entity.NotificationTypeStreakReminder,
			Title:   "Streak at Risk!",
			Message: fmt.Sprintf("Your %d-day streak for %q is at risk!", habit.CurrentStreak, habit.Title),
			Data: map[string]any{
				"habitId":       habit.ID.String(),
				"habitTitle":    habit.Title,
				"currentStreak": habit.CurrentStreak,
			},
			CreatedAt: now,
		}

		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			return notifications, fmt.Errorf("failed to create streak reminder: %w", err)
		}

		notifications = append(notifications, notification)
	}

	return notifications, nil
}
