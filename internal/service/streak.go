package service

import (
	"context"
	"fmt"

	"gamification-service/internal/domain/entity"

	"github.com/google/uuid"
)

// streakWindowDays is the trailing window considered when recalculating
// streaks. Completions older than this cannot affect the rolling streak;
// the persisted longest streak keeps its floor regardless.
const streakWindowDays = 365

func (s *gamificationService) RecalculateStreak(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := s.habitRepo.GetByIDAndUserID(ctx, habitID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load habit: %w", err)
	}

	if habit == nil {
		return nil, nil
	}

	now := s.now()
	since := now.AddDate(0, 0, -streakWindowDays)

	completions, err := s.completionRepo.GetByHabitIDSince(ctx, habitID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}

	completedDays := make(map[string]bool, len(completions))
	for _, c := range completions {
		completedDays[dayKey(c.CompletedAt)] = true
	}

	// Current streak: walk backward from today one calendar day at a time.
	// A day without a completion ends the walk, so a habit not completed
	// today always has a current streak of zero.
	today := truncateToDay(now)
	var currentStreak int32
	for i := 0; i < streakWindowDays; i++ {
		if !completedDays[dayKey(today.AddDate(0, 0, -i))] {
			break
		}
		currentStreak++
	}

	// Longest streak: chronological scan. A run continues only when
	// consecutive completions are exactly one calendar day apart; same-day
	// duplicates do not extend it.
	var longestStreak, run int32
	var prevDay string
	for _, c := range completions {
		day := truncateToDay(c.CompletedAt)
		key := dayKey(day)

		switch {
		case run == 0:
			run = 1
		case key == prevDay:
			// duplicate completion on the same day
		case prevDay == dayKey(day.AddDate(0, 0, -1)):
			run++
		default:
			if run > longestStreak {
				longestStreak = run
			}
			run = 1
		}

		prevDay = key
	}
	if run > longestStreak {
		longestStreak = run
	}

	habit.CurrentStreak = currentStreak
	// The stored longest streak is a monotonic floor: the trailing window
	// may exclude older qualifying runs, so it is never pulled down
	if longestStreak > habit.LongestStreak {
		habit.LongestStreak = longestStreak
	}

	if err := s.habitRepo.UpdateStreaks(ctx, habit.ID, habit.CurrentStreak, habit.LongestStreak); err != nil {
		return nil, fmt.Errorf("failed to persist streaks: %w", err)
	}

	return habit, nil
}
