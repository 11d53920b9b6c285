package service

import (
	"context"
	"fmt"
	"time"

	"gamification-service/internal/domain/entity"

	"github.com/google/uuid"
)

// badgeState is the aggregated user state badge predicates evaluate against
type badgeState struct {
	user   *entity.User
	habits []*entity.Habit
	// completions in the trailing 30 days, chronological
	recent []*entity.HabitCompletion
	// completions in the trailing 7 days, chronological
	lastWeek []*entity.HabitCompletion
}

// badgeRule pairs a catalog definition with its award predicate. New badges
// are added here as data, not as new control flow.
type badgeRule struct {
	badge     entity.Badge
	qualifies func(*badgeState) bool
}

var badgeRules = []badgeRule{
	{
		badge: entity.Badge{
			Name:        "Early Bird",
			Description: "Completed a habit before 7 AM",
			Icon:        "🌅",
			Category:    entity.BadgeCategoryTime,
			Rarity:      entity.BadgeRarityCommon,
			Points:      50,
		},
		qualifies: func(st *badgeState) bool {
			for _, c := range st.lastWeek {
				if c.CompletedAt.Hour() < 7 {
					return true
				}
			}
			return false
		},
	},
	{
		badge: entity.Badge{
			Name:        "Consistency King",
			Description: "Maintained a 30-day streak",
			Icon:        "👑",
			Category:    entity.BadgeCategoryConsistency,
			Rarity:      entity.BadgeRarityCommon,
			Points:      50,
		},
		qualifies: func(st *badgeState) bool {
			for _, h := range st.habits {
				if h.CurrentStreak >= 30 {
					return true
				}
			}
			return false
		},
	},
	{
		badge: entity.Badge{
			Name:        "Point Master",
			Description: "Reached 1000 points",
			Icon:        "⭐",
			Category:    entity.BadgeCategoryPoints,
			Rarity:      entity.BadgeRarityCommon,
			Points:      50,
		},
		qualifies: func(st *badgeState) bool {
			return st.user.TotalPoints >= 1000
		},
	},
	{
		badge: entity.Badge{
			Name:        "Weekend Warrior",
			Description: "Completed habits on the weekend",
			Icon:        "💪",
			Category:    entity.BadgeCategoryConsistency,
			Rarity:      entity.BadgeRarityCommon,
			Points:      50,
		},
		qualifies: func(st *badgeState) bool {
			for _, c := range st.lastWeek {
				day := c.CompletedAt.Weekday()
				if day == time.Saturday || day == time.Sunday {
					return true
				}
			}
			return false
		},
	},
}

func (s *gamificationService) EvaluateBadges(ctx context.Context, userID uuid.UUID) ([]*entity.Badge, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if user == nil {
		return nil, nil
	}

	habits, err := s.habitRepo.GetByUserID(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	now := s.now()
	recent, err := s.completionRepo.GetByUserIDSince(ctx, userID, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}

	weekAgo := now.AddDate(0, 0, -7)
	var lastWeek []*entity.HabitCompletion
	for _, c := range recent {
		if !c.CompletedAt.Before(weekAgo) {
			lastWeek = append(lastWeek, c)
		}
	}

	state := &badgeState{
		user:     user,
		habits:   habits,
		recent:   recent,
		lastWeek: lastWeek,
	}

	var awarded []*entity.Badge
	for _, rule := range badgeRules {
		if !rule.qualifies(state) {
			continue
		}

		badge, err := s.awardBadge(ctx, userID, rule.badge)
		if err != nil {
			return awarded, err
		}

		if badge != nil {
			awarded = append(awarded, badge)
		}
	}

	return awarded, nil
}

// awardBadge grants the badge to the user unless already held. A lost race
// on the join-row insert is a silent no-op, never an error.
func (s *gamificationService) awardBadge(ctx context.Context, userID uuid.UUID, def entity.Badge) (*entity.Badge, error) {
	held, err := s.badgeRepo.UserHasBadge(ctx, userID, def.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing badge: %w", err)
	}

	if held {
		return nil, nil
	}

	def.ID = uuid.New()
	def.CreatedAt = s.now()

	badge, err := s.badgeRepo.FindOrCreateByName(ctx, &def)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve badge %q: %w", def.Name, err)
	}

	userBadge := &entity.UserBadge{
		ID:       uuid.New(),
		UserID:   userID,
		BadgeID:  badge.ID,
		EarnedAt: s.now(),
	}

	created, err := s.badgeRepo.CreateUserBadge(ctx, userBadge)
	if err != nil {
		return nil, fmt.Errorf("failed to award badge %q: %w", badge.Name, err)
	}

	if !created {
		// another evaluation got there first
		return nil, nil
	}

	if err := s.userRepo.AddPoints(ctx, userID, badge.Points); err != nil {
		return nil, fmt.Errorf("failed to credit badge points: %w", err)
	}

	notification := &entity.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    entity.NotificationTypeBadgeEarned,
		Title:   "New Badge Unlocked!",
		Message: fmt.Sprintf("Congratulations! You unlocked the %q badge", badge.Name),
		Data: map[string]any{
			"badgeId":   badge.ID.String(),
			"badgeName": badge.Name,
			"badgeIcon": badge.Icon,
		},
		CreatedAt: s.now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create badge notification: %w", err)
	}

	return badge, nil
}
