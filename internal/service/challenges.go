package service

import (
	"context"
	"fmt"

	"gamification-service/internal/domain/entity"

	"github.com/google/uuid"
)

// challengeTemplates is the fixed catalog stamped out once per calendar day
var challengeTemplates = []entity.DailyChallenge{
	{
		Title:       "Triple Threat",
		Description: "Complete 3 habits before noon",
		Type:        entity.ChallengeTypeTripleThreat,
		Points:      100,
	},
	{
		Title:       "Weekend Warrior",
		Description: "Keep up all your habits this weekend",
		Type:        entity.ChallengeTypeWeekendWarrior,
		Points:      150,
	},
	{
		Title:       "Early Bird Special",
		Description: "Complete a habit before 7 AM",
		Type:        entity.ChallengeTypeEarlyBird,
		Points:      75,
	},
	{
		Title:       "Social Butterfly",
		Description: "Complete a habit with a friend",
		Type:        entity.ChallengeTypeSocialButterfly,
		Points:      125,
	},
}

func (s *gamificationService) EnsureDailyChallenges(ctx context.Context) ([]*entity.DailyChallenge, error) {
	today := truncateToDay(s.now())
	tomorrow := today.AddDate(0, 0, 1)

	existing, err := s.challengeRepo.GetByDateRange(ctx, today, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's challenges: %w", err)
	}

	// Any rows for today mean the day is already seeded
	if len(existing) > 0 {
		return existing, nil
	}

	created := make([]*entity.DailyChallenge, 0, len(challengeTemplates))
	for _, tmpl := range challengeTemplates {
		challenge := &entity.DailyChallenge{
			ID:          uuid.New(),
			Title:       tmpl.Title,
			Description: tmpl.Description,
			Type:        tmpl.Type,
			Points:      tmpl.Points,
			Date:        today,
			CreatedAt:   s.now(),
		}

		if err := s.challengeRepo.Create(ctx, challenge); err != nil {
			return nil, fmt.Errorf("failed to create challenge %q: %w", tmpl.Title, err)
		}

		created = append(created, challenge)
	}

	return created, nil
}
