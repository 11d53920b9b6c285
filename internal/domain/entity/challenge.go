package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChallengeType tags a daily challenge template
type ChallengeType string

const (
	ChallengeTypeTripleThreat    ChallengeType = "TRIPLE_THREAT"
	ChallengeTypeWeekendWarrior  ChallengeType = "WEEKEND_WARRIOR"
	ChallengeTypeEarlyBird       ChallengeType = "EARLY_BIRD"
	ChallengeTypeSocialButterfly ChallengeType = "SOCIAL_BUTTERFLY"
)

// DailyChallenge is a challenge instance scoped to a single calendar day.
// Rows are created once per day per type and never mutated; expiry is
// implicit (queries filter on Date).
type DailyChallenge struct {
	ID          uuid.UUID
	Title       string
	Description string
	Type        ChallengeType
	Points      int32
	Date        time.Time // truncated to midnight

	CreatedAt time.Time
}
