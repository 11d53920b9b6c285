package entity

import (
	"time"

	"github.com/google/uuid"
)

// BadgeCategory groups badges in the catalog
type BadgeCategory string

const (
	BadgeCategoryTime        BadgeCategory = "TIME"
	BadgeCategoryConsistency BadgeCategory = "CONSISTENCY"
	BadgeCategoryPoints      BadgeCategory = "POINTS"
)

// BadgeRarity expresses how hard a badge is to earn
type BadgeRarity string

const (
	BadgeRarityCommon    BadgeRarity = "COMMON"
	BadgeRarityRare      BadgeRarity = "RARE"
	BadgeRarityEpic      BadgeRarity = "EPIC"
	BadgeRarityLegendary BadgeRarity = "LEGENDARY"
)

// Badge is a catalog entry for an achievement. Name is the unique key;
// catalog rows are created lazily on first award.
type Badge struct {
	ID          uuid.UUID
	Name        string
	Description string
	Icon        string
	Category    BadgeCategory
	Rarity      BadgeRarity
	Points      int32 // bonus points granted on award

	CreatedAt time.Time
}

// UserBadge is the join row recording that a user earned a badge.
// At most one row exists per (user, badge).
type UserBadge struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BadgeID    uuid.UUID
	EarnedAt   time.Time
	IsEquipped bool
}
