package repository

import (
	"context"

	"gamification-service/internal/domain/entity"

	"github.com/google/uuid"
)

// BadgeRepository defines the interface for the badge catalog and awards
type BadgeRepository interface {
	// FindOrCreateByName returns the catalog badge with the given name,
	// creating it from the provided definition if absent. The name is a
	// unique key: concurrent callers converge on a single row.
	FindOrCreateByName(ctx context.Context, badge *entity.Badge) (*entity.Badge, error)

	// UserHasBadge checks whether the user already holds a badge with
	// the given catalog name
	UserHasBadge(ctx context.Context, userID uuid.UUID, name string) (bool, error)

	// CreateUserBadge inserts the award join row. Returns false without
	// error when a row for (user, badge) already exists.
	CreateUserBadge(ctx context.Context, userBadge *entity.UserBadge) (bool, error)

	// GetUserBadges retrieves all badges earned by a user
	GetUserBadges(ctx context.Context, userID uuid.UUID) ([]*entity.UserBadge, error)
}
