package postgres

import (
	"context"
	"fmt"

	"gamification-service/internal/domain/entity"
	"gamification-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type badgeRepository struct {
	pool *pgxpool.Pool
}

// NewBadgeRepository creates a new PostgreSQL badge repository
func NewBadgeRepository(pool *pgxpool.Pool) repository.BadgeRepository {
	return &badgeRepository{pool: pool}
}

func (r *badgeRepository) FindOrCreateByName(ctx context.Context, badge *entity.Badge) (*entity.Badge, error) {
	// The no-op DO UPDATE makes RETURNING yield the surviving row whether
	// this call created it or lost the race to a concurrent insert
	query := `
		INSERT INTO badges (id, name, description, icon, category, rarity, points, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, description, icon, category, rarity, points, created_at
	`

	result := &entity.Badge{}
	err := r.pool.QueryRow(ctx, query,
		badge.ID, badge.Name, badge.Description, badge.Icon,
		badge.Category, badge.Rarity, badge.Points, badge.CreatedAt,
	).Scan(
		&result.ID, &result.Name, &result.Description, &result.Icon,
		&result.Category, &result.Rarity, &result.Points, &result.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to find or create badge: %w", err)
	}

	return result, nil
}

func (r *badgeRepository) UserHasBadge(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM user_badges ub
			JOIN badges b ON b.id = ub.badge_id
			WHERE ub.user_id = $1
			  AND b.name = $2
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user badge: %w", err)
	}

	return exists, nil
}

func (r *badgeRepository) CreateUserBadge(ctx context.Context, userBadge *entity.UserBadge) (bool, error) {
	// Uniqueness on (user_id, badge_id) is enforced by the store; a lost
	// race surfaces as zero rows affected, not an error
	query := `
		INSERT INTO user_badges (id, user_id, badge_id, earned_at, is_equipped)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, badge_id) DO NOTHING
	`

	result, err := r.pool.Exec(ctx, query,
		userBadge.ID, userBadge.UserID, userBadge.BadgeID,
		userBadge.EarnedAt, userBadge.IsEquipped,
	)

	if err != nil {
		return false, fmt.Errorf("failed to create user badge: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *badgeRepository) GetUserBadges(ctx context.Context, userID uuid.UUID) ([]*entity.UserBadge, error) {
	query := `
		SELECT id, user_id, badge_id, earned_at, is_equipped
		FROM user_badges
		WHERE user_id = $1
		ORDER BY earned_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user badges: %w", err)
	}
	defer rows.Close()

	var userBadges []*entity.UserBadge
	for rows.Next() {
		userBadge := &entity.UserBadge{}
		err := rows.Scan(
			&userBadge.ID, &userBadge.UserID, &userBadge.BadgeID,
			&userBadge.EarnedAt, &userBadge.IsEquipped,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user badge: %w", err)
		}
		userBadges = append(userBadges, userBadge)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user badges: %w", err)
	}

	return userBadges, nil
}
