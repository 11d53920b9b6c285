package postgres

import (
	"context"
	"fmt"
	"time"

	"gamification-service/internal/domain/entity"
	"gamification-service/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type dailyChallengeRepository struct {
	pool *pgxpool.Pool
}

// NewDailyChallengeRepository creates a new PostgreSQL daily challenge repository
func NewDailyChallengeRepository(pool *pgxpool.Pool) repository.DailyChallengeRepository {
	return &dailyChallengeRepository{pool: pool}
}

func (r *dailyChallengeRepository) Create(ctx context.Context, challenge *entity.DailyChallenge) error {
	query := `
		INSERT INTO daily_challenges (id, title, description, type, points, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		challenge.ID, challenge.Title, challenge.Description,
		challenge.Type, challenge.Points, challenge.Date, challenge.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create daily challenge: %w", err)
	}

	return nil
}

func (r *dailyChallengeRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*entity.DailyChallenge, error) {
	query := `
		SELECT id, title, description, type, points, date, created_at
		FROM daily_challenges
		WHERE date >= $1
		  AND date < $2
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily challenges: %w", err)
	}
	defer rows.Close()

	var challenges []*entity.DailyChallenge
	for rows.Next() {
		challenge := &entity.DailyChallenge{}
		err := rows.Scan(
			&challenge.ID, &challenge.Title, &challenge.Description,
			&challenge.Type, &challenge.Points, &challenge.Date, &challenge.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily challenge: %w", err)
		}
		challenges = append(challenges, challenge)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily challenges: %w", err)
	}

	return challenges, nil
}
