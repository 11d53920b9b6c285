package postgres

import (
	"context"
	"fmt"
	"time"

	"gamification-service/internal/domain/entity"
	"gamification-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type habitCompletionRepository struct {
	pool *pgxpool.Pool
}

// NewHabitCompletionRepository creates a new PostgreSQL habit completion repository
func NewHabitCompletionRepository(pool *pgxpool.Pool) repository.HabitCompletionRepository {
	return &habitCompletionRepository{pool: pool}
}

func (r *habitCompletionRepository) Create(ctx context.Context, completion *entity.HabitCompletion) error {
	query := `
		INSERT INTO habit_completions (
			id, habit_id, user_id, completed_at, mood, energy, notes, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.pool.Exec(ctx, query,
		completion.ID,
		completion.HabitID,
		completion.UserID,
		completion.CompletedAt,
		completion.Mood,
		completion.Energy,
		completion.Notes,
		completion.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create habit completion: %w", err)
	}

	return nil
}

func (r *habitCompletionRepository) GetByHabitIDSince(ctx context.Context, habitID uuid.UUID, since time.Time) ([]*entity.HabitCompletion, error) {
	query := `
		SELECT id, habit_id, user_id, completed_at, mood, energy, notes, created_at
		FROM habit_completions
		WHERE habit_id = $1
		  AND completed_at >= $2
		ORDER BY completed_at ASC
	`

	rows, err := r.pool.Query(ctx, query, habitID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get habit completions: %w", err)
	}
	defer rows.Close()

	return collectCompletions(rows)
}

func (r *habitCompletionRepository) GetByUserIDSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.HabitCompletion, error) {
	query := `
		SELECT id, habit_id, user_id, completed_at, mood, energy, notes, created_at
		FROM habit_completions
		WHERE user_id = $1
		  AND completed_at >= $2
		ORDER BY completed_at ASC
	`

	rows, err := r.pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get user completions: %w", err)
	}
	defer rows.Close()

	return collectCompletions(rows)
}

func collectCompletions(rows pgx.Rows) ([]*entity.HabitCompletion, error) {
	var completions []*entity.HabitCompletion
	for rows.Next() {
		completion := &entity.HabitCompletion{}
		err := rows.Scan(
			&completion.ID,
			&completion.HabitID,
			&completion.UserID,
			&completion.CompletedAt,
			&completion.Mood,
			&completion.Energy,
			&completion.Notes,
			&completion.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		completions = append(completions, completion)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate completions: %w", err)
	}

	return completions, nil
}

func (r *habitCompletionRepository) ExistsForHabitBetween(ctx context.Context, habitID uuid.UUID, from, to time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM habit_completions
			WHERE habit_id = $1
			  AND completed_at >= $2
			  AND completed_at < $3
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, habitID, from, to).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check completion existence: %w", err)
	}

	return exists, nil
}

func (r *habitCompletionRepository) CountByHabitID(ctx context.Context, habitID uuid.UUID) (int32, error) {
	query := `SELECT COUNT(*) FROM habit_completions WHERE habit_id = $1`

	var count int32
	if err := r.pool.QueryRow(ctx, query, habitID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count completions: %w", err)
	}

	return count, nil
}
