package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamification-service/internal/domain/entity"
	"gamification-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type habitRepository struct {
	pool *pgxpool.Pool
}

// NewHabitRepository creates a new PostgreSQL habit repository
func NewHabitRepository(pool *pgxpool.Pool) repository.HabitRepository {
	return &habitRepository{pool: pool}
}

const habitColumns = `
	id, user_id, title, description, icon, color,
	current_streak, longest_streak, total_completions, points,
	is_active, created_at, updated_at
`

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	habit := &entity.Habit{}
	err := row.Scan(
		&habit.ID, &habit.UserID, &habit.Title, &habit.Description, &habit.Icon, &habit.Color,
		&habit.CurrentStreak, &habit.LongestStreak, &habit.TotalCompletions, &habit.Points,
		&habit.IsActive, &habit.CreatedAt, &habit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return habit, nil
}

func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	query := `
		INSERT INTO habits (
			id, user_id, title, description, icon, color,
			current_streak, longest_streak, total_completions, points,
			is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13
		)
	`

	_, err := r.pool.Exec(ctx, query,
		habit.ID, habit.UserID, habit.Title, habit.Description, habit.Icon, habit.Color,
		habit.CurrentStreak, habit.LongestStreak, habit.TotalCompletions, habit.Points,
		habit.IsActive, habit.CreatedAt, habit.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}

	return nil
}

func (r *habitRepository) GetByID(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error) {
	query := `SELECT` + habitColumns + `FROM habits WHERE id = $1`

	habit, err := scanHabit(r.pool.QueryRow(ctx, query, habitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}

	return habit, nil
}

func (r *habitRepository) GetByIDAndUserID(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	query := `SELECT` + habitColumns + `FROM habits WHERE id = $1 AND user_id = $2`

	habit, err := scanHabit(r.pool.QueryRow(ctx, query, habitID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}

	return habit, nil
}

func (r *habitRepository) GetByUserID(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Habit, error) {
	query := `SELECT` + habitColumns + `FROM habits WHERE user_id = $1`

	if activeOnly {
		query += " AND is_active = TRUE"
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get habits: %w", err)
	}
	defer rows.Close()

	return collectHabits(rows)
}

func (r *habitRepository) GetActiveWithStreak(ctx context.Context) ([]*entity.Habit, error) {
	query := `SELECT` + habitColumns + `
		FROM habits
		WHERE is_active = TRUE
		  AND current_streak > 0
		ORDER BY user_id, created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active habits: %w", err)
	}
	defer rows.Close()

	return collectHabits(rows)
}

func collectHabits(rows pgx.Rows) ([]*entity.Habit, error) {
	var habits []*entity.Habit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, habit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}

	return habits, nil
}

func (r *habitRepository) UpdateStreaks(ctx context.Context, habitID uuid.UUID, currentStreak, longestStreak int32) error {
	query := `
		UPDATE habits SET
			current_streak = $1,
			longest_streak = GREATEST(longest_streak, $2),
			updated_at = $3
		WHERE id = $4
	`

	result, err := r.pool.Exec(ctx, query, currentStreak, longestStreak, time.Now().UTC(), habitID)
	if err != nil {
		return fmt.Errorf("failed to update streaks: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("habit not found")
	}

	return nil
}

func (r *habitRepository) IncrementCompletions(ctx context.Context, habitID uuid.UUID, delta int32) error {
	query := `
		UPDATE habits SET
			total_completions = total_completions + $1,
			updated_at = $2
		WHERE id = $3
	`

	result, err := r.pool.Exec(ctx, query, delta, time.Now().UTC(), habitID)
	if err != nil {
		return fmt.Errorf("failed to increment completions: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("habit not found")
	}

	return nil
}
