package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pruthviraj/career-compass/internal/types"
)

const startupColumns = `id, title, category, difficulty, market, description, business_plan, created_at, updated_at`

func scanStartupIdea(row pgx.Row) (*types.StartupIdea, error) {
	var s types.StartupIdea
	var planJSON []byte
	err := row.Scan(&s.ID, &s.Title, &s.Category, &s.Difficulty, &s.Market,
		&s.Description, &planJSON, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(planJSON) > 0 {
		var plan types.BusinessPlan
		if err := json.Unmarshal(planJSON, &plan); err == nil {
			s.BusinessPlan = &plan
		}
	}
	return &s, nil
}

// UpsertStartupIdea inserts or updates an idea by title (seeding).
func (db *DB) UpsertStartupIdea(ctx context.Context, s *types.StartupIdea) error {
	planJSON, err := json.Marshal(s.BusinessPlan)
	if err != nil {
		return fmt.Errorf("failed to marshal business plan: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO startup_ideas (title, category, difficulty, market, description, business_plan)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (title) DO UPDATE SET
		   category = $2, difficulty = $3, market = $4, description = $5,
		   business_plan = $6, updated_at = NOW()`,
		s.Title, s.Category, s.Difficulty, s.Market, s.Description, planJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert startup idea %q: %w", s.Title, err)
	}
	return nil
}

// GetStartupIdea retrieves an idea by ID. Returns nil if not found.
func (db *DB) GetStartupIdea(ctx context.Context, id uuid.UUID) (*types.StartupIdea, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+startupColumns+` FROM startup_ideas WHERE id = $1`, id)
	s, err := scanStartupIdea(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get startup idea: %w", err)
	}
	return s, nil
}

// ListStartupIdeas retrieves ideas, optionally filtered by category.
func (db *DB) ListStartupIdeas(ctx context.Context, category string) ([]types.StartupIdea, error) {
	query := `SELECT ` + startupColumns + ` FROM startup_ideas`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at, id`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list startup ideas: %w", err)
	}
	defer rows.Close()

	var ideas []types.StartupIdea
	for rows.Next() {
		s, err := scanStartupIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan startup idea: %w", err)
		}
		ideas = append(ideas, *s)
	}
	return ideas, rows.Err()
}

// SaveBusinessPlan attaches a generated business plan to an idea.
func (db *DB) SaveBusinessPlan(ctx context.Context, id uuid.UUID, plan *types.BusinessPlan) error {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal business plan: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE startup_ideas SET business_plan = $1, updated_at = NOW() WHERE id = $2`,
		planJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to save business plan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("startup idea not found: %s", id)
	}
	return nil
}
