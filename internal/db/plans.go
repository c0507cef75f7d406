package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pruthviraj/career-compass/internal/types"
)

const planColumns = `id, user_id, title, roadmap, progress, created_at, updated_at`

func scanPlan(row pgx.Row) (*types.CareerPlan, error) {
	var p types.CareerPlan
	var roadmapJSON []byte
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &roadmapJSON, &p.Progress,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(roadmapJSON, &p.Roadmap); err != nil {
		return nil, fmt.Errorf("failed to decode roadmap snapshot: %w", err)
	}
	if p.Progress == nil {
		p.Progress = []string{}
	}
	return &p, nil
}

// CreatePlan saves a roadmap snapshot for a user and returns the plan ID.
func (db *DB) CreatePlan(ctx context.Context, userID uuid.UUID, title string, roadmap *types.Roadmap) (uuid.UUID, error) {
	roadmapJSON, err := json.Marshal(roadmap)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO career_plans (user_id, title, roadmap, progress)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, title, roadmapJSON, []string{},
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create plan: %w", err)
	}
	return id, nil
}

// GetPlan retrieves a plan by ID. Returns nil if not found.
func (db *DB) GetPlan(ctx context.Context, id uuid.UUID) (*types.CareerPlan, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+planColumns+` FROM career_plans WHERE id = $1`, id)
	p, err := scanPlan(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return p, nil
}

// ListPlansByUser retrieves a user's plans, newest first.
func (db *DB) ListPlansByUser(ctx context.Context, userID uuid.UUID) ([]types.CareerPlan, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+planColumns+` FROM career_plans
		 WHERE user_id = $1 ORDER BY created_at DESC, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []types.CareerPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, *p)
	}
	return plans, rows.Err()
}

// UpdateProgress replaces the completed-milestone set on a plan. The plan must
// belong to the given user.
func (db *DB) UpdateProgress(ctx context.Context, userID, planID uuid.UUID, progress []string) error {
	if progress == nil {
		progress = []string{}
	}
	result, err := db.pool.Exec(ctx,
		`UPDATE career_plans SET progress = $1, updated_at = NOW()
		 WHERE id = $2 AND user_id = $3`,
		progress, planID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("plan not found: %s", planID)
	}
	return nil
}

// DeletePlan removes a plan owned by the given user.
func (db *DB) DeletePlan(ctx context.Context, userID, planID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM career_plans WHERE id = $1 AND user_id = $2`,
		planID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("plan not found: %s", planID)
	}
	return nil
}
