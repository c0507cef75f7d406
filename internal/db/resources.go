package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pruthviraj/career-compass/internal/types"
)

const resourceColumns = `id, title, platform, category, url, description, status, created_at, updated_at`

func scanResource(row pgx.Row) (*types.LearningResource, error) {
	var r types.LearningResource
	err := row.Scan(&r.ID, &r.Title, &r.Platform, &r.Category, &r.URL,
		&r.Description, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateLearningResource inserts a learning resource and returns its ID.
func (db *DB) CreateLearningResource(ctx context.Context, r *types.LearningResource) (uuid.UUID, error) {
	status := r.Status
	if status == "" {
		status = "active"
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO learning_resources (title, platform, category, url, description, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		r.Title, r.Platform, r.Category, r.URL, r.Description, status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create learning resource: %w", err)
	}
	return id, nil
}

// UpsertLearningResource inserts or updates a resource by URL (seeding).
func (db *DB) UpsertLearningResource(ctx context.Context, r *types.LearningResource) error {
	status := r.Status
	if status == "" {
		status = "active"
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO learning_resources (title, platform, category, url, description, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (url) DO UPDATE SET
		   title = $1, platform = $2, category = $3, description = $5,
		   status = $6, updated_at = NOW()`,
		r.Title, r.Platform, r.Category, r.URL, r.Description, status,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert learning resource %q: %w", r.Title, err)
	}
	return nil
}

// GetLearningResource retrieves a resource by ID. Returns nil if not found.
func (db *DB) GetLearningResource(ctx context.Context, id uuid.UUID) (*types.LearningResource, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resourceColumns+` FROM learning_resources WHERE id = $1`, id)
	r, err := scanResource(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get learning resource: %w", err)
	}
	return r, nil
}

// ListLearningResources retrieves resources, optionally filtered by category.
func (db *DB) ListLearningResources(ctx context.Context, category string) ([]types.LearningResource, error) {
	query := `SELECT ` + resourceColumns + ` FROM learning_resources`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at, id`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list learning resources: %w", err)
	}
	defer rows.Close()

	var resources []types.LearningResource
	for rows.Next() {
		r, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan learning resource: %w", err)
		}
		resources = append(resources, *r)
	}
	return resources, rows.Err()
}

// UpdateResourceMetadata stores fetched page metadata on a resource.
func (db *DB) UpdateResourceMetadata(ctx context.Context, id uuid.UUID, title, description string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE learning_resources SET title = COALESCE(NULLIF($1, ''), title),
		   description = $2, updated_at = NOW()
		 WHERE id = $3`,
		title, description, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update resource metadata: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("learning resource not found: %s", id)
	}
	return nil
}
