package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pruthviraj/career-compass/internal/types"
)

// scanCareerPath scans one career_paths row. The education requirement and
// learning resources live in JSONB columns; skills and interests in text arrays.
func scanCareerPath(row pgx.Row) (*types.CareerPath, error) {
	var c types.CareerPath
	var educationJSON, resourcesJSON []byte
	err := row.Scan(
		&c.ID, &c.Title, &c.Category, &c.Description,
		&educationJSON, &c.RequiredSkills, &c.RelatedInterests,
		&c.AvgSalary, &c.GrowthOutlook, &c.Demand,
		&resourcesJSON, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(educationJSON) > 0 {
		var edu types.RequiredEducation
		if err := json.Unmarshal(educationJSON, &edu); err == nil {
			c.RequiredEducation = &edu
		}
	}
	if len(resourcesJSON) > 0 {
		_ = json.Unmarshal(resourcesJSON, &c.LearningResources)
	}
	return &c, nil
}

const careerPathColumns = `id, title, category, description,
	required_education, required_skills, related_interests,
	avg_salary, growth_outlook, demand, learning_resources,
	created_at, updated_at`

// CreateCareerPath inserts a catalog entry and returns its ID.
func (db *DB) CreateCareerPath(ctx context.Context, c *types.CareerPath) (uuid.UUID, error) {
	educationJSON, err := json.Marshal(c.RequiredEducation)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal required education: %w", err)
	}
	resourcesJSON, err := json.Marshal(c.LearningResources)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal learning resources: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO career_paths
		 (title, category, description, required_education, required_skills,
		  related_interests, avg_salary, growth_outlook, demand, learning_resources)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		c.Title, c.Category, c.Description, educationJSON, c.RequiredSkills,
		c.RelatedInterests, c.AvgSalary, c.GrowthOutlook, c.Demand, resourcesJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create career path: %w", err)
	}
	return id, nil
}

// UpsertCareerPath inserts a catalog entry or updates the existing one with
// the same title. Used by seeding so reseeding is idempotent.
func (db *DB) UpsertCareerPath(ctx context.Context, c *types.CareerPath) error {
	educationJSON, err := json.Marshal(c.RequiredEducation)
	if err != nil {
		return fmt.Errorf("failed to marshal required education: %w", err)
	}
	resourcesJSON, err := json.Marshal(c.LearningResources)
	if err != nil {
		return fmt.Errorf("failed to marshal learning resources: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO career_paths
		 (title, category, description, required_education, required_skills,
		  related_interests, avg_salary, growth_outlook, demand, learning_resources)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (title) DO UPDATE SET
		   category = $2, description = $3, required_education = $4,
		   required_skills = $5, related_interests = $6, avg_salary = $7,
		   growth_outlook = $8, demand = $9, learning_resources = $10,
		   updated_at = NOW()`,
		c.Title, c.Category, c.Description, educationJSON, c.RequiredSkills,
		c.RelatedInterests, c.AvgSalary, c.GrowthOutlook, c.Demand, resourcesJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert career path %q: %w", c.Title, err)
	}
	return nil
}

// GetCareerPath retrieves a catalog entry by ID. Returns nil if not found.
func (db *DB) GetCareerPath(ctx context.Context, id uuid.UUID) (*types.CareerPath, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+careerPathColumns+` FROM career_paths WHERE id = $1`, id)
	c, err := scanCareerPath(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get career path: %w", err)
	}
	return c, nil
}

// ListCareerPaths retrieves the full catalog in insertion order. The order is
// stable so score ties in recommendations stay deterministic.
func (db *DB) ListCareerPaths(ctx context.Context) ([]types.CareerPath, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+careerPathColumns+` FROM career_paths ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list career paths: %w", err)
	}
	defer rows.Close()

	var careers []types.CareerPath
	for rows.Next() {
		c, err := scanCareerPath(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan career path: %w", err)
		}
		careers = append(careers, *c)
	}
	return careers, rows.Err()
}

// UpdateCareerPath replaces a catalog entry's fields.
func (db *DB) UpdateCareerPath(ctx context.Context, id uuid.UUID, c *types.CareerPath) error {
	educationJSON, err := json.Marshal(c.RequiredEducation)
	if err != nil {
		return fmt.Errorf("failed to marshal required education: %w", err)
	}
	resourcesJSON, err := json.Marshal(c.LearningResources)
	if err != nil {
		return fmt.Errorf("failed to marshal learning resources: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE career_paths SET
		   title = $1, category = $2, description = $3, required_education = $4,
		   required_skills = $5, related_interests = $6, avg_salary = $7,
		   growth_outlook = $8, demand = $9, learning_resources = $10,
		   updated_at = NOW()
		 WHERE id = $11`,
		c.Title, c.Category, c.Description, educationJSON, c.RequiredSkills,
		c.RelatedInterests, c.AvgSalary, c.GrowthOutlook, c.Demand, resourcesJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update career path: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("career path not found: %s", id)
	}
	return nil
}

// DeleteCareerPath removes a catalog entry.
func (db *DB) DeleteCareerPath(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM career_paths WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete career path: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("career path not found: %s", id)
	}
	return nil
}
