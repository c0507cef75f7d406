package types

import (
	"time"

	"github.com/google/uuid"
)

// CareerPlan is a saved roadmap snapshot owned by a user.
type CareerPlan struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Roadmap   Roadmap   `json:"roadmap"`
	Progress  []string  `json:"progress"` // milestone IDs marked complete
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePlanRequest saves a generated roadmap for the authenticated user.
type CreatePlanRequest struct {
	Title   string  `json:"title"`
	Roadmap Roadmap `json:"roadmap" validate:"required"`
}

// UpdateProgressRequest replaces the set of completed milestone IDs on a plan.
type UpdateProgressRequest struct {
	Progress []string `json:"progress" validate:"required"`
}
