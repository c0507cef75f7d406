package types

import (
	"time"

	"github.com/google/uuid"
)

// LearningResource is a catalog entry pointing at an external course or platform.
type LearningResource struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Platform    string    `json:"platform"`
	Category    string    `json:"category"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateResourceRequest represents an admin request to add a learning resource.
type CreateResourceRequest struct {
	Title    string `json:"title" validate:"required,min=1"`
	Platform string `json:"platform"`
	Category string `json:"category"`
	URL      string `json:"url" validate:"required,url"`
}
