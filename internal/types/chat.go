package types

import (
	"time"

	"github.com/google/uuid"
)

// Chat message roles as stored in history.
const (
	ChatRoleUser   = "user"
	ChatRoleMentor = "mentor"
)

// ChatMessage is one turn of an AI-mentor conversation.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest is a single user message to the AI mentor.
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

// ChatResponse carries the mentor's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
