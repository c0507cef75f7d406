// Package mentor implements the AI career-mentor chat on top of the LLM
// client, with conversation history persisted per user.
package mentor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pruthviraj/career-compass/internal/llm"
	"github.com/pruthviraj/career-compass/internal/prompts"
	"github.com/pruthviraj/career-compass/internal/types"
)

// historyWindow caps how many prior turns are replayed into the model.
const historyWindow = 20

// HistoryStore is the persistence surface the mentor needs.
type HistoryStore interface {
	InsertChatMessage(ctx context.Context, userID uuid.UUID, role, content string) (uuid.UUID, error)
	ListChatHistory(ctx context.Context, userID uuid.UUID, limit int) ([]types.ChatMessage, error)
}

// Service answers user messages in a persistent mentor conversation.
type Service struct {
	client llm.Client
	store  HistoryStore
	system string
}

// NewService creates a mentor service. The system prompt is embedded and
// loaded at construction time.
func NewService(client llm.Client, store HistoryStore) *Service {
	return &Service{
		client: client,
		store:  store,
		system: prompts.MustGet("mentor.json", "system"),
	}
}

// Chat sends one user message to the mentor and returns the reply. Both the
// message and the reply are appended to the user's stored history.
func (s *Service) Chat(ctx context.Context, userID uuid.UUID, message string) (string, error) {
	stored, err := s.store.ListChatHistory(ctx, userID, historyWindow)
	if err != nil {
		return "", fmt.Errorf("failed to load chat history: %w", err)
	}

	history := make([]llm.Turn, 0, len(stored))
	for _, m := range stored {
		role := "user"
		if m.Role == types.ChatRoleMentor {
			role = "model"
		}
		history = append(history, llm.Turn{Role: role, Content: m.Content})
	}

	reply, err := s.client.Chat(ctx, s.system, history, message, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("mentor chat failed: %w", err)
	}

	if _, err := s.store.InsertChatMessage(ctx, userID, types.ChatRoleUser, message); err != nil {
		return "", fmt.Errorf("failed to store user message: %w", err)
	}
	if _, err := s.store.InsertChatMessage(ctx, userID, types.ChatRoleMentor, reply); err != nil {
		return "", fmt.Errorf("failed to store mentor reply: %w", err)
	}

	return reply, nil
}

// History returns the user's conversation in chronological order.
func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]types.ChatMessage, error) {
	messages, err := s.store.ListChatHistory(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	if messages == nil {
		messages = []types.ChatMessage{}
	}
	return messages, nil
}
