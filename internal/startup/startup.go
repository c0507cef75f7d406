// Package startup generates business plans for catalog startup ideas using
// the LLM client. Plans are generated once and cached on the idea.
package startup

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/pruthviraj/career-compass/internal/llm"
	"github.com/pruthviraj/career-compass/internal/prompts"
	"github.com/pruthviraj/career-compass/internal/types"
)

// ErrIdeaNotFound reports a business-plan request for an unknown idea.
type ErrIdeaNotFound struct {
	ID uuid.UUID
}

func (e *ErrIdeaNotFound) Error() string {
	return fmt.Sprintf("startup idea not found: %s", e.ID)
}

// IdeaStore is the persistence surface plan generation needs.
type IdeaStore interface {
	GetStartupIdea(ctx context.Context, id uuid.UUID) (*types.StartupIdea, error)
	SaveBusinessPlan(ctx context.Context, id uuid.UUID, plan *types.BusinessPlan) error
}

// Service generates and caches business plans.
type Service struct {
	client llm.Client
	store  IdeaStore
	prompt string
}

// NewService creates a startup plan service.
func NewService(client llm.Client, store IdeaStore) *Service {
	return &Service{
		client: client,
		store:  store,
		prompt: prompts.MustGet("startup.json", "business-plan"),
	}
}

// GeneratePlan returns the business plan for an idea, generating and
// persisting one on first request.
func (s *Service) GeneratePlan(ctx context.Context, ideaID uuid.UUID) (*types.BusinessPlan, error) {
	idea, err := s.store.GetStartupIdea(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, &ErrIdeaNotFound{ID: ideaID}
	}
	if idea.BusinessPlan != nil {
		return idea.BusinessPlan, nil
	}

	prompt := prompts.Format(s.prompt, map[string]string{
		"Title":       idea.Title,
		"Category":    idea.Category,
		"Market":      idea.Market,
		"Description": idea.Description,
	})

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("failed to generate business plan: %w", err)
	}

	var plan types.BusinessPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse business plan response: %w", err)
	}
	if plan.ExecutiveSummary == "" {
		return nil, fmt.Errorf("business plan response missing executive summary")
	}

	if err := s.store.SaveBusinessPlan(ctx, ideaID, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
