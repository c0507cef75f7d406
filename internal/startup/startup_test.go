package startup

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pruthviraj/career-compass/internal/llm"
	"github.com/pruthviraj/career-compass/internal/types"
)

type fakeLLM struct {
	json  string
	calls int
}

func (f *fakeLLM) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return "", nil
}

func (f *fakeLLM) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.calls++
	return f.json, nil
}

func (f *fakeLLM) Chat(ctx context.Context, system string, history []llm.Turn, message string, tier llm.ModelTier) (string, error) {
	return "", nil
}

func (f *fakeLLM) Close() error { return nil }

type fakeStore struct {
	ideas map[uuid.UUID]*types.StartupIdea
	saved map[uuid.UUID]*types.BusinessPlan
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		ideas: make(map[uuid.UUID]*types.StartupIdea),
		saved: make(map[uuid.UUID]*types.BusinessPlan),
	}
}

func (f *fakeStore) GetStartupIdea(ctx context.Context, id uuid.UUID) (*types.StartupIdea, error) {
	return f.ideas[id], nil
}

func (f *fakeStore) SaveBusinessPlan(ctx context.Context, id uuid.UUID, plan *types.BusinessPlan) error {
	f.saved[id] = plan
	return nil
}

const planJSON = `{
	"executive_summary": "A meal-planning app for busy professionals.",
	"target_audience": ["working parents", "remote workers"],
	"revenue_model": ["monthly subscription"],
	"marketing_strategy": ["content marketing"],
	"financial_projections": [
		{"year": "Year 1", "revenue": "$50k", "expenses": "$80k", "profit": "-$30k"},
		{"year": "Year 2", "revenue": "$250k", "expenses": "$150k", "profit": "$100k"},
		{"year": "Year 3", "revenue": "$800k", "expenses": "$400k", "profit": "$400k"}
	]
}`

func TestGeneratePlan_GeneratesAndPersists(t *testing.T) {
	store := newFakeStore()
	id := uuid.New()
	store.ideas[id] = &types.StartupIdea{ID: id, Title: "MealPlanr", Category: "Consumer", Market: "busy professionals"}

	svc := NewService(&fakeLLM{json: planJSON}, store)

	plan, err := svc.GeneratePlan(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "A meal-planning app for busy professionals.", plan.ExecutiveSummary)
	assert.Len(t, plan.FinancialProjections, 3)
	require.Contains(t, store.saved, id)
	assert.Equal(t, plan, store.saved[id])
}

func TestGeneratePlan_ReturnsCachedPlan(t *testing.T) {
	store := newFakeStore()
	id := uuid.New()
	cached := &types.BusinessPlan{ExecutiveSummary: "already generated"}
	store.ideas[id] = &types.StartupIdea{ID: id, Title: "MealPlanr", BusinessPlan: cached}

	client := &fakeLLM{json: planJSON}
	svc := NewService(client, store)

	plan, err := svc.GeneratePlan(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, cached, plan)
	assert.Zero(t, client.calls, "cached plan must not trigger generation")
}

func TestGeneratePlan_UnknownIdea(t *testing.T) {
	svc := NewService(&fakeLLM{json: planJSON}, newFakeStore())

	_, err := svc.GeneratePlan(context.Background(), uuid.New())
	var notFound *ErrIdeaNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestGeneratePlan_RejectsEmptySummary(t *testing.T) {
	store := newFakeStore()
	id := uuid.New()
	store.ideas[id] = &types.StartupIdea{ID: id, Title: "MealPlanr"}

	svc := NewService(&fakeLLM{json: `{"executive_summary": ""}`}, store)

	_, err := svc.GeneratePlan(context.Background(), id)
	assert.Error(t, err)
	assert.NotContains(t, store.saved, id)
}
