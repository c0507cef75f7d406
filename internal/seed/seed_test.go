package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pruthviraj/career-compass/internal/types"
)

type fakeStore struct {
	careers   []types.CareerPath
	resources []types.LearningResource
	startups  []types.StartupIdea
}

func (f *fakeStore) UpsertCareerPath(ctx context.Context, c *types.CareerPath) error {
	f.careers = append(f.careers, *c)
	return nil
}

func (f *fakeStore) UpsertLearningResource(ctx context.Context, r *types.LearningResource) error {
	f.resources = append(f.resources, *r)
	return nil
}

func (f *fakeStore) UpsertStartupIdea(ctx context.Context, s *types.StartupIdea) error {
	f.startups = append(f.startups, *s)
	return nil
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const careerSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["title", "category"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"category": {"type": "string"}
		}
	}
}`

func TestRun_SeedsValidData(t *testing.T) {
	dataDir := t.TempDir()
	schemaDir := t.TempDir()
	writeFile(t, schemaDir, "careers.schema.json", careerSchema)
	writeFile(t, dataDir, "careers.json", `[
		{"title": "Data Scientist", "category": "Data Science", "required_skills": ["Python", "SQL"]}
	]`)

	store := &fakeStore{}
	seeder := NewSeeder(store, dataDir, schemaDir, nil)

	require.NoError(t, seeder.Run(context.Background()))
	require.Len(t, store.careers, 1)
	assert.Equal(t, "Data Scientist", store.careers[0].Title)
	assert.Equal(t, []string{"Python", "SQL"}, store.careers[0].RequiredSkills)
	assert.Empty(t, store.resources, "missing resources.json is skipped")
	assert.Empty(t, store.startups, "missing startups.json is skipped")
}

func TestRun_RejectsInvalidData(t *testing.T) {
	dataDir := t.TempDir()
	schemaDir := t.TempDir()
	writeFile(t, schemaDir, "careers.schema.json", careerSchema)
	writeFile(t, dataDir, "careers.json", `[{"title": "Missing Category"}]`)

	store := &fakeStore{}
	seeder := NewSeeder(store, dataDir, schemaDir, nil)

	err := seeder.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
	assert.Empty(t, store.careers)
}

func TestRun_EmptyDataDirIsNoop(t *testing.T) {
	store := &fakeStore{}
	seeder := NewSeeder(store, t.TempDir(), t.TempDir(), nil)

	require.NoError(t, seeder.Run(context.Background()))
	assert.Empty(t, store.careers)
}
