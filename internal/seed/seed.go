// Package seed loads catalog data files, validates them against their JSON
// Schemas, and upserts them into the database. Reseeding is idempotent.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pruthviraj/career-compass/internal/schemas"
	"github.com/pruthviraj/career-compass/internal/types"
)

// Store is the persistence surface seeding needs.
type Store interface {
	UpsertCareerPath(ctx context.Context, c *types.CareerPath) error
	UpsertLearningResource(ctx context.Context, r *types.LearningResource) error
	UpsertStartupIdea(ctx context.Context, s *types.StartupIdea) error
}

// Seeder validates and loads catalog seed files.
type Seeder struct {
	store     Store
	dataDir   string
	schemaDir string
	logger    *zap.Logger
}

// NewSeeder creates a seeder reading data from dataDir and schemas from
// schemaDir. An empty schemaDir resolves the repo's schemas/ directory.
func NewSeeder(store Store, dataDir, schemaDir string, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{store: store, dataDir: dataDir, schemaDir: schemaDir, logger: logger}
}

// Run seeds careers, learning resources, and startup ideas. Files missing
// from the data directory are skipped with a log line.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedCareers(ctx); err != nil {
		return err
	}
	if err := s.seedResources(ctx); err != nil {
		return err
	}
	return s.seedStartups(ctx)
}

func (s *Seeder) seedCareers(ctx context.Context) error {
	var careers []types.CareerPath
	ok, err := s.loadValidated("careers.json", "careers.schema.json", &careers)
	if err != nil || !ok {
		return err
	}

	for i := range careers {
		if err := s.store.UpsertCareerPath(ctx, &careers[i]); err != nil {
			return err
		}
	}
	s.logger.Info("seeded career paths", zap.Int("count", len(careers)))
	return nil
}

func (s *Seeder) seedResources(ctx context.Context) error {
	var resources []types.LearningResource
	ok, err := s.loadValidated("resources.json", "resources.schema.json", &resources)
	if err != nil || !ok {
		return err
	}

	for i := range resources {
		if err := s.store.UpsertLearningResource(ctx, &resources[i]); err != nil {
			return err
		}
	}
	s.logger.Info("seeded learning resources", zap.Int("count", len(resources)))
	return nil
}

func (s *Seeder) seedStartups(ctx context.Context) error {
	var ideas []types.StartupIdea
	ok, err := s.loadValidated("startups.json", "startups.schema.json", &ideas)
	if err != nil || !ok {
		return err
	}

	for i := range ideas {
		if err := s.store.UpsertStartupIdea(ctx, &ideas[i]); err != nil {
			return err
		}
	}
	s.logger.Info("seeded startup ideas", zap.Int("count", len(ideas)))
	return nil
}

// loadValidated reads a data file, validates it against its schema, and
// unmarshals into out. Returns false with no error when the file is absent.
func (s *Seeder) loadValidated(dataFile, schemaFile string, out any) (bool, error) {
	dataPath := filepath.Join(s.dataDir, dataFile)
	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		s.logger.Info("seed file not found, skipping", zap.String("file", dataPath))
		return false, nil
	}

	schemaPath := s.schemaPath(schemaFile)
	if schemaPath == "" {
		return false, fmt.Errorf("schema file not found: %s", schemaFile)
	}

	if err := schemas.ValidateFile(schemaPath, dataPath); err != nil {
		return false, fmt.Errorf("seed file %s failed validation: %w", dataFile, err)
	}

	data, err := os.ReadFile(dataPath)
	if err != nil {
		return false, fmt.Errorf("failed to read seed file %s: %w", dataPath, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to parse seed file %s: %w", dataPath, err)
	}
	return true, nil
}

func (s *Seeder) schemaPath(schemaFile string) string {
	if s.schemaDir != "" {
		path := filepath.Join(s.schemaDir, schemaFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}
	return schemas.ResolvePath(filepath.Join("schemas", schemaFile))
}
