// Package recommend ranks the career catalog for a user profile and turns the
// top match's skill gap into a learning roadmap.
package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/pruthviraj/career-compass/internal/matching"
	"github.com/pruthviraj/career-compass/internal/roadmap"
	"github.com/pruthviraj/career-compass/internal/types"
)

// topN is how many ranked matches a recommendation returns.
const topN = 3

// CareerRepository supplies the read-only career catalog. The matcher itself
// never touches storage; the repository is injected here, at the caller.
type CareerRepository interface {
	ListCareerPaths(ctx context.Context) ([]types.CareerPath, error)
	GetCareerPath(ctx context.Context, id uuid.UUID) (*types.CareerPath, error)
}

// Service scores careers against profiles and builds roadmaps.
type Service struct {
	repo      CareerRepository
	generator *roadmap.Generator
}

// NewService creates a recommendation service.
func NewService(repo CareerRepository, generator *roadmap.Generator) *Service {
	return &Service{repo: repo, generator: generator}
}

// Recommend scores every catalog entry against the profile and returns the top
// matches, highest score first. The sort is stable so equal scores preserve
// catalog order.
func (s *Service) Recommend(ctx context.Context, profile types.UserProfile) ([]types.MatchResult, error) {
	careers, err := s.repo.ListCareerPaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list career paths: %w", err)
	}

	results := make([]types.MatchResult, 0, len(careers))
	for _, career := range careers {
		results = append(results, matching.CalculateCareerMatch(profile, career, profile.StartingFresh))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topN {
		results = results[:topN]
	}
	return results, nil
}

// BuildRoadmap generates a roadmap toward the given career, using the match
// computation to derive the missing skills for the profile.
func (s *Service) BuildRoadmap(ctx context.Context, profile types.UserProfile, learner types.LearnerProfile, careerID uuid.UUID) (*types.Roadmap, error) {
	career, err := s.repo.GetCareerPath(ctx, careerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get career path: %w", err)
	}
	if career == nil {
		return nil, &ErrCareerNotFound{CareerID: careerID}
	}

	match := matching.CalculateCareerMatch(profile, *career, profile.StartingFresh)
	generated := s.generator.Generate(learner, *career, match.MissingSkills)
	return &generated, nil
}

// ErrCareerNotFound indicates the requested career path does not exist.
type ErrCareerNotFound struct {
	CareerID uuid.UUID
}

func (e *ErrCareerNotFound) Error() string {
	return fmt.Sprintf("career path not found: %s", e.CareerID)
}
