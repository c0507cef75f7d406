package types

import "github.com/google/uuid"

// RecommendationRequest carries the onboarding profile to score against the
// career catalog.
type RecommendationRequest struct {
	Profile UserProfile `json:"profile"`
}

// RecommendationResponse returns the top-ranked matches, highest score first.
type RecommendationResponse struct {
	Matches []MatchResult `json:"matches"`
}

// RoadmapRequest asks for a learning roadmap toward a specific career.
type RoadmapRequest struct {
	CareerID uuid.UUID      `json:"career_id" validate:"required"`
	Profile  UserProfile    `json:"profile"`
	Learner  LearnerProfile `json:"learner"`
}
