// Package types provides type definitions for structured data used throughout the career-compass system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// RequiredEducation describes the minimum education a career path expects.
type RequiredEducation struct {
	Level  string   `json:"level"`
	Fields []string `json:"fields"`
}

// CareerPath is a catalog entry describing a job role, its requirements and outlook.
// Entries are created and edited by administrators and are immutable during a
// match computation.
type CareerPath struct {
	ID                uuid.UUID          `json:"id"`
	Title             string             `json:"title"`
	Category          string             `json:"category"`
	Description       string             `json:"description"`
	RequiredEducation *RequiredEducation `json:"required_education,omitempty"`
	RequiredSkills    []string           `json:"required_skills"`
	RelatedInterests  []string           `json:"related_interests"`
	AvgSalary         string             `json:"avg_salary"`
	GrowthOutlook     string             `json:"growth_outlook"`
	Demand            string             `json:"demand"`
	LearningResources []Resource         `json:"learning_resources,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// UserProfile is the matcher input, assembled per recommendation request from
// the onboarding form or a persisted user record.
type UserProfile struct {
	EducationLevel string   `json:"education_level"`
	FieldOfStudy   string   `json:"field_of_study"`
	Skills         []string `json:"skills"`
	Interests      []string `json:"interests"`
	StartingFresh  bool     `json:"starting_fresh"`
}

// MatchBreakdown holds the per-factor scores (each 0-100) behind a match score.
type MatchBreakdown struct {
	EducationScore float64 `json:"education_score"`
	FieldScore     float64 `json:"field_score"`
	SkillsScore    float64 `json:"skills_score"`
	InterestsScore float64 `json:"interests_score"`
}

// MatchResult is the scored outcome of comparing one profile against one career.
// MatchingSkills and MissingSkills partition the career's required skills.
type MatchResult struct {
	Career         CareerPath     `json:"career"`
	Score          int            `json:"score"`
	Breakdown      MatchBreakdown `json:"breakdown"`
	MatchingSkills []string       `json:"matching_skills"`
	MissingSkills  []string       `json:"missing_skills"`
}

// CreateCareerRequest represents an admin request to add a career path to the catalog.
type CreateCareerRequest struct {
	Title             string             `json:"title" validate:"required,min=1"`
	Category          string             `json:"category" validate:"required"`
	Description       string             `json:"description"`
	RequiredEducation *RequiredEducation `json:"required_education,omitempty"`
	RequiredSkills    []string           `json:"required_skills"`
	RelatedInterests  []string           `json:"related_interests"`
	AvgSalary         string             `json:"avg_salary"`
	GrowthOutlook     string             `json:"growth_outlook"`
	Demand            string             `json:"demand"`
}
