// Package matching scores career paths against user profiles.
package matching

import (
	"math"
	"strings"

	"github.com/pruthviraj/career-compass/internal/types"
)

// Standard weights for the scoring components
const (
	educationWeight = 0.25
	fieldWeight     = 0.20
	skillsWeight    = 0.30
	interestsWeight = 0.25
)

// Fresh-start weights: skills carry no weight so an empty skill set does not
// drag the ranking; interests drive it instead.
const (
	freshEducationWeight = 0.25
	freshFieldWeight     = 0.25
	freshSkillsWeight    = 0.0
	freshInterestsWeight = 0.50
)

// CalculateCareerMatch scores a single career path against a user profile and
// returns the composite 0-100 score with a per-factor breakdown. The function
// is total: missing or malformed career data resolves to score-reducing
// defaults, never an error. Callers sort results and take the top N.
func CalculateCareerMatch(profile types.UserProfile, career types.CareerPath, startingFresh bool) types.MatchResult {
	eduW, fieldW, skillsW, interestsW := educationWeight, fieldWeight, skillsWeight, interestsWeight
	if startingFresh {
		eduW, fieldW, skillsW, interestsW = freshEducationWeight, freshFieldWeight, freshSkillsWeight, freshInterestsWeight
	}

	educationScore := computeEducationScore(profile.EducationLevel, career.RequiredEducation)
	fieldScore := computeFieldScore(profile.FieldOfStudy, career.RequiredEducation)
	skillsScore, matching, missing := computeSkillsScore(profile.Skills, career.RequiredSkills)
	interestsScore := computeInterestsScore(profile.Interests, career.RelatedInterests)

	total := educationScore*eduW +
		fieldScore*fieldW +
		skillsScore*skillsW +
		interestsScore*interestsW

	return types.MatchResult{
		Career: career,
		Score:  int(math.Round(total)),
		Breakdown: types.MatchBreakdown{
			EducationScore: educationScore,
			FieldScore:     fieldScore,
			SkillsScore:    skillsScore,
			InterestsScore: interestsScore,
		},
		MatchingSkills: matching,
		MissingSkills:  missing,
	}
}

// computeFieldScore gives full credit when the user's field of study overlaps
// an accepted field in either direction, partial credit for declaring any
// field at all, and zero otherwise.
func computeFieldScore(fieldOfStudy string, required *types.RequiredEducation) float64 {
	userField := strings.ToLower(strings.TrimSpace(fieldOfStudy))
	if userField == "" {
		return 0
	}

	if required != nil {
		for _, f := range required.Fields {
			accepted := strings.ToLower(f)
			if strings.Contains(userField, accepted) || strings.Contains(accepted, userField) {
				return 100
			}
		}
	}

	return 20
}

// computeSkillsScore returns the matched-skill ratio (0-100) along with the
// partition of required skills into matching and missing. Skill names compare
// case-insensitively but exact (no stemming or fuzzy matching).
// A career with no required skills scores 0, not 100: no data, no credit.
func computeSkillsScore(userSkills, requiredSkills []string) (float64, []string, []string) {
	userSet := make(map[string]bool, len(userSkills))
	for _, s := range userSkills {
		userSet[strings.ToLower(s)] = true
	}

	matching := make([]string, 0, len(requiredSkills))
	missing := make([]string, 0, len(requiredSkills))
	for _, s := range requiredSkills {
		if userSet[strings.ToLower(s)] {
			matching = append(matching, s)
		} else {
			missing = append(missing, s)
		}
	}

	if len(requiredSkills) == 0 {
		return 0, matching, missing
	}
	return float64(len(matching)) / float64(len(requiredSkills)) * 100, matching, missing
}

// computeInterestsScore returns the matched-interest ratio (0-100) against the
// career's related interest tags.
func computeInterestsScore(userInterests, relatedInterests []string) float64 {
	if len(relatedInterests) == 0 {
		return 0
	}

	userSet := make(map[string]bool, len(userInterests))
	for _, i := range userInterests {
		userSet[strings.ToLower(i)] = true
	}

	matched := 0
	for _, i := range relatedInterests {
		if userSet[strings.ToLower(i)] {
			matched++
		}
	}

	return float64(matched) / float64(len(relatedInterests)) * 100
}
