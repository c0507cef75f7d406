package matching

import (
	"strings"

	"github.com/pruthviraj/career-compass/internal/types"
)

// educationLadder is the ordinal ladder for education levels, least to most
// demanding. Levels are located by substring containment in either direction
// so display strings like "Bachelor's Degree" resolve correctly.
var educationLadder = []string{"high school", "associate", "bachelor's", "master's", "phd"}

// levelIndex locates a level string on the ladder; first match wins.
// Returns -1 for unrecognized levels.
func levelIndex(level string) int {
	level = strings.ToLower(strings.TrimSpace(level))
	for i, l := range educationLadder {
		if strings.Contains(l, level) || strings.Contains(level, l) {
			return i
		}
	}
	return -1
}

// computeEducationScore compares the user's education level against the
// career's requirement: meeting or exceeding it scores 100, one level below
// scores 50, anything further scores 0. A missing or unrecognized requirement
// defaults to "high school", the least demanding rung, and is always
// satisfied.
func computeEducationScore(userLevel string, required *types.RequiredEducation) float64 {
	requiredLevel := "high school"
	if required != nil && required.Level != "" {
		requiredLevel = required.Level
	}

	// An unrecognized requirement resolves to -1 and is satisfied by any
	// user level, including an unrecognized one.
	userIdx := levelIndex(userLevel)
	reqIdx := levelIndex(requiredLevel)

	switch {
	case userIdx >= reqIdx:
		return 100
	case userIdx >= reqIdx-1:
		return 50
	default:
		return 0
	}
}
