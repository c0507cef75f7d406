package roadmap

import (
	"testing"

	"github.com/pruthviraj/career-compass/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSkillDuration(t *testing.T) {
	// Neutral profile: base 3 weeks.
	assert.Equal(t, 3, skillDuration(types.LearnerProfile{}))

	// Experience shifts the base by a week either way.
	assert.Equal(t, 4, skillDuration(types.LearnerProfile{ExperienceLevel: "beginner"}))
	assert.Equal(t, 2, skillDuration(types.LearnerProfile{ExperienceLevel: "advanced"}))

	// Time commitment multiplies, then ceils: 3 * 1.5 = 4.5 -> 5.
	assert.Equal(t, 5, skillDuration(types.LearnerProfile{TimeCommitment: "Less than 5 hours"}))
	// 3 * 0.7 = 2.1 -> 3.
	assert.Equal(t, 3, skillDuration(types.LearnerProfile{TimeCommitment: "Full-time learning"}))

	// Unrecognized commitment falls back to the neutral multiplier.
	assert.Equal(t, 3, skillDuration(types.LearnerProfile{TimeCommitment: "whenever"}))

	// Pace stacks with commitment: 4 * 1.2 * 1.2 = 5.76 -> 6.
	assert.Equal(t, 6, skillDuration(types.LearnerProfile{
		ExperienceLevel: "beginner",
		TimeCommitment:  "5–10 hours",
		LearningPace:    "thorough",
	}))
	// 3 * 0.8 = 2.4 -> 3.
	assert.Equal(t, 3, skillDuration(types.LearnerProfile{LearningPace: "fast"}))
}

func TestAdjustForTimeline(t *testing.T) {
	// Neutral timeline passes through (within bounds).
	assert.Equal(t, 20, adjustForTimeline(20, ""))
	assert.Equal(t, 20, adjustForTimeline(20, "1year"))

	// Accelerated: ceil(20 * 0.75) = 15. Relaxed: ceil(20 * 1.2) = 24.
	assert.Equal(t, 15, adjustForTimeline(20, "6months"))
	assert.Equal(t, 24, adjustForTimeline(20, "5years"))

	// Hard clamp at both ends.
	assert.Equal(t, minTotalWeeks, adjustForTimeline(8, ""))
	assert.Equal(t, minTotalWeeks, adjustForTimeline(14, "6months")) // ceil(10.5)=11 -> floor
	assert.Equal(t, maxTotalWeeks, adjustForTimeline(90, "5years")) // 108 -> ceiling
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "12 weeks", formatDuration(12))
	assert.Equal(t, "4 months (13 weeks)", formatDuration(13))
	assert.Equal(t, "8 months (30 weeks)", formatDuration(30))
	assert.Equal(t, "11 months (44 weeks)", formatDuration(44))
	assert.Equal(t, "1.0 years (12 months)", formatDuration(48))
	assert.Equal(t, "2.0 years (24 months)", formatDuration(96))
}
