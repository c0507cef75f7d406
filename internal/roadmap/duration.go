package roadmap

import (
	"fmt"
	"math"

	"github.com/pruthviraj/career-compass/internal/types"
)

// baseSkillWeeks is the starting duration for one core-skills group before
// profile adjustments.
const baseSkillWeeks = 3.0

// timeMultipliers scales group duration by weekly study time. Unrecognized
// commitment strings fall back to the neutral 1.0.
var timeMultipliers = map[string]float64{
	"Less than 5 hours":  1.5,
	"5–10 hours":         1.2,
	"10–20 hours":        1.0,
	"Full-time learning": 0.7,
}

// skillDuration computes the whole-week duration of one core-skills group for
// the given learner.
func skillDuration(profile types.LearnerProfile) int {
	weeks := baseSkillWeeks
	switch profile.ExperienceLevel {
	case "beginner":
		weeks++
	case "advanced":
		weeks--
	}

	if m, ok := timeMultipliers[profile.TimeCommitment]; ok {
		weeks *= m
	}

	switch profile.LearningPace {
	case "fast":
		weeks *= 0.8
	case "thorough":
		weeks *= 1.2
	}

	return int(math.Ceil(weeks))
}

// adjustForTimeline applies timeline pressure to the summed weeks and clamps
// the result to the 3-24 month window. The clamp is a hard floor/ceiling
// regardless of the computed sum.
func adjustForTimeline(weeks int, careerTimeline string) int {
	adjusted := weeks
	switch careerTimeline {
	case "6months":
		adjusted = int(math.Ceil(float64(weeks) * 0.75))
	case "5years":
		adjusted = int(math.Ceil(float64(weeks) * 1.2))
	}

	if adjusted < minTotalWeeks {
		return minTotalWeeks
	}
	if adjusted > maxTotalWeeks {
		return maxTotalWeeks
	}
	return adjusted
}

// formatDuration renders a week count for display: short plans in weeks,
// medium plans in months, long plans in years.
func formatDuration(weeks int) string {
	months := (weeks + 3) / 4
	switch {
	case months <= 3:
		return fmt.Sprintf("%d weeks", weeks)
	case months < 12:
		return fmt.Sprintf("%d months (%d weeks)", months, weeks)
	default:
		return fmt.Sprintf("%.1f years (%d months)", float64(months)/12, months)
	}
}
