package roadmap

import (
	"testing"
	"time"

	"github.com/pruthviraj/career-compass/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func dataCareer() types.CareerPath {
	return types.CareerPath{Title: "Data Scientist"}
}

func TestGenerate_AdvancedNoSkillGap(t *testing.T) {
	g := NewGenerator(fixedClock)
	profile := types.LearnerProfile{
		ExperienceLevel: "advanced",
		Skills:          []string{"Python", "SQL", "Statistics"},
	}

	roadmap := g.Generate(profile, dataCareer(), nil)

	// Only the always-on phases remain.
	require.Len(t, roadmap.Milestones, 2)
	assert.Equal(t, "real-world-projects", roadmap.Milestones[0].ID)
	assert.Equal(t, 1, roadmap.Milestones[0].Order)
	assert.Equal(t, "interview-prep", roadmap.Milestones[1].ID)
	assert.Equal(t, 2, roadmap.Milestones[1].Order)

	assert.Equal(t, "Advanced", roadmap.DifficultyLevel)

	// 4+4 weeks clamps up to the 12-week floor.
	assert.Equal(t, "12 weeks", roadmap.TotalDuration)
	assert.Equal(t, 3, roadmap.EstimatedMonths)

	// 12 weeks from Jan 1, 2025.
	assert.Equal(t, "March 26, 2025", roadmap.EstimatedPlacementDate)
}

func TestGenerate_BeginnerWithLargeGap(t *testing.T) {
	g := NewGenerator(fixedClock)
	profile := types.LearnerProfile{ExperienceLevel: "beginner"}
	missing := []string{"Python", "SQL", "Pandas", "Statistics", "Tableau", "Excel", "Spark", "Airflow"}

	roadmap := g.Generate(profile, dataCareer(), missing)

	// Foundation + 3 core groups + advanced specialization + projects + interview.
	require.Len(t, roadmap.Milestones, 7)
	assert.Equal(t, "foundation", roadmap.Milestones[0].ID)
	assert.Equal(t, "core-skills-1", roadmap.Milestones[1].ID)
	assert.Equal(t, []string{"Python", "SQL"}, roadmap.Milestones[1].Skills)
	assert.Equal(t, "Master Python & SQL", roadmap.Milestones[1].Title)
	assert.Equal(t, "advanced-specialization", roadmap.Milestones[4].ID)
	assert.Equal(t, []string{"Spark", "Airflow"}, roadmap.Milestones[4].Skills)
	assert.Equal(t, "interview-prep", roadmap.Milestones[6].ID)

	for i, m := range roadmap.Milestones {
		assert.Equal(t, i+1, m.Order)
	}

	assert.Equal(t, "Beginner", roadmap.DifficultyLevel)

	// foundation 4 + 3 groups of ceil(3+1)=4 + advanced 6 + projects 4 + interview 4 = 30.
	assert.Equal(t, "8 months (30 weeks)", roadmap.TotalDuration)
	assert.Equal(t, 8, roadmap.EstimatedMonths)
}

func TestGenerate_OrdersAreContiguous(t *testing.T) {
	g := NewGenerator(fixedClock)
	profiles := []types.LearnerProfile{
		{ExperienceLevel: "beginner"},
		{ExperienceLevel: "intermediate", Skills: []string{"a", "b", "c"}},
		{ExperienceLevel: "advanced", Skills: []string{"a", "b", "c", "d"}},
	}
	gaps := [][]string{
		nil,
		{"Python"},
		{"Python", "SQL", "Docker"},
		{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
	}

	for _, p := range profiles {
		for _, gap := range gaps {
			roadmap := g.Generate(p, dataCareer(), gap)
			require.NotEmpty(t, roadmap.Milestones)
			for i, m := range roadmap.Milestones {
				assert.Equal(t, i+1, m.Order)
			}
		}
	}
}

func TestGenerate_TotalWithinBounds(t *testing.T) {
	g := NewGenerator(fixedClock)
	profiles := []types.LearnerProfile{
		{ExperienceLevel: "advanced", Skills: []string{"a", "b", "c"}, CareerTimeline: "5years"},
		{ExperienceLevel: "beginner", TimeCommitment: "Less than 5 hours", LearningPace: "thorough"},
		{ExperienceLevel: "beginner", CareerTimeline: "6months"},
	}
	gaps := [][]string{nil, {"Python", "SQL", "Pandas", "Statistics", "Tableau", "Excel", "Spark", "Airflow", "Kafka"}}

	for _, p := range profiles {
		for _, gap := range gaps {
			roadmap := g.Generate(p, dataCareer(), gap)
			weeks := totalWeeksOf(t, roadmap)
			assert.GreaterOrEqual(t, weeks, minTotalWeeks)
			assert.LessOrEqual(t, weeks, maxTotalWeeks)
		}
	}
}

// totalWeeksOf recovers the clamped week total from the placement date.
func totalWeeksOf(t *testing.T, r types.Roadmap) int {
	t.Helper()
	placed, err := time.Parse("January 2, 2006", r.EstimatedPlacementDate)
	require.NoError(t, err)
	return int(placed.Sub(fixedClock()).Hours() / 24 / 7)
}

func TestGenerate_AcceleratedTimelineIsShorter(t *testing.T) {
	g := NewGenerator(fixedClock)
	base := types.LearnerProfile{
		ExperienceLevel: "intermediate",
		Skills:          []string{"HTML", "CSS", "JavaScript"},
	}
	missing := []string{"React", "Node.js", "SQL", "Docker"}

	relaxed := g.Generate(base, dataCareer(), missing)

	base.CareerTimeline = "6months"
	accelerated := g.Generate(base, dataCareer(), missing)

	assert.LessOrEqual(t, totalWeeksOf(t, accelerated), totalWeeksOf(t, relaxed))
}

func TestGenerate_FoundationForSparseSkills(t *testing.T) {
	g := NewGenerator(fixedClock)

	// Not a beginner, but fewer than 3 declared skills still earns the
	// foundation phase.
	profile := types.LearnerProfile{ExperienceLevel: "intermediate", Skills: []string{"Python"}}
	roadmap := g.Generate(profile, dataCareer(), nil)
	assert.Equal(t, "foundation", roadmap.Milestones[0].ID)

	profile.Skills = []string{"Python", "SQL", "Git"}
	roadmap = g.Generate(profile, dataCareer(), nil)
	assert.NotEqual(t, "foundation", roadmap.Milestones[0].ID)
}

func TestDifficultyLevel(t *testing.T) {
	assert.Equal(t, "Beginner", difficultyLevel("beginner", 0))
	assert.Equal(t, "Beginner", difficultyLevel("advanced", 9))
	assert.Equal(t, "Advanced", difficultyLevel("advanced", 3))
	assert.Equal(t, "Intermediate", difficultyLevel("advanced", 4))
	assert.Equal(t, "Intermediate", difficultyLevel("intermediate", 2))
}

func TestChunkSkills(t *testing.T) {
	assert.Nil(t, chunkSkills(nil, 2))
	assert.Equal(t, [][]string{{"a"}}, chunkSkills([]string{"a"}, 2))
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, chunkSkills([]string{"a", "b", "c"}, 2))
}
