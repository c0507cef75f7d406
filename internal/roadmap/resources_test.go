package roadmap

import (
	"testing"

	"github.com/pruthviraj/career-compass/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourcesForSkills_CannedLookup(t *testing.T) {
	resources := resourcesForSkills([]string{"Python", "SQL"}, types.CareerPath{})

	require.Len(t, resources, 2)
	assert.Equal(t, "Python for Everybody", resources[0].Title)
	assert.Equal(t, "SQL for Data Science", resources[1].Title)
}

func TestResourcesForSkills_UnknownSkillContributesNothing(t *testing.T) {
	resources := resourcesForSkills([]string{"COBOL", "Python"}, types.CareerPath{})

	require.Len(t, resources, 1)
	assert.Equal(t, "Python for Everybody", resources[0].Title)
}

func TestResourcesForSkills_CareerResourcesFirstAndCapped(t *testing.T) {
	career := types.CareerPath{
		LearningResources: []types.Resource{
			{Title: "Career Course 1", Type: "Course"},
			{Title: "Career Course 2", Type: "Course"},
			{Title: "Career Course 3", Type: "Course"},
		},
	}

	resources := resourcesForSkills([]string{"Python", "SQL"}, career)

	// Two career resources, then canned ones, capped at three total.
	require.Len(t, resources, 3)
	assert.Equal(t, "Career Course 1", resources[0].Title)
	assert.Equal(t, "Career Course 2", resources[1].Title)
	assert.Equal(t, "Python for Everybody", resources[2].Title)
}
