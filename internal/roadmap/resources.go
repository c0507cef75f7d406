package roadmap

import "github.com/pruthviraj/career-compass/internal/types"

// maxResourcesPerMilestone caps the combined resource list per milestone.
const maxResourcesPerMilestone = 3

// cannedResources maps well-known skills to a default learning resource.
// Keyed by exact skill name; unknown skills contribute nothing.
var cannedResources = map[string]types.Resource{
	"React":            {Title: "React Official Documentation", Type: "Documentation", URL: "https://react.dev"},
	"Python":           {Title: "Python for Everybody", Type: "Coursera", URL: "https://www.coursera.org/specializations/python"},
	"Node.js":          {Title: "Node.js Complete Guide", Type: "Udemy"},
	"SQL":              {Title: "SQL for Data Science", Type: "Coursera"},
	"Machine Learning": {Title: "Andrew Ng ML Course", Type: "Coursera", URL: "https://www.coursera.org/learn/machine-learning"},
	"Docker":           {Title: "Docker Mastery", Type: "Udemy"},
	"AWS":              {Title: "AWS Certified Solutions Architect", Type: "Certification", URL: "https://aws.amazon.com/certification"},
	"Figma":            {Title: "Figma Tutorial for Beginners", Type: "YouTube"},
}

// resourcesForSkills assembles the resource list for a skill group: up to two
// career-supplied resources first, then one canned resource per skill.
func resourcesForSkills(skills []string, career types.CareerPath) []types.Resource {
	var resources []types.Resource

	supplied := career.LearningResources
	if len(supplied) > 2 {
		supplied = supplied[:2]
	}
	resources = append(resources, supplied...)

	for _, skill := range skills {
		if r, ok := cannedResources[skill]; ok {
			resources = append(resources, r)
		}
	}

	if len(resources) > maxResourcesPerMilestone {
		resources = resources[:maxResourcesPerMilestone]
	}
	return resources
}
