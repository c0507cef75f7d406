// Package roadmap generates phased learning roadmaps from a skill gap.
package roadmap

import (
	"fmt"
	"strings"
	"time"

	"github.com/pruthviraj/career-compass/internal/types"
)

// Fixed phase durations in weeks.
const (
	foundationWeeks = 4
	advancedWeeks   = 6
	projectWeeks    = 4
	interviewWeeks  = 4
)

// coreSkillCap limits how many missing skills the core-skills phases cover;
// the remainder rolls into the advanced specialization phase.
const coreSkillCap = 6

// Total duration bounds in weeks (3 to 24 months).
const (
	minTotalWeeks = 12
	maxTotalWeeks = 96
)

// Clock supplies the current time. Injected so placement dates are
// deterministic in tests.
type Clock func() time.Time

// Generator produces learning roadmaps for a target career.
type Generator struct {
	clock Clock
}

// NewGenerator creates a Generator. A nil clock falls back to time.Now.
func NewGenerator(clock Clock) *Generator {
	if clock == nil {
		clock = time.Now
	}
	return &Generator{clock: clock}
}

// Generate builds an ordered roadmap covering the given missing skills. The
// function is total: an empty skill gap still yields a valid roadmap with the
// always-on project and interview phases.
func (g *Generator) Generate(profile types.LearnerProfile, career types.CareerPath, missingSkills []string) types.Roadmap {
	var milestones []types.Milestone
	totalWeeks := 0
	order := 1

	if profile.ExperienceLevel == "beginner" || len(profile.Skills) < 3 {
		milestones = append(milestones, foundationMilestone(order))
		order++
		totalWeeks += foundationWeeks
	}

	core := missingSkills
	if len(core) > coreSkillCap {
		core = core[:coreSkillCap]
	}
	for i, group := range chunkSkills(core, 2) {
		weeks := skillDuration(profile)
		milestones = append(milestones, coreSkillsMilestone(i+1, group, weeks, career, order))
		order++
		totalWeeks += weeks
	}

	if len(missingSkills) > coreSkillCap {
		milestones = append(milestones, advancedMilestone(missingSkills[coreSkillCap:], order))
		order++
		totalWeeks += advancedWeeks
	}

	milestones = append(milestones, projectsMilestone(order))
	order++
	totalWeeks += projectWeeks

	milestones = append(milestones, interviewMilestone(order))
	totalWeeks += interviewWeeks

	totalWeeks = adjustForTimeline(totalWeeks, profile.CareerTimeline)
	totalMonths := (totalWeeks + 3) / 4

	placement := g.clock().AddDate(0, 0, totalWeeks*7)

	return types.Roadmap{
		CareerPath:             career.Title,
		TotalDuration:          formatDuration(totalWeeks),
		EstimatedMonths:        totalMonths,
		Milestones:             milestones,
		EstimatedPlacementDate: placement.Format("January 2, 2006"),
		DifficultyLevel:        difficultyLevel(profile.ExperienceLevel, len(missingSkills)),
	}
}

func foundationMilestone(order int) types.Milestone {
	return types.Milestone{
		ID:          "foundation",
		Title:       "Build Strong Foundation",
		Description: "Master the fundamentals and core concepts",
		Duration:    fmt.Sprintf("%d weeks", foundationWeeks),
		Skills:      []string{"Programming Basics", "Problem Solving", "Git Basics"},
		Resources: []types.Resource{
			{Title: "CS50 Introduction to Computer Science", Type: "Free Course", URL: "https://cs50.harvard.edu"},
			{Title: "FreeCodeCamp", Type: "Free Platform", URL: "https://www.freecodecamp.org"},
			{Title: "Git & GitHub Crash Course", Type: "YouTube", URL: "https://www.youtube.com/watch?v=RGOj5yH7evk"},
		},
		CompletionCriteria: []string{
			"Complete 20+ coding problems on LeetCode/HackerRank",
			"Build 2 basic projects",
			"Understand Git workflow and version control",
		},
		Order: order,
	}
}

func coreSkillsMilestone(index int, group []string, weeks int, career types.CareerPath, order int) types.Milestone {
	return types.Milestone{
		ID:          fmt.Sprintf("core-skills-%d", index),
		Title:       fmt.Sprintf("Master %s", strings.Join(group, " & ")),
		Description: fmt.Sprintf("Deep dive into %s", strings.Join(group, " and ")),
		Duration:    fmt.Sprintf("%d weeks", weeks),
		Skills:      group,
		Resources:   resourcesForSkills(group, career),
		CompletionCriteria: []string{
			fmt.Sprintf("Complete comprehensive course on %s", group[0]),
			fmt.Sprintf("Build 1-2 projects using %s", strings.Join(group, " and ")),
			"Pass skill assessment or complete certification",
		},
		Order: order,
	}
}

func advancedMilestone(skills []string, order int) types.Milestone {
	return types.Milestone{
		ID:          "advanced-specialization",
		Title:       "Advanced Specialization",
		Description: "Master advanced concepts and specialized skills",
		Duration:    fmt.Sprintf("%d weeks", advancedWeeks),
		Skills:      skills,
		Resources: []types.Resource{
			{Title: "Advanced course in your specialization", Type: "Online Course"},
			{Title: "Industry-specific certifications", Type: "Certification"},
			{Title: "Open source contributions", Type: "Practical"},
		},
		CompletionCriteria: []string{
			"Complete advanced project showcasing expertise",
			"Contribute to 2-3 open source projects",
			"Build impressive portfolio piece",
		},
		Order: order,
	}
}

func projectsMilestone(order int) types.Milestone {
	return types.Milestone{
		ID:          "real-world-projects",
		Title:       "Build Real-World Projects",
		Description: "Apply your skills to create portfolio-worthy projects",
		Duration:    fmt.Sprintf("%d weeks", projectWeeks),
		Skills:      []string{"Full Stack Development", "Project Management", "Best Practices"},
		Resources: []types.Resource{
			{Title: "Project ideas for your domain", Type: "Guide"},
			{Title: "GitHub for portfolio", Type: "Platform", URL: "https://github.com"},
			{Title: "Deploy on Vercel/Netlify", Type: "Platform"},
		},
		CompletionCriteria: []string{
			"Complete 2-3 production-ready projects",
			"Deploy projects with live demos",
			"Write comprehensive documentation",
			"Create professional GitHub profile",
		},
		Order: order,
	}
}

func interviewMilestone(order int) types.Milestone {
	return types.Milestone{
		ID:          "interview-prep",
		Title:       "Interview Preparation",
		Description: "Prepare for technical interviews and job applications",
		Duration:    fmt.Sprintf("%d weeks", interviewWeeks),
		Skills:      []string{"DSA", "System Design", "Behavioral Interview", "Resume Building"},
		Resources: []types.Resource{
			{Title: "LeetCode Premium", Type: "Platform", URL: "https://leetcode.com"},
			{Title: "System Design Primer", Type: "GitHub", URL: "https://github.com/donnemartin/system-design-primer"},
			{Title: "Pramp - Mock Interviews", Type: "Platform", URL: "https://www.pramp.com"},
			{Title: "Resume templates", Type: "Resource"},
		},
		CompletionCriteria: []string{
			"Solve 100+ DSA problems (Easy: 40, Medium: 50, Hard: 10)",
			"Complete 5+ mock interviews",
			"Master 10+ system design patterns",
			"Create ATS-friendly resume",
			"Build LinkedIn profile",
		},
		Order: order,
	}
}

// difficultyLevel labels the roadmap. A large skill gap or a beginner profile
// reads as Beginner regardless of the other signal.
func difficultyLevel(experienceLevel string, missingCount int) string {
	if experienceLevel == "beginner" || missingCount > 8 {
		return "Beginner"
	}
	if experienceLevel == "advanced" && missingCount < 4 {
		return "Advanced"
	}
	return "Intermediate"
}

// chunkSkills splits skills into groups of the given size; the last group may
// be smaller.
func chunkSkills(skills []string, size int) [][]string {
	var chunks [][]string
	for i := 0; i < len(skills); i += size {
		end := i + size
		if end > len(skills) {
			end = len(skills)
		}
		chunks = append(chunks, skills[i:end])
	}
	return chunks
}
