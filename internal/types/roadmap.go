package types

// Resource is a single learning resource attached to a milestone.
type Resource struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url,omitempty"`
}

// Milestone is one phase of a generated learning roadmap.
type Milestone struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Duration           string     `json:"duration"`
	Skills             []string   `json:"skills"`
	Resources          []Resource `json:"resources"`
	CompletionCriteria []string   `json:"completion_criteria"`
	Order              int        `json:"order"`
}

// Roadmap is the full ordered sequence of milestones from current state to
// job-readiness for a target career.
type Roadmap struct {
	CareerPath             string      `json:"career_path"`
	TotalDuration          string      `json:"total_duration"`
	EstimatedMonths        int         `json:"estimated_months"`
	Milestones             []Milestone `json:"milestones"`
	EstimatedPlacementDate string      `json:"estimated_placement_date"`
	DifficultyLevel        string      `json:"difficulty_level"`
}

// LearnerProfile is the roadmap generator input describing how the user learns.
type LearnerProfile struct {
	ExperienceLevel string   `json:"experience_level"`
	Skills          []string `json:"skills"`
	TimeCommitment  string   `json:"time_commitment"`
	LearningPace    string   `json:"learning_pace,omitempty"`
	CareerTimeline  string   `json:"career_timeline,omitempty"`
}
