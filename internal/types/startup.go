package types

import (
	"time"

	"github.com/google/uuid"
)

// FinancialProjection is one year of projected figures in a business plan.
type FinancialProjection struct {
	Year     string `json:"year"`
	Revenue  string `json:"revenue"`
	Expenses string `json:"expenses"`
	Profit   string `json:"profit"`
}

// BusinessPlan is the LLM-generated plan attached to a startup idea.
type BusinessPlan struct {
	ExecutiveSummary     string                `json:"executive_summary"`
	TargetAudience       []string              `json:"target_audience"`
	RevenueModel         []string              `json:"revenue_model"`
	MarketingStrategy    []string              `json:"marketing_strategy"`
	FinancialProjections []FinancialProjection `json:"financial_projections"`
}

// StartupIdea is a catalog entry describing a startup concept users can explore.
type StartupIdea struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Category     string        `json:"category"`
	Difficulty   string        `json:"difficulty"`
	Market       string        `json:"market"`
	Description  string        `json:"description"`
	BusinessPlan *BusinessPlan `json:"business_plan,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
