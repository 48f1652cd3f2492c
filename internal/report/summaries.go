package report

import "github.com/highshiftmedia/crmhub/internal/types"

// PipelineSummary is the composite pipeline board read model.
type PipelineSummary struct {
	Stages         []StageSummary `json:"stages"`
	PipelineValue  float64        `json:"pipelineValue"`
	ClosedRevenue  float64        `json:"closedRevenue"`
	ConversionRate float64        `json:"conversionRate"`
}

// BuildPipeline assembles the pipeline board view.
func BuildPipeline(opps []types.Opportunity) PipelineSummary {
	return PipelineSummary{
		Stages:         StageBreakdown(opps),
		PipelineValue:  PipelineValue(opps),
		ClosedRevenue:  ClosedRevenue(opps),
		ConversionRate: ConversionRate(opps),
	}
}

// FinanceSummary is the composite finance view read model.
type FinanceSummary struct {
	TotalExpenses float64             `json:"totalExpenses"`
	AdSpend       float64             `json:"adSpend"`
	Categories    []CategoryShare     `json:"categories"`
	Budgets       []BudgetUtilization `json:"budgets"`
}

// BuildFinance assembles the finance view.
func BuildFinance(expenses []types.Expense, budgets []types.Budget) FinanceSummary {
	return FinanceSummary{
		TotalExpenses: TotalExpenses(expenses),
		AdSpend:       AdSpend(expenses),
		Categories:    CategoryShares(expenses),
		Budgets:       BudgetUtilizations(budgets),
	}
}

// ReputationSummary is the review overview read model.
type ReputationSummary struct {
	AverageRating float64 `json:"averageRating"`
	RatedCount    int     `json:"ratedCount"`
	PendingCount  int     `json:"pendingCount"`
	RepliedCount  int     `json:"repliedCount"`
}

// BuildReputation assembles the reputation overview.
func BuildReputation(reviews []types.Review) ReputationSummary {
	s := ReputationSummary{AverageRating: AverageRating(reviews)}
	for _, r := range reviews {
		if r.Rating > 0 {
			s.RatedCount++
		}
		switch r.Status {
		case types.ReviewPending:
			s.PendingCount++
		case types.ReviewReplied:
			s.RepliedCount++
		}
	}
	return s
}

// DashboardSummary is the top-level dashboard read model.
type DashboardSummary struct {
	ClosedRevenue  float64      `json:"closedRevenue"`
	PipelineValue  float64      `json:"pipelineValue"`
	ConversionRate float64      `json:"conversionRate"`
	AdSpend        float64      `json:"adSpend"`
	UnreadMessages int          `json:"unreadMessages"`
	Counts         types.Counts `json:"counts"`
}

// BuildDashboard assembles the dashboard stat cards from a full snapshot.
func BuildDashboard(d *types.Dataset) DashboardSummary {
	var unread int
	for _, m := range d.Messages {
		if m.Unread {
			unread++
		}
	}
	return DashboardSummary{
		ClosedRevenue:  ClosedRevenue(d.Opportunities),
		PipelineValue:  PipelineValue(d.Opportunities),
		ConversionRate: ConversionRate(d.Opportunities),
		AdSpend:        AdSpend(d.Expenses),
		UnreadMessages: unread,
		Counts:         d.Counts(),
	}
}
