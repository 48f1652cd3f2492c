// Package report computes the derived aggregation views: pure functions
// over collection snapshots, recomputed from scratch on every query.
// Nothing here mutates state or caches results; the collections are small
// enough that a linear pass is always fine.
package report

import "github.com/highshiftmedia/crmhub/internal/types"

// OverBudgetThresholdPercent is the unclamped utilization percentage
// above which a budget line is flagged.
const OverBudgetThresholdPercent = 90.0

// leadValueAssumption is the fixed per-lead dollar value behind the
// campaign ROI figure. A placeholder formula, not a financial model.
const leadValueAssumption = 150.0

// PipelineValue sums opportunity values still in play (stage != Closed).
func PipelineValue(opps []types.Opportunity) float64 {
	var total float64
	for _, o := range opps {
		if o.Stage != types.StageClosed {
			total += o.Value
		}
	}
	return total
}

// ClosedRevenue sums opportunity values in the Closed stage.
func ClosedRevenue(opps []types.Opportunity) float64 {
	var total float64
	for _, o := range opps {
		if o.Stage == types.StageClosed {
			total += o.Value
		}
	}
	return total
}

// ConversionRate returns closed opportunities as a percentage of all
// opportunities, 0 when there are none.
func ConversionRate(opps []types.Opportunity) float64 {
	if len(opps) == 0 {
		return 0
	}
	var closed int
	for _, o := range opps {
		if o.Stage == types.StageClosed {
			closed++
		}
	}
	return float64(closed) / float64(len(opps)) * 100
}

// StageSummary is one pipeline column: its opportunities and their value.
type StageSummary struct {
	Stage string  `json:"stage"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// StageBreakdown groups opportunities into pipeline columns in display
// order.
func StageBreakdown(opps []types.Opportunity) []StageSummary {
	out := make([]StageSummary, 0, len(types.OpportunityStages))
	for _, stage := range types.OpportunityStages {
		s := StageSummary{Stage: stage}
		for _, o := range opps {
			if string(o.Stage) == stage {
				s.Count++
				s.Value += o.Value
			}
		}
		out = append(out, s)
	}
	return out
}

// TotalExpenses sums all expense amounts.
func TotalExpenses(expenses []types.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// AdSpend sums expenses in the Marketing category.
func AdSpend(expenses []types.Expense) float64 {
	var total float64
	for _, e := range expenses {
		if e.Category == types.ExpenseMarketing {
			total += e.Amount
		}
	}
	return total
}

// CategoryShare is one expense category's subtotal and its share of all
// expenses.
type CategoryShare struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Share    float64 `json:"share"`
}

// CategoryShares computes the per-category expense breakdown. Shares are
// percentages of the overall total, 0 when there are no expenses.
func CategoryShares(expenses []types.Expense) []CategoryShare {
	total := TotalExpenses(expenses)
	out := make([]CategoryShare, 0, len(types.ExpenseCategories))
	for _, cat := range types.ExpenseCategories {
		var subtotal float64
		for _, e := range expenses {
			if string(e.Category) == cat {
				subtotal += e.Amount
			}
		}
		share := 0.0
		if total > 0 {
			share = subtotal / total * 100
		}
		out = append(out, CategoryShare{Category: cat, Total: subtotal, Share: share})
	}
	return out
}

// BudgetUtilization is the spend position of one departmental budget.
// Percent is clamped to 100 for display; OverBudget uses the unclamped
// ratio against the threshold.
type BudgetUtilization struct {
	Department string  `json:"department"`
	Month      string  `json:"month"`
	Allocated  float64 `json:"allocated"`
	Actual     float64 `json:"actual"`
	Percent    float64 `json:"percent"`
	OverBudget bool    `json:"overBudget"`
}

// BudgetUtilizations computes utilization for every budget line. A zero
// allocation with actual spend counts as fully utilized and over budget.
func BudgetUtilizations(budgets []types.Budget) []BudgetUtilization {
	out := make([]BudgetUtilization, 0, len(budgets))
	for _, b := range budgets {
		u := BudgetUtilization{
			Department: b.Department,
			Month:      b.Month,
			Allocated:  b.Allocated,
			Actual:     b.Actual,
		}
		if b.Allocated > 0 {
			ratio := b.Actual / b.Allocated * 100
			u.Percent = min(ratio, 100)
			u.OverBudget = ratio > OverBudgetThresholdPercent
		} else if b.Actual > 0 {
			u.Percent = 100
			u.OverBudget = true
		}
		out = append(out, u)
	}
	return out
}

// CostPerLead returns budget divided by leads, 0 when there are no leads.
func CostPerLead(c types.MarketingCampaign) float64 {
	if c.Leads == 0 {
		return 0
	}
	return c.Budget / float64(c.Leads)
}

// ROI returns (leads x 150) / budget, 0 when the budget is 0.
func ROI(c types.MarketingCampaign) float64 {
	if c.Budget == 0 {
		return 0
	}
	return float64(c.Leads) * leadValueAssumption / c.Budget
}

// CampaignMetrics is a campaign with its derived figures recomputed from
// budget and leads, so a stale stored copy can never leak into a report.
type CampaignMetrics struct {
	types.MarketingCampaign
	CostPerLead float64 `json:"costPerLead"`
	ROI         float64 `json:"roi"`
}

// CampaignPerformance recomputes cost-per-lead and ROI for each campaign.
func CampaignPerformance(campaigns []types.MarketingCampaign) []CampaignMetrics {
	out := make([]CampaignMetrics, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, CampaignMetrics{
			MarketingCampaign: c,
			CostPerLead:       CostPerLead(c),
			ROI:               ROI(c),
		})
	}
	return out
}

// AverageRating is the mean of ratings greater than zero (pending review
// requests are unrated and excluded). With no rated reviews it returns a
// neutral 5.0 placeholder.
func AverageRating(reviews []types.Review) float64 {
	var sum float64
	var rated int
	for _, r := range reviews {
		if r.Rating > 0 {
			sum += r.Rating
			rated++
		}
	}
	if rated == 0 {
		return 5.0
	}
	return sum / float64(rated)
}
