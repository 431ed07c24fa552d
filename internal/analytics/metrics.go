// Package analytics contains the pure downstream metrics computed over the
// aggregate rows the persistence layer returns. Every function here is
// zero-denominator safe: an empty table produces 0, never a division error.
package analytics

// IncomeBySource is one row of the income summary: total amount per source.
type IncomeBySource struct {
	Source string  `json:"source"`
	Total  float64 `json:"total"`
}

// SourceShare is an income row enriched with its share of the overall total.
type SourceShare struct {
	Source  string  `json:"source"`
	Total   float64 `json:"total"`
	Percent float64 `json:"percent"`
}

// InventoryStats is the single-row inventory aggregate.
type InventoryStats struct {
	TotalItems  int64   `json:"total_items"`
	SoldCount   int64   `json:"sold_count"`
	TotalProfit float64 `json:"total_profit"`
	AvgMargin   float64 `json:"avg_margin"`
}

// Insight thresholds. Below half the items sold suggests a pricing problem;
// below 25% margin suggests a sourcing problem; fewer than three income
// sources suggests concentration risk.
const (
	healthySoldRate  = 50.0
	healthyMargin    = 25.0
	minIncomeSources = 3
)

// Insights is the heuristic read on the aggregates.
type Insights struct {
	SoldRate        float64       `json:"sold_rate"`
	UnsoldCount     int64         `json:"unsold_count"`
	IncomeTotal     float64       `json:"income_total"`
	IncomeShares    []SourceShare `json:"income_shares"`
	Growth          string        `json:"growth"`
	Profitability   string        `json:"profitability"`
	Diversification string        `json:"diversification"`
}

// PercentOfTotal returns part/total as a percentage, or 0 when total is 0.
func PercentOfTotal(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// SoldRate returns the percentage of items sold, or 0 for an empty inventory.
func SoldRate(stats InventoryStats) float64 {
	if stats.TotalItems == 0 {
		return 0
	}
	return float64(stats.SoldCount) / float64(stats.TotalItems) * 100
}

// IncomeTotal sums the per-source totals.
func IncomeTotal(rows []IncomeBySource) float64 {
	var total float64
	for _, r := range rows {
		total += r.Total
	}
	return total
}

// IncomeShares annotates each summary row with its percent of the total.
// Shares are 0 when the total is 0 (all-zero or empty summaries).
func IncomeShares(rows []IncomeBySource) []SourceShare {
	total := IncomeTotal(rows)
	shares := make([]SourceShare, 0, len(rows))
	for _, r := range rows {
		shares = append(shares, SourceShare{
			Source:  r.Source,
			Total:   r.Total,
			Percent: PercentOfTotal(r.Total, total),
		})
	}
	return shares
}

// BuildInsights composes the heuristic summary shown on the analytics
// dashboard from the two aggregates.
func BuildInsights(stats InventoryStats, income []IncomeBySource) Insights {
	ins := Insights{
		SoldRate:     SoldRate(stats),
		UnsoldCount:  stats.TotalItems - stats.SoldCount,
		IncomeTotal:  IncomeTotal(income),
		IncomeShares: IncomeShares(income),
	}

	if stats.TotalItems > 0 && ins.SoldRate < healthySoldRate {
		ins.Growth = "Unsold items are piling up. Consider optimizing pricing or expanding to new platforms."
	} else {
		ins.Growth = "Great sales performance! Focus on sourcing more profitable items."
	}

	if stats.AvgMargin < healthyMargin {
		ins.Profitability = "Average margin is below 25%. Consider negotiating better supplier prices or premium pricing strategies."
	} else {
		ins.Profitability = "Excellent profit margins! Maintain current sourcing and pricing strategies."
	}

	if len(income) < minIncomeSources {
		ins.Diversification = "Consider diversifying income streams across Vine, resale, and affiliate marketing."
	} else {
		ins.Diversification = "Good income diversification! Continue balancing multiple revenue sources."
	}

	return ins
}
