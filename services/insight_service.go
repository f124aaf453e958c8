package services

import (
	"fmt"

	"github.com/rash6677/kpi-optimisation-dashboard/models"
)

// BuildInsights turns the computed KPIs and category table into the short
// narrative lines shown under the dashboard charts.
func BuildInsights(kpis models.DashboardKPIs, categories []models.CategoryRevenueRow) []string {
	if kpis.NoData {
		return []string{"No orders match the current filters - widen the date range or selections."}
	}

	insights := []string{
		fmt.Sprintf("Revenue performance: total revenue of %.0f from %d orders", kpis.TotalRevenue, kpis.TotalOrders),
	}

	if kpis.AvgOrderValue != nil {
		insights = append(insights, fmt.Sprintf(
			"Customer value: average order value is %.0f with %.1f%% repeat customers",
			*kpis.AvgOrderValue, kpis.RepeatCustomerRate,
		))
	}

	// category table is ascending by revenue, top earner is last
	if len(categories) > 0 {
		insights = append(insights, fmt.Sprintf(
			"Top category: %s generates the highest revenue",
			categories[len(categories)-1].Category,
		))
	}

	insights = append(insights,
		"Growth opportunity: focus on customer retention to improve the repeat rate",
		"Recommendation: run targeted campaigns for the 'At Risk' customer segment",
	)
	return insights
}
