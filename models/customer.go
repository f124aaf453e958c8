package models

import "time"

// Customer segments, ordered by the classification cascade. The rules
// overlap on purpose (a lapsed medium spender is still Medium Value);
// first match wins.
const (
	SegmentHighValue    = "High Value"
	SegmentMediumValue  = "Medium Value"
	SegmentRecentActive = "Recent Active"
	SegmentAtRisk       = "At Risk"
	SegmentRegular      = "Regular"
)

// SegmentOrder lists all segments in cascade order, used for rollup output
// and for validating segment query params.
var SegmentOrder = []string{
	SegmentHighValue,
	SegmentMediumValue,
	SegmentRecentActive,
	SegmentAtRisk,
	SegmentRegular,
}

// CustomerMetrics holds the per-customer lifetime numbers derived from the
// filtered view. DaysSinceLastOrder and therefore Segment depend on the
// evaluation time; they are recomputed on every request, never stored.
type CustomerMetrics struct {
	CustomerID         string    `json:"customer_id"`
	TotalSpent         float64   `json:"total_spent"`
	OrderCount         int       `json:"order_count"`
	AvgOrderValue      float64   `json:"avg_order_value"`
	LastOrder          time.Time `json:"last_order"`
	DaysSinceLastOrder int       `json:"days_since_last_order"`
	Segment            string    `json:"segment"`
}
