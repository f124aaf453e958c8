package services

import (
	"sort"
	"time"

	"github.com/rash6677/kpi-optimisation-dashboard/models"
)

// SegmentCustomer classifies one customer through the ordered rule cascade.
// First match wins; the rules deliberately overlap (a lapsed big spender is
// still Medium Value, not At Risk), so the order here is load-bearing.
func SegmentCustomer(m models.CustomerMetrics) string {
	switch {
	case m.TotalSpent >= 5000 && m.OrderCount >= 5:
		return models.SegmentHighValue
	case m.TotalSpent >= 2000 && m.OrderCount >= 3:
		return models.SegmentMediumValue
	case m.DaysSinceLastOrder <= 30:
		return models.SegmentRecentActive
	case m.DaysSinceLastOrder > 90:
		return models.SegmentAtRisk
	default:
		return models.SegmentRegular
	}
}

// BuildCustomerMetrics rolls the filtered view up to one row per distinct
// customer and classifies each row. The caller passes evaluation-time "now"
// explicitly: days-since-last-order is a wall-clock fact, so the same
// customer may legitimately land in a different segment tomorrow.
// Output is sorted by customer id so identical input gives identical output.
func BuildCustomerMetrics(orders []models.Order, now time.Time) []models.CustomerMetrics {
	keys, groups := groupOrders(orders, func(o models.Order) string {
		return o.CustomerID
	})

	metrics := make([]models.CustomerMetrics, 0, len(keys))
	for _, customerID := range keys {
		bucket := groups[customerID]

		m := models.CustomerMetrics{
			CustomerID: customerID,
			OrderCount: len(bucket),
		}
		for _, o := range bucket {
			m.TotalSpent += o.FinalPrice
			if o.OrderDate.After(m.LastOrder) {
				m.LastOrder = o.OrderDate
			}
		}
		m.AvgOrderValue = m.TotalSpent / float64(len(bucket))
		m.DaysSinceLastOrder = int(now.Sub(m.LastOrder).Hours() / 24)
		m.Segment = SegmentCustomer(m)

		metrics = append(metrics, m)
	}

	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].CustomerID < metrics[j].CustomerID
	})
	return metrics
}

// SegmentSummary rolls customer metrics up per segment: customer count and
// the means of total spent, order count and average order value. Segments
// without customers are omitted; present ones come back in cascade order.
func SegmentSummary(metrics []models.CustomerMetrics) []models.SegmentSummaryRow {
	type acc struct {
		count      int
		totalSpent float64
		orderCount int
		avgValue   float64
	}
	buckets := make(map[string]*acc)
	for _, m := range metrics {
		a, ok := buckets[m.Segment]
		if !ok {
			a = &acc{}
			buckets[m.Segment] = a
		}
		a.count++
		a.totalSpent += m.TotalSpent
		a.orderCount += m.OrderCount
		a.avgValue += m.AvgOrderValue
	}

	rows := make([]models.SegmentSummaryRow, 0, len(buckets))
	for _, segment := range models.SegmentOrder {
		a, ok := buckets[segment]
		if !ok {
			continue
		}
		n := float64(a.count)
		rows = append(rows, models.SegmentSummaryRow{
			Segment:       segment,
			CustomerCount: a.count,
			AvgTotalSpent: a.totalSpent / n,
			AvgOrderCount: float64(a.orderCount) / n,
			AvgOrderValue: a.avgValue / n,
		})
	}
	return rows
}
