package models

// DashboardKPIs are the five headline scalars of the dashboard.
// AvgOrderValue is a pointer so an empty filtered view reads as "no data"
// instead of a silent zero.
type DashboardKPIs struct {
	TotalRevenue       float64  `json:"total_revenue"`        // Sum of final_price over the filtered view
	TotalOrders        int      `json:"total_orders"`         // Row count of the filtered view
	AvgOrderValue      *float64 `json:"avg_order_value"`      // Mean final_price, null when no orders
	UniqueCustomers    int      `json:"unique_customers"`     // Distinct customer_id count
	RepeatCustomerRate float64  `json:"repeat_customer_rate"` // % of distinct customers with 2+ orders
	NoData             bool     `json:"no_data,omitempty"`    // True when the filtered view is empty
}

type MonthlyRevenueRow struct {
	Month      string  `json:"month"` // Calendar month key, e.g. "2025-03"
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"order_count"`
}

type CategoryRevenueRow struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

type CityPerformanceRow struct {
	City            string  `json:"city"`
	Revenue         float64 `json:"revenue"`
	UniqueCustomers int     `json:"unique_customers"`
}

type PaymentMethodRow struct {
	PaymentMethod string `json:"payment_method"`
	OrderCount    int    `json:"order_count"`
}

// ProductCategoryRow is the per-category deep-dive table.
// RevenuePerCustomer is null if a category somehow has zero customers.
type ProductCategoryRow struct {
	Category           string   `json:"category"`
	TotalRevenue       float64  `json:"total_revenue"`
	TotalOrders        int      `json:"total_orders"`
	AvgOrderValue      float64  `json:"avg_order_value"`
	AvgDiscount        float64  `json:"avg_discount"` // Mean discount_percent
	UniqueCustomers    int      `json:"unique_customers"`
	RevenuePerCustomer *float64 `json:"revenue_per_customer"`
}

type WeekdayPerformanceRow struct {
	Weekday       string  `json:"weekday"` // Monday..Sunday, always all seven rows
	TotalRevenue  float64 `json:"total_revenue"`
	TotalOrders   int     `json:"total_orders"`
	AvgOrderValue float64 `json:"avg_order_value"` // 0 for weekdays without orders
}

type HourlyRevenueRow struct {
	Hour    int     `json:"hour"` // 0-23
	Revenue float64 `json:"revenue"`
}

// SegmentSummaryRow rolls customer metrics up per segment.
type SegmentSummaryRow struct {
	Segment       string  `json:"segment"`
	CustomerCount int     `json:"customer_count"`
	AvgTotalSpent float64 `json:"avg_total_spent"`
	AvgOrderCount float64 `json:"avg_order_count"`
	AvgOrderValue float64 `json:"avg_order_value"`
}
