package services

import (
	"sort"

	"github.com/rash6677/kpi-optimisation-dashboard/models"
)

// cityPerformanceLimit caps the city table at the top revenue earners; the
// dashboard scatter gets unreadable past that.
const cityPerformanceLimit = 8

// weekdayOrder is the fixed output order of the weekday table.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// groupOrders buckets orders by an arbitrary key. Keys come back in
// first-encounter order, which is what the tie-break rules of the city and
// payment tables lean on.
func groupOrders[K comparable](orders []models.Order, key func(models.Order) K) ([]K, map[K][]models.Order) {
	keys := make([]K, 0)
	groups := make(map[K][]models.Order)
	for _, o := range orders {
		k := key(o)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], o)
	}
	return keys, groups
}

func sumRevenue(orders []models.Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.FinalPrice
	}
	return total
}

func countDistinctCustomers(orders []models.Order) int {
	seen := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		seen[o.CustomerID] = struct{}{}
	}
	return len(seen)
}

// ComputeKPIs derives the five headline scalars from a filtered view.
// An empty view yields NoData with a nil average instead of a fake zero.
func ComputeKPIs(orders []models.Order) models.DashboardKPIs {
	kpis := models.DashboardKPIs{
		TotalOrders: len(orders),
	}
	if len(orders) == 0 {
		kpis.NoData = true
		return kpis
	}

	kpis.TotalRevenue = sumRevenue(orders)
	avg := kpis.TotalRevenue / float64(len(orders))
	kpis.AvgOrderValue = &avg

	perCustomer := make(map[string]int, len(orders))
	for _, o := range orders {
		perCustomer[o.CustomerID]++
	}
	kpis.UniqueCustomers = len(perCustomer)

	repeat := 0
	for _, n := range perCustomer {
		if n > 1 {
			repeat++
		}
	}
	kpis.RepeatCustomerRate = float64(repeat) / float64(len(perCustomer)) * 100

	return kpis
}

// MonthlyRevenue groups by calendar month of order_date, chronological.
func MonthlyRevenue(orders []models.Order) []models.MonthlyRevenueRow {
	keys, groups := groupOrders(orders, func(o models.Order) string {
		return o.OrderDate.Format("2006-01")
	})

	rows := make([]models.MonthlyRevenueRow, 0, len(keys))
	for _, month := range keys {
		bucket := groups[month]
		rows = append(rows, models.MonthlyRevenueRow{
			Month:      month,
			Revenue:    sumRevenue(bucket),
			OrderCount: len(bucket),
		})
	}
	// YYYY-MM keys sort chronologically as strings
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
	return rows
}

// CategoryRevenue sums revenue per product category, ascending by revenue
// with ties broken by category label.
func CategoryRevenue(orders []models.Order) []models.CategoryRevenueRow {
	keys, groups := groupOrders(orders, func(o models.Order) string {
		return o.ProductCategory
	})

	rows := make([]models.CategoryRevenueRow, 0, len(keys))
	for _, cat := range keys {
		rows = append(rows, models.CategoryRevenueRow{
			Category: cat,
			Revenue:  sumRevenue(groups[cat]),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue < rows[j].Revenue
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// CityPerformance sums revenue and counts distinct customers per city and
// keeps only the top earners by revenue. Stable sort over first-encounter
// order settles revenue ties.
func CityPerformance(orders []models.Order) []models.CityPerformanceRow {
	keys, groups := groupOrders(orders, func(o models.Order) string {
		return o.CustomerCity
	})

	rows := make([]models.CityPerformanceRow, 0, len(keys))
	for _, city := range keys {
		bucket := groups[city]
		rows = append(rows, models.CityPerformanceRow{
			City:            city,
			Revenue:         sumRevenue(bucket),
			UniqueCustomers: countDistinctCustomers(bucket),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })
	if len(rows) > cityPerformanceLimit {
		rows = rows[:cityPerformanceLimit]
	}
	return rows
}

// PaymentDistribution counts orders per payment method, most used first.
func PaymentDistribution(orders []models.Order) []models.PaymentMethodRow {
	keys, groups := groupOrders(orders, func(o models.Order) string {
		return o.PaymentMethod
	})

	rows := make([]models.PaymentMethodRow, 0, len(keys))
	for _, method := range keys {
		rows = append(rows, models.PaymentMethodRow{
			PaymentMethod: method,
			OrderCount:    len(groups[method]),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].OrderCount > rows[j].OrderCount })
	return rows
}

// ProductCategoryAnalysis is the per-category deep dive: revenue, order
// count, average order value, average discount, distinct customers and
// revenue per customer, highest revenue first.
func ProductCategoryAnalysis(orders []models.Order) []models.ProductCategoryRow {
	keys, groups := groupOrders(orders, func(o models.Order) string {
		return o.ProductCategory
	})

	rows := make([]models.ProductCategoryRow, 0, len(keys))
	for _, cat := range keys {
		bucket := groups[cat]
		revenue := sumRevenue(bucket)

		var discountSum float64
		for _, o := range bucket {
			discountSum += o.DiscountPercent
		}

		row := models.ProductCategoryRow{
			Category:        cat,
			TotalRevenue:    revenue,
			TotalOrders:     len(bucket),
			AvgOrderValue:   revenue / float64(len(bucket)),
			AvgDiscount:     discountSum / float64(len(bucket)),
			UniqueCustomers: countDistinctCustomers(bucket),
		}
		if row.UniqueCustomers > 0 {
			perCustomer := revenue / float64(row.UniqueCustomers)
			row.RevenuePerCustomer = &perCustomer
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalRevenue != rows[j].TotalRevenue {
			return rows[i].TotalRevenue > rows[j].TotalRevenue
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// WeekdayPerformance sums, counts and averages revenue per day-of-week name.
// Always returns exactly seven rows, Monday through Sunday, zero-filled for
// weekdays without orders.
func WeekdayPerformance(orders []models.Order) []models.WeekdayPerformanceRow {
	_, groups := groupOrders(orders, func(o models.Order) string {
		return o.OrderDate.Weekday().String()
	})

	rows := make([]models.WeekdayPerformanceRow, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		row := models.WeekdayPerformanceRow{Weekday: day}
		if bucket, ok := groups[day]; ok && len(bucket) > 0 {
			row.TotalRevenue = sumRevenue(bucket)
			row.TotalOrders = len(bucket)
			row.AvgOrderValue = row.TotalRevenue / float64(len(bucket))
		}
		rows = append(rows, row)
	}
	return rows
}

// HourlyRevenue sums revenue per hour of day. Only meaningful when the
// dataset carries order_hour; rows without an hour are skipped.
func HourlyRevenue(orders []models.Order) []models.HourlyRevenueRow {
	withHour := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.OrderHour != nil {
			withHour = append(withHour, o)
		}
	}

	keys, groups := groupOrders(withHour, func(o models.Order) int {
		return *o.OrderHour
	})

	rows := make([]models.HourlyRevenueRow, 0, len(keys))
	for _, hour := range keys {
		rows = append(rows, models.HourlyRevenueRow{
			Hour:    hour,
			Revenue: sumRevenue(groups[hour]),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Hour < rows[j].Hour })
	return rows
}
