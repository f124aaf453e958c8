package services

import (
	"fmt"
	"testing"

	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeKPIsEmptyView(t *testing.T) {
	kpis := ComputeKPIs(nil)

	assert.True(t, kpis.NoData)
	assert.Equal(t, 0, kpis.TotalOrders)
	assert.Equal(t, 0.0, kpis.TotalRevenue)
	assert.Nil(t, kpis.AvgOrderValue)
	assert.Equal(t, 0.0, kpis.RepeatCustomerRate)
}

func TestComputeKPIs(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 100),
		testOrder("o2", "c1", "Mumbai", "Fashion", day(2025, 3, 2), 200),
		testOrder("o3", "c2", "Delhi", "Books", day(2025, 3, 3), 300),
		testOrder("o4", "c3", "Pune", "Sports", day(2025, 3, 4), 400),
	}
	kpis := ComputeKPIs(orders)

	assert.False(t, kpis.NoData)
	assert.Equal(t, 1000.0, kpis.TotalRevenue)
	assert.Equal(t, 4, kpis.TotalOrders)
	if assert.NotNil(t, kpis.AvgOrderValue) {
		assert.InDelta(t, 250.0, *kpis.AvgOrderValue, 1e-9)
	}
	assert.Equal(t, 3, kpis.UniqueCustomers)
	// one of three customers has 2+ orders
	assert.InDelta(t, 100.0/3.0, kpis.RepeatCustomerRate, 1e-9)
}

func TestCategoryRevenueConservation(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 123.45),
		testOrder("o2", "c2", "Delhi", "Books", day(2025, 3, 2), 678.90),
		testOrder("o3", "c3", "Pune", "Fashion", day(2025, 3, 3), 11.65),
	}
	kpis := ComputeKPIs(orders)

	var sum float64
	for _, row := range CategoryRevenue(orders) {
		sum += row.Revenue
	}
	assert.InDelta(t, kpis.TotalRevenue, sum, 1e-9)
}

func TestCategoryRevenueAscendingWithLabelTieBreak(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Sports", day(2025, 3, 1), 100),
		testOrder("o2", "c2", "Delhi", "Books", day(2025, 3, 2), 100),
		testOrder("o3", "c3", "Pune", "Fashion", day(2025, 3, 3), 50),
	}
	rows := CategoryRevenue(orders)

	assert.Equal(t, "Fashion", rows[0].Category)
	// Books and Sports tie at 100; label order breaks the tie
	assert.Equal(t, "Books", rows[1].Category)
	assert.Equal(t, "Sports", rows[2].Category)
}

func TestCityPerformanceKeepsTopEight(t *testing.T) {
	orders := make([]models.Order, 0, 10)
	for i := 0; i < 10; i++ {
		orders = append(orders, testOrder(
			fmt.Sprintf("o%d", i),
			fmt.Sprintf("c%d", i),
			fmt.Sprintf("City-%02d", i),
			"Fashion",
			day(2025, 3, 1+i),
			float64(100*(i+1)), // City-09 earns most, City-00 least
		))
	}
	rows := CityPerformance(orders)

	assert.Len(t, rows, 8)
	assert.Equal(t, "City-09", rows[0].City)
	for _, row := range rows {
		assert.NotEqual(t, "City-00", row.City)
		assert.NotEqual(t, "City-01", row.City)
	}
	// descending revenue
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Revenue, rows[i].Revenue)
	}
}

func TestCityPerformanceTieBrokenByFirstEncounter(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Delhi", "Fashion", day(2025, 3, 1), 100),
		testOrder("o2", "c2", "Agra", "Fashion", day(2025, 3, 2), 100),
	}
	rows := CityPerformance(orders)

	assert.Equal(t, "Delhi", rows[0].City)
	assert.Equal(t, "Agra", rows[1].City)
}

func TestCityPerformanceCountsDistinctCustomers(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 100),
		testOrder("o2", "c1", "Mumbai", "Books", day(2025, 3, 2), 100),
		testOrder("o3", "c2", "Mumbai", "Fashion", day(2025, 3, 3), 100),
	}
	rows := CityPerformance(orders)

	assert.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].UniqueCustomers)
	assert.Equal(t, 300.0, rows[0].Revenue)
}

func TestMonthlyRevenueChronological(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 15), 100),
		testOrder("o2", "c2", "Delhi", "Books", day(2024, 12, 1), 200),
		testOrder("o3", "c3", "Pune", "Sports", day(2025, 1, 20), 300),
	}
	rows := MonthlyRevenue(orders)

	assert.Len(t, rows, 3)
	assert.Equal(t, "2024-12", rows[0].Month)
	assert.Equal(t, "2025-01", rows[1].Month)
	assert.Equal(t, "2025-03", rows[2].Month)
	assert.Equal(t, 200.0, rows[0].Revenue)
	assert.Equal(t, 1, rows[0].OrderCount)
}

func TestPaymentDistribution(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 100),
		testOrder("o2", "c2", "Delhi", "Books", day(2025, 3, 2), 100),
		testOrder("o3", "c3", "Pune", "Sports", day(2025, 3, 3), 100),
	}
	orders[0].PaymentMethod = "Wallet"
	orders[1].PaymentMethod = "UPI"
	orders[2].PaymentMethod = "UPI"

	rows := PaymentDistribution(orders)

	assert.Len(t, rows, 2)
	assert.Equal(t, "UPI", rows[0].PaymentMethod)
	assert.Equal(t, 2, rows[0].OrderCount)
	assert.Equal(t, "Wallet", rows[1].PaymentMethod)
}

func TestProductCategoryAnalysis(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 100),
		testOrder("o2", "c1", "Mumbai", "Fashion", day(2025, 3, 2), 300),
		testOrder("o3", "c2", "Delhi", "Books", day(2025, 3, 3), 50),
	}
	orders[0].DiscountPercent = 10
	orders[1].DiscountPercent = 30

	rows := ProductCategoryAnalysis(orders)

	assert.Len(t, rows, 2)
	fashion := rows[0] // highest revenue first
	assert.Equal(t, "Fashion", fashion.Category)
	assert.Equal(t, 400.0, fashion.TotalRevenue)
	assert.Equal(t, 2, fashion.TotalOrders)
	assert.InDelta(t, 200.0, fashion.AvgOrderValue, 1e-9)
	assert.InDelta(t, 20.0, fashion.AvgDiscount, 1e-9)
	assert.Equal(t, 1, fashion.UniqueCustomers)
	if assert.NotNil(t, fashion.RevenuePerCustomer) {
		assert.InDelta(t, 400.0, *fashion.RevenuePerCustomer, 1e-9)
	}
}

func TestWeekdayPerformanceAlwaysSevenOrderedRows(t *testing.T) {
	// 2025-03-03 is a Monday; only two days carry orders
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 3), 100),
		testOrder("o2", "c2", "Delhi", "Books", day(2025, 3, 5), 200),
	}
	rows := WeekdayPerformance(orders)

	assert.Len(t, rows, 7)
	expected := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for i, name := range expected {
		assert.Equal(t, name, rows[i].Weekday)
	}
	assert.Equal(t, 100.0, rows[0].TotalRevenue)
	assert.Equal(t, 200.0, rows[2].TotalRevenue)
	// zero-filled, not omitted
	assert.Equal(t, 0.0, rows[6].TotalRevenue)
	assert.Equal(t, 0, rows[6].TotalOrders)
	assert.Equal(t, 0.0, rows[6].AvgOrderValue)
}

func TestWeekdayPerformanceEmptyView(t *testing.T) {
	rows := WeekdayPerformance(nil)
	assert.Len(t, rows, 7)
}

func TestHourlyRevenue(t *testing.T) {
	h9, h18 := 9, 18
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 100),
		testOrder("o2", "c2", "Delhi", "Books", day(2025, 3, 2), 200),
		testOrder("o3", "c3", "Pune", "Sports", day(2025, 3, 3), 300),
	}
	orders[0].OrderHour = &h18
	orders[1].OrderHour = &h9
	// o3 has no hour recorded and is skipped

	rows := HourlyRevenue(orders)

	assert.Len(t, rows, 2)
	assert.Equal(t, 9, rows[0].Hour)
	assert.Equal(t, 200.0, rows[0].Revenue)
	assert.Equal(t, 18, rows[1].Hour)
	assert.Equal(t, 100.0, rows[1].Revenue)
}

func TestAggregationsIndependentOfRowOrder(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 100),
		testOrder("o2", "c2", "Delhi", "Books", day(2025, 1, 2), 200),
		testOrder("o3", "c3", "Pune", "Sports", day(2025, 2, 3), 300),
	}
	reversed := []models.Order{orders[2], orders[1], orders[0]}

	assert.Equal(t, MonthlyRevenue(orders), MonthlyRevenue(reversed))
	assert.Equal(t, CategoryRevenue(orders), CategoryRevenue(reversed))
	assert.Equal(t, WeekdayPerformance(orders), WeekdayPerformance(reversed))
	assert.Equal(t, ComputeKPIs(orders), ComputeKPIs(reversed))
}
