package services

import (
	"testing"
	"time"

	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testOrder(id, customer, city, category string, date time.Time, price float64) models.Order {
	return models.Order{
		OrderID:         id,
		OrderDate:       date,
		CustomerID:      customer,
		CustomerCity:    city,
		ProductCategory: category,
		PaymentMethod:   "UPI",
		FinalPrice:      price,
	}
}

func fullFilter(orders []models.Order) models.OrderFilter {
	from, to := DateBounds(orders)
	return models.OrderFilter{
		DateFrom:   from,
		DateTo:     to,
		Categories: ToSet(DistinctCategories(orders)),
		Cities:     ToSet(DistinctCities(orders)),
	}
}

func TestFilterOrdersInclusiveDateBounds(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 100),
		testOrder("o2", "c1", "Mumbai", "Fashion", day(2025, 3, 2), 100),
		testOrder("o3", "c1", "Mumbai", "Fashion", day(2025, 3, 3), 100),
	}
	f := fullFilter(orders)
	f.DateFrom = day(2025, 3, 1)
	f.DateTo = day(2025, 3, 2)

	got, err := FilterOrders(orders, f)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "o1", got[0].OrderID)
	assert.Equal(t, "o2", got[1].OrderID)
}

func TestFilterOrdersDayGranularity(t *testing.T) {
	// order late on the boundary day still matches an inclusive date_to
	late := time.Date(2025, 3, 2, 23, 45, 0, 0, time.UTC)
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", late, 100),
	}
	f := fullFilter(orders)
	f.DateFrom = day(2025, 3, 2)
	f.DateTo = day(2025, 3, 2)

	got, err := FilterOrders(orders, f)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFilterOrdersEmptySetExcludesAll(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 100),
	}
	f := fullFilter(orders)
	f.Categories = map[string]struct{}{}

	got, err := FilterOrders(orders, f)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterOrdersIdempotent(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 100),
		testOrder("o2", "c2", "Delhi", "Books", day(2025, 4, 1), 200),
		testOrder("o3", "c3", "Pune", "Fashion", day(2025, 5, 1), 300),
	}
	f := fullFilter(orders)
	f.Categories = ToSet([]string{"Fashion"})

	// f's city set still mentions Delhi even though the first pass removes
	// the only Delhi row; the second pass must not trip over that
	once, err := FilterOrders(orders, f)
	assert.NoError(t, err)
	assert.Len(t, once, 2)
	twice, err := FilterOrders(once, f)
	assert.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestFilterOrdersMonotonicity(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 100),
		testOrder("o2", "c2", "Delhi", "Books", day(2025, 4, 1), 200),
		testOrder("o3", "c3", "Pune", "Sports", day(2025, 5, 1), 300),
	}
	narrow := fullFilter(orders)
	narrow.DateFrom = day(2025, 4, 1)
	narrow.Categories = ToSet([]string{"Books"})

	wide := fullFilter(orders)

	narrowRows, err := FilterOrders(orders, narrow)
	assert.NoError(t, err)
	wideRows, err := FilterOrders(orders, wide)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(wideRows), len(narrowRows))
}

func TestFilterOrdersPreservesInputOrder(t *testing.T) {
	orders := []models.Order{
		testOrder("o3", "c1", "Mumbai", "Fashion", day(2025, 3, 3), 100),
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 100),
		testOrder("o2", "c1", "Mumbai", "Fashion", day(2025, 3, 2), 100),
	}
	got, err := FilterOrders(orders, fullFilter(orders))
	assert.NoError(t, err)
	assert.Equal(t, []string{"o3", "o1", "o2"}, []string{got[0].OrderID, got[1].OrderID, got[2].OrderID})
}

func TestFilterOrdersRejectsReversedRange(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 100),
	}
	f := fullFilter(orders)
	f.DateFrom = day(2025, 4, 1)
	f.DateTo = day(2025, 3, 1)

	_, err := FilterOrders(orders, f)
	assert.Error(t, err)
	var invalid *InvalidFilterError
	assert.ErrorAs(t, err, &invalid)
}

func TestValidateFilterVocabularyRejectsUnknownCategory(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 100),
	}
	f := fullFilter(orders)
	f.Categories = ToSet([]string{"Gadgets"})

	err := ValidateFilterVocabulary(orders, f)
	var invalid *InvalidFilterError
	assert.ErrorAs(t, err, &invalid)
}

func TestValidateFilterVocabularyRejectsUnknownCity(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 100),
	}
	f := fullFilter(orders)
	f.Cities = ToSet([]string{"Atlantis"})

	err := ValidateFilterVocabulary(orders, f)
	var invalid *InvalidFilterError
	assert.ErrorAs(t, err, &invalid)
}

func TestValidateFilterVocabularyAcceptsKnownValues(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Mumbai", "Fashion", day(2025, 3, 1), 100),
		testOrder("o2", "c2", "Delhi", "Books", day(2025, 4, 1), 200),
	}
	assert.NoError(t, ValidateFilterVocabulary(orders, fullFilter(orders)))
}

func TestDistinctVocabulariesSorted(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c1", "Pune", "Sports", day(2025, 3, 1), 100),
		testOrder("o2", "c2", "Delhi", "Books", day(2025, 3, 2), 100),
		testOrder("o3", "c3", "Pune", "Books", day(2025, 3, 3), 100),
	}
	assert.Equal(t, []string{"Books", "Sports"}, DistinctCategories(orders))
	assert.Equal(t, []string{"Delhi", "Pune"}, DistinctCities(orders))
}

func TestDateBoundsEmptyTable(t *testing.T) {
	min, max := DateBounds(nil)
	assert.True(t, min.IsZero())
	assert.True(t, max.IsZero())
}
