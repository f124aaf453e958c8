package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/rash6677/kpi-optimisation-dashboard/models"
)

// FilterOrders returns the subset of orders matching all three predicates:
// inclusive date range (day granularity), category allow-set and city
// allow-set. Pure and idempotent; preserves input row order; an empty set
// keeps nothing. Allow-set values are not checked here, so re-filtering an
// already-filtered view with the same filter yields the identical set;
// callers vet filter inputs against the full table with ValidateFilterVocabulary.
func FilterOrders(orders []models.Order, f models.OrderFilter) ([]models.Order, error) {
	if f.DateTo.Before(f.DateFrom) {
		return nil, &InvalidFilterError{Reason: fmt.Sprintf(
			"date_to %s is before date_from %s",
			f.DateTo.Format("2006-01-02"), f.DateFrom.Format("2006-01-02"),
		)}
	}

	from := dateOnly(f.DateFrom)
	to := dateOnly(f.DateTo)

	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		d := dateOnly(o.OrderDate)
		if d.Before(from) || d.After(to) {
			continue
		}
		if _, ok := f.Categories[o.ProductCategory]; !ok {
			continue
		}
		if _, ok := f.Cities[o.CustomerCity]; !ok {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// ValidateFilterVocabulary checks the filter's allow-set values against the
// vocabularies of the full table. Run once against the full table before
// filtering; never against an already-filtered view, whose vocabularies
// only cover the rows that survived.
func ValidateFilterVocabulary(orders []models.Order, f models.OrderFilter) error {
	known := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		known[o.ProductCategory] = struct{}{}
	}
	for cat := range f.Categories {
		if _, ok := known[cat]; !ok {
			return &InvalidFilterError{Reason: fmt.Sprintf("unknown category %q", cat)}
		}
	}

	known = make(map[string]struct{}, len(orders))
	for _, o := range orders {
		known[o.CustomerCity] = struct{}{}
	}
	for city := range f.Cities {
		if _, ok := known[city]; !ok {
			return &InvalidFilterError{Reason: fmt.Sprintf("unknown city %q", city)}
		}
	}

	return nil
}

// DistinctCategories returns the sorted category vocabulary of the table.
func DistinctCategories(orders []models.Order) []string {
	return distinctSorted(orders, func(o models.Order) string { return o.ProductCategory })
}

// DistinctCities returns the sorted city vocabulary of the table.
func DistinctCities(orders []models.Order) []string {
	return distinctSorted(orders, func(o models.Order) string { return o.CustomerCity })
}

func distinctSorted(orders []models.Order, key func(models.Order) string) []string {
	seen := make(map[string]struct{}, len(orders))
	out := make([]string, 0)
	for _, o := range orders {
		k := key(o)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// DateBounds returns the min and max order_date of the table, zero times
// when the table is empty.
func DateBounds(orders []models.Order) (min, max time.Time) {
	for _, o := range orders {
		if min.IsZero() || o.OrderDate.Before(min) {
			min = o.OrderDate
		}
		if max.IsZero() || o.OrderDate.After(max) {
			max = o.OrderDate
		}
	}
	return min, max
}

// ToSet builds the allow-set form the filter expects from a value list.
func ToSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// dateOnly truncates a timestamp to day granularity for inclusive-bound
// comparison.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
