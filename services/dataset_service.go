package services

import (
	"context"
	"fmt"
	"log"

	"github.com/rash6677/kpi-optimisation-dashboard/cache"
	"github.com/rash6677/kpi-optimisation-dashboard/config"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
)

// Columns every row of the orders table must carry. order_hour is optional;
// its presence switches hourly analysis on.
var requiredOrderColumns = []string{
	"order_id",
	"order_date",
	"customer_id",
	"customer_city",
	"product_category",
	"payment_method",
	"final_price",
	"discount_percent",
}

// LoadOrders returns the full orders table plus whether the order_hour
// column exists. The table is read once per process lifetime and served from
// the dataset cache afterwards; rows are ordered by (order_date, order_id)
// so every run sees the same sequence.
func LoadOrders(ctx context.Context) ([]models.Order, bool, error) {
	if orders, hasHour, ok := dataset_cache.Get(); ok {
		return orders, hasHour, nil
	}

	hasHour, err := verifyOrdersSchema(ctx)
	if err != nil {
		return nil, false, err
	}

	var orders []models.Order
	if err := config.AnalyticsGorm.WithContext(ctx).
		Order("order_date ASC, order_id ASC").
		Find(&orders).Error; err != nil {
		return nil, false, &DataSourceError{Op: "load orders", Err: err}
	}

	dataset_cache.Set(orders, hasHour)
	log.Printf("[dataset] orders table loaded rows=%d order_hour=%t", len(orders), hasHour)

	return orders, hasHour, nil
}

// verifyOrdersSchema checks the orders table carries every required column
// before the full read, so a schema drift fails the whole load eagerly
// instead of silently scanning zero values. Returns whether order_hour exists.
func verifyOrdersSchema(ctx context.Context) (bool, error) {
	rows, err := config.AnalyticsDB.Query(ctx, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = 'orders'
	`)
	if err != nil {
		return false, &DataSourceError{Op: "schema check", Err: err}
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return false, &DataSourceError{Op: "schema check", Err: err}
		}
		present[col] = true
	}
	if err := rows.Err(); err != nil {
		return false, &DataSourceError{Op: "schema check", Err: err}
	}

	if len(present) == 0 {
		return false, &DataSourceError{Op: "schema check", Err: fmt.Errorf("orders table not found")}
	}
	for _, col := range requiredOrderColumns {
		if !present[col] {
			return false, &DataSourceError{Op: "schema check", Err: fmt.Errorf("orders table missing column %q", col)}
		}
	}

	return present["order_hour"], nil
}
