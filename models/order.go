package models

import "time"

// Order represents one row of the orders table, one row per transaction.
// OrderHour is nullable because older exports of the dataset predate hour
// tracking; hourly analysis is only offered when the column exists.
type Order struct {
	OrderID         string    `gorm:"column:order_id;primaryKey" json:"order_id"`
	OrderDate       time.Time `gorm:"column:order_date;not null;index" json:"order_date"`
	CustomerID      string    `gorm:"column:customer_id;not null;index" json:"customer_id"`
	CustomerCity    string    `gorm:"column:customer_city;not null" json:"customer_city"`
	ProductCategory string    `gorm:"column:product_category;not null" json:"product_category"`
	PaymentMethod   string    `gorm:"column:payment_method;not null" json:"payment_method"`
	FinalPrice      float64   `gorm:"column:final_price;not null" json:"final_price"`
	DiscountPercent float64   `gorm:"column:discount_percent;not null" json:"discount_percent"`
	OrderHour       *int      `gorm:"column:order_hour" json:"order_hour,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}
