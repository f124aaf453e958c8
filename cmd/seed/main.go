package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rash6677/kpi-optimisation-dashboard/config"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

var categories = []string{
	"Electronics", "Fashion", "Home & Kitchen", "Beauty", "Sports", "Books",
}

var cities = []string{
	"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai",
	"Kolkata", "Pune", "Jaipur", "Ahmedabad", "Lucknow",
}

var paymentMethods = []string{
	"UPI", "Credit Card", "Debit Card", "Wallet", "Cash on Delivery",
}

// main populates the orders table with synthetic data for local development.
// Usage: go run cmd/seed/main.go -orders 5000 -customers 400
// This is a standalone CLI tool, not part of the main application.
func main() {
	orderCount := flag.Int("orders", 5000, "number of orders to generate")
	customerCount := flag.Int("customers", 400, "size of the customer pool")
	truncate := flag.Bool("truncate", false, "delete existing orders first")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("KPI DASHBOARD - Orders Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.AnalyticsGorm.AutoMigrate(&models.Order{}); err != nil {
		log.Fatalf("Failed to migrate orders table: %v", err)
	}
	log.Println("✓ Orders table migrated")

	if *truncate {
		if err := config.AnalyticsGorm.Exec("DELETE FROM orders").Error; err != nil {
			log.Fatalf("Failed to truncate orders: %v", err)
		}
		log.Println("✓ Existing orders deleted")
	}

	rng := rand.New(rand.NewSource(*seed))
	orders := generateOrders(rng, *orderCount, *customerCount)

	if err := config.AnalyticsGorm.CreateInBatches(orders, 500).Error; err != nil {
		log.Fatalf("Failed to insert orders: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Orders Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Orders:    %d\n", len(orders))
	fmt.Printf("Customers: %d\n", *customerCount)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Open http://localhost:8081/swagger/index.html")

	config.CloseDB()
}

func generateOrders(rng *rand.Rand, orderCount, customerCount int) []models.Order {
	now := time.Now().UTC()
	start := now.AddDate(0, -18, 0)
	span := now.Sub(start)

	orders := make([]models.Order, 0, orderCount)
	for i := 0; i < orderCount; i++ {
		orderDate := start.Add(time.Duration(rng.Int63n(int64(span))))

		// skew price so a minority of orders is large
		price := 200 + rng.Float64()*800
		if rng.Float64() < 0.15 {
			price += rng.Float64() * 4000
		}

		// evenings get more orders than mornings
		hour := weightedHour(rng)

		orders = append(orders, models.Order{
			OrderID:         uuid.NewString(),
			OrderDate:       orderDate,
			CustomerID:      fmt.Sprintf("CUST-%04d", rng.Intn(customerCount)+1),
			CustomerCity:    cities[rng.Intn(len(cities))],
			ProductCategory: categories[rng.Intn(len(categories))],
			PaymentMethod:   paymentMethods[rng.Intn(len(paymentMethods))],
			FinalPrice:      float64(int(price*100)) / 100,
			DiscountPercent: float64(rng.Intn(11) * 5), // 0-50 in steps of 5
			OrderHour:       &hour,
		})
	}
	return orders
}

func weightedHour(rng *rand.Rand) int {
	if rng.Float64() < 0.5 {
		return 17 + rng.Intn(6) // 17-22
	}
	return rng.Intn(24)
}
