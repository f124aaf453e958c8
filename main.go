// @title KPI Optimisation Dashboard API
// @version 1.0
// @description Read-only analytics API over the e-commerce orders dataset
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rash6677/kpi-optimisation-dashboard/config"
	_ "github.com/rash6677/kpi-optimisation-dashboard/docs"
	"github.com/rash6677/kpi-optimisation-dashboard/middleware"
	"github.com/rash6677/kpi-optimisation-dashboard/routes/cms_routes"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// Warm the dataset cache so the first dashboard hit is served from memory.
	// The cold full-table read gets a wider window than per-request queries.
	// A failed warm-up is not fatal; the next request retries the load.
	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	if _, _, err := services.LoadOrders(ctx); err != nil {
		log.Printf("⚠️ Failed to warm orders dataset: %v", err)
	}
	cancel()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Dashboard routes (at /api/v1/admin prefix)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupAnalyticsRoutes(adminGroup)
	cms_routes.SetupFilterRoutes(adminGroup)
	log.Println("✅ Analytics routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
