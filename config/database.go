package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	AnalyticsDB *pgxpool.Pool

	AnalyticsGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func initPgx() {
	// Analytics store - use full URL if provided
	dbURL := os.Getenv("ANALYTICS_DB_URL")
	if dbURL == "" {
		// fallback to local
		dbURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/kpi_analytics?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ ANALYTICS_DB_URL not set, using local default")
	}

	var err error
	AnalyticsDB, err = pgxpool.New(context.Background(), dbURL)
	if err != nil {
		log.Fatalf("❌ Unable to connect to analytics database: %v", err)
	}

	if err = AnalyticsDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Analytics database ping failed: %v", err)
	}

	log.Println("✅ Analytics database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var dsn string
	if os.Getenv("ANALYTICS_DB_URL") != "" {
		dsn = os.Getenv("ANALYTICS_DB_URL")
	} else {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=kpi_analytics port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ ANALYTICS_DB_URL not set, using local GORM default")
	}

	var err error
	AnalyticsGorm, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to analytics database with GORM: %v", err)
	}
	if sqlDB, err := AnalyticsGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Analytics database connected (GORM)")
}

func CloseDB() {
	if AnalyticsDB != nil {
		AnalyticsDB.Close()
		log.Println("✅ Analytics database connection closed (pgx)")
	}
	if AnalyticsGorm != nil {
		sqlDB, _ := AnalyticsGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Analytics database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with the 10s window request handlers run
// their queries under.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// WithCustomTimeout is for the paths that need a wider window, like the
// startup warm-up's cold full-table read.
func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
