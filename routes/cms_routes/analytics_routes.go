package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/controllers/cms/analytics_controller"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")

	analytics.GET("/kpis", analytics_controller.GetDashboardKPIs)
	analytics.GET("/monthly-revenue", analytics_controller.GetMonthlyRevenue)
	analytics.GET("/category-revenue", analytics_controller.GetCategoryRevenue)
	analytics.GET("/city-performance", analytics_controller.GetCityPerformance)
	analytics.GET("/payment-distribution", analytics_controller.GetPaymentDistribution)
	analytics.GET("/product-analysis", analytics_controller.GetProductAnalysis)
	analytics.GET("/weekday-performance", analytics_controller.GetWeekdayPerformance)
	analytics.GET("/hourly-revenue", analytics_controller.GetHourlyRevenue)
	analytics.GET("/customer-segments", analytics_controller.GetCustomerSegments)
	analytics.GET("/segment-summary", analytics_controller.GetSegmentSummary)
	analytics.GET("/insights", analytics_controller.GetInsights)
	analytics.GET("/export/excel", analytics_controller.ExportDashboardExcel)
	analytics.GET("/download-report", analytics_controller.DownloadDashboardReport)
}
