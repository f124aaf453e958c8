package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
)

// GetProductAnalysis godoc
// @Summary Get product category analysis
// @Description Returns the per-category deep dive (revenue, orders, average order value, average discount, distinct customers, revenue per customer), highest revenue first
// @Tags Admin - Analytics
// @Produce json
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated category allow-list"
// @Param cities query string false "Comma-separated city allow-list"
// @Success 200 {object} models.ApiResponse{data=[]models.ProductCategoryRow}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/product-analysis [get]
func GetProductAnalysis(c *gin.Context) {
	log.Printf("[admin.analytics-product-analysis] start")

	view, ok := resolveDashboardView(c, "admin.analytics-product-analysis")
	if !ok {
		return
	}

	rows := services.ProductCategoryAnalysis(view.Orders)

	log.Printf("[admin.analytics-product-analysis] respond 200 categories=%d", len(rows))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product category analysis retrieved successfully", rows))
}
