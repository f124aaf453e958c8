package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
)

// GetCategoryRevenue godoc
// @Summary Get revenue by category
// @Description Returns summed revenue per product category for the filtered view, ascending by revenue (the horizontal bar chart reads bottom-up)
// @Tags Admin - Analytics
// @Produce json
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated category allow-list"
// @Param cities query string false "Comma-separated city allow-list"
// @Success 200 {object} models.ApiResponse{data=[]models.CategoryRevenueRow}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/category-revenue [get]
func GetCategoryRevenue(c *gin.Context) {
	log.Printf("[admin.analytics-category-revenue] start")

	view, ok := resolveDashboardView(c, "admin.analytics-category-revenue")
	if !ok {
		return
	}

	rows := services.CategoryRevenue(view.Orders)

	log.Printf("[admin.analytics-category-revenue] respond 200 categories=%d", len(rows))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category revenue retrieved successfully", rows))
}
