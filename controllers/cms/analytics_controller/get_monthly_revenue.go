package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
)

// GetMonthlyRevenue godoc
// @Summary Get monthly revenue trend
// @Description Returns revenue and order count per calendar month of the filtered view, chronological
// @Tags Admin - Analytics
// @Produce json
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated category allow-list"
// @Param cities query string false "Comma-separated city allow-list"
// @Success 200 {object} models.ApiResponse{data=[]models.MonthlyRevenueRow}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/monthly-revenue [get]
func GetMonthlyRevenue(c *gin.Context) {
	log.Printf("[admin.analytics-monthly-revenue] start")

	view, ok := resolveDashboardView(c, "admin.analytics-monthly-revenue")
	if !ok {
		return
	}

	rows := services.MonthlyRevenue(view.Orders)

	log.Printf("[admin.analytics-monthly-revenue] respond 200 months=%d", len(rows))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly revenue retrieved successfully", rows))
}
