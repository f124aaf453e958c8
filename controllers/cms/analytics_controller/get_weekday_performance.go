package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
)

// GetWeekdayPerformance godoc
// @Summary Get weekday performance
// @Description Returns revenue, order count and average order value per day of week; always all seven weekdays Monday through Sunday, zero-filled
// @Tags Admin - Analytics
// @Produce json
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated category allow-list"
// @Param cities query string false "Comma-separated city allow-list"
// @Success 200 {object} models.ApiResponse{data=[]models.WeekdayPerformanceRow}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/weekday-performance [get]
func GetWeekdayPerformance(c *gin.Context) {
	log.Printf("[admin.analytics-weekday-performance] start")

	view, ok := resolveDashboardView(c, "admin.analytics-weekday-performance")
	if !ok {
		return
	}

	rows := services.WeekdayPerformance(view.Orders)

	log.Printf("[admin.analytics-weekday-performance] respond 200")

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Weekday performance retrieved successfully", rows))
}
