package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
)

// GetCityPerformance godoc
// @Summary Get city performance
// @Description Returns revenue and distinct customer count for the top 8 cities by revenue in the filtered view
// @Tags Admin - Analytics
// @Produce json
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated category allow-list"
// @Param cities query string false "Comma-separated city allow-list"
// @Success 200 {object} models.ApiResponse{data=[]models.CityPerformanceRow}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/city-performance [get]
func GetCityPerformance(c *gin.Context) {
	log.Printf("[admin.analytics-city-performance] start")

	view, ok := resolveDashboardView(c, "admin.analytics-city-performance")
	if !ok {
		return
	}

	rows := services.CityPerformance(view.Orders)

	log.Printf("[admin.analytics-city-performance] respond 200 cities=%d", len(rows))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "City performance retrieved successfully", rows))
}
