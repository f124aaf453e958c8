package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
)

// GetHourlyRevenue godoc
// @Summary Get revenue by hour of day
// @Description Returns summed revenue per order hour for the filtered view. Only available when the dataset carries the optional order_hour column
// @Tags Admin - Analytics
// @Produce json
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated category allow-list"
// @Param cities query string false "Comma-separated city allow-list"
// @Success 200 {object} models.ApiResponse{data=[]models.HourlyRevenueRow}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Dataset has no order_hour column"
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/hourly-revenue [get]
func GetHourlyRevenue(c *gin.Context) {
	log.Printf("[admin.analytics-hourly-revenue] start")

	view, ok := resolveDashboardView(c, "admin.analytics-hourly-revenue")
	if !ok {
		return
	}

	// Omitted entirely when the column is absent, never zero-filled
	if !view.HasOrderHour {
		log.Printf("[admin.analytics-hourly-revenue] respond 404 order_hour column absent")
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Hourly analysis is not available for this dataset"))
		return
	}

	rows := services.HourlyRevenue(view.Orders)

	log.Printf("[admin.analytics-hourly-revenue] respond 200 hours=%d", len(rows))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Hourly revenue retrieved successfully", rows))
}
