package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
)

// GetSegmentSummary godoc
// @Summary Get segment summary rollup
// @Description Returns customer count and mean total spent, order count and average order value per customer segment
// @Tags Admin - Analytics
// @Produce json
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated category allow-list"
// @Param cities query string false "Comma-separated city allow-list"
// @Success 200 {object} models.ApiResponse{data=[]models.SegmentSummaryRow}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/segment-summary [get]
func GetSegmentSummary(c *gin.Context) {
	log.Printf("[admin.analytics-segment-summary] start")

	view, ok := resolveDashboardView(c, "admin.analytics-segment-summary")
	if !ok {
		return
	}

	metrics := services.BuildCustomerMetrics(view.Orders, time.Now())
	rows := services.SegmentSummary(metrics)

	log.Printf("[admin.analytics-segment-summary] respond 200 segments=%d customers=%d", len(rows), len(metrics))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Segment summary retrieved successfully", rows))
}
