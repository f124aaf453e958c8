package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
)

// GetInsights godoc
// @Summary Get key insights
// @Description Returns the short narrative insight lines derived from the filtered view's KPIs and category revenue
// @Tags Admin - Analytics
// @Produce json
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated category allow-list"
// @Param cities query string false "Comma-separated city allow-list"
// @Success 200 {object} models.ApiResponse{data=[]string}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/insights [get]
func GetInsights(c *gin.Context) {
	log.Printf("[admin.analytics-insights] start")

	view, ok := resolveDashboardView(c, "admin.analytics-insights")
	if !ok {
		return
	}

	kpis := services.ComputeKPIs(view.Orders)
	categories := services.CategoryRevenue(view.Orders)
	insights := services.BuildInsights(kpis, categories)

	log.Printf("[admin.analytics-insights] respond 200 insights=%d", len(insights))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Insights retrieved successfully", insights))
}
