package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
)

// GetDashboardKPIs godoc
// @Summary Get dashboard KPIs
// @Description Returns the five headline scalars (revenue, orders, average order value, unique customers, repeat rate) for the filtered view
// @Tags Admin - Analytics
// @Produce json
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated category allow-list"
// @Param cities query string false "Comma-separated city allow-list"
// @Success 200 {object} models.ApiResponse{data=models.DashboardKPIs}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/kpis [get]
func GetDashboardKPIs(c *gin.Context) {
	log.Printf("[admin.analytics-kpis] start")

	view, ok := resolveDashboardView(c, "admin.analytics-kpis")
	if !ok {
		return
	}

	kpis := services.ComputeKPIs(view.Orders)

	log.Printf("[admin.analytics-kpis] respond 200 orders=%d revenue=%.2f customers=%d",
		kpis.TotalOrders, kpis.TotalRevenue, kpis.UniqueCustomers)

	message := "Dashboard KPIs retrieved successfully"
	if kpis.NoData {
		message = "No orders match the current filters"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, kpis))
}
