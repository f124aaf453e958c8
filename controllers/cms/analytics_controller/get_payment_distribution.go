package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
)

// GetPaymentDistribution godoc
// @Summary Get payment method distribution
// @Description Returns order counts per payment method for the filtered view, most used first
// @Tags Admin - Analytics
// @Produce json
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated category allow-list"
// @Param cities query string false "Comma-separated city allow-list"
// @Success 200 {object} models.ApiResponse{data=[]models.PaymentMethodRow}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/payment-distribution [get]
func GetPaymentDistribution(c *gin.Context) {
	log.Printf("[admin.analytics-payment-distribution] start")

	view, ok := resolveDashboardView(c, "admin.analytics-payment-distribution")
	if !ok {
		return
	}

	rows := services.PaymentDistribution(view.Orders)

	log.Printf("[admin.analytics-payment-distribution] respond 200 methods=%d", len(rows))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment distribution retrieved successfully", rows))
}
