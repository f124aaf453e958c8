package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
)

// GetCustomerSegments godoc
// @Summary Get per-customer metrics and segments
// @Description Returns the per-customer lifetime metrics of the filtered view with each customer's segment, paginated. Segments are computed fresh against the current wall clock
// @Tags Admin - Analytics
// @Produce json
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated category allow-list"
// @Param cities query string false "Comma-separated city allow-list"
// @Param segment query string false "Keep only customers in this segment"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 50, max 500)"
// @Success 200 {object} models.ApiResponse{data=[]models.CustomerMetrics}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/customer-segments [get]
func GetCustomerSegments(c *gin.Context) {
	log.Printf("[admin.analytics-customer-segments] start")

	view, ok := resolveDashboardView(c, "admin.analytics-customer-segments")
	if !ok {
		return
	}

	metrics := services.BuildCustomerMetrics(view.Orders, time.Now())

	if segment := c.Query("segment"); segment != "" {
		if !validSegment(segment) {
			log.Printf("[admin.analytics-customer-segments] ERROR unknown segment %q", segment)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown segment: "+segment))
			return
		}
		kept := metrics[:0]
		for _, m := range metrics {
			if m.Segment == segment {
				kept = append(kept, m)
			}
		}
		metrics = kept
	}

	page, limit := parsePagination(c)
	total := len(metrics)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	log.Printf("[admin.analytics-customer-segments] respond 200 customers=%d page=%d", total, page)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customer segments retrieved successfully", metrics[start:end], meta))
}

func validSegment(segment string) bool {
	for _, s := range models.SegmentOrder {
		if s == segment {
			return true
		}
	}
	return false
}
