package filter_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/cache"
	"github.com/rash6677/kpi-optimisation-dashboard/config"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns the discovered date bounds, category and city vocabularies and whether hourly analysis is available, for bootstrapping the dashboard sidebar
// @Tags Admin - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 503 {object} models.ApiResponse
// @Router /admin/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	log.Printf("[admin.filter-metadata] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, hasHour, err := services.LoadOrders(ctx)
	if err != nil {
		log.Printf("[admin.filter-metadata] ERROR load orders err=%v", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Orders data source unavailable"))
		return
	}

	dateMin, dateMax := services.DateBounds(orders)
	metadata := models.FilterMetadata{
		DateMin:            dateMin,
		DateMax:            dateMax,
		Categories:         services.DistinctCategories(orders),
		Cities:             services.DistinctCities(orders),
		OrderHourAvailable: hasHour,
		DatasetLoadedAt:    dataset_cache.LoadedAt(),
	}

	log.Printf("[admin.filter-metadata] respond 200 categories=%d cities=%d",
		len(metadata.Categories), len(metadata.Cities))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}
