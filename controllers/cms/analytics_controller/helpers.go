package analytics_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/config"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
)

const dateLayout = "2006-01-02"

// dashboardView is one request's resolved slice of the dataset: the cached
// table run through the query-param filters. Each request gets its own view;
// nothing here is shared mutable state.
type dashboardView struct {
	Orders       []models.Order
	HasOrderHour bool
	DateFrom     time.Time
	DateTo       time.Time
}

// resolveDashboardView loads the cached orders table, builds the filter from
// query params (absent params mean the full discovered range/sets, matching
// the dashboard's default-everything selectors) and applies it. On failure
// it writes the error response itself and returns ok=false.
func resolveDashboardView(c *gin.Context, tag string) (*dashboardView, bool) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, hasHour, err := services.LoadOrders(ctx)
	if err != nil {
		log.Printf("[%s] ERROR load orders err=%v", tag, err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Orders data source unavailable"))
		return nil, false
	}

	filter, ok := buildFilter(c, tag, orders)
	if !ok {
		return nil, false
	}

	filtered, err := services.FilterOrders(orders, filter)
	if err != nil {
		log.Printf("[%s] ERROR filter err=%v", tag, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return nil, false
	}

	return &dashboardView{
		Orders:       filtered,
		HasOrderHour: hasHour,
		DateFrom:     filter.DateFrom,
		DateTo:       filter.DateTo,
	}, true
}

func buildFilter(c *gin.Context, tag string, orders []models.Order) (models.OrderFilter, bool) {
	dateMin, dateMax := services.DateBounds(orders)
	filter := models.OrderFilter{
		DateFrom:   dateMin,
		DateTo:     dateMax,
		Categories: services.ToSet(services.DistinctCategories(orders)),
		Cities:     services.ToSet(services.DistinctCities(orders)),
	}

	if v := c.Query("date_from"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			log.Printf("[%s] ERROR bad date_from %q", tag, v)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "date_from must be YYYY-MM-DD"))
			return filter, false
		}
		filter.DateFrom = t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			log.Printf("[%s] ERROR bad date_to %q", tag, v)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "date_to must be YYYY-MM-DD"))
			return filter, false
		}
		filter.DateTo = t
	}
	if v := c.Query("categories"); v != "" {
		filter.Categories = splitSet(v)
	}
	if v := c.Query("cities"); v != "" {
		filter.Cities = splitSet(v)
	}

	// vet allow-set values against the full table, not the filtered view
	if err := services.ValidateFilterVocabulary(orders, filter); err != nil {
		log.Printf("[%s] ERROR filter err=%v", tag, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return filter, false
	}

	return filter, true
}

// splitSet parses a comma-separated query value into an allow-set.
func splitSet(v string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			set[part] = struct{}{}
		}
	}
	return set
}

// respondServiceError translates the service error taxonomy to HTTP.
func respondServiceError(c *gin.Context, tag string, err error) {
	log.Printf("[%s] ERROR %v", tag, err)

	var invalid *services.InvalidFilterError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, invalid.Error()))
		return
	}
	var source *services.DataSourceError
	if errors.As(err, &source) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Orders data source unavailable"))
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
}

// parsePagination reads page/limit query params with the list defaults.
func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	return page, limit
}
