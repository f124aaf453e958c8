package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/controllers/cms/filter_controller"
)

func SetupFilterRoutes(rg *gin.RouterGroup) {
	filters := rg.Group("/filters")

	filters.GET("/metadata", filter_controller.GetFilterMetadata)
}
