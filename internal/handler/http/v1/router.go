package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(RequestIDMiddleware())

	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	secured := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		secured.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	// Карта сетки и клики по ячейкам
	projects := secured.Group("/projects/:id")
	{
		projects.GET("/map", h.getMap)
		projects.GET("/map/geojson", h.getMapGeoJSON)
		projects.POST("/cells/select", h.selectCell)
		projects.POST("/cells/locate", h.locateCell)
		projects.POST("/refresh", h.refreshProject)
	}

	// Отчеты трекеров
	locations := secured.Group("/locations")
	{
		locations.POST("", h.reportLocation)
		locations.GET("/stats", h.getStats)
	}
}
