package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/site_grid_system/internal/config"
	"github.com/shenikar/site_grid_system/internal/grid"
	"github.com/shenikar/site_grid_system/internal/render"
	"github.com/shenikar/site_grid_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	siteService     service.SiteMapService
	locationService service.LocationService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(siteService service.SiteMapService, locationService service.LocationService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		siteService:     siteService,
		locationService: locationService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

func (h *Handler) projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return 0, false
	}
	return id, true
}

// writeServiceError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) writeServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Project not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
	case errors.Is(err, grid.ErrMissingAnchor):
		log.WithError(err).Warn("Project has no anchor point")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "missing_anchor"})
	case errors.Is(err, grid.ErrInvalidConfig):
		log.WithError(err).Warn("Project grid config is invalid")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid_grid_config"})
	case errors.Is(err, service.ErrCellOutOfRange):
		log.WithError(err).Warn("Cell is outside the grid")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cell_out_of_range"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) buildMap(c *gin.Context, log *logrus.Entry) (*render.Model, bool) {
	id, ok := h.projectID(c)
	if !ok {
		return nil, false
	}

	var input MapRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return nil, false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	q, err := DTOToMapQuery(id, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	model, err := h.siteService.BuildMap(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, log.WithField("project_id", id), err)
		return nil, false
	}
	return model, true
}

// @Summary Get grid map of a level
// @Description Build the classified grid of a project level for a date and zoom. Requires API key.
// @Tags Map
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Param level query string true "Level (floor) code"
// @Param zoom query number false "Map zoom" default(19)
// @Param date query string false "Plan date, YYYY-MM-DD"
// @Param worker_id query int false "Current worker ID"
// @Success 200 {object} render.Model
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 422 {object} map[string]string "Grid cannot be built"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects/{id}/map [get]
func (h *Handler) getMap(c *gin.Context) {
	log := h.logger.WithField("method", "getMap")
	model, ok := h.buildMap(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, model)
}

// @Summary Get grid map as GeoJSON
// @Description Same as the map endpoint, encoded as a GeoJSON FeatureCollection of cell polygons. Requires API key.
// @Tags Map
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Param level query string true "Level (floor) code"
// @Param zoom query number false "Map zoom" default(19)
// @Param date query string false "Plan date, YYYY-MM-DD"
// @Param worker_id query int false "Current worker ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 422 {object} map[string]string "Grid cannot be built"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects/{id}/map/geojson [get]
func (h *Handler) getMapGeoJSON(c *gin.Context) {
	log := h.logger.WithField("method", "getMapGeoJSON")
	model, ok := h.buildMap(c, log)
	if !ok {
		return
	}

	body, err := render.FeatureCollection(model).MarshalJSON()
	if err != nil {
		log.WithError(err).Error("Failed to encode GeoJSON")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", body)
}

// @Summary Select a grid cell
// @Description Resolve a clicked cell to its zone and publish a zone click event. Requires API key.
// @Tags Map
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Param cell body SelectCellRequest true "Clicked cell"
// @Success 200 {object} ZoneClickResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 422 {object} map[string]string "Cell or grid is invalid"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects/{id}/cells/select [post]
func (h *Handler) selectCell(c *gin.Context) {
	log := h.logger.WithField("method", "selectCell")
	id, ok := h.projectID(c)
	if !ok {
		return
	}

	var input SelectCellRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := DTOToCellQuery(id, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.siteService.SelectCell(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, log.WithField("project_id", id), err)
		return
	}
	c.JSON(http.StatusOK, ModelToZoneClickResponse(event))
}

// @Summary Select a grid cell by point
// @Description Resolve a clicked map point to its cell and zone and publish a zone click event. Requires API key.
// @Tags Map
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Param point body LocateCellRequest true "Clicked point"
// @Success 200 {object} ZoneClickResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 422 {object} map[string]string "Point outside the grid or grid is invalid"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects/{id}/cells/locate [post]
func (h *Handler) locateCell(c *gin.Context) {
	log := h.logger.WithField("method", "locateCell")
	id, ok := h.projectID(c)
	if !ok {
		return
	}

	var input LocateCellRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := DTOToPointQuery(id, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.siteService.LocateCell(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, log.WithField("project_id", id), err)
		return
	}
	c.JSON(http.StatusOK, ModelToZoneClickResponse(event))
}

// @Summary Refresh project
// @Description Drop the cached project so the next map request reads fresh grid parameters. Requires API key.
// @Tags Map
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid project ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects/{id}/refresh [post]
func (h *Handler) refreshProject(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "refreshProject").WithField("project_id", id)

	if err := h.siteService.RefreshProject(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to refresh project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Report worker location
// @Description Receive a periodic position report from a worker tracker. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body LocationReportRequest true "Location report"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [post]
func (h *Handler) reportLocation(c *gin.Context) {
	var input LocationReportRequest
	log := h.logger.WithField("method", "reportLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.locationService.ReportLocation(c.Request.Context(), DTOToLocationReport(input)); err != nil {
		log.WithError(err).Error("Failed to save location report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Get worker statistics
// @Description Count distinct workers that reported a position within the stats window. Requires API key.
// @Tags Location
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.locationService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{WorkerCount: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
