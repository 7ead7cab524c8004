package v1

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/city_response_dashboard/internal/config"
	"github.com/shenikar/city_response_dashboard/internal/overlay"
	"github.com/shenikar/city_response_dashboard/internal/render"
	"github.com/shenikar/city_response_dashboard/internal/service"
	"github.com/shenikar/city_response_dashboard/internal/view"
	"github.com/sirupsen/logrus"
)

const (
	apiBasePath = "/api/v1"
	pageTitle   = "City Response Dashboard"
)

type Handler struct {
	dashboard service.DashboardService
	// stream - обработчик WebSocket; nil отключает маршрут
	stream   gin.HandlerFunc
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(dashboard service.DashboardService, stream gin.HandlerFunc, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dashboard: dashboard,
		stream:    stream,
		logger:    logger,
		validate:  validator.New(),
		cfg:       cfg,
	}
}

// panelMode читает ?mode=; пустое значение означает режим из конфигурации
func (h *Handler) panelMode(c *gin.Context) (view.PanelMode, bool) {
	raw := c.Query("mode")
	if raw == "" {
		return "", true
	}
	mode, err := view.ParsePanelMode(raw)
	if err != nil {
		h.logger.WithError(err).WithField("path", c.FullPath()).Warn("Unknown panel mode requested")
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be all or active-only"})
		return "", false
	}
	return mode, true
}

// @Summary Get the whole dashboard view
// @Description Map layers and all three panels built from one consistent snapshot
// @Tags View
// @Produce json
// @Param mode query string false "Agent panel mode" Enums(all, active-only)
// @Success 200 {object} render.DashboardView
// @Failure 400 {object} map[string]string "Unknown panel mode"
// @Router /view [get]
func (h *Handler) getView(c *gin.Context) {
	mode, ok := h.panelMode(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.dashboard.View(mode))
}

// @Summary Get the map layers
// @Description Tiles, viewport, incident circles and risk zones
// @Tags View
// @Produce json
// @Success 200 {object} render.MapView
// @Router /map [get]
func (h *Handler) getMap(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Map())
}

// @Summary Get the raw view state
// @Description Reconciled feed data the map and the panels are rendered from
// @Tags View
// @Produce json
// @Success 200 {object} view.State
// @Router /state [get]
func (h *Handler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Snapshot())
}

// @Summary Get the agent panel
// @Tags Panels
// @Produce json
// @Param mode query string false "Agent panel mode" Enums(all, active-only)
// @Success 200 {object} view.AgentPanelView
// @Failure 400 {object} map[string]string "Unknown panel mode"
// @Router /panels/agents [get]
func (h *Handler) getAgentPanel(c *gin.Context) {
	mode, ok := h.panelMode(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.dashboard.AgentPanel(mode))
}

// @Summary Get the decision log panel
// @Tags Panels
// @Produce json
// @Success 200 {object} view.DecisionLogView
// @Router /panels/decisions [get]
func (h *Handler) getDecisionLog(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.DecisionLog())
}

// @Summary Get the live stats panel
// @Tags Panels
// @Produce json
// @Success 200 {object} view.StatsView
// @Router /panels/stats [get]
func (h *Handler) getStatsPanel(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Stats())
}

// @Summary Toggle the risk overlay
// @Description Enabling fetches the risk prediction first; the overlay stays disabled if it fails
// @Tags Overlay
// @Produce json
// @Success 200 {object} OverlayResponse
// @Failure 409 {object} map[string]string "Activation superseded by a newer toggle"
// @Failure 502 {object} map[string]string "Prediction backend failed"
// @Failure 503 {object} map[string]string "Prediction not available"
// @Router /risk-overlay/toggle [post]
func (h *Handler) toggleRiskOverlay(c *gin.Context) {
	log := h.logger.WithField("method", "toggleRiskOverlay")

	snap, err := h.dashboard.ToggleRiskOverlay(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, overlay.ErrPredictionUnavailable):
			log.WithError(err).Warn("Risk prediction is not available")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "risk prediction is not available"})
		case errors.Is(err, overlay.ErrActivationSuperseded):
			log.WithError(err).Info("Overlay activation superseded")
			c.JSON(http.StatusConflict, gin.H{"error": "activation superseded by a newer toggle"})
		default:
			log.WithError(err).Error("Failed to toggle risk overlay")
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not load risk zones"})
		}
		return
	}
	c.JSON(http.StatusOK, SnapshotToOverlayResponse(snap))
}

// @Summary Create a new incident
// @Description Forwards the incident to the simulation backend and refreshes the incident feed
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend rejected the incident"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident"})
		return
	}

	created, err := h.dashboard.CreateIncident(c.Request.Context(), DTOToNewIncident(input))
	if err != nil {
		log.WithError(err).Error("Failed to create incident in service")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not create incident"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(created))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	s := h.dashboard.Snapshot()
	c.JSON(http.StatusOK, HealthResponse{
		Status:             "ok",
		IncidentsLoaded:    s.IncidentsLoaded,
		RiskOverlayEnabled: s.RiskOverlayEnabled,
	})
}

// index отдает HTML-оболочку с первым снимком
func (h *Handler) index(c *gin.Context) {
	var buf bytes.Buffer
	err := render.Page(&buf, render.PageData{
		Title:     pageTitle,
		APIBase:   apiBasePath,
		PanelMode: h.cfg.AgentPanelMode,
		Initial:   h.dashboard.View(""),
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to render dashboard page")
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
