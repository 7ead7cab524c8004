package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Снимки состояния для отрисовки
	api.GET("/view", h.getView)
	api.GET("/map", h.getMap)
	api.GET("/state", h.getState)

	panels := api.Group("/panels")
	{
		panels.GET("/agents", h.getAgentPanel)
		panels.GET("/decisions", h.getDecisionLog)
		panels.GET("/stats", h.getStatsPanel)
	}

	// Действия оператора
	api.POST("/risk-overlay/toggle", h.toggleRiskOverlay)
	api.POST("/incidents", APIKeyAuthMiddleware(h.cfg, h.logger), h.createIncident)

	// Поток обновлений
	if h.stream != nil {
		api.GET("/ws", h.stream)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

// RegisterPages регистрирует HTML-оболочку дашборда
func (h *Handler) RegisterPages(router gin.IRoutes) {
	router.GET("/", h.index)
}
