package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/city_response_dashboard/internal/config"
	"github.com/shenikar/city_response_dashboard/internal/models"
	"github.com/shenikar/city_response_dashboard/internal/overlay"
	"github.com/shenikar/city_response_dashboard/internal/render"
	"github.com/shenikar/city_response_dashboard/internal/service/mocks"
	"github.com/shenikar/city_response_dashboard/internal/view"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T, apiKeys ...string) (*Handler, *mocks.MockDashboardService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDashboardService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:        apiKeys,
		AgentPanelMode: config.AgentPanelAll,
	}

	handler := NewHandler(mockService, nil, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	handler.RegisterPages(router)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func validRequest() CreateIncidentRequest {
	lat, lon := 40.7, -74.0
	return CreateIncidentRequest{
		Type:        "fire",
		Location:    LocationRequest{Lat: &lat, Lon: &lon},
		Description: "warehouse",
	}
}

func TestCreateIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := validRequest()

	mockService.EXPECT().
		CreateIncident(gomock.Any(), models.NewIncident{
			Type:        "fire",
			Location:    models.Location{Lat: 40.7, Lon: -74.0},
			Description: "warehouse",
		}).
		Return(&models.Incident{ID: 42, Type: "fire", Location: models.Location{Lat: 40.7, Lon: -74.0}, Description: "warehouse", Status: "active"}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, reqBody))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.ID)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, LocationResponse{Lat: 40.7, Lon: -74.0}, resp.Location)
}

func TestCreateIncident_ZeroCoordinatesAreValid(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	zero := 0.0
	reqBody := CreateIncidentRequest{Type: "flood", Location: LocationRequest{Lat: &zero, Lon: &zero}}

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(&models.Incident{ID: 1, Type: "flood", Status: "active"}, nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateIncident_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	badLat := 91.0
	missing := validRequest()
	missing.Location.Lon = nil
	outOfRange := validRequest()
	outOfRange.Location.Lat = &badLat
	badStatus := validRequest()
	badStatus.Status = "resolved"
	noType := validRequest()
	noType.Type = ""

	for name, req := range map[string]CreateIncidentRequest{
		"missing lon":  missing,
		"lat range":    outOfRange,
		"bad status":   badStatus,
		"missing type": noType,
	} {
		t.Run(name, func(t *testing.T) {
			w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, req))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			// Текст ошибки валидатора остается в логах
			assert.JSONEq(t, `{"error":"invalid incident"}`, w.Body.String())
		})
	}
}

func TestCreateIncident_InvalidBody(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", strings.NewReader(`{"type":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String())
}

func TestCreateIncident_BackendFailure(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(nil, errors.New("backend down")).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, validRequest()))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"could not create incident"}`, w.Body.String())
}

func TestCreateIncident_APIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t, "test-api-key")
	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(&models.Incident{ID: 5, Type: "fire", Status: "active"}, nil).Times(2)

	// Без ключа
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, validRequest()))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"API key required"}`, w.Body.String())

	// Неверный ключ
	w = makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, validRequest()), map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid API key"}`, w.Body.String())

	// Верный ключ в обоих заголовках
	w = makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, validRequest()), map[string]string{"X-API-Key": "test-api-key"})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, validRequest()), map[string]string{"Authorization": "Bearer test-api-key"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestToggleRiskOverlay(t *testing.T) {
	tests := []struct {
		name     string
		snap     overlay.Snapshot
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "enabled",
			snap:     overlay.Snapshot{Mode: overlay.Enabled, Enabled: true, Zones: []models.RiskZone{{ID: 1}, {ID: 2}}},
			wantCode: http.StatusOK,
			wantBody: `{"enabled":true,"zones":2}`,
		},
		{
			name:     "disabled",
			snap:     overlay.Snapshot{Mode: overlay.Disabled},
			wantCode: http.StatusOK,
			wantBody: `{"enabled":false,"zones":0}`,
		},
		{
			name:     "prediction unavailable",
			err:      overlay.ErrPredictionUnavailable,
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"error":"risk prediction is not available"}`,
		},
		{
			name:     "superseded",
			err:      overlay.ErrActivationSuperseded,
			wantCode: http.StatusConflict,
			wantBody: `{"error":"activation superseded by a newer toggle"}`,
		},
		{
			name:     "backend failure",
			err:      errors.New("connection refused"),
			wantCode: http.StatusBadGateway,
			wantBody: `{"error":"could not load risk zones"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().ToggleRiskOverlay(gomock.Any()).Return(tt.snap, tt.err).Times(1)

			w := makeRequest(router, http.MethodPost, "/api/v1/risk-overlay/toggle", nil)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestGetView_PanelMode(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	// Ожидания
	mockService.EXPECT().View(view.PanelMode("")).Return(render.DashboardView{}).Times(1)
	mockService.EXPECT().View(view.PanelActiveOnly).Return(render.DashboardView{
		Agents: view.AgentPanelView{Mode: view.PanelActiveOnly, Title: "Active Agents"},
	}).Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/view", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/view?mode=active-only", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Проверки
	var resp render.DashboardView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, view.PanelActiveOnly, resp.Agents.Mode)
}

func TestGetAgentPanel_UnknownMode(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().AgentPanel(gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/panels/agents?mode=responding", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"mode must be all or active-only"}`, w.Body.String())
}

func TestPanels(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AgentPanel(view.PanelAll).Return(view.AgentPanelView{Mode: view.PanelAll, Count: 2}).Times(1)
	mockService.EXPECT().DecisionLog().Return(view.DecisionLogView{EmptyMessage: "No recent logs"}).Times(1)
	mockService.EXPECT().Stats().Return(view.StatsView{Message: "Loading stats..."}).Times(1)
	mockService.EXPECT().Map().Return(render.MapView{RiskOverlayEnabled: true}).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/panels/agents?mode=all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var agents view.AgentPanelView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &agents))
	assert.Equal(t, 2, agents.Count)

	w = makeRequest(router, http.MethodGet, "/api/v1/panels/decisions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No recent logs")

	w = makeRequest(router, http.MethodGet, "/api/v1/panels/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/map", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var m render.MapView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.True(t, m.RiskOverlayEnabled)
}

func TestHealthCheck(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	s := view.Initial()
	s.IncidentsLoaded = true
	mockService.EXPECT().Snapshot().Return(s).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","incidents_loaded":true,"risk_overlay_enabled":false}`, w.Body.String())
}

func TestIndex_RendersPage(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().View(view.PanelMode("")).Return(render.DashboardView{}).Times(1)

	w := makeRequest(router, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<title>City Response Dashboard</title>")
}

func TestStreamRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	called := false
	h := NewHandler(mocks.NewMockDashboardService(ctrl), func(c *gin.Context) {
		called = true
		c.Status(http.StatusSwitchingProtocols)
	}, logger, &config.Config{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))

	makeRequest(router, http.MethodGet, "/api/v1/ws", nil)

	assert.True(t, called)
}
