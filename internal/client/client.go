package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/city_response_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// Пути фидов бэкенда симуляции
const (
	PathIncidents  = "/incidents"
	PathAgents     = "/agents"
	PathHistory    = "/incident-history"
	PathPrediction = "/analytics/prediction"
	PathStats      = "/stats"
)

// Client - типизированная обертка над HTTP API симуляции.
// Ответы никогда не кешируются: каждый вызов уходит в сеть.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
	logger     *logrus.Logger
}

// New создает клиент для baseURL
func New(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		validate: validator.New(),
		logger:   logger,
	}
}

// FetchIncidents читает /incidents
func (c *Client) FetchIncidents(ctx context.Context) ([]models.Incident, error) {
	var incidents []models.Incident
	if err := c.getJSON(ctx, "incidents", PathIncidents, &incidents); err != nil {
		return nil, err
	}
	if incidents == nil {
		incidents = []models.Incident{}
	}
	for i := range incidents {
		if err := c.validate.Struct(incidents[i]); err != nil {
			return nil, decodeFailure("incidents", fmt.Errorf("item %d: %w", i, err))
		}
	}
	return incidents, nil
}

// FetchAgents читает /agents
func (c *Client) FetchAgents(ctx context.Context) ([]models.Agent, error) {
	var agents []models.Agent
	if err := c.getJSON(ctx, "agents", PathAgents, &agents); err != nil {
		return nil, err
	}
	if agents == nil {
		agents = []models.Agent{}
	}
	for i := range agents {
		if err := c.validate.Struct(agents[i]); err != nil {
			return nil, decodeFailure("agents", fmt.Errorf("item %d: %w", i, err))
		}
	}
	return agents, nil
}

// FetchDecisionHistory читает /incident-history. Порядок сервера сохраняется.
func (c *Client) FetchDecisionHistory(ctx context.Context) ([]models.DecisionLogEntry, error) {
	var entries []models.DecisionLogEntry
	if err := c.getJSON(ctx, "history", PathHistory, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.DecisionLogEntry{}
	}
	for i := range entries {
		if err := c.validate.Struct(entries[i]); err != nil {
			return nil, decodeFailure("history", fmt.Errorf("item %d: %w", i, err))
		}
	}
	return entries, nil
}

// FetchRiskZones читает /analytics/prediction.
// Статус ответа не проверяется здесь, это решает контроллер оверлея.
func (c *Client) FetchRiskZones(ctx context.Context) (*models.Prediction, error) {
	prediction := &models.Prediction{}
	if err := c.getJSON(ctx, "risk", PathPrediction, prediction); err != nil {
		return nil, err
	}
	if prediction.Zones == nil {
		prediction.Zones = []models.RiskZone{}
	}
	for i := range prediction.Zones {
		if err := c.validate.Struct(prediction.Zones[i]); err != nil {
			return nil, decodeFailure("risk", fmt.Errorf("zone %d: %w", i, err))
		}
	}
	return prediction, nil
}

// FetchStats читает /stats
func (c *Client) FetchStats(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{}
	if err := c.getJSON(ctx, "stats", PathStats, stats); err != nil {
		return nil, err
	}
	if err := c.validate.Struct(stats); err != nil {
		return nil, decodeFailure("stats", err)
	}
	return stats, nil
}

// CreateIncident отправляет POST /incidents и возвращает созданный инцидент
func (c *Client) CreateIncident(ctx context.Context, incident models.NewIncident) (*models.Incident, error) {
	payload, err := json.Marshal(incident)
	if err != nil {
		return nil, &CreateFailure{Err: fmt.Errorf("failed to marshal incident: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PathIncidents, bytes.NewReader(payload))
	if err != nil {
		return nil, &CreateFailure{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &CreateFailure{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, &CreateFailure{StatusCode: resp.StatusCode}
	}

	created := &models.Incident{}
	if err := json.NewDecoder(resp.Body).Decode(created); err != nil {
		return nil, &CreateFailure{Err: fmt.Errorf("failed to decode created incident: %w", err)}
	}
	return created, nil
}

// getJSON выполняет GET baseURL+path и декодирует тело в out
func (c *Client) getJSON(ctx context.Context, feed, path string, out any) error {
	reqURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &FetchFailure{Feed: feed, Kind: KindNetwork, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	c.logger.WithFields(logrus.Fields{"feed": feed, "url": reqURL}).Debug("Start HTTP GET request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchFailure{Feed: feed, Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return &FetchFailure{Feed: feed, Kind: KindHTTP, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchFailure{Feed: feed, Kind: KindNetwork, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return decodeFailure(feed, err)
	}
	return nil
}

func decodeFailure(feed string, err error) error {
	return &FetchFailure{Feed: feed, Kind: KindDecode, Err: err}
}
