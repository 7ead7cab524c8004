// Package view сводит результаты фидов в единое состояние для отрисовки.
// Все функции пакета чистые: State никогда не изменяется на месте,
// каждое применение возвращает новое значение.
package view

import (
	"time"

	"github.com/shenikar/city_response_dashboard/internal/models"
)

// LatLon - точка на карте
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DefaultCenter - центр карты, пока неизвестно ничего лучше (Нью-Йорк)
var DefaultCenter = LatLon{Lat: 40.7128, Lon: -74.0060}

// State - согласованный снимок, из которого рисуются карта и панели
type State struct {
	Incidents       []models.Incident         `json:"incidents"`
	IncidentsLoaded bool                      `json:"incidents_loaded"`
	Agents          []models.Agent            `json:"agents"`
	History         []models.DecisionLogEntry `json:"history"`
	Stats           *models.Stats             `json:"stats,omitempty"`
	StatsAt         time.Time                 `json:"stats_at,omitempty"`

	MapCenter LatLon `json:"map_center"`
	// CenterRevision растет только при реальной смене центра
	CenterRevision uint64 `json:"center_revision"`

	RiskOverlayEnabled bool              `json:"risk_overlay_enabled"`
	RiskZones          []models.RiskZone `json:"risk_zones"`
}

// Initial возвращает состояние до первого опроса
func Initial() State {
	return State{
		Incidents: []models.Incident{},
		Agents:    []models.Agent{},
		History:   []models.DecisionLogEntry{},
		MapCenter: DefaultCenter,
		RiskZones: []models.RiskZone{},
	}
}

// WithOverlay возвращает состояние с новым положением оверлея риска.
// Выключенный оверлей не хранит зоны.
func WithOverlay(prev State, enabled bool, zones []models.RiskZone) State {
	next := prev
	next.RiskOverlayEnabled = enabled
	if !enabled || zones == nil {
		next.RiskZones = []models.RiskZone{}
		return next
	}
	next.RiskZones = zones
	return next
}
