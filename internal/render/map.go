// Package render превращает ViewState в описание слоев карты.
// Сами примитивы карты рисует браузер (Leaflet), сервер отдает только данные.
package render

import (
	"fmt"
	"strings"

	"github.com/shenikar/city_response_dashboard/internal/models"
	"github.com/shenikar/city_response_dashboard/internal/view"
)

const (
	// IncidentRadiusMeters - радиус круга вокруг инцидента
	IncidentRadiusMeters = 300
	incidentFillOpacity  = 0.2

	riskColor       = "#ef4444"
	riskFillOpacity = 0.15
	riskDashArray   = "10, 10"
)

// incidentColors - цвета кругов по типу инцидента
var incidentColors = map[string]string{
	models.IncidentFire:     "#ef4444",
	models.IncidentAccident: "#f59e0b",
	models.IncidentMedical:  "#3b82f6",
	models.IncidentOther:    "#6b7280",
}

// IncidentColor возвращает цвет для типа инцидента, неизвестные типы серые
func IncidentColor(incidentType string) string {
	if color, ok := incidentColors[strings.ToLower(incidentType)]; ok {
		return color
	}
	return incidentColors[models.IncidentOther]
}

// MapOptions - параметры базовой карты
type MapOptions struct {
	TileURL     string
	Attribution string
	Zoom        int
}

// Tiles - базовый слой тайлов
type Tiles struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

// Viewport - положение карты.
// Браузер вызывает setView только при смене CenterRevision, поэтому
// масштаб и сдвиг оператора переживают обычные циклы опроса.
type Viewport struct {
	Center         view.LatLon `json:"center"`
	Zoom           int         `json:"zoom"`
	CenterRevision uint64      `json:"center_revision"`
}

// Popup - содержимое всплывающего окна
type Popup struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// Circle - круг с радиусом в метрах
type Circle struct {
	Center       view.LatLon `json:"center"`
	RadiusMeters float64     `json:"radius_meters"`
	Color        string      `json:"color"`
	FillColor    string      `json:"fill_color"`
	FillOpacity  float64     `json:"fill_opacity"`
	DashArray    string      `json:"dash_array,omitempty"`
}

// IncidentLayer - маркер и круг одного активного инцидента
type IncidentLayer struct {
	ID     int         `json:"id"`
	Marker view.LatLon `json:"marker"`
	Circle Circle      `json:"circle"`
	Popup  Popup       `json:"popup"`
}

// RiskZoneLayer - пунктирный круг зоны риска
type RiskZoneLayer struct {
	Key    string `json:"key"`
	Circle Circle `json:"circle"`
	Popup  Popup  `json:"popup"`
}

// MapView - полное описание карты для одного состояния
type MapView struct {
	Tiles              Tiles           `json:"tiles"`
	Viewport           Viewport        `json:"viewport"`
	Incidents          []IncidentLayer `json:"incidents"`
	RiskOverlayEnabled bool            `json:"risk_overlay_enabled"`
	RiskZones          []RiskZoneLayer `json:"risk_zones"`
}

// Map строит описание карты. Функция чистая.
func Map(s view.State, opts MapOptions) MapView {
	mv := MapView{
		Tiles: Tiles{URL: opts.TileURL, Attribution: opts.Attribution},
		Viewport: Viewport{
			Center:         s.MapCenter,
			Zoom:           opts.Zoom,
			CenterRevision: s.CenterRevision,
		},
		Incidents:          make([]IncidentLayer, 0, len(s.Incidents)),
		RiskOverlayEnabled: s.RiskOverlayEnabled,
		RiskZones:          []RiskZoneLayer{},
	}

	for _, incident := range s.Incidents {
		mv.Incidents = append(mv.Incidents, incidentLayer(incident))
	}

	if s.RiskOverlayEnabled {
		mv.RiskZones = make([]RiskZoneLayer, 0, len(s.RiskZones))
		for _, zone := range s.RiskZones {
			mv.RiskZones = append(mv.RiskZones, riskZoneLayer(zone))
		}
	}

	return mv
}

func incidentLayer(incident models.Incident) IncidentLayer {
	position := view.LatLon{Lat: incident.Location.Lat, Lon: incident.Location.Lon}
	color := IncidentColor(incident.Type)
	return IncidentLayer{
		ID:     incident.ID,
		Marker: position,
		Circle: Circle{
			Center:       position,
			RadiusMeters: IncidentRadiusMeters,
			Color:        color,
			FillColor:    color,
			FillOpacity:  incidentFillOpacity,
		},
		Popup: Popup{
			Title: strings.ToUpper(incident.Type),
			Lines: []string{
				incident.Description,
				"Status: " + incident.Status,
			},
		},
	}
}

func riskZoneLayer(zone models.RiskZone) RiskZoneLayer {
	return RiskZoneLayer{
		Key: fmt.Sprintf("zone-%d", zone.ID),
		Circle: Circle{
			Center:       view.LatLon{Lat: zone.Lat, Lon: zone.Lon},
			RadiusMeters: zone.Radius,
			Color:        riskColor,
			FillColor:    riskColor,
			FillOpacity:  riskFillOpacity,
			DashArray:    riskDashArray,
		},
		Popup: Popup{
			Title: zone.Label,
			Lines: []string{"Risk Score: " + FormatRiskScore(zone.RiskScore)},
		},
	}
}

// FormatRiskScore форматирует долю как процент с одним знаком: 0.83 -> "83.0%"
func FormatRiskScore(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}
