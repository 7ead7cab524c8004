package v1

import "time"

// LocationRequest DTO координат
// @Description DTO координат
type LocationRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lon *float64 `json:"lon" validate:"required,longitude"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Type        string          `json:"type" validate:"required,min=2,max=64"`
	Location    LocationRequest `json:"location"`
	Description string          `json:"description" validate:"max=1024"`
	Status      string          `json:"status,omitempty" validate:"omitempty,oneof=active responding"`
}

// LocationResponse DTO координат в ответе
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          int              `json:"id"`
	Type        string           `json:"type"`
	Location    LocationResponse `json:"location"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	Timestamp   *time.Time       `json:"timestamp,omitempty"`
}

// OverlayResponse DTO состояния оверлея зон риска
// @Description DTO состояния оверлея зон риска
type OverlayResponse struct {
	Enabled bool `json:"enabled"`
	Zones   int  `json:"zones"`
}

// HealthResponse DTO для health-check
// @Description DTO для health-check
type HealthResponse struct {
	Status             string `json:"status"`
	IncidentsLoaded    bool   `json:"incidents_loaded"`
	RiskOverlayEnabled bool   `json:"risk_overlay_enabled"`
}
