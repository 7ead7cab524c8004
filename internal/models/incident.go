package models

import (
	"strings"
)

// Типы инцидентов, известные дашборду. Остальные значения отображаются как "other".
const (
	IncidentFire     = "fire"
	IncidentAccident = "accident"
	IncidentMedical  = "medical"
	IncidentOther    = "other"
)

// StatusResolved - статус закрытого инцидента, такие инциденты не отображаются
const StatusResolved = "resolved"

// Location - координаты инцидента
type Location struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

// Incident - снимок инцидента, полученный из /incidents
type Incident struct {
	ID          int      `json:"id" validate:"gt=0"`
	Type        string   `json:"type" validate:"required"`
	Location    Location `json:"location"`
	Description string   `json:"description"`
	Status      string   `json:"status" validate:"required"`
	Timestamp   *Time    `json:"timestamp,omitempty"`
}

// IsResolved сообщает, закрыт ли инцидент
func (i Incident) IsResolved() bool {
	return strings.EqualFold(strings.TrimSpace(i.Status), StatusResolved)
}

// NewIncident - тело запроса POST /incidents
type NewIncident struct {
	Type        string   `json:"type"`
	Location    Location `json:"location"`
	Description string   `json:"description"`
	Status      string   `json:"status,omitempty"`
}
