package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// IncidentRef - ссылка агента на инцидент. Бэкенд отдает ее то числом, то строкой.
// Ноль означает, что агент свободен.
type IncidentRef int

// UnmarshalJSON принимает число или строку с числом; пустая строка и null дают ноль
func (r *IncidentRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); s == "" {
			*r = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("current_incident: %q is not an incident id", s)
		}
		*r = IncidentRef(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("current_incident: %w", err)
	}
	*r = IncidentRef(n)
	return nil
}

// Agent - снимок агента реагирования из /agents.
// Метрики могут отсутствовать, поэтому они указатели.
type Agent struct {
	ID                  int          `json:"id" validate:"gt=0"`
	Name                string       `json:"name" validate:"required"`
	Icon                string       `json:"icon"`
	Status              string       `json:"status"`
	CurrentIncident     *IncidentRef `json:"current_incident"`
	Decision            *string      `json:"decision"`
	ResponseTime        *float64     `json:"response_time" validate:"omitempty,gte=0"`
	Efficiency          *float64     `json:"efficiency" validate:"omitempty,gte=0"`
	TotalResponses      *int         `json:"total_responses" validate:"omitempty,gte=0"`
	SuccessfulResponses *int         `json:"successful_responses" validate:"omitempty,gte=0"`
	Lat                 *float64     `json:"lat" validate:"omitempty,latitude"`
	Lon                 *float64     `json:"lon" validate:"omitempty,longitude"`
	UpdatedAt           *Time        `json:"updated_at"`
}

// Engaged сообщает, занят ли агент инцидентом
func (a Agent) Engaged() bool {
	return a.CurrentIncident != nil && *a.CurrentIncident != 0
}

// Position возвращает координаты агента, если они известны
func (a Agent) Position() (lat, lon float64, ok bool) {
	if a.Lat == nil || a.Lon == nil {
		return 0, 0, false
	}
	return *a.Lat, *a.Lon, true
}
