package v1

import (
	"time"

	"github.com/shenikar/city_response_dashboard/internal/models"
	"github.com/shenikar/city_response_dashboard/internal/overlay"
)

// DTOToNewIncident преобразует DTO создания в тело запроса к бэкенду
func DTOToNewIncident(dto CreateIncidentRequest) models.NewIncident {
	return models.NewIncident{
		Type:        dto.Type,
		Location:    models.Location{Lat: *dto.Location.Lat, Lon: *dto.Location.Lon},
		Description: dto.Description,
		Status:      dto.Status,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		Type:        model.Type,
		Location:    LocationResponse{Lat: model.Location.Lat, Lon: model.Location.Lon},
		Description: model.Description,
		Status:      model.Status,
		Timestamp:   timestampOf(model.Timestamp),
	}
}

func timestampOf(t *models.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	ts := t.Time
	return &ts
}

// SnapshotToOverlayResponse преобразует состояние оверлея в DTO
func SnapshotToOverlayResponse(snap overlay.Snapshot) OverlayResponse {
	return OverlayResponse{
		Enabled: snap.Enabled,
		Zones:   len(snap.Zones),
	}
}
