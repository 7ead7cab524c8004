package models

// PredictionSuccess - статус успешного прогноза
const PredictionSuccess = "success"

// RiskZone - прогнозируемая зона повышенного риска
type RiskZone struct {
	ID        int     `json:"id"`
	Lat       float64 `json:"lat" validate:"latitude"`
	Lon       float64 `json:"lon" validate:"longitude"`
	Radius    float64 `json:"radius" validate:"gte=0"`
	Label     string  `json:"label"`
	RiskScore float64 `json:"risk_score" validate:"gte=0,lte=1"`
}

// Prediction - ответ /analytics/prediction
type Prediction struct {
	Status string     `json:"status"`
	Zones  []RiskZone `json:"zones"`
}
