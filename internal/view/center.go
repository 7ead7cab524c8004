package view

import "github.com/shenikar/city_response_dashboard/internal/models"

// CenteringPolicy выбирает центр карты по агентам, когда активных инцидентов нет
type CenteringPolicy func(agents []models.Agent) (LatLon, bool)

// FirstKnownAgentPosition берет позицию первого агента, у которого она известна
func FirstKnownAgentPosition(agents []models.Agent) (LatLon, bool) {
	for _, agent := range agents {
		if lat, lon, ok := agent.Position(); ok {
			return LatLon{Lat: lat, Lon: lon}, true
		}
	}
	return LatLon{}, false
}

// Recenter применяет политику центрирования. Если к моменту применения
// появились активные инциденты или позиций нет, центр не меняется.
func Recenter(prev State, agents []models.Agent, policy CenteringPolicy) State {
	if len(prev.Incidents) > 0 {
		return prev
	}
	center, ok := policy(agents)
	if !ok || center == prev.MapCenter {
		return prev
	}
	next := prev
	next.MapCenter = center
	next.CenterRevision++
	return next
}
