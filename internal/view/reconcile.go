package view

import (
	"time"

	"github.com/shenikar/city_response_dashboard/internal/models"
	"github.com/shenikar/city_response_dashboard/internal/poller"
)

// Result - результат одного цикла опроса фида
type Result struct {
	Feed       poller.Feed
	Incidents  []models.Incident
	Agents     []models.Agent
	History    []models.DecisionLogEntry
	Stats      *models.Stats
	ReceivedAt time.Time
	Err        error
}

// Effects - последствия применения результата, которые исполняет вызывающий
type Effects struct {
	// RecenterFromAgents - активных инцидентов нет, центр берется по агентам
	RecenterFromAgents bool
	Appeared           []models.Incident
	Cleared            []models.Incident
}

// Reconcile применяет результат фида к prev.
//
// Ошибки фидов обрабатываются асимметрично: инциденты и статистика при сбое
// остаются прежними, а список агентов и журнал решений становятся пустыми.
func Reconcile(prev State, res Result) (State, Effects) {
	next := prev
	var fx Effects

	switch res.Feed {
	case poller.FeedIncidents:
		if res.Err != nil {
			return prev, fx
		}
		next.Incidents = ActiveIncidents(res.Incidents)
		next.IncidentsLoaded = true
		if prev.IncidentsLoaded {
			fx.Appeared, fx.Cleared = DiffIncidents(prev.Incidents, next.Incidents)
		}
		fx.RecenterFromAgents = len(next.Incidents) == 0

	case poller.FeedAgents:
		if res.Err != nil || res.Agents == nil {
			next.Agents = []models.Agent{}
			break
		}
		next.Agents = res.Agents

	case poller.FeedHistory:
		if res.Err != nil || res.History == nil {
			next.History = []models.DecisionLogEntry{}
			break
		}
		next.History = res.History

	case poller.FeedStats:
		if res.Err != nil || res.Stats == nil {
			return prev, fx
		}
		stats := *res.Stats
		next.Stats = &stats
		next.StatsAt = res.ReceivedAt
	}

	return next, fx
}

// ActiveIncidents отбрасывает закрытые инциденты, сохраняя порядок сервера
func ActiveIncidents(incidents []models.Incident) []models.Incident {
	active := make([]models.Incident, 0, len(incidents))
	for _, incident := range incidents {
		if incident.IsResolved() {
			continue
		}
		active = append(active, incident)
	}
	return active
}

// DiffIncidents сравнивает два набора по ID
func DiffIncidents(prev, next []models.Incident) (appeared, cleared []models.Incident) {
	before := make(map[int]struct{}, len(prev))
	for _, incident := range prev {
		before[incident.ID] = struct{}{}
	}
	after := make(map[int]struct{}, len(next))
	for _, incident := range next {
		after[incident.ID] = struct{}{}
		if _, ok := before[incident.ID]; !ok {
			appeared = append(appeared, incident)
		}
	}
	for _, incident := range prev {
		if _, ok := after[incident.ID]; !ok {
			cleared = append(cleared, incident)
		}
	}
	return appeared, cleared
}
