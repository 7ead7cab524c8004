package render

import "github.com/shenikar/city_response_dashboard/internal/view"

// DashboardView - все, что рисует страница: карта и три панели
type DashboardView struct {
	Map       MapView              `json:"map"`
	Agents    view.AgentPanelView  `json:"agents"`
	Decisions view.DecisionLogView `json:"decisions"`
	Stats     view.StatsView       `json:"stats"`
}

// Dashboard строит полный снимок для страницы
func Dashboard(s view.State, mode view.PanelMode, opts MapOptions) DashboardView {
	return DashboardView{
		Map:       Map(s, opts),
		Agents:    view.AgentPanel(s, mode),
		Decisions: view.DecisionLog(s),
		Stats:     view.StatsPanel(s),
	}
}
