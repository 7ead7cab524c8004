package view

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shenikar/city_response_dashboard/internal/models"
)

// Placeholder выводится вместо отсутствующих значений, чтобы не путать их с нулем
const Placeholder = "--"

const clockLayout = "15:04:05"

// PanelMode - режим панели агентов
type PanelMode string

const (
	PanelAll        PanelMode = "all"
	PanelActiveOnly PanelMode = "active-only"
)

// ParsePanelMode разбирает режим панели
func ParsePanelMode(s string) (PanelMode, error) {
	switch PanelMode(s) {
	case PanelAll, PanelActiveOnly:
		return PanelMode(s), nil
	}
	return "", fmt.Errorf("unknown agent panel mode %q", s)
}

// AgentCard - карточка агента
type AgentCard struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Icon        string         `json:"icon"`
	Status      string         `json:"status"`
	Category    StatusCategory `json:"category"`
	Color       string         `json:"color"`
	Engaged     bool           `json:"engaged"`
	Assignment  string         `json:"assignment"`
	Efficiency  string         `json:"efficiency"`
	Responses   string         `json:"responses"`
	Successes   string         `json:"successes"`
	AvgDistance string         `json:"avg_distance"`
	LastUpdate  string         `json:"last_update,omitempty"`
	Decision    string         `json:"decision"`
	// Progress заполняется только в режиме active-only
	Progress *int `json:"progress,omitempty"`
}

// AgentPanelView - панель агентов
type AgentPanelView struct {
	Mode         PanelMode   `json:"mode"`
	Title        string      `json:"title"`
	Count        int         `json:"count"`
	EmptyMessage string      `json:"empty_message,omitempty"`
	Cards        []AgentCard `json:"cards"`
}

// AgentPanel строит панель агентов. В режиме all показываются все агенты,
// в режиме active-only - только занятые инцидентом.
func AgentPanel(s State, mode PanelMode) AgentPanelView {
	cards := make([]AgentCard, 0, len(s.Agents))
	for _, agent := range s.Agents {
		if mode == PanelActiveOnly && !agent.Engaged() {
			continue
		}
		cards = append(cards, agentCard(agent, mode))
	}

	panel := AgentPanelView{Mode: mode, Count: len(cards), Cards: cards}
	switch mode {
	case PanelActiveOnly:
		panel.Title = fmt.Sprintf("Active Responses (%d)", len(cards))
		if len(cards) == 0 {
			panel.EmptyMessage = "No active responses"
		}
	default:
		panel.Title = fmt.Sprintf("All Agents (%d)", len(cards))
		if len(cards) == 0 {
			panel.EmptyMessage = "No registered agents"
		}
	}
	return panel
}

func agentCard(agent models.Agent, mode PanelMode) AgentCard {
	category := CategoryOf(agent.Status)
	card := AgentCard{
		ID:          agent.ID,
		Name:        agent.Name,
		Icon:        agent.Icon,
		Status:      agent.Status,
		Category:    category,
		Color:       category.Color(),
		Engaged:     agent.Engaged(),
		Assignment:  "Idle",
		Efficiency:  formatFloat(agent.Efficiency) + "%",
		Responses:   formatInt(agent.TotalResponses),
		Successes:   formatInt(agent.SuccessfulResponses),
		AvgDistance: Placeholder,
		Decision:    Placeholder,
	}
	if agent.Engaged() {
		card.Assignment = fmt.Sprintf("Responding to Incident #%d", *agent.CurrentIncident)
	}
	if agent.ResponseTime != nil {
		card.AvgDistance = strconv.FormatFloat(*agent.ResponseTime, 'f', 2, 64)
	}
	if agent.Decision != nil && *agent.Decision != "" {
		card.Decision = *agent.Decision
	}
	if agent.UpdatedAt != nil {
		card.LastUpdate = agent.UpdatedAt.Format(clockLayout)
	}
	if mode == PanelActiveOnly {
		progress := 0
		if agent.Efficiency != nil {
			progress = int(math.Round(math.Max(0, math.Min(100, *agent.Efficiency))))
		}
		card.Progress = &progress
	}
	return card
}

// DecisionEntryView - строка журнала решений
type DecisionEntryView struct {
	ID       int    `json:"id"`
	Action   string `json:"action"`
	Time     string `json:"time"`
	Agent    string `json:"agent,omitempty"`
	Incident string `json:"incident,omitempty"`
	Detail   string `json:"detail"`
}

// DecisionLogView - панель журнала решений
type DecisionLogView struct {
	Title        string              `json:"title"`
	Count        int                 `json:"count"`
	EmptyMessage string              `json:"empty_message,omitempty"`
	Entries      []DecisionEntryView `json:"entries"`
}

// DecisionLog строит журнал в порядке сервера, без пересортировки
func DecisionLog(s State) DecisionLogView {
	entries := make([]DecisionEntryView, 0, len(s.History))
	for _, entry := range s.History {
		row := DecisionEntryView{
			ID:     entry.ID,
			Action: entry.Action,
			Detail: entry.Detail,
		}
		if !entry.Timestamp.IsZero() {
			row.Time = entry.Timestamp.Format(clockLayout)
		}
		if entry.AgentID != nil && *entry.AgentID != 0 {
			row.Agent = fmt.Sprintf("Agent %d", *entry.AgentID)
		}
		if entry.IncidentID != nil && *entry.IncidentID != 0 {
			row.Incident = fmt.Sprintf("Incident %d", *entry.IncidentID)
		}
		entries = append(entries, row)
	}

	log := DecisionLogView{
		Title:   fmt.Sprintf("Decision Log (%d)", len(entries)),
		Count:   len(entries),
		Entries: entries,
	}
	if len(entries) == 0 {
		log.EmptyMessage = "No recent logs"
	}
	return log
}

// StatsView - строка живой статистики
type StatsView struct {
	Loaded    bool   `json:"loaded"`
	Message   string `json:"message,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
	Active    int    `json:"active"`
	Resolved  int    `json:"resolved"`
}

// StatsPanel строит панель статистики
func StatsPanel(s State) StatsView {
	if s.Stats == nil {
		return StatsView{Message: "Loading stats..."}
	}
	return StatsView{
		Loaded:    true,
		UpdatedAt: formatClock(s.StatsAt),
		Active:    s.Stats.ActiveIncidents,
		Resolved:  s.Stats.ResolvedIncidents,
	}
}

func formatClock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(clockLayout)
}

func formatFloat(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return Placeholder
	}
	return strconv.Itoa(*v)
}
