package view

import (
	"testing"
	"time"

	"github.com/shenikar/city_response_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentPanel_MissingMetricsUsePlaceholder(t *testing.T) {
	s := Initial()
	s.Agents = []models.Agent{{ID: 1, Name: "Ambulance Agent", Icon: "🚑", Status: "Available"}}

	panel := AgentPanel(s, PanelAll)

	require.Len(t, panel.Cards, 1)
	card := panel.Cards[0]
	assert.Equal(t, "--%", card.Efficiency)
	assert.NotEqual(t, "0%", card.Efficiency)
	assert.Equal(t, Placeholder, card.Responses)
	assert.Equal(t, Placeholder, card.Successes)
	assert.Equal(t, Placeholder, card.AvgDistance)
	assert.Equal(t, Placeholder, card.Decision)
	assert.Equal(t, "Idle", card.Assignment)
	assert.Empty(t, card.LastUpdate)
	assert.Nil(t, card.Progress)
}

func TestAgentPanel_ZeroIsNotPlaceholder(t *testing.T) {
	s := Initial()
	s.Agents = []models.Agent{{
		ID:                  1,
		Name:                "Fire Agent",
		Efficiency:          ptr(0.0),
		TotalResponses:      ptr(0),
		SuccessfulResponses: ptr(0),
		ResponseTime:        ptr(1.5),
	}}

	card := AgentPanel(s, PanelAll).Cards[0]

	assert.Equal(t, "0%", card.Efficiency)
	assert.Equal(t, "0", card.Responses)
	assert.Equal(t, "0", card.Successes)
	assert.Equal(t, "1.50", card.AvgDistance)
}

func TestAgentPanel_EngagedAgent(t *testing.T) {
	ref := models.IncidentRef(7)
	updated := models.Time{Time: time.Date(2025, 1, 1, 14, 3, 9, 0, time.UTC)}
	s := Initial()
	s.Agents = []models.Agent{{
		ID:              1,
		Name:            "Fire Agent",
		Status:          "RESPONDING",
		CurrentIncident: &ref,
		Decision:        ptr("Dispatching to warehouse fire"),
		Efficiency:      ptr(87.5),
		UpdatedAt:       &updated,
	}}

	card := AgentPanel(s, PanelAll).Cards[0]

	assert.True(t, card.Engaged)
	assert.Equal(t, "Responding to Incident #7", card.Assignment)
	assert.Equal(t, CategoryResponding, card.Category)
	assert.Equal(t, "87.5%", card.Efficiency)
	assert.Equal(t, "Dispatching to warehouse fire", card.Decision)
	assert.Equal(t, "14:03:09", card.LastUpdate)
}

func TestAgentPanel_Modes(t *testing.T) {
	ref := models.IncidentRef(3)
	s := Initial()
	s.Agents = []models.Agent{
		{ID: 1, Name: "Fire Agent", Status: "Responding", CurrentIncident: &ref, Efficiency: ptr(140.0)},
		{ID: 2, Name: "Police Agent", Status: "Available"},
	}

	all := AgentPanel(s, PanelAll)
	assert.Equal(t, "All Agents (2)", all.Title)
	assert.Len(t, all.Cards, 2)

	active := AgentPanel(s, PanelActiveOnly)
	assert.Equal(t, "Active Responses (1)", active.Title)
	require.Len(t, active.Cards, 1)
	assert.Equal(t, 1, active.Cards[0].ID)
	require.NotNil(t, active.Cards[0].Progress)
	assert.Equal(t, 100, *active.Cards[0].Progress)
}

func TestAgentPanel_EmptyMessages(t *testing.T) {
	assert.Equal(t, "No registered agents", AgentPanel(Initial(), PanelAll).EmptyMessage)
	assert.Equal(t, "No active responses", AgentPanel(Initial(), PanelActiveOnly).EmptyMessage)
}

func TestParsePanelMode(t *testing.T) {
	mode, err := ParsePanelMode("active-only")
	require.NoError(t, err)
	assert.Equal(t, PanelActiveOnly, mode)

	_, err = ParsePanelMode("responding")
	assert.Error(t, err)
}

func TestDecisionLog_ServerOrderAndTags(t *testing.T) {
	s := Initial()
	s.History = []models.DecisionLogEntry{
		{ID: 9, IncidentID: ptr(7), AgentID: ptr(1), Action: "DISPATCH", Detail: "closest unit", Timestamp: models.Time{Time: time.Date(2025, 1, 1, 10, 0, 3, 0, time.UTC)}},
		{ID: 4, IncidentID: ptr(0), Action: "ASSESS", Detail: "severity high", Timestamp: models.Time{Time: time.Date(2025, 1, 1, 10, 0, 1, 0, time.UTC)}},
	}

	log := DecisionLog(s)

	assert.Equal(t, "Decision Log (2)", log.Title)
	assert.Empty(t, log.EmptyMessage)
	require.Len(t, log.Entries, 2)
	assert.Equal(t, 9, log.Entries[0].ID)
	assert.Equal(t, "Agent 1", log.Entries[0].Agent)
	assert.Equal(t, "Incident 7", log.Entries[0].Incident)
	assert.Equal(t, "10:00:03", log.Entries[0].Time)
	assert.Equal(t, 4, log.Entries[1].ID)
	assert.Empty(t, log.Entries[1].Agent)
	assert.Empty(t, log.Entries[1].Incident)
}

func TestDecisionLog_Empty(t *testing.T) {
	log := DecisionLog(Initial())
	assert.Equal(t, "No recent logs", log.EmptyMessage)
	assert.NotNil(t, log.Entries)
}

func TestStatsPanel(t *testing.T) {
	assert.Equal(t, StatsView{Message: "Loading stats..."}, StatsPanel(Initial()))

	s := Initial()
	s.Stats = &models.Stats{ActiveIncidents: 3, ResolvedIncidents: 8}
	s.StatsAt = time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)

	view := StatsPanel(s)
	assert.True(t, view.Loaded)
	assert.Equal(t, 3, view.Active)
	assert.Equal(t, 8, view.Resolved)
	assert.Equal(t, "09:30:00", view.UpdatedAt)
}
