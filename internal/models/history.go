package models

// DecisionLogEntry - запись журнала решений из /incident-history
type DecisionLogEntry struct {
	ID         int    `json:"id" validate:"gt=0"`
	IncidentID *int   `json:"incident_id"`
	AgentID    *int   `json:"agent_id"`
	Action     string `json:"action"`
	Detail     string `json:"detail"`
	Timestamp  Time   `json:"timestamp"`
}
