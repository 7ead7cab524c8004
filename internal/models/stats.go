package models

// Stats - ответ /stats. Дашборд использует только счетчики инцидентов.
type Stats struct {
	ActiveIncidents   int `json:"active_incidents" validate:"gte=0"`
	ResolvedIncidents int `json:"resolved_incidents" validate:"gte=0"`
	TotalIncidents    int `json:"total_incidents,omitempty"`
	TotalAgents       int `json:"total_agents,omitempty"`
	ActiveAgents      int `json:"active_agents,omitempty"`
}
