package view

import "strings"

// StatusCategory - отображаемая категория статуса агента.
// Все панели получают категорию только через CategoryOf.
type StatusCategory string

const (
	CategoryResponding StatusCategory = "responding"
	CategoryAvailable  StatusCategory = "available"
	CategoryBusy       StatusCategory = "busy"
	CategoryNeutral    StatusCategory = "neutral"
)

// CategoryOf сопоставляет сырой статус без учета регистра
func CategoryOf(status string) StatusCategory {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "responding":
		return CategoryResponding
	case "available":
		return CategoryAvailable
	case "busy":
		return CategoryBusy
	default:
		return CategoryNeutral
	}
}

// Color - цвет бейджа категории
func (c StatusCategory) Color() string {
	switch c {
	case CategoryResponding:
		return "#eab308"
	case CategoryAvailable:
		return "#22c55e"
	case CategoryBusy:
		return "#ef4444"
	default:
		return "#3b82f6"
	}
}
