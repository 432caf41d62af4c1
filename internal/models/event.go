package models

import (
	"time"

	"github.com/google/uuid"
)

// ZoneClickEvent передается хост-интерфейсу для открытия панели зоны.
// Для ячейки без зоны заполняются только координаты и позиция в сетке.
type ZoneClickEvent struct {
	EventID    uuid.UUID    `json:"event_id"`
	ProjectID  int64        `json:"project_id"`
	Row        int          `json:"row"`
	Col        int          `json:"col"`
	Lat        float64      `json:"lat"`
	Lng        float64      `json:"lng"`
	Name       string       `json:"name,omitempty"`
	Level      string       `json:"level,omitempty"`
	ID         *int64       `json:"id,omitempty"`
	Tasks      []WorkPlan   `json:"tasks,omitempty"`
	Dangers    []DangerZone `json:"dangers,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}
