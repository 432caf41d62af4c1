// Package render собирает модель отрисовки: сетка -> сопоставление зон -> статусы -> масштаб.
package render

import (
	"github.com/paulmach/orb"
	"github.com/shenikar/site_grid_system/internal/models"
	"github.com/shenikar/site_grid_system/internal/scale"
	"github.com/shenikar/site_grid_system/internal/status"
)

// Input - снимок всех входов одного прохода
type Input struct {
	Anchor      *models.AnchorPoint
	Grid        models.GridConfig
	Level       string
	Zoom        float64
	Zones       []models.Zone
	Plans       []models.WorkPlan
	Dangers     []models.DangerZone
	MyZoneNames []string
}

// ZoneRef - интерактивная часть ячейки, есть только у ячеек с сопоставленной зоной
type ZoneRef struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Level string          `json:"level"`
	Type  models.ZoneType `json:"type"`
}

type Label struct {
	Text         string  `json:"text"`
	FontSize     float64 `json:"font_size"`
	Padding      float64 `json:"padding"`
	BorderRadius float64 `json:"border_radius"`
	IconSize     float64 `json:"icon_size"`
}

type Cell struct {
	Row            int                  `json:"row"`
	Col            int                  `json:"col"`
	Name           string               `json:"name"`
	Center         models.LatLng        `json:"center"`
	Bounds         orb.Bound            `json:"bounds"`
	Classification status.Classification `json:"classification"`
	Style          status.Style         `json:"style"`
	Zone           *ZoneRef             `json:"zone,omitempty"`
	Label          *Label               `json:"label,omitempty"`
	Roster         []status.RosterEntry `json:"roster,omitempty"`
}

// ListEntry - зона уровня, которая не попала в сетку
type ListEntry struct {
	Zone   ZoneRef              `json:"zone"`
	Status status.ZoneStatus    `json:"status"`
	Roster []status.RosterEntry `json:"roster,omitempty"`
}

// Model - результат прохода. Модель только для чтения: Memo отдает один и тот же
// указатель всем вызывающим с одинаковыми входами.
type Model struct {
	Fingerprint    string        `json:"fingerprint,omitempty"`
	Level          string        `json:"level"`
	Rows           int           `json:"rows"`
	Cols           int           `json:"cols"`
	Scale          scale.Style   `json:"scale"`
	Cells          []Cell        `json:"cells"`
	ListOnly       []ListEntry   `json:"list_only,omitempty"`
	Statuses       status.Result `json:"statuses"`
	DuplicateNames []string      `json:"duplicate_names,omitempty"`
}

// Cell возвращает ячейку (row, col) или nil
func (m *Model) Cell(row, col int) *Cell {
	if row < 0 || row >= m.Rows || col < 0 || col >= m.Cols {
		return nil
	}
	return &m.Cells[row*m.Cols+col]
}

func refOf(z models.Zone) ZoneRef {
	return ZoneRef{ID: z.ID, Name: z.Name, Level: z.Level, Type: z.Type}
}
