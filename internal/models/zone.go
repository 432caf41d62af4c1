package models

type ZoneType string

const (
	ZoneTypeIndoor  ZoneType = "INDOOR"
	ZoneTypeOutdoor ZoneType = "OUTDOOR"
	ZoneTypeRoof    ZoneType = "ROOF"
	ZoneTypePit     ZoneType = "PIT"
	ZoneTypeDanger  ZoneType = "DANGER"
)

// Zone - именованная зона площадки на конкретном уровне (этаже).
// Имя уникально в пределах уровня. Зона без координат отображается только списком.
type Zone struct {
	ID        int64         `json:"id"`
	ProjectID int64         `json:"project_id,omitempty"`
	Name      string        `json:"name"`
	Level     string        `json:"level"`
	Type      ZoneType      `json:"type"`
	Lat       *float64      `json:"lat,omitempty"`
	Lng       *float64      `json:"lng,omitempty"`
	Tasks     []WorkTaskRef `json:"tasks,omitempty"`
	Dangers   []DangerRef   `json:"dangers,omitempty"`
}

// HasLocation сообщает, может ли зона участвовать в отрисовке сетки
func (z *Zone) HasLocation() bool {
	return z.Lat != nil && z.Lng != nil
}

// WorkTaskRef - ссылка на работу, назначенную на зону
type WorkTaskRef struct {
	ZoneID      int64        `json:"zone_id"`
	WorkType    string       `json:"work_type"`
	Allocations []Allocation `json:"allocations,omitempty"`
}

// DangerRef - ссылка на запись об опасности в зоне
type DangerRef struct {
	ZoneID      int64  `json:"zone_id"`
	RiskType    string `json:"risk_type"`
	Description string `json:"description,omitempty"`
}
