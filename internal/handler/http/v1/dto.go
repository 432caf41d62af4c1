package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/site_grid_system/internal/models"
)

const dateLayout = "2006-01-02"

// MapRequest параметры запроса карты уровня
// @Description Параметры запроса карты уровня
type MapRequest struct {
	Level    string  `form:"level" validate:"required,max=32"`
	Zoom     float64 `form:"zoom,default=19" validate:"gte=0,lte=24"`
	Date     string  `form:"date" validate:"omitempty,datetime=2006-01-02"`
	WorkerID int64   `form:"worker_id" validate:"gte=0"`
}

// SelectCellRequest DTO для клика по ячейке
// @Description DTO для клика по ячейке
type SelectCellRequest struct {
	Level string `json:"level" validate:"required,max=32"`
	Row   int    `json:"row" validate:"gte=0"`
	Col   int    `json:"col" validate:"gte=0"`
	Date  string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// LocateCellRequest DTO для клика по точке карты
// @Description DTO для клика по точке карты
type LocateCellRequest struct {
	Level string   `json:"level" validate:"required,max=32"`
	Lat   *float64 `json:"lat" validate:"required,latitude"`
	Lng   *float64 `json:"lng" validate:"required,longitude"`
	Date  string   `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// LocationReportRequest DTO отчета трекера
// @Description DTO отчета трекера
type LocationReportRequest struct {
	WorkerID     int64    `json:"worker_id" validate:"required,gt=0"`
	Lat          *float64 `json:"lat" validate:"required,latitude"`
	Lng          *float64 `json:"lng" validate:"required,longitude"`
	TrackingMode string   `json:"tracking_mode,omitempty" validate:"omitempty,oneof=GPS BLE"`
}

// ZoneClickResponse DTO события клика по зоне
// @Description DTO события клика по зоне
type ZoneClickResponse struct {
	EventID    uuid.UUID           `json:"event_id"`
	Row        int                 `json:"row"`
	Col        int                 `json:"col"`
	Lat        float64             `json:"lat"`
	Lng        float64             `json:"lng"`
	Name       string              `json:"name,omitempty"`
	Level      string              `json:"level,omitempty"`
	ID         *int64              `json:"id,omitempty"`
	Tasks      []models.WorkPlan   `json:"tasks"`
	Dangers    []models.DangerZone `json:"dangers"`
	OccurredAt time.Time           `json:"occurred_at"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	WorkerCount int `json:"worker_count"`
}
