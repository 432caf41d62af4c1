package service

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/site_grid_system/internal/models"
	"github.com/shenikar/site_grid_system/internal/render"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrCellOutOfRange = errors.New("cell is outside the grid")
)

// SiteRepository определяет контракт для чтения данных площадки
type SiteRepository interface {
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	GetProjectFromCache(ctx context.Context, id int64) (*models.Project, error)
	SetProjectCache(ctx context.Context, project *models.Project) error
	InvalidateProjectCache(ctx context.Context, id int64) error
	ListZones(ctx context.Context, projectID int64, level string) ([]models.Zone, error)
	ListWorkPlans(ctx context.Context, projectID int64, date time.Time) ([]models.WorkPlan, error)
	ListDangerZones(ctx context.Context, projectID int64, date time.Time) ([]models.DangerZone, error)
}

// LocationRepository определяет контракт для хранения позиций работников
type LocationRepository interface {
	SaveWorkerLocation(ctx context.Context, loc *models.WorkerLocation) error
	SetLatestPosition(ctx context.Context, loc *models.WorkerLocation) error
	GetActiveWorkerCount(ctx context.Context, minutes int) (int, error)
}

// SiteMapService строит карту сетки и обрабатывает клики по ячейкам
type SiteMapService interface {
	BuildMap(ctx context.Context, q models.MapQuery) (*render.Model, error)
	SelectCell(ctx context.Context, q models.CellQuery) (*models.ZoneClickEvent, error)
	LocateCell(ctx context.Context, q models.PointQuery) (*models.ZoneClickEvent, error)
	RefreshProject(ctx context.Context, projectID int64) error
}

// LocationService принимает отчеты трекеров
type LocationService interface {
	ReportLocation(ctx context.Context, report models.LocationReport) error
	GetStats(ctx context.Context) (int, error)
}

// planDay приводит дату к началу суток UTC, нулевая дата означает сегодня
func planDay(date time.Time, now func() time.Time) time.Time {
	if date.IsZero() {
		date = now()
	}
	y, m, d := date.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
