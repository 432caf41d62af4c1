package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/site_grid_system/internal/config"
	"github.com/shenikar/site_grid_system/internal/grid"
	"github.com/shenikar/site_grid_system/internal/metrics"
	"github.com/shenikar/site_grid_system/internal/models"
	"github.com/shenikar/site_grid_system/internal/render"
	"github.com/shenikar/site_grid_system/internal/status"
	"github.com/shenikar/site_grid_system/internal/webhook"
	"github.com/shenikar/site_grid_system/internal/zone"
	"github.com/sirupsen/logrus"
)

type siteMapService struct {
	repo      SiteRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.EventPublisher
	memo      *render.Memo
	now       func() time.Time
}

func NewSiteMapService(repo SiteRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.EventPublisher) SiteMapService {
	return &siteMapService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		memo:      render.NewMemo(cfg.RenderCacheSize, cfg.RenderCacheTTL),
		now:       time.Now,
	}
}

// BuildMap собирает модель отрисовки уровня на дату
func (s *siteMapService) BuildMap(ctx context.Context, q models.MapQuery) (*render.Model, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "site_map",
		"method":     "BuildMap",
		"project_id": q.ProjectID,
		"level":      q.Level,
	})
	log.Debug("Building grid map")

	project, err := s.loadProject(ctx, q.ProjectID)
	if err != nil {
		log.WithError(err).Warn("Failed to load project")
		return nil, fmt.Errorf("service: could not get project: %w", err)
	}

	day := planDay(q.Date, s.now)
	zones, plans, dangers, err := s.loadSnapshot(ctx, q.ProjectID, q.Level, day)
	if err != nil {
		log.WithError(err).Error("Failed to load site data")
		return nil, err
	}

	model, err := s.memo.Build(render.Input{
		Anchor:      project.Anchor(),
		Grid:        project.GridConfig(),
		Level:       q.Level,
		Zoom:        q.Zoom,
		Zones:       zones,
		Plans:       plans,
		Dangers:     dangers,
		MyZoneNames: status.MyZoneNames(q.WorkerID, zones, plans),
	})
	if err != nil {
		log.WithError(err).Warn("Project grid cannot be rendered")
		return nil, fmt.Errorf("service: could not build map: %w", err)
	}

	if len(model.DuplicateNames) > 0 {
		metrics.DuplicateZoneNamesTotal.Add(float64(len(model.DuplicateNames)))
		log.WithField("duplicates", model.DuplicateNames).Warn("Duplicate zone names on level, last record wins")
	}

	log.WithFields(logrus.Fields{
		"cells":     len(model.Cells),
		"list_only": len(model.ListOnly),
	}).Info("Grid map built successfully")
	return model, nil
}

// SelectCell формирует событие клика по ячейке (row, col)
func (s *siteMapService) SelectCell(ctx context.Context, q models.CellQuery) (*models.ZoneClickEvent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "site_map",
		"method":     "SelectCell",
		"project_id": q.ProjectID,
		"level":      q.Level,
		"row":        q.Row,
		"col":        q.Col,
	})

	layout, err := s.loadLayout(ctx, q.ProjectID)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve project grid")
		return nil, err
	}
	if !layout.Contains(q.Row, q.Col) {
		return nil, fmt.Errorf("service: cell %d,%d: %w", q.Row, q.Col, ErrCellOutOfRange)
	}

	return s.selectCell(ctx, log, layout, q.ProjectID, q.Level, q.Row, q.Col, planDay(q.Date, s.now))
}

// LocateCell формирует событие клика по точке на карте
func (s *siteMapService) LocateCell(ctx context.Context, q models.PointQuery) (*models.ZoneClickEvent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "site_map",
		"method":     "LocateCell",
		"project_id": q.ProjectID,
		"level":      q.Level,
	})

	layout, err := s.loadLayout(ctx, q.ProjectID)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve project grid")
		return nil, err
	}
	row, col, ok := layout.Locate(q.Lat, q.Lng)
	if !ok {
		return nil, fmt.Errorf("service: point %f,%f: %w", q.Lat, q.Lng, ErrCellOutOfRange)
	}

	log = log.WithFields(logrus.Fields{"row": row, "col": col})
	return s.selectCell(ctx, log, layout, q.ProjectID, q.Level, row, col, planDay(q.Date, s.now))
}

func (s *siteMapService) selectCell(ctx context.Context, log *logrus.Entry, layout grid.Layout, projectID int64, level string, row, col int, day time.Time) (*models.ZoneClickEvent, error) {
	zones, plans, dangers, err := s.loadSnapshot(ctx, projectID, level, day)
	if err != nil {
		log.WithError(err).Error("Failed to load site data")
		return nil, err
	}

	center := layout.Center(row, col)
	event := &models.ZoneClickEvent{
		EventID:    uuid.New(),
		ProjectID:  projectID,
		Row:        row,
		Col:        col,
		Lat:        center.Lat,
		Lng:        center.Lng,
		OccurredAt: s.now().UTC(),
	}

	idx := zone.NewIndex(zones, level)
	if z, ok := idx.Lookup(zone.Name(level, row, col)); ok {
		id := z.ID
		event.Name = z.Name
		event.Level = z.Level
		event.ID = &id
		// ссылки самой зоны и записи на дату, как в status.Aggregate
		for _, ref := range z.Tasks {
			event.Tasks = append(event.Tasks, models.WorkPlan{ZoneID: z.ID, WorkType: ref.WorkType, Allocations: ref.Allocations})
		}
		for _, ref := range z.Dangers {
			event.Dangers = append(event.Dangers, models.DangerZone{ZoneID: z.ID, RiskType: ref.RiskType, Description: ref.Description})
		}
		for _, p := range plans {
			if p.ZoneID == z.ID {
				event.Tasks = append(event.Tasks, p)
			}
		}
		for _, d := range dangers {
			if d.ZoneID == z.ID {
				event.Dangers = append(event.Dangers, d)
			}
		}
	}

	if err := s.publisher.Publish(ctx, *event); err != nil {
		log.WithError(err).Error("Failed to publish zone click event")
	}

	log.WithField("zone", event.Name).Info("Cell selected")
	return event, nil
}

// RefreshProject сбрасывает кэш проекта после изменения параметров сетки
func (s *siteMapService) RefreshProject(ctx context.Context, projectID int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "site_map",
		"method":     "RefreshProject",
		"project_id": projectID,
	})

	if err := s.repo.InvalidateProjectCache(ctx, projectID); err != nil {
		log.WithError(err).Error("Failed to invalidate project cache")
		return fmt.Errorf("service: could not refresh project: %w", err)
	}
	log.Info("Project cache invalidated")
	return nil
}

// loadProject читает проект из кэша, при промахе из БД с записью в кэш
func (s *siteMapService) loadProject(ctx context.Context, id int64) (*models.Project, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "site_map",
		"method":     "loadProject",
		"project_id": id,
	})

	project, err := s.repo.GetProjectFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read project cache")
	}
	if project != nil {
		return project, nil
	}

	project, err = s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetProjectCache(ctx, project); err != nil {
		log.WithError(err).Warn("Failed to write project cache")
	}
	return project, nil
}

func (s *siteMapService) loadLayout(ctx context.Context, projectID int64) (grid.Layout, error) {
	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return grid.Layout{}, fmt.Errorf("service: could not get project: %w", err)
	}
	layout, err := grid.NewLayout(project.Anchor(), project.GridConfig())
	if err != nil {
		return grid.Layout{}, fmt.Errorf("service: could not build grid: %w", err)
	}
	return layout, nil
}

func (s *siteMapService) loadSnapshot(ctx context.Context, projectID int64, level string, day time.Time) ([]models.Zone, []models.WorkPlan, []models.DangerZone, error) {
	zones, err := s.repo.ListZones(ctx, projectID, level)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("service: could not list zones: %w", err)
	}
	plans, err := s.repo.ListWorkPlans(ctx, projectID, day)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("service: could not list work plans: %w", err)
	}
	dangers, err := s.repo.ListDangerZones(ctx, projectID, day)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("service: could not list danger zones: %w", err)
	}
	return zones, plans, dangers, nil
}
