package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/site_grid_system/internal/models"
	"github.com/shenikar/site_grid_system/internal/service"
)

const latestPositionTTL = time.Minute

type SiteRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

// NewSiteRepository - одна реализация для service.SiteRepository и service.LocationRepository
func NewSiteRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) *SiteRepository {
	return &SiteRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

var (
	_ service.SiteRepository     = (*SiteRepository)(nil)
	_ service.LocationRepository = (*SiteRepository)(nil)
)

// GetProject возвращает проект с параметрами сетки
func (r *SiteRepository) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	project := &models.Project{}
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			grid_rows,
			grid_cols,
			grid_spacing,
			grid_angle,
			created_at,
			updated_at
		FROM projects
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.Name,
		&project.LocationLat,
		&project.LocationLng,
		&project.GridRows,
		&project.GridCols,
		&project.GridSpacing,
		&project.GridAngle,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("project with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}
	return project, nil
}

// ListZones возвращает зоны проекта на уровне в порядке id
func (r *SiteRepository) ListZones(ctx context.Context, projectID int64, level string) ([]models.Zone, error) {
	query := `
		SELECT
			id,
			project_id,
			name,
			level,
			zone_type,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude
		FROM zones
		WHERE project_id = $1 AND level = $2
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, projectID, level)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	zones := make([]models.Zone, 0)
	for rows.Next() {
		var z models.Zone
		if err := rows.Scan(&z.ID, &z.ProjectID, &z.Name, &z.Level, &z.Type, &z.Lat, &z.Lng); err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error zone list iteration: %w", err)
	}
	return zones, nil
}

// ListWorkPlans возвращает планы работ проекта на дату вместе с назначениями
func (r *SiteRepository) ListWorkPlans(ctx context.Context, projectID int64, date time.Time) ([]models.WorkPlan, error) {
	query := `
		SELECT
			wp.id,
			wp.zone_id,
			wp.work_type,
			wp.calculated_risk_score,
			wp.plan_date,
			COALESCE(
				json_agg(json_build_object(
					'worker_id', wa.worker_id,
					'worker_name', wa.worker_name,
					'company_name', wa.company_name,
					'role', wa.role
				) ORDER BY wa.id) FILTER (WHERE wa.id IS NOT NULL),
				'[]'::json
			) AS allocations
		FROM work_plans wp
		JOIN zones z ON z.id = wp.zone_id
		LEFT JOIN work_allocations wa ON wa.work_plan_id = wp.id
		WHERE z.project_id = $1 AND wp.plan_date = $2
		GROUP BY wp.id
		ORDER BY wp.id;
	`
	rows, err := r.db.Query(ctx, query, projectID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list work plans: %w", err)
	}
	defer rows.Close()

	plans := make([]models.WorkPlan, 0)
	for rows.Next() {
		var (
			p   models.WorkPlan
			raw []byte
		)
		if err := rows.Scan(&p.ID, &p.ZoneID, &p.WorkType, &p.CalculatedRiskScore, &p.PlanDate, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan work plan row: %w", err)
		}
		if err := json.Unmarshal(raw, &p.Allocations); err != nil {
			return nil, fmt.Errorf("failed to decode allocations of plan %d: %w", p.ID, err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error work plan list iteration: %w", err)
	}
	return plans, nil
}

// ListDangerZones возвращает записи об опасностях, действующие на дату
func (r *SiteRepository) ListDangerZones(ctx context.Context, projectID int64, date time.Time) ([]models.DangerZone, error) {
	query := `
		SELECT
			d.id,
			d.zone_id,
			d.risk_type,
			d.description,
			d.valid_date
		FROM danger_zones d
		JOIN zones z ON z.id = d.zone_id
		WHERE z.project_id = $1 AND d.valid_date = $2
		ORDER BY d.id;
	`
	rows, err := r.db.Query(ctx, query, projectID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list danger zones: %w", err)
	}
	defer rows.Close()

	dangers := make([]models.DangerZone, 0)
	for rows.Next() {
		var d models.DangerZone
		if err := rows.Scan(&d.ID, &d.ZoneID, &d.RiskType, &d.Description, &d.ValidDate); err != nil {
			return nil, fmt.Errorf("failed to scan danger zone row: %w", err)
		}
		dangers = append(dangers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error danger zone list iteration: %w", err)
	}
	return dangers, nil
}

// SaveWorkerLocation сохраняет отчет трекера
func (r *SiteRepository) SaveWorkerLocation(ctx context.Context, loc *models.WorkerLocation) error {
	query := `
		INSERT INTO worker_locations (worker_id, location, tracking_mode, reported_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		loc.WorkerID,
		loc.Lng,
		loc.Lat,
		loc.TrackingMode,
		loc.ReportedAt,
	).Scan(&loc.ID)
	if err != nil {
		return fmt.Errorf("failed to save worker location: %w", err)
	}
	return nil
}

// GetActiveWorkerCount возвращает количество работников, приславших позицию за последние minutes минут
func (r *SiteRepository) GetActiveWorkerCount(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT worker_id)
		FROM worker_locations
		WHERE reported_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	if err := r.db.QueryRow(ctx, query, minutes).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get active worker count: %w", err)
	}
	return count, nil
}
