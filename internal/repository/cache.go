package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/site_grid_system/internal/models"
)

func projectKey(id int64) string {
	return fmt.Sprintf("project:%d", id)
}

func positionKey(workerID int64) string {
	return fmt.Sprintf("worker:%d:position", workerID)
}

// GetProjectFromCache пытается получить проект из Redis, при промахе (nil, nil)
func (r *SiteRepository) GetProjectFromCache(ctx context.Context, id int64) (*models.Project, error) {
	val, err := r.redisClient.Get(ctx, projectKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project from cache: %w", err)
	}

	project := &models.Project{}
	if err := json.Unmarshal(val, project); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project from cache: %w", err)
	}
	return project, nil
}

// SetProjectCache сохраняет проект в Redis на cacheTTL
func (r *SiteRepository) SetProjectCache(ctx context.Context, project *models.Project) error {
	val, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, projectKey(project.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set project in cache: %w", err)
	}
	return nil
}

// InvalidateProjectCache удаляет проект из кэша
func (r *SiteRepository) InvalidateProjectCache(ctx context.Context, id int64) error {
	if err := r.redisClient.Del(ctx, projectKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate project cache: %w", err)
	}
	return nil
}

// SetLatestPosition хранит последнюю известную позицию работника
func (r *SiteRepository) SetLatestPosition(ctx context.Context, loc *models.WorkerLocation) error {
	val, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal worker position: %w", err)
	}
	if err := r.redisClient.Set(ctx, positionKey(loc.WorkerID), val, latestPositionTTL).Err(); err != nil {
		return fmt.Errorf("failed to set worker position in cache: %w", err)
	}
	return nil
}
