package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/site_grid_system/internal/models"
)

const (
	eventQueueKey = "zone_events"
)

// EventPublisher - интерфейс для публикации событий клика по зоне
type EventPublisher interface {
	Publish(ctx context.Context, event models.ZoneClickEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая очередь Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в левую часть списка, воркер забирает справа
func (p *RedisEventPublisher) Publish(ctx context.Context, event models.ZoneClickEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal zone event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish zone event to Redis: %w", err)
	}
	return nil
}
