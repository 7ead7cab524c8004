package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/city_response_dashboard/internal/models"
)

const (
	alertQueueKey = "dashboard_incident_alerts"
)

// Виды оповещений
const (
	KindIncidentAppeared = "incident.appeared"
	KindIncidentCleared  = "incident.cleared"
)

// AlertEvent - оповещение о появлении или исчезновении активного инцидента
type AlertEvent struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Incident  models.Incident `json:"incident"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewAlertEvent создает событие с новым ID
func NewAlertEvent(kind string, incident models.Incident, at time.Time) AlertEvent {
	return AlertEvent{
		ID:        uuid.NewString(),
		Kind:      kind,
		Incident:  incident,
		Timestamp: at.UTC(),
	}
}

// AlertPublisher - интерфейс для публикации оповещений
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// Queue - часть Redis-клиента, нужная очереди оповещений
type Queue interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
}

// RedisAlertPublisher - реализация AlertPublisher, использующая список Redis как очередь
type RedisAlertPublisher struct {
	queue Queue
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(queue Queue) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		queue: queue,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH добавляет в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.queue.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}

// NoopPublisher используется, когда Redis не настроен
type NoopPublisher struct{}

// Publish ничего не делает
func (NoopPublisher) Publish(context.Context, AlertEvent) error { return nil }
