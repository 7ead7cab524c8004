package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/city_response_dashboard/internal/config"
	"github.com/sirupsen/logrus"
)

// SignatureHeader - заголовок с HMAC-SHA256 подписью тела
const SignatureHeader = "X-Webhook-Signature"

// popTimeout ограничивает BRPOP: Redis не прерывает блокирующую команду
// по отмене контекста, поэтому воркер проверяет ctx между попытками
const popTimeout = time.Second

// errUndelivered - все попытки доставки исчерпаны
var errUndelivered = errors.New("webhook: delivery failed after all retries")

// AlertWorker забирает оповещения из очереди Redis и доставляет их на WEBHOOK_URL
type AlertWorker struct {
	queue      Queue
	logger     *logrus.Logger
	cfg        *config.Config
	httpClient *http.Client
	done       chan struct{}
}

// NewAlertWorker создает новый AlertWorker
func NewAlertWorker(queue Queue, logger *logrus.Logger, cfg *config.Config) *AlertWorker {
	return &AlertWorker{
		queue:  queue,
		logger: logger,
		cfg:    cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		done: make(chan struct{}),
	}
}

// Start запускает горутину обработки очереди до отмены контекста
func (w *AlertWorker) Start(ctx context.Context) {
	w.logger.Info("Starting alert worker...")
	go func() {
		defer close(w.done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping alert worker.")
				return
			}

			result, err := w.queue.BRPop(ctx, popTimeout, alertQueueKey).Result()
			if err != nil {
				// redis.Nil - очередь пуста за popTimeout
				if errors.Is(err, redis.Nil) || ctx.Err() != nil {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop alert event from Redis")
				sleep(ctx, w.cfg.WebhookTimeout)
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := result[1]
			var event AlertEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal alert event from Redis")
				continue
			}

			if err := w.deliver(ctx, event, payload); err != nil && ctx.Err() == nil {
				w.logger.WithError(err).WithField("event_id", event.ID).Error("Alert was not delivered")
			}
		}
	}()
}

// Done закрывается после остановки воркера
func (w *AlertWorker) Done() <-chan struct{} {
	return w.done
}

// deliver отправляет событие с экспоненциальной задержкой между попытками
func (w *AlertWorker) deliver(ctx context.Context, event AlertEvent, rawPayload string) error {
	log := w.logger.WithFields(logrus.Fields{
		"event_id":    event.ID,
		"event_kind":  event.Kind,
		"incident_id": event.Incident.ID,
	})
	log.Debug("Processing alert event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping alert delivery.")
		return nil
	}

	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		status, err := w.post(ctx, rawPayload)
		if err == nil && status >= 200 && status < 300 {
			log.Info("Alert delivered successfully.")
			return nil
		}

		if i == maxRetries-1 {
			break
		}
		if err != nil {
			log.WithError(err).Warnf("Failed to send alert. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		} else {
			log.Warnf("Alert delivery failed with status code %d. Retrying in %v. Retries left: %d", status, delay, maxRetries-1-i)
		}
		if !sleep(ctx, delay) {
			return ctx.Err()
		}
		delay *= 2 // Экспоненциальная задержка
	}

	return fmt.Errorf("%w (%d attempts)", errUndelivered, maxRetries)
}

func (w *AlertWorker) post(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Подпись добавляется, только если задан WEBHOOK_SECRET
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(SignatureHeader, Sign(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// Sign генерирует HMAC-SHA256 подпись для данных
func Sign(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// sleep ждет d или отмены контекста; false означает отмену
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
