// Package overlay управляет слоем зон риска на карте.
//
// Контроллер - автомат с двумя состояниями (Disabled, Enabled). Включение
// фиксируется только после успешной загрузки прогноза.
package overlay

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shenikar/city_response_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	// ErrPredictionUnavailable - сервер ответил, но статус прогноза не "success"
	ErrPredictionUnavailable = errors.New("overlay: prediction is not available")
	// ErrActivationSuperseded - ожидающее включение отменено более новым переключением
	ErrActivationSuperseded = errors.New("overlay: activation superseded by a newer toggle")
)

// Mode - состояние оверлея
type Mode int

const (
	Disabled Mode = iota
	Enabled
)

func (m Mode) String() string {
	if m == Enabled {
		return "enabled"
	}
	return "disabled"
}

// FetchFunc загружает прогноз зон риска
type FetchFunc func(ctx context.Context) (*models.Prediction, error)

// Snapshot - зафиксированное состояние оверлея
type Snapshot struct {
	Mode    Mode              `json:"-"`
	Enabled bool              `json:"enabled"`
	Pending bool              `json:"pending"`
	Zones   []models.RiskZone `json:"zones"`
}

// Controller - контроллер оверлея зон риска
type Controller struct {
	mu       sync.Mutex
	mode     Mode
	zones    []models.RiskZone
	gen      uint64
	pending  context.CancelFunc
	closed   bool
	fetch    FetchFunc
	onChange func(Snapshot)
	logger   *logrus.Logger
}

// NewController создает контроллер в состоянии Disabled.
// onChange вызывается при каждом зафиксированном переходе, под блокировкой контроллера.
func NewController(fetch FetchFunc, onChange func(Snapshot), logger *logrus.Logger) *Controller {
	if onChange == nil {
		onChange = func(Snapshot) {}
	}
	return &Controller{
		mode:     Disabled,
		fetch:    fetch,
		onChange: onChange,
		logger:   logger,
	}
}

// Toggle переключает оверлей.
//
// Enabled -> Disabled происходит сразу и очищает зоны. Disabled -> Enabled
// загружает прогноз и фиксирует переход только при статусе "success".
// Повторное переключение во время загрузки отменяет ее, оверлей остается выключенным.
func (c *Controller) Toggle(ctx context.Context) (Snapshot, error) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "overlay",
		"method":    "Toggle",
	})

	c.mu.Lock()
	if c.closed {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}

	if c.mode == Enabled {
		c.mode = Disabled
		c.zones = nil
		c.gen++
		snap := c.snapshotLocked()
		c.onChange(snap)
		c.mu.Unlock()
		log.Info("Risk overlay disabled")
		return snap, nil
	}

	if c.pending != nil {
		c.cancelPendingLocked()
		snap := c.snapshotLocked()
		c.mu.Unlock()
		log.Info("Pending risk overlay activation cancelled")
		return snap, nil
	}

	c.gen++
	gen := c.gen
	fetchCtx, cancel := context.WithCancel(ctx)
	c.pending = cancel
	c.mu.Unlock()

	log.Debug("Fetching risk zones")
	prediction, err := c.fetch(fetchCtx)

	c.mu.Lock()
	defer c.mu.Unlock()
	cancel()

	if gen != c.gen || c.closed {
		log.Debug("Discarding superseded risk zone fetch")
		return c.snapshotLocked(), ErrActivationSuperseded
	}
	c.pending = nil

	if err != nil {
		log.WithError(err).Warn("Failed to fetch risk zones, overlay stays disabled")
		return c.snapshotLocked(), fmt.Errorf("overlay: could not fetch risk zones: %w", err)
	}
	if prediction == nil || prediction.Status != models.PredictionSuccess {
		log.Warn("Prediction is not successful, overlay stays disabled")
		return c.snapshotLocked(), ErrPredictionUnavailable
	}

	c.mode = Enabled
	c.zones = make([]models.RiskZone, len(prediction.Zones))
	copy(c.zones, prediction.Zones)
	snap := c.snapshotLocked()
	c.onChange(snap)

	log.WithField("zones", len(c.zones)).Info("Risk overlay enabled")
	return snap, nil
}

// Snapshot возвращает текущее состояние
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close отменяет ожидающую загрузку; после него переключения игнорируются
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.cancelPendingLocked()
}

func (c *Controller) cancelPendingLocked() {
	if c.pending == nil {
		return
	}
	c.pending()
	c.pending = nil
	c.gen++
}

func (c *Controller) snapshotLocked() Snapshot {
	zones := make([]models.RiskZone, len(c.zones))
	copy(zones, c.zones)
	return Snapshot{
		Mode:    c.mode,
		Enabled: c.mode == Enabled,
		Pending: c.pending != nil,
		Zones:   zones,
	}
}
