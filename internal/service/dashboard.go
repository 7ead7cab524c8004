package service

//go:generate mockgen -source=dashboard.go -destination=mocks/dashboard.go -package=mocks

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/shenikar/city_response_dashboard/internal/config"
	"github.com/shenikar/city_response_dashboard/internal/metrics"
	"github.com/shenikar/city_response_dashboard/internal/models"
	"github.com/shenikar/city_response_dashboard/internal/overlay"
	"github.com/shenikar/city_response_dashboard/internal/poller"
	"github.com/shenikar/city_response_dashboard/internal/realtime"
	"github.com/shenikar/city_response_dashboard/internal/render"
	"github.com/shenikar/city_response_dashboard/internal/view"
	"github.com/shenikar/city_response_dashboard/internal/webhook"
	"github.com/sirupsen/logrus"
)

// DataClient определяет контракт клиента бэкенда симуляции
type DataClient interface {
	FetchIncidents(ctx context.Context) ([]models.Incident, error)
	FetchAgents(ctx context.Context) ([]models.Agent, error)
	FetchDecisionHistory(ctx context.Context) ([]models.DecisionLogEntry, error)
	FetchRiskZones(ctx context.Context) (*models.Prediction, error)
	FetchStats(ctx context.Context) (*models.Stats, error)
	CreateIncident(ctx context.Context, incident models.NewIncident) (*models.Incident, error)
}

// ViewNotifier доставляет обновления состояния в браузеры
type ViewNotifier interface {
	Broadcast(ctx context.Context, msgType realtime.MessageType, payload any) error
}

// Recorder собирает метрики дашборда
type Recorder interface {
	ObservePoll(feed, outcome string, took time.Duration)
	ViewPushed()
	AlertQueued(kind string, err error)
	OverlayToggled(result string)
}

// DashboardService определяет контракт дашборда для HTTP-слоя
type DashboardService interface {
	Snapshot() view.State
	Map() render.MapView
	View(mode view.PanelMode) render.DashboardView
	AgentPanel(mode view.PanelMode) view.AgentPanelView
	DecisionLog() view.DecisionLogView
	Stats() view.StatsView
	ToggleRiskOverlay(ctx context.Context) (overlay.Snapshot, error)
	CreateIncident(ctx context.Context, incident models.NewIncident) (*models.Incident, error)
}

// Options - параметры дашборда
type Options struct {
	IncidentsInterval time.Duration
	AgentsInterval    time.Duration
	HistoryInterval   time.Duration
	StatsInterval     time.Duration
	PanelMode         view.PanelMode
	Map               render.MapOptions
	Centering         view.CenteringPolicy
}

// OptionsFromConfig собирает параметры из конфигурации
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		IncidentsInterval: cfg.IncidentsInterval,
		AgentsInterval:    cfg.AgentsInterval,
		HistoryInterval:   cfg.HistoryInterval,
		StatsInterval:     cfg.StatsInterval,
		PanelMode:         view.PanelMode(cfg.AgentPanelMode),
		Map: render.MapOptions{
			TileURL:     cfg.MapTileURL,
			Attribution: cfg.MapTileAttribution,
			Zoom:        cfg.MapZoom,
		},
		Centering: view.FirstKnownAgentPosition,
	}
}

// Dashboard владеет ViewState. Состояние заменяется целиком под мьютексом,
// результат цикла применяется, только если его запрос последний для фида.
type Dashboard struct {
	client   DataClient
	poller   *poller.Poller
	overlay  *overlay.Controller
	alerts   webhook.AlertPublisher
	notifier ViewNotifier
	metrics  Recorder
	opts     Options
	logger   *logrus.Logger

	mu       sync.RWMutex
	state    view.State
	version  uint64
	disposed bool
	started  bool
	baseCtx  context.Context

	pushMu sync.Mutex
	pushed uint64
}

// NewDashboard создает дашборд; опрос начинается только после Start
func NewDashboard(client DataClient, alerts webhook.AlertPublisher, notifier ViewNotifier, recorder Recorder, opts Options, logger *logrus.Logger) *Dashboard {
	if opts.Centering == nil {
		opts.Centering = view.FirstKnownAgentPosition
	}
	if opts.PanelMode == "" {
		opts.PanelMode = view.PanelAll
	}

	d := &Dashboard{
		client:   client,
		poller:   poller.New(logger),
		alerts:   alerts,
		notifier: notifier,
		metrics:  recorder,
		opts:     opts,
		logger:   logger,
		state:    view.Initial(),
		baseCtx:  context.Background(),
	}
	d.overlay = overlay.NewController(client.FetchRiskZones, d.onOverlayChange, logger)
	return d
}

// Start запускает опрос всех фидов и возвращает единственный вызов остановки.
// После dispose ни один поздний ответ не меняет состояние.
func (d *Dashboard) Start(ctx context.Context) (dispose func(), err error) {
	d.mu.Lock()
	if d.started || d.disposed {
		d.mu.Unlock()
		return nil, fmt.Errorf("service: dashboard already started")
	}
	d.started = true
	ctx, cancel := context.WithCancel(ctx)
	d.baseCtx = ctx
	d.mu.Unlock()

	feeds := []struct {
		feed     poller.Feed
		interval time.Duration
		cycle    poller.Cycle
	}{
		{poller.FeedIncidents, d.opts.IncidentsInterval, d.pollIncidents},
		{poller.FeedAgents, d.opts.AgentsInterval, d.pollAgents},
		{poller.FeedHistory, d.opts.HistoryInterval, d.pollHistory},
		{poller.FeedStats, d.opts.StatsInterval, d.pollStats},
	}

	var once sync.Once
	dispose = func() {
		once.Do(func() {
			d.mu.Lock()
			d.disposed = true
			d.mu.Unlock()

			d.overlay.Close()
			d.poller.StopAll()
			cancel()
			d.logger.WithField("component", "dashboard").Info("Dashboard disposed")
		})
	}

	for _, f := range feeds {
		if _, err := d.poller.Start(ctx, f.feed, f.interval, f.cycle); err != nil {
			dispose()
			return nil, fmt.Errorf("service: could not start %s poller: %w", f.feed, err)
		}
	}

	d.logger.WithFields(logrus.Fields{
		"component":  "dashboard",
		"panel_mode": d.opts.PanelMode,
	}).Info("Dashboard started")
	return dispose, nil
}

// Wait ждет завершения всех циклов после dispose
func (d *Dashboard) Wait() {
	d.poller.Wait()
}

func (d *Dashboard) pollIncidents(ctx context.Context, t poller.Ticket) {
	start := time.Now()
	incidents, err := d.client.FetchIncidents(ctx)
	fx, applied := d.apply(ctx, t, view.Result{Feed: t.Feed, Incidents: incidents, Err: err}, start)
	if !applied {
		return
	}
	if fx.RecenterFromAgents {
		d.recenter(ctx)
	}
	d.publishAlerts(ctx, fx)
}

func (d *Dashboard) pollAgents(ctx context.Context, t poller.Ticket) {
	start := time.Now()
	agents, err := d.client.FetchAgents(ctx)
	d.apply(ctx, t, view.Result{Feed: t.Feed, Agents: agents, Err: err}, start)
}

func (d *Dashboard) pollHistory(ctx context.Context, t poller.Ticket) {
	start := time.Now()
	history, err := d.client.FetchDecisionHistory(ctx)
	d.apply(ctx, t, view.Result{Feed: t.Feed, History: history, Err: err}, start)
}

func (d *Dashboard) pollStats(ctx context.Context, t poller.Ticket) {
	start := time.Now()
	stats, err := d.client.FetchStats(ctx)
	d.apply(ctx, t, view.Result{Feed: t.Feed, Stats: stats, Err: err}, start)
}

// apply сводит результат фида в состояние, если запрос еще актуален
func (d *Dashboard) apply(ctx context.Context, t poller.Ticket, res view.Result, start time.Time) (view.Effects, bool) {
	took := time.Since(start)
	res.ReceivedAt = time.Now()
	log := d.logger.WithFields(logrus.Fields{
		"component": "dashboard",
		"feed":      t.Feed,
		"seq":       t.Seq,
	})

	d.mu.Lock()
	if d.disposed || ctx.Err() != nil {
		d.mu.Unlock()
		d.metrics.ObservePoll(string(t.Feed), metrics.OutcomeDiscarded, took)
		log.Debug("Discarding result after teardown")
		return view.Effects{}, false
	}
	if !d.poller.IsLatest(t) {
		d.mu.Unlock()
		d.metrics.ObservePoll(string(t.Feed), metrics.OutcomeStale, took)
		log.Debug("Discarding stale result")
		return view.Effects{}, false
	}

	prev := d.state
	next, fx := view.Reconcile(prev, res)
	version, changed := d.commitLocked(prev, next)
	d.mu.Unlock()

	if changed {
		d.push(ctx, version, next)
	}

	if res.Err != nil {
		d.metrics.ObservePoll(string(t.Feed), metrics.OutcomeFailed, took)
		log.WithError(res.Err).Warn("Poll cycle failed")
	} else {
		d.metrics.ObservePoll(string(t.Feed), metrics.OutcomeApplied, took)
	}
	return fx, true
}

// recenter - вторичный запрос агентов для центра карты, когда активных инцидентов нет
func (d *Dashboard) recenter(ctx context.Context) {
	t := d.poller.Issue(poller.FeedCenter)
	start := time.Now()
	log := d.logger.WithFields(logrus.Fields{
		"component": "dashboard",
		"feed":      t.Feed,
		"seq":       t.Seq,
	})

	agents, err := d.client.FetchAgents(ctx)
	took := time.Since(start)
	if err != nil {
		d.metrics.ObservePoll(string(t.Feed), metrics.OutcomeFailed, took)
		log.WithError(err).Warn("Failed to fetch agents for map centering")
		return
	}

	d.mu.Lock()
	if d.disposed || ctx.Err() != nil {
		d.mu.Unlock()
		d.metrics.ObservePoll(string(t.Feed), metrics.OutcomeDiscarded, took)
		return
	}
	if !d.poller.IsLatest(t) {
		d.mu.Unlock()
		d.metrics.ObservePoll(string(t.Feed), metrics.OutcomeStale, took)
		return
	}
	prev := d.state
	next := view.Recenter(prev, agents, d.opts.Centering)
	version, changed := d.commitLocked(prev, next)
	d.mu.Unlock()

	if changed {
		log.WithField("center", next.MapCenter).Info("Map recentered on agents")
		d.push(ctx, version, next)
	}
	d.metrics.ObservePoll(string(t.Feed), metrics.OutcomeApplied, took)
}

func (d *Dashboard) onOverlayChange(snap overlay.Snapshot) {
	d.mu.Lock()
	if d.disposed {
		d.mu.Unlock()
		return
	}
	prev := d.state
	next := view.WithOverlay(prev, snap.Enabled, snap.Zones)
	version, changed := d.commitLocked(prev, next)
	ctx := d.baseCtx
	d.mu.Unlock()

	if changed {
		d.push(ctx, version, next)
	}
}

// commitLocked заменяет состояние целиком. Вызывается под d.mu.
func (d *Dashboard) commitLocked(prev, next view.State) (uint64, bool) {
	if reflect.DeepEqual(prev, next) {
		return d.version, false
	}
	d.state = next
	d.version++
	return d.version, true
}

// push отправляет снимок браузерам; более старые версии не перезаписывают новые
func (d *Dashboard) push(ctx context.Context, version uint64, s view.State) {
	d.pushMu.Lock()
	defer d.pushMu.Unlock()

	if version <= d.pushed {
		return
	}
	d.pushed = version

	payload := render.Dashboard(s, d.opts.PanelMode, d.opts.Map)
	if err := d.notifier.Broadcast(ctx, realtime.MessageTypeView, payload); err != nil {
		d.logger.WithError(err).WithField("component", "dashboard").Warn("Failed to push view update")
		return
	}
	d.metrics.ViewPushed()
}

func (d *Dashboard) publishAlerts(ctx context.Context, fx view.Effects) {
	now := time.Now()
	events := make([]webhook.AlertEvent, 0, len(fx.Appeared)+len(fx.Cleared))
	for _, incident := range fx.Appeared {
		events = append(events, webhook.NewAlertEvent(webhook.KindIncidentAppeared, incident, now))
	}
	for _, incident := range fx.Cleared {
		events = append(events, webhook.NewAlertEvent(webhook.KindIncidentCleared, incident, now))
	}

	for _, event := range events {
		err := d.alerts.Publish(ctx, event)
		d.metrics.AlertQueued(event.Kind, err)
		if err != nil {
			d.logger.WithError(err).WithFields(logrus.Fields{
				"component":   "dashboard",
				"event_kind":  event.Kind,
				"incident_id": event.Incident.ID,
			}).Error("Failed to queue incident alert")
		}
	}
}

// Snapshot возвращает текущее состояние
func (d *Dashboard) Snapshot() view.State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Map возвращает описание карты
func (d *Dashboard) Map() render.MapView {
	return render.Map(d.Snapshot(), d.opts.Map)
}

// View возвращает карту и все панели одним снимком
func (d *Dashboard) View(mode view.PanelMode) render.DashboardView {
	if mode == "" {
		mode = d.opts.PanelMode
	}
	return render.Dashboard(d.Snapshot(), mode, d.opts.Map)
}

// AgentPanel возвращает панель агентов; пустой режим означает режим по умолчанию
func (d *Dashboard) AgentPanel(mode view.PanelMode) view.AgentPanelView {
	if mode == "" {
		mode = d.opts.PanelMode
	}
	return view.AgentPanel(d.Snapshot(), mode)
}

// DecisionLog возвращает журнал решений
func (d *Dashboard) DecisionLog() view.DecisionLogView {
	return view.DecisionLog(d.Snapshot())
}

// Stats возвращает панель статистики
func (d *Dashboard) Stats() view.StatsView {
	return view.StatsPanel(d.Snapshot())
}

// ToggleRiskOverlay переключает оверлей зон риска
func (d *Dashboard) ToggleRiskOverlay(ctx context.Context) (overlay.Snapshot, error) {
	snap, err := d.overlay.Toggle(ctx)
	switch {
	case err != nil:
		d.metrics.OverlayToggled("failed")
	default:
		d.metrics.OverlayToggled(snap.Mode.String())
	}
	return snap, err
}

// CreateIncident создает инцидент в бэкенде и сразу обновляет фид инцидентов
func (d *Dashboard) CreateIncident(ctx context.Context, incident models.NewIncident) (*models.Incident, error) {
	log := d.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "CreateIncident",
		"type":    incident.Type,
	})
	log.Info("Attempting to create a new incident")

	created, err := d.client.CreateIncident(ctx, incident)
	if err != nil {
		log.WithError(err).Error("Failed to create incident in backend")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	if !d.poller.Kick(poller.FeedIncidents) {
		log.Debug("Incidents poller is not running, refresh skipped")
	}
	log.WithField("incident_id", created.ID).Info("Incident created successfully")
	return created, nil
}
