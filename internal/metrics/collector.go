package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Исходы цикла опроса
const (
	OutcomeApplied = "applied"
	OutcomeFailed  = "failed"
	OutcomeStale   = "stale"
	// результат пришел после остановки дашборда
	OutcomeDiscarded = "discarded"
)

// Collector - метрики дашборда
type Collector struct {
	registry *prometheus.Registry

	pollCyclesTotal  *prometheus.CounterVec
	pollDuration     *prometheus.HistogramVec
	staleDropsTotal  *prometheus.CounterVec
	viewPushesTotal  prometheus.Counter
	wsClients        prometheus.Gauge
	alertsTotal      *prometheus.CounterVec
	overlayToggles   *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpRequestDelay *prometheus.HistogramVec
}

// NewCollector создает метрики на собственном реестре
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		pollCyclesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_poll_cycles_total",
				Help: "Total number of poll cycles by feed and outcome",
			},
			[]string{"feed", "outcome"},
		),
		pollDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_poll_duration_seconds",
				Help:    "Duration of a feed fetch in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"feed"},
		),
		staleDropsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_stale_results_dropped_total",
				Help: "Results discarded because a newer request was issued for the feed",
			},
			[]string{"feed"},
		),
		viewPushesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dashboard_view_pushes_total",
				Help: "Total number of view updates pushed to browsers",
			},
		),
		wsClients: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dashboard_websocket_clients",
				Help: "Number of connected WebSocket clients",
			},
		),
		alertsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_incident_alerts_total",
				Help: "Incident alerts queued for webhook delivery",
			},
			[]string{"kind", "result"},
		),
		overlayToggles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_risk_overlay_toggles_total",
				Help: "Risk overlay toggles by resulting state",
			},
			[]string{"result"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDelay: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// ObservePoll учитывает завершенный цикл опроса
func (c *Collector) ObservePoll(feed, outcome string, took time.Duration) {
	c.pollCyclesTotal.WithLabelValues(feed, outcome).Inc()
	c.pollDuration.WithLabelValues(feed).Observe(took.Seconds())
	if outcome == OutcomeStale {
		c.staleDropsTotal.WithLabelValues(feed).Inc()
	}
}

// ViewPushed учитывает отправку обновления в браузеры
func (c *Collector) ViewPushed() {
	c.viewPushesTotal.Inc()
}

// SetClients выставляет число подключенных клиентов
func (c *Collector) SetClients(n int) {
	c.wsClients.Set(float64(n))
}

// AlertQueued учитывает оповещение об инциденте
func (c *Collector) AlertQueued(kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.alertsTotal.WithLabelValues(kind, result).Inc()
}

// OverlayToggled учитывает переключение оверлея
func (c *Collector) OverlayToggled(result string) {
	c.overlayToggles.WithLabelValues(result).Inc()
}

// Middleware собирает метрики HTTP-запросов
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		c.httpRequests.WithLabelValues(ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.httpRequestDelay.WithLabelValues(ctx.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler отдает метрики в формате Prometheus
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Registry возвращает реестр (используется в тестах)
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
