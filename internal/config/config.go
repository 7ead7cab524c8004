package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Режимы панели агентов
const (
	AgentPanelAll        = "all"
	AgentPanelActiveOnly = "active-only"
)

// Config - структура для хранения конфигурации дашборда
type Config struct {
	APIURL         string        `env:"API_URL" envDefault:"http://localhost:8000"`
	HTTPPort       string        `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	// APIKeys защищают создание инцидентов; пустой список отключает проверку
	APIKeys []string `env:"API_KEYS"`

	// Poll Config
	IncidentsInterval time.Duration `env:"POLL_INCIDENTS_INTERVAL" envDefault:"3s"`
	AgentsInterval    time.Duration `env:"POLL_AGENTS_INTERVAL" envDefault:"3500ms"`
	HistoryInterval   time.Duration `env:"POLL_HISTORY_INTERVAL" envDefault:"4s"`
	StatsInterval     time.Duration `env:"POLL_STATS_INTERVAL" envDefault:"5s"`

	// View Config
	AgentPanelMode     string `env:"AGENT_PANEL_MODE" envDefault:"all"`
	MapTileURL         string `env:"MAP_TILE_URL"`
	MapTileAttribution string `env:"MAP_TILE_ATTRIBUTION"`
	MapZoom            int    `env:"MAP_ZOOM" envDefault:"12"`

	// Redis Config (пустой адрес отключает оповещения)
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
}

const (
	defaultTileURL         = "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png"
	defaultTileAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors &copy; <a href="https://carto.com/attributions">CARTO</a>`
)

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		APIURL:             getEnv("API_URL", "http://localhost:8000"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RequestTimeout:     getEnvAsDuration("REQUEST_TIMEOUT", 5*time.Second),
		APIKeys:            getEnvAsSlice("API_KEYS", ","),
		IncidentsInterval:  getEnvAsDuration("POLL_INCIDENTS_INTERVAL", 3000*time.Millisecond),
		AgentsInterval:     getEnvAsDuration("POLL_AGENTS_INTERVAL", 3500*time.Millisecond),
		HistoryInterval:    getEnvAsDuration("POLL_HISTORY_INTERVAL", 4000*time.Millisecond),
		StatsInterval:      getEnvAsDuration("POLL_STATS_INTERVAL", 5000*time.Millisecond),
		AgentPanelMode:     getEnv("AGENT_PANEL_MODE", AgentPanelAll),
		MapTileURL:         getEnv("MAP_TILE_URL", defaultTileURL),
		MapTileAttribution: getEnv("MAP_TILE_ATTRIBUTION", defaultTileAttribution),
		MapZoom:            getEnvAsInt("MAP_ZOOM", 12),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("API_URL must be an absolute http(s) URL, got %q", c.APIURL)
	}

	if c.AgentPanelMode != AgentPanelAll && c.AgentPanelMode != AgentPanelActiveOnly {
		return fmt.Errorf("AGENT_PANEL_MODE must be %q or %q, got %q", AgentPanelAll, AgentPanelActiveOnly, c.AgentPanelMode)
	}

	for name, d := range map[string]time.Duration{
		"POLL_INCIDENTS_INTERVAL": c.IncidentsInterval,
		"POLL_AGENTS_INTERVAL":    c.AgentsInterval,
		"POLL_HISTORY_INTERVAL":   c.HistoryInterval,
		"POLL_STATS_INTERVAL":     c.StatsInterval,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, d)
		}
	}

	return nil
}

// AlertsEnabled сообщает, настроена ли доставка оповещений через Redis
func (c *Config) AlertsEnabled() bool {
	return c.RedisAddr != ""
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsSlice возвращает непустые элементы переменной окружения, разделенные sep
func getEnvAsSlice(key, sep string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, sep) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
