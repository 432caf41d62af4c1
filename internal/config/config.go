package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации сервера
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config - доставка событий клика по зоне хост-интерфейсу
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// Cache Config
	ProjectCacheTTL time.Duration `env:"PROJECT_CACHE_TTL" envDefault:"5m"`
	RenderCacheSize int           `env:"RENDER_CACHE_SIZE" envDefault:"128"`
	RenderCacheTTL  time.Duration `env:"RENDER_CACHE_TTL" envDefault:"1m"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// TrackerConfig - конфигурация бинарника трекера на устройстве работника
type TrackerConfig struct {
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	ReportURL      string        `env:"TRACKER_REPORT_URL"`
	APIKey         string        `env:"TRACKER_API_KEY"`
	WorkerID       int64         `env:"TRACKER_WORKER_ID"`
	SessionRole    string        `env:"TRACKER_SESSION_ROLE" envDefault:"worker"`
	ReportInterval time.Duration `env:"TRACKER_REPORT_INTERVAL" envDefault:"5s"`
	FixTimeout     time.Duration `env:"TRACKER_FIX_TIMEOUT" envDefault:"5s"`
	WatchInterval  time.Duration `env:"TRACKER_WATCH_INTERVAL" envDefault:"1s"`
	StartLat       float64       `env:"TRACKER_START_LAT"`
	StartLng       float64       `env:"TRACKER_START_LNG"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		ProjectCacheTTL:        getEnvAsDuration("PROJECT_CACHE_TTL", 5*time.Minute),
		RenderCacheSize:        getEnvAsInt("RENDER_CACHE_SIZE", 128),
		RenderCacheTTL:         getEnvAsDuration("RENDER_CACHE_TTL", time.Minute),
		APIKeys:                getEnvAsList("API_KEYS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// LoadTrackerConfig загружает конфигурацию трекера
func LoadTrackerConfig() (*TrackerConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &TrackerConfig{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ReportURL:      os.Getenv("TRACKER_REPORT_URL"),
		APIKey:         os.Getenv("TRACKER_API_KEY"),
		WorkerID:       int64(getEnvAsInt("TRACKER_WORKER_ID", 0)),
		SessionRole:    getEnv("TRACKER_SESSION_ROLE", "worker"),
		ReportInterval: getEnvAsDuration("TRACKER_REPORT_INTERVAL", 5*time.Second),
		FixTimeout:     getEnvAsDuration("TRACKER_FIX_TIMEOUT", 5*time.Second),
		WatchInterval:  getEnvAsDuration("TRACKER_WATCH_INTERVAL", time.Second),
		StartLat:       getEnvAsFloat("TRACKER_START_LAT", 0),
		StartLng:       getEnvAsFloat("TRACKER_START_LNG", 0),
	}

	if cfg.ReportURL == "" {
		return nil, fmt.Errorf("TRACKER_REPORT_URL environment variable is required")
	}

	return cfg, nil
}

func loadDotEnv() error {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}
	return nil
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
