package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"` // gin mode: debug, release, test
	} `yaml:"server"`
	Log struct {
		Development bool `yaml:"development"`
	} `yaml:"log"`
	Backend struct {
		URL            string `yaml:"url"`
		Routes         string `yaml:"routes"` // "api" or "legacy"
		TimeoutSeconds int64  `yaml:"timeout_seconds"`
	} `yaml:"backend"`
	Session struct {
		Driver         string `yaml:"driver"` // memory, redis, postgres, sqlite
		Secret         string `yaml:"secret"`
		CookieName     string `yaml:"cookie_name"`
		SecureCookie   bool   `yaml:"secure_cookie"`
		RedisURL       string `yaml:"redis_url"`
		DatabaseURL    string `yaml:"database_url"`
		SQLitePath     string `yaml:"sqlite_path"`
		MigrationsPath string `yaml:"migrations_path"`
		TTLHours       int64  `yaml:"ttl_hours"`
	} `yaml:"session"`
	UI struct {
		Variant      string `yaml:"variant"` // console or classic
		MinLatencyMs int64  `yaml:"min_latency_ms"`
	} `yaml:"ui"`
	Notify struct {
		Telegram struct {
			Enabled  bool   `yaml:"enabled"`
			BotToken string `yaml:"bot_token"`
			ChatID   int64  `yaml:"chat_id"`
		} `yaml:"telegram"`
	} `yaml:"notify"`
}

const (
	// DefaultMinLatency is how long an analysis takes at least, so the
	// progress state is always visible.
	DefaultMinLatency = 2 * time.Second
	// DefaultBackendTimeout bounds each backend call.
	DefaultBackendTimeout = 30 * time.Second
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// LoadConfig reads configuration from the specified YAML file, then applies
// environment overrides (a .env file next to the binary is honoured) and defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	config.applyEnv()
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv() {
	overrideString(&c.Server.Port, "PORT")
	overrideString(&c.Backend.URL, "FND_BACKEND_URL")
	overrideString(&c.Backend.Routes, "FND_BACKEND_ROUTES")
	overrideString(&c.Session.Driver, "FND_SESSION_DRIVER")
	overrideString(&c.Session.Secret, "FND_SESSION_SECRET")
	overrideString(&c.Session.RedisURL, "FND_REDIS_URL")
	overrideString(&c.Session.DatabaseURL, "FND_DATABASE_URL")
	overrideString(&c.Session.SQLitePath, "FND_SQLITE_PATH")
	overrideString(&c.UI.Variant, "FND_UI_VARIANT")
	overrideString(&c.Notify.Telegram.BotToken, "FND_TELEGRAM_TOKEN")

	if v := os.Getenv("FND_TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Notify.Telegram.ChatID = id
		}
	}
	if v := os.Getenv("FND_MIN_LATENCY_MS"); v != "" {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.UI.MinLatencyMs = ms
		}
	}
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.Port, "8080")
	setDefault(&c.Server.Mode, "debug")
	setDefault(&c.Backend.URL, "http://localhost:5000")
	setDefault(&c.Backend.Routes, "api")
	setDefault(&c.Session.Driver, DriverMemory)
	setDefault(&c.Session.CookieName, "fnd_session")
	setDefault(&c.Session.SQLitePath, "./data/sessions.db")
	setDefault(&c.Session.MigrationsPath, "migrations/postgres")
	setDefault(&c.UI.Variant, "console")
	// Zero means unset; a negative value turns the limit off.
	switch {
	case c.Backend.TimeoutSeconds == 0:
		c.Backend.TimeoutSeconds = int64(DefaultBackendTimeout / time.Second)
	case c.Backend.TimeoutSeconds < 0:
		c.Backend.TimeoutSeconds = 0
	}
	switch {
	case c.UI.MinLatencyMs == 0:
		c.UI.MinLatencyMs = DefaultMinLatency.Milliseconds()
	case c.UI.MinLatencyMs < 0:
		c.UI.MinLatencyMs = 0
	}
}

// Validate reports configuration that cannot produce a working server.
func (c *Config) Validate() error {
	switch c.Session.Driver {
	case DriverMemory, DriverSQLite:
	case DriverRedis:
		if c.Session.RedisURL == "" {
			return fmt.Errorf("session.redis_url is required for the redis driver")
		}
	case DriverPostgres:
		if c.Session.DatabaseURL == "" {
			return fmt.Errorf("session.database_url is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown session driver %q", c.Session.Driver)
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("session.secret must be set")
	}
	if c.Notify.Telegram.Enabled && (c.Notify.Telegram.BotToken == "" || c.Notify.Telegram.ChatID == 0) {
		return fmt.Errorf("notify.telegram requires bot_token and chat_id when enabled")
	}
	return nil
}

// BackendTimeout is the per-request timeout for backend calls; zero means none.
func (c *Config) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

// MinLatency is the minimum time an analysis takes before its result is shown.
func (c *Config) MinLatency() time.Duration {
	return time.Duration(c.UI.MinLatencyMs) * time.Millisecond
}

// SessionTTL is how long an idle browser record is kept; zero keeps it forever.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLHours) * time.Hour
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDefault(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
