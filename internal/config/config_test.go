package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "session:\n  secret: s3cret\n")

	cfg, err := LoadConfig(path)
	assert.Equal(t, nil, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:5000", cfg.Backend.URL)
	assert.Equal(t, "api", cfg.Backend.Routes)
	assert.Equal(t, DriverMemory, cfg.Session.Driver)
	assert.Equal(t, "fnd_session", cfg.Session.CookieName)
	assert.Equal(t, "console", cfg.UI.Variant)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout())
	assert.Equal(t, 2*time.Second, cfg.MinLatency())
}

func TestLoadConfig_NegativeDisablesLimits(t *testing.T) {
	path := writeConfig(t, "backend:\n  timeout_seconds: -1\nsession:\n  secret: s3cret\nui:\n  min_latency_ms: -1\n")

	cfg, err := LoadConfig(path)
	assert.Equal(t, nil, err)
	assert.Equal(t, time.Duration(0), cfg.BackendTimeout())
	assert.Equal(t, time.Duration(0), cfg.MinLatency())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "backend:\n  url: http://file\nsession:\n  secret: s3cret\nui:\n  min_latency_ms: 2000\n")
	t.Setenv("FND_BACKEND_URL", "http://env:5000")
	t.Setenv("FND_MIN_LATENCY_MS", "150")
	t.Setenv("PORT", "9999")

	cfg, err := LoadConfig(path)
	assert.Equal(t, nil, err)
	assert.Equal(t, "http://env:5000", cfg.Backend.URL)
	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 150*time.Millisecond, cfg.MinLatency())
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown driver":   "session:\n  secret: x\n  driver: etcd\n",
		"redis without url": "session:\n  secret: x\n  driver: redis\n",
		"postgres no dsn":  "session:\n  secret: x\n  driver: postgres\n",
		"missing secret":   "session:\n  driver: memory\n",
		"telegram no chat": "session:\n  secret: x\nnotify:\n  telegram:\n    enabled: true\n    bot_token: abc\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.NotEqual(t, nil, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.NotEqual(t, nil, err)
}
