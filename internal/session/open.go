package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/config"
)

// Open builds the configured store and wraps it so tokens are encrypted at rest.
func Open(ctx context.Context, cfg *config.Config, tokenKey []byte, logger *zap.Logger) (Store, error) {
	var (
		inner Store
		err   error
	)
	switch cfg.Session.Driver {
	case config.DriverMemory:
		inner = NewMemoryStore()
	case config.DriverRedis:
		inner, err = NewRedisStore(ctx, cfg.Session.RedisURL, cfg.SessionTTL(), logger)
	case config.DriverPostgres:
		inner, err = NewPostgresStore(cfg.Session.DatabaseURL, cfg.Session.MigrationsPath, logger)
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.Session.SQLitePath); dir != "" {
			if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
				return nil, fmt.Errorf("failed to create sqlite directory: %w", mkErr)
			}
		}
		inner, err = NewSQLiteStore(cfg.Session.SQLitePath, logger)
	default:
		return nil, fmt.Errorf("unknown session driver %q", cfg.Session.Driver)
	}
	if err != nil {
		return nil, err
	}
	logger.Info("Session store ready", zap.String("driver", cfg.Session.Driver))
	return WithEncryption(inner, tokenKey), nil
}
