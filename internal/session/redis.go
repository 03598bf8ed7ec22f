package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

const (
	redisKeyPrefix = "fnd:browser:"

	fieldToken    = "token"
	fieldRole     = "role"
	fieldUsername = "username"
	fieldNotify   = "setting_notify"
	fieldSaver    = "setting_saver"
)

// RedisStore keeps one hash per browser.
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisStore connects to redis. The URL may be a redis:// URL or a bare host:port.
func NewRedisStore(ctx context.Context, redisURL string, ttl time.Duration, logger *zap.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("Connected to redis session store", zap.String("addr", opt.Addr))
	return &RedisStore{rdb: rdb, ttl: ttl, logger: logger}, nil
}

func redisKey(browserID string) string {
	return redisKeyPrefix + browserID
}

func (r *RedisStore) Get(ctx context.Context, browserID string) (models.Session, error) {
	if err := checkID(browserID); err != nil {
		return models.Session{}, err
	}
	vals, err := r.rdb.HMGet(ctx, redisKey(browserID), fieldToken, fieldRole, fieldUsername).Result()
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	return models.Session{
		Token:    asString(vals[0]),
		Role:     models.Role(asString(vals[1])),
		Username: asString(vals[2]),
	}, nil
}

func (r *RedisStore) Set(ctx context.Context, browserID string, s models.Session) error {
	if err := checkID(browserID); err != nil {
		return err
	}
	key := redisKey(browserID)
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fieldToken, s.Token, fieldRole, string(s.Role), fieldUsername, s.Username)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear is a single HDEL, so no reader observes a partially cleared session.
func (r *RedisStore) Clear(ctx context.Context, browserID string) error {
	if err := checkID(browserID); err != nil {
		return err
	}
	if err := r.rdb.HDel(ctx, redisKey(browserID), fieldToken, fieldRole, fieldUsername).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (r *RedisStore) Preferences(ctx context.Context, browserID string) (models.Preferences, error) {
	prefs := models.DefaultPreferences()
	if err := checkID(browserID); err != nil {
		return prefs, err
	}
	vals, err := r.rdb.HMGet(ctx, redisKey(browserID), fieldNotify, fieldSaver).Result()
	if err != nil {
		return prefs, fmt.Errorf("failed to read preferences: %w", err)
	}
	if b, ok := asBool(vals[0]); ok {
		prefs.Notify = b
	}
	if b, ok := asBool(vals[1]); ok {
		prefs.Saver = b
	}
	return prefs, nil
}

func (r *RedisStore) SetPreferences(ctx context.Context, browserID string, p models.Preferences) error {
	if err := checkID(browserID); err != nil {
		return err
	}
	err := r.rdb.HSet(ctx, redisKey(browserID),
		fieldNotify, strconv.FormatBool(p.Notify),
		fieldSaver, strconv.FormatBool(p.Saver),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.rdb.Close()
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) (bool, bool) {
	s, ok := v.(string)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(s)
	return b, err == nil
}
