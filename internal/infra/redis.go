package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"hostlane/internal/config"
)

const jwtBlacklistPrefix = "jwt:blacklist:"

type RedisClient struct {
	client *redis.Client
}

func InitRedis(cfg config.RedisConfig) *RedisClient {
	client := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:    cfg.Password,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Errorf("Error connecting to redis: %v", err)
	}

	return &RedisClient{client: client}
}

// BlacklistToken keeps a logged-out token rejected until it would have
// expired on its own.
func (r *RedisClient) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, jwtBlacklistPrefix+token, "revoked", ttl).Err()
}

func (r *RedisClient) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	err := r.client.Get(ctx, jwtBlacklistPrefix+token).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisClient) Close() {
	if err := r.client.Close(); err != nil {
		log.Errorf("Error closing redis connection: %v", err)
	}
}
