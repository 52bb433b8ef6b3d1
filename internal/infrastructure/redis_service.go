package infrastructure

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"auth-service/internal/config"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// RedisService caches issued refresh tokens by JTI. When Redis is not
// reachable at startup the service runs with a nil client and every call is a
// no-op, so the handler path never depends on cache availability.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(cfg *config.Config) *RedisService {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err == nil {
			client := redis.NewClient(opt)
			if err := client.Ping(context.Background()).Err(); err == nil {
				logger.Info().Str("url", cfg.RedisURL).Msg("connected to redis")
				return &RedisService{client: client}
			}
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, token cache disabled")
		return &RedisService{client: nil}
	}

	logger.Info().Str("addr", client.Options().Addr).Msg("connected to redis")
	return &RedisService{client: client}
}

func (r *RedisService) SetRefreshToken(ctx context.Context, jti, email string, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, "refresh:"+jti, email, ttl).Err()
}

func (r *RedisService) GetRefreshToken(ctx context.Context, jti string) (string, error) {
	if r.client == nil {
		return "", nil
	}
	email, err := r.client.Get(ctx, "refresh:"+jti).Result()
	if err == redis.Nil {
		return "", nil
	}
	return email, err
}

func (r *RedisService) DeleteRefreshToken(ctx context.Context, jti string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, "refresh:"+jti).Err()
}
