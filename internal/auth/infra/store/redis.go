package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "storefront:session:"

// RedisStore shares one session between processes through Redis.
// Keys never expire.
type RedisStore struct {
	client redis.Cmdable
	key    string
}

func NewRedisStore(client redis.Cmdable, key string) *RedisStore {
	if key == "" {
		key = "default"
	}
	return &RedisStore{client: client, key: keyPrefix + key}
}

// DialRedis parses url and checks the server answers.
func DialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (r *RedisStore) Load(ctx context.Context) (domain.Session, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, nil
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}

	var s domain.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, s domain.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
