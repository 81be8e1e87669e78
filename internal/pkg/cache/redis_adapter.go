package cache

import (
	"context"
	"time"

	redisrepo "go-appmanager/internal/repository/redis"
)

// redisAdapter 将 redis repo 客户端适配为 Cache 接口 (L2)
type redisAdapter struct{ c *redisrepo.Client }

func NewRedisAdapter(c *redisrepo.Client) Cache { return &redisAdapter{c: c} }

func (a *redisAdapter) Get(ctx context.Context, key string) (string, error) {
	return a.c.Client.Get(ctx, key).Result()
}

func (a *redisAdapter) SetEX(ctx context.Context, key, val string, ttl time.Duration) error {
	return a.c.Client.Set(ctx, key, val, ttl).Err()
}

func (a *redisAdapter) Del(ctx context.Context, keys ...string) error {
	return a.c.Client.Del(ctx, keys...).Err()
}
