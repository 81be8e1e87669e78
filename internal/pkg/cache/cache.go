package cache

import (
	"context"
	"sync"
	"time"
)

// Cache 统一缓存接口；value 为 string（JSON 编解码在业务侧处理）
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	SetEX(ctx context.Context, key, val string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type entry struct {
	val string
	exp time.Time
}

// Local 进程内带 TTL 的 L1 缓存
type Local struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewLocal() *Local { return &Local{data: make(map[string]entry)} }

func (c *Local) Get(_ context.Context, key string) (string, error) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()
	if !ok || (!e.exp.IsZero() && time.Now().After(e.exp)) {
		return "", nil
	}
	return e.val, nil
}

func (c *Local) SetEX(_ context.Context, key, val string, ttl time.Duration) error {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.data[key] = entry{val: val, exp: exp}
	c.mu.Unlock()
	return nil
}

func (c *Local) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	for _, k := range keys {
		delete(c.data, k)
	}
	c.mu.Unlock()
	return nil
}

func (c *Local) Flush() {
	c.mu.Lock()
	c.data = make(map[string]entry)
	c.mu.Unlock()
}
