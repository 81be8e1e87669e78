package cache

import (
	"context"
	"sync/atomic"
	"time"
)

// Layered 组合 L1 (本地) + L2 (Redis)
// 读: L1 -> L2（命中回填 L1）；写/删: 两层同时
type Layered struct {
	L1 Cache
	L2 Cache

	hitsL1 uint64
	hitsL2 uint64
	miss   uint64
}

type Metrics struct {
	HitsL1 uint64 `json:"hits_l1"`
	HitsL2 uint64 `json:"hits_l2"`
	Miss   uint64 `json:"miss"`
}

func NewLayered(l1, l2 Cache) *Layered { return &Layered{L1: l1, L2: l2} }

func (c *Layered) Get(ctx context.Context, key string) (string, error) {
	if c.L1 != nil {
		if v, _ := c.L1.Get(ctx, key); v != "" {
			atomic.AddUint64(&c.hitsL1, 1)
			return v, nil
		}
	}
	if c.L2 != nil {
		if v, _ := c.L2.Get(ctx, key); v != "" {
			atomic.AddUint64(&c.hitsL2, 1)
			if c.L1 != nil {
				_ = c.L1.SetEX(ctx, key, v, 30*time.Second)
			}
			return v, nil
		}
	}
	atomic.AddUint64(&c.miss, 1)
	return "", nil
}

func (c *Layered) SetEX(ctx context.Context, key, val string, ttl time.Duration) error {
	if c.L1 != nil {
		_ = c.L1.SetEX(ctx, key, val, ttl)
	}
	if c.L2 != nil {
		return c.L2.SetEX(ctx, key, val, ttl)
	}
	return nil
}

func (c *Layered) Del(ctx context.Context, keys ...string) error {
	if c.L1 != nil {
		_ = c.L1.Del(ctx, keys...)
	}
	if c.L2 != nil {
		return c.L2.Del(ctx, keys...)
	}
	return nil
}

func (c *Layered) Snapshot() Metrics {
	return Metrics{
		HitsL1: atomic.LoadUint64(&c.hitsL1),
		HitsL2: atomic.LoadUint64(&c.hitsL2),
		Miss:   atomic.LoadUint64(&c.miss),
	}
}
