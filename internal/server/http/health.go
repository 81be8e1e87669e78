package http

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"go-appmanager/internal/discovery/etcd"
	"go-appmanager/internal/metrics"
	"go-appmanager/internal/mq/kafka"
	redisrepo "go-appmanager/internal/repository/redis"
)

// HealthChecker 聚合健康检查（liveness / readiness），readiness 带短缓存
type HealthChecker struct {
	db       *gorm.DB
	redis    *redisrepo.Client
	producer *kafka.Producer
	etcdCli  *etcd.Client

	mu          sync.Mutex
	cacheResult map[string]any
	cacheCode   int
	cacheExpiry time.Time
	cacheTTL    time.Duration
}

func NewHealthChecker(db *gorm.DB, r *redisrepo.Client, p *kafka.Producer, e *etcd.Client) *HealthChecker {
	return &HealthChecker{db: db, redis: r, producer: p, etcdCli: e, cacheTTL: 2 * time.Second}
}

// Liveness 仅表示进程活着
func (h *HealthChecker) Liveness() map[string]any {
	return map[string]any{"status": "ok", "time": time.Now().Format(time.RFC3339)}
}

type depResult struct {
	Name string `json:"name"`
	Up   bool   `json:"up"`
	Err  string `json:"error,omitempty"`
}

// Readiness 并发探测外部依赖；任一失败报 degraded / 503
func (h *HealthChecker) Readiness(ctx context.Context) (map[string]any, int) {
	h.mu.Lock()
	if time.Now().Before(h.cacheExpiry) && h.cacheResult != nil {
		res, code := h.cacheResult, h.cacheCode
		h.mu.Unlock()
		return res, code
	}
	h.mu.Unlock()

	type check struct {
		name  string
		gauge interface{ Set(float64) }
		probe func(context.Context) error
	}
	checks := []check{
		{"db", metrics.DBUp, func(ctx context.Context) error {
			if h.db == nil {
				return nil
			}
			sqlDB, err := h.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}},
		{"redis", metrics.RedisUp, func(ctx context.Context) error {
			if h.redis == nil {
				return nil
			}
			return h.redis.Ping(ctx)
		}},
		{"kafka", metrics.KafkaUp, func(ctx context.Context) error {
			// Writer 无主动探测接口，有实例即视为可用
			return nil
		}},
		{"etcd", metrics.EtcdUp, func(ctx context.Context) error {
			if h.etcdCli == nil {
				return nil
			}
			_, err := h.etcdCli.Discover(ctx, "/services/")
			return err
		}},
	}

	results := make([]depResult, len(checks))
	var wg sync.WaitGroup
	wg.Add(len(checks))
	for i, ck := range checks {
		go func(i int, ck check) {
			defer wg.Done()
			start := time.Now()
			ctx2, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
			defer cancel()
			err := ck.probe(ctx2)
			metrics.DependencyCheckDuration.WithLabelValues(ck.name).Observe(time.Since(start).Seconds())
			r := depResult{Name: ck.name, Up: err == nil}
			if err != nil {
				r.Err = err.Error()
				ck.gauge.Set(0)
			} else {
				ck.gauge.Set(1)
			}
			results[i] = r
		}(i, ck)
	}
	wg.Wait()

	status, code := "ok", 200
	for _, r := range results {
		if !r.Up {
			status, code = "degraded", 503
			break
		}
	}
	res := map[string]any{
		"status": status,
		"time":   time.Now().Format(time.RFC3339),
		"detail": results,
	}

	h.mu.Lock()
	h.cacheResult, h.cacheCode, h.cacheExpiry = res, code, time.Now().Add(h.cacheTTL)
	h.mu.Unlock()
	return res, code
}
