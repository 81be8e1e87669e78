package boot

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"go-appmanager/internal/config"
	"go-appmanager/internal/consumer/auditlog"
	"go-appmanager/internal/discovery/etcd"
	"go-appmanager/internal/domain/model"
	"go-appmanager/internal/logging"
	"go-appmanager/internal/metrics"
	"go-appmanager/internal/mq/kafka"
	"go-appmanager/internal/repository/postgres"
	redisrepo "go-appmanager/internal/repository/redis"
	"go-appmanager/internal/security/jwt"

	"github.com/gin-gonic/gin"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	go_otel "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/google/uuid"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"gorm.io/plugin/opentelemetry/tracing"
)

type App struct {
	Config *config.Config
	Logger *logging.Logger
	DB     *gorm.DB
	Redis  *redisrepo.Client
	Kafka  *kafka.Producer
	Etcd   *etcd.Client
	JWT    *jwt.Manager
	HTTP   *gin.Engine

	auditConsumer *auditlog.Consumer
	consumerStop  context.CancelFunc

	serviceKey string
	serviceVal string // 缓存首次注册的原始 metadata value，供重注册恢复
	leaseID    clientv3.LeaseID
	tracerProv *trace.TracerProvider
	stopCh     chan struct{} // redis 心跳协程关闭
}

// Provider constructors for wire
func NewPostgres(c *config.Config) (*gorm.DB, error) {
	return postgres.New(postgres.Config{DSN: c.Postgres.DSN, MaxOpen: c.Postgres.MaxOpen, MaxIdle: c.Postgres.MaxIdle, AutoMigrate: c.Postgres.AutoMigrate})
}

func NewRedis(c *config.Config) *redisrepo.Client {
	return redisrepo.New(redisrepo.Config{Addr: c.Redis.Addr, Password: c.Redis.Password, DB: c.Redis.DB})
}

func NewKafkaProducer(c *config.Config) *kafka.Producer {
	return kafka.NewProducer(kafka.Config{Brokers: c.Kafka.Brokers, Topic: c.Kafka.AuditTopic})
}

func NewEtcd(c *config.Config) (*etcd.Client, error) {
	return etcd.New(etcd.Config{Endpoints: c.Etcd.Endpoints, TTL: c.Etcd.TTL})
}

func NewJWTManager(c *config.Config) *jwt.Manager {
	return jwt.NewManager(c.JWT.Secret, c.JWT.Issuer)
}

func NewLogger(c *config.Config) (*logging.Logger, error) {
	return logging.New(c.Log.Level, c.Log.Format)
}

func NewApp(c *config.Config, l *logging.Logger, db *gorm.DB, r *redisrepo.Client, k *kafka.Producer, e *etcd.Client, j *jwt.Manager, engine *gin.Engine) *App {
	// 自动迁移（只在配置开启时）
	if c.Postgres.AutoMigrate {
		if err := postgres.AutoMigrateModels(db,
			&model.App{},
			&model.MenuItem{},
			&model.MemberLink{},
			&model.MenuItemUserLink{},
			&model.AuditLog{},
		); err != nil {
			l.Error("auto_migrate_failed", zap.Error(err))
		}
	}
	app := &App{Config: c, Logger: l, DB: db, Redis: r, Kafka: k, Etcd: e, JWT: j, HTTP: engine, stopCh: make(chan struct{})}
	// Redis 启动健康检查 + 心跳
	if r != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := r.Ping(ctx); err != nil {
			l.Error("redis_ping_failed", zap.Error(err), zap.String("addr", c.Redis.Addr))
		} else {
			l.Info("redis_ping_ok", zap.String("addr", c.Redis.Addr))
		}
		go func() {
			var lastUp bool
			for {
				select {
				case <-app.stopCh:
					return
				case <-time.After(10 * time.Second):
					ctx2, cancel2 := context.WithTimeout(context.Background(), 2*time.Second)
					err := r.Ping(ctx2)
					cancel2()
					if err != nil {
						metrics.RedisUp.Set(0)
						if lastUp {
							l.Warn("redis_down", zap.Error(err))
						}
						lastUp = false
					} else {
						metrics.RedisUp.Set(1)
						if !lastUp {
							l.Info("redis_recovered")
						}
						lastUp = true
					}
				}
			}
		}()
	}
	// 审计日志消费者：同进程消费，写入 audit_log 表
	if len(c.Kafka.Brokers) > 0 && c.Kafka.GroupID != "" {
		app.auditConsumer = auditlog.NewConsumer(auditlog.Config{
			Brokers: c.Kafka.Brokers,
			Topic:   c.Kafka.AuditTopic,
			GroupID: c.Kafka.GroupID,
		}, db, l)
		ctx, cancel := context.WithCancel(context.Background())
		app.consumerStop = cancel
		go func() {
			if err := app.auditConsumer.Run(ctx); err != nil && ctx.Err() == nil {
				l.Error("audit_consumer_stopped", zap.Error(err))
			}
		}()
	}
	if e != nil && len(c.Etcd.Endpoints) > 0 {
		go func() {
			ctx := context.Background()
			instanceID := uuid.New().String()
			addrPort := c.HTTP.Addr
			if addrPort == "" {
				addrPort = ":8080"
			}
			port := ""
			if addrPort[0] == ':' {
				port = addrPort[1:]
			} else {
				if _, p, err := net.SplitHostPort(addrPort); err == nil {
					port = p
				}
			}
			if port == "" {
				port = "0"
			}
			ip := firstNonLoopbackIPv4()
			if ip == "" {
				ip = "127.0.0.1"
			}
			// key 末段用 ip:port，重启不产生新 key，便于稳定发现
			serviceKey := fmt.Sprintf("/services/appmanager/%s/%s/%s:%s", c.AppMeta.Env, c.AppMeta.Version, ip, port)
			meta := map[string]interface{}{
				"instance_id":  instanceID,
				"env":          c.AppMeta.Env,
				"version":      c.AppMeta.Version,
				"ip":           ip,
				"port":         port,
				"addr":         c.HTTP.Addr,
				"startup_unix": time.Now().Unix(),
			}
			valBytes, _ := json.Marshal(meta)
			val := string(valBytes)
			// 指数退避重试注册
			var (
				attempt     = 0
				maxAttempts = 5
			)
			for {
				leaseID, err := e.Register(ctx, serviceKey, val, int64(c.Etcd.TTL))
				if err != nil {
					attempt++
					if attempt >= maxAttempts {
						l.Error("etcd_register_failed", zap.Error(err), zap.Int("attempt", attempt))
						return
					}
					backoff := time.Duration(1<<attempt) * 100 * time.Millisecond
					l.Error("etcd_register_retry", zap.Error(err), zap.Int("attempt", attempt), zap.Duration("backoff", backoff))
					time.Sleep(backoff)
					continue
				}
				app.serviceKey = serviceKey
				app.serviceVal = val
				app.leaseID = leaseID
				metrics.EtcdUp.Set(1)
				l.Info("etcd_registered", zap.String("key", serviceKey))
				return
			}
		}()
	}
	// OpenTelemetry 初始化（可选）
	if c.OTel.Enable {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(c.OTel.Endpoint)}
		if c.OTel.Insecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		} else {
			opts = append(opts, otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		}
		exp, err := otlptracegrpc.New(ctx, opts...)
		if err != nil {
			l.Error("otel_exporter_init_failed", zap.Error(err))
		} else {
			res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
				semconv.SchemaURL,
				semconv.ServiceNameKey.String(c.AppMeta.Name),
				semconv.ServiceVersionKey.String(c.AppMeta.Version),
			))
			var sampler trace.Sampler = trace.ParentBased(trace.TraceIDRatioBased(c.OTel.SamplerRatio))
			app.tracerProv = trace.NewTracerProvider(trace.WithBatcher(exp), trace.WithResource(res), trace.WithSampler(sampler))
			go_otel.SetTracerProvider(app.tracerProv)
			l.Info("otel_tracer_provider_initialized")
			if db != nil {
				if err := db.Use(tracing.NewPlugin()); err != nil {
					l.Error("gorm_tracing_plugin_failed", zap.Error(err))
				} else {
					l.Info("gorm_tracing_plugin_enabled")
				}
			}
			if r != nil {
				if err := redisotel.InstrumentTracing(r.Client); err != nil {
					l.Error("redis_tracing_hook_failed", zap.Error(err))
				} else {
					l.Info("redis_otel_tracing_enabled")
				}
			}
		}
	}
	return app
}

func (a *App) Close() {
	// 优雅下线 etcd
	if a.Etcd != nil && a.serviceKey != "" && a.leaseID != 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := a.Etcd.Deregister(ctx, a.serviceKey, a.leaseID); err != nil {
			a.Logger.Error("etcd_deregister_failed", zap.Error(err))
		}
		metrics.EtcdUp.Set(0)
	}
	if a.consumerStop != nil {
		a.consumerStop()
	}
	if a.auditConsumer != nil {
		if err := a.auditConsumer.Close(); err != nil {
			a.Logger.Error("audit_consumer_close_error", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.Logger.Error("db_close_error", zap.Error(err))
			}
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Error("redis_close_error", zap.Error(err))
		}
	}
	if a.Kafka != nil {
		if err := a.Kafka.Close(); err != nil {
			a.Logger.Error("kafka_close_error", zap.Error(err))
		}
	}
	if a.Etcd != nil {
		if err := a.Etcd.Close(); err != nil {
			a.Logger.Error("etcd_close_error", zap.Error(err))
		}
	}
	if a.tracerProv != nil {
		if err := a.tracerProv.Shutdown(context.Background()); err != nil {
			a.Logger.Error("otel_tracer_shutdown_error", zap.Error(err))
		}
	}
	if a.stopCh != nil {
		close(a.stopCh)
	}
}

// 获取首个非 loopback IPv4
func firstNonLoopbackIPv4() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip == nil || ip.IsLoopback() {
				continue
			}
			ip = ip.To4()
			if ip == nil {
				continue
			}
			return ip.String()
		}
	}
	return ""
}
