package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"http"`
	Postgres struct {
		DSN         string `mapstructure:"dsn"`
		MaxOpen     int    `mapstructure:"max_open"`
		MaxIdle     int    `mapstructure:"max_idle"`
		AutoMigrate bool   `mapstructure:"auto_migrate"`
	} `mapstructure:"postgres"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers    []string `mapstructure:"brokers"`
		AuditTopic string   `mapstructure:"audit_topic"`
		GroupID    string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Etcd struct {
		Endpoints []string `mapstructure:"endpoints"`
		TTL       int      `mapstructure:"ttl"`
	} `mapstructure:"etcd"`
	JWT struct {
		Secret string `mapstructure:"secret"`
		Issuer string `mapstructure:"issuer"`
	} `mapstructure:"jwt"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	AppMeta struct {
		Name    string `mapstructure:"name"`
		Version string `mapstructure:"version"`
		Env     string `mapstructure:"env"`
	} `mapstructure:"app_meta"`
	// Platform identities that the authorization rules treat as special.
	// The legacy service hardcoded both as 1; injected here so the rules
	// carry no magic numbers.
	Platform struct {
		OwnerMemberID int64 `mapstructure:"owner_member_id"`
		SuperuserID   int64 `mapstructure:"superuser_id"`
	} `mapstructure:"platform"`
	Membership struct {
		BaseURL   string `mapstructure:"base_url"`
		TimeoutMS int    `mapstructure:"timeout_ms"`
		CacheSec  int    `mapstructure:"cache_sec"`
	} `mapstructure:"membership"`
	OTel struct {
		Endpoint     string  `mapstructure:"endpoint"`
		Insecure     bool    `mapstructure:"insecure"`
		SamplerRatio float64 `mapstructure:"sampler_ratio"`
		Enable       bool    `mapstructure:"enable"`
	} `mapstructure:"otel"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	v.SetDefault("app_meta.name", "app-manager")
	v.SetDefault("app_meta.version", "v1")
	v.SetDefault("app_meta.env", "dev")
	v.SetDefault("platform.owner_member_id", 1)
	v.SetDefault("platform.superuser_id", 1)
	v.SetDefault("kafka.group_id", "app-manager-audit")
	v.SetDefault("membership.timeout_ms", 3000)
	v.SetDefault("membership.cache_sec", 60)
	v.SetDefault("otel.enable", false)
	v.SetDefault("otel.sampler_ratio", 1.0)
	v.SetDefault("otel.insecure", true)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	if c.HTTP.Addr == "" {
		return nil, errors.New("http.addr required")
	}
	if c.Postgres.DSN == "" {
		return nil, errors.New("postgres.dsn required")
	}
	if c.JWT.Secret == "" || len(c.JWT.Secret) < 16 {
		return nil, fmt.Errorf("jwt.secret too short (>=16)")
	}
	if c.Platform.OwnerMemberID <= 0 || c.Platform.SuperuserID <= 0 {
		return nil, errors.New("platform ids must be >0")
	}
	if c.Membership.BaseURL == "" {
		return nil, errors.New("membership.base_url required")
	}
	if c.OTel.Enable {
		if c.OTel.Endpoint == "" {
			return nil, errors.New("otel.endpoint required when otel.enable=true")
		}
		if c.OTel.SamplerRatio < 0 || c.OTel.SamplerRatio > 1 {
			return nil, errors.New("otel.sampler_ratio must be in [0,1]")
		}
	}
	return &c, nil
}
