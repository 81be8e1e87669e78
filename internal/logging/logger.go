package logging

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// Logger 统一封装 zap；Request 范围内通过 WithContext 追加 trace_id / user_id
type Logger struct {
	*zap.Logger
}

func New(level, format string) (*Logger, error) {
	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	if level != "" {
		if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
			return nil, err
		}
	}
	lg, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{lg}, nil
}

// WithContext 返回附带请求字段的 logger
func (l *Logger) WithContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return l.Logger
	}
	fields := make([]zap.Field, 0, 2)
	if v, ok := ctx.Value("trace_id").(string); ok && v != "" {
		fields = append(fields, zap.String("trace_id", v))
	}
	if v, ok := ctx.Value("user_id").(int64); ok && v > 0 {
		fields = append(fields, zap.Int64("user_id", v))
	}
	if len(fields) == 0 {
		return l.Logger
	}
	return l.Logger.With(fields...)
}

// IntoContext 缓存 request 级 logger，FromContext 取回
func (l *Logger) IntoContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, l.WithContext(ctx))
}

func FromContext(ctx context.Context) *zap.Logger {
	if lg, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
		return lg
	}
	return zap.NewNop()
}
