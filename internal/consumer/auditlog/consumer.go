package auditlog

import (
	"context"
	"encoding/json"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-appmanager/internal/domain/model"
	"go-appmanager/internal/logging"
)

type Config struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Consumer 消费审计事件并落库 audit_log
type Consumer struct {
	reader *kafkaGo.Reader
	DB     *gorm.DB
	Log    *logging.Logger
}

type event struct {
	Action    string `json:"action"`
	Path      string `json:"path"`
	Method    string `json:"method"`
	Status    int    `json:"status"`
	UserID    int64  `json:"user_id"`
	MemberID  int64  `json:"member_id"`
	IP        string `json:"ip"`
	LatencyMS int64  `json:"latency_ms"`
	Body      string `json:"body"`
	TraceID   string `json:"trace_id"`
	Time      string `json:"time"`
}

func NewConsumer(cfg Config, db *gorm.DB, log *logging.Logger) *Consumer {
	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MinBytes: 1, MaxBytes: 10e6,
	})
	return &Consumer{reader: reader, DB: db, Log: log}
}

func (c *Consumer) Run(ctx context.Context) error {
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}
		var e event
		if err := json.Unmarshal(m.Value, &e); err != nil {
			c.Log.Warn("audit event unmarshal failed", zap.Error(err))
			continue
		}
		created, err := time.Parse(time.RFC3339, e.Time)
		if err != nil {
			created = time.Now()
		}
		body := e.Body
		if len(body) > 2000 {
			body = body[:2000]
		}
		rec := model.AuditLog{
			Action:    e.Action,
			Path:      e.Path,
			Method:    e.Method,
			Status:    e.Status,
			UserID:    e.UserID,
			MemberID:  e.MemberID,
			IP:        e.IP,
			LatencyMS: e.LatencyMS,
			Body:      body,
			TraceID:   e.TraceID,
			Created:   created,
		}
		if err := c.DB.WithContext(ctx).Create(&rec).Error; err != nil {
			c.Log.Error("audit log insert failed", zap.Error(err))
		}
	}
}

func (c *Consumer) Close() error { return c.reader.Close() }
