package observability

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"go-appmanager/internal/mq/kafka"
)

var skipAuditPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
	"/metrics": {},
}

// AuditEvent is the wire shape published per mutating request; the
// auditlog consumer persists it.
type AuditEvent struct {
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

// Audit 审计中间件：写操作落 Kafka，读操作跳过
func Audit(p *kafka.Producer) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawPath := c.Request.URL.Path
		if _, ok := skipAuditPaths[rawPath]; ok || c.Request.Method == "GET" {
			c.Next()
			return
		}
		start := time.Now()
		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(io.LimitReader(c.Request.Body, 4096))
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = rawPath
		}
		e := AuditEvent{
			Action:    path + " " + c.Request.Method,
			Path:      path,
			Method:    c.Request.Method,
			Status:    c.Writer.Status(),
			UserID:    c.GetInt64("user_id"),
			MemberID:  c.GetInt64("member_id"),
			IP:        c.ClientIP(),
			LatencyMS: time.Since(start).Milliseconds(),
			Body:      string(body),
			TraceID:   c.GetString(TraceIDKey),
			Time:      time.Now().Format(time.RFC3339),
		}
		b, _ := json.Marshal(e)
		headers := map[string]string{}
		if e.TraceID != "" {
			headers["trace_id"] = e.TraceID
		}
		// 审计失败不影响请求本身
		_ = p.Send(c.Request.Context(), nil, b, headers)
	}
}
