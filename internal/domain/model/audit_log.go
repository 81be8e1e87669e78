package model

import "time"

// AuditLog is the persisted form of the kafka audit events emitted by the
// mutating HTTP routes. Written by the auditlog consumer, never by handlers.
type AuditLog struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Action    string    `gorm:"column:action;size:100;index" json:"action"`
	Path      string    `gorm:"column:path;size:255" json:"path"`
	Method    string    `gorm:"column:method;size:10" json:"method"`
	Status    int       `gorm:"column:status" json:"status"`
	UserID    int64     `gorm:"column:user_id;index" json:"user_id"`
	MemberID  int64     `gorm:"column:member_id;index" json:"member_id"`
	IP        string    `gorm:"column:ip;size:64" json:"ip"`
	LatencyMS int64     `gorm:"column:latency_ms" json:"latency_ms"`
	Body      string    `gorm:"column:body;type:text" json:"body"`
	TraceID   string    `gorm:"column:trace_id;size:64" json:"trace_id"`
	Created   time.Time `gorm:"column:created;autoCreateTime;index" json:"created"`
}

func (AuditLog) TableName() string { return "audit_log" }
