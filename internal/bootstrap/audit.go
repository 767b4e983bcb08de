package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// AuditLog is one operational audit record.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records operational events that must survive in the logs
// regardless of log level configuration.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("audit").Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
