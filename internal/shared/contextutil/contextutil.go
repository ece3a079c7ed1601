// Package contextutil carries request metadata and a request-scoped logger
// through context.Context.
package contextutil

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	requestIDKey  contextKey = "request_id"
	employeeIDKey contextKey = "employee_id"
	loggerKey     contextKey = "logger"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithEmployeeID records the signed-in employee, the actor for RoleGate.
func WithEmployeeID(ctx context.Context, empID string) context.Context {
	return context.WithValue(ctx, employeeIDKey, empID)
}

func GetEmployeeID(ctx context.Context) string {
	if id, ok := ctx.Value(employeeIDKey).(string); ok {
		return id
	}
	return ""
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, then defaultLogger, then a
// no-op logger. It never returns nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	return zap.NewNop()
}

// Logger decorates base with the request metadata found in ctx. Use it when
// the component's own named logger should be kept.
func Logger(ctx context.Context, base *zap.Logger) *zap.Logger {
	fields := ExtractMetadata(ctx).Fields()
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}

type Metadata struct {
	RequestID  string
	EmployeeID string
}

func ExtractMetadata(ctx context.Context) Metadata {
	if ctx == nil {
		return Metadata{}
	}
	return Metadata{
		RequestID:  GetRequestID(ctx),
		EmployeeID: GetEmployeeID(ctx),
	}
}

// Fields returns the non-empty metadata as zap fields.
func (m Metadata) Fields() []zap.Field {
	var fields []zap.Field
	if m.RequestID != "" {
		fields = append(fields, zap.String("request_id", m.RequestID))
	}
	if m.EmployeeID != "" {
		fields = append(fields, zap.String("employee_id", m.EmployeeID))
	}
	return fields
}
