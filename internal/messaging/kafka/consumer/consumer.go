package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-mrf/internal/bootstrap"
	"go-mrf/internal/events"
	"go-mrf/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Reader is the part of *kafkago.Reader the consumer loop needs.
type Reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type RequisitionEventHandler interface {
	HandleRequisitionEvent(ctx context.Context, event events.RequisitionStatusChangedEvent) error
}

// ConsumeRequisitionLifecycle reads the lifecycle topic until ctx is
// cancelled. A message is committed once handled or when it cannot be
// decoded; handler failures leave it uncommitted for redelivery.
func ConsumeRequisitionLifecycle(
	ctx context.Context,
	reader Reader,
	handler RequisitionEventHandler,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.requisition_lifecycle")
	log.Info("requisition lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("requisition lifecycle consumer stopped")
				return
			}
			log.Error("fetch requisition lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.RequisitionStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode requisition lifecycle event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		msgCtx := ctx
		if event.RequestID != "" {
			msgCtx = contextutil.WithRequestID(ctx, event.RequestID)
		}

		if err := handler.HandleRequisitionEvent(msgCtx, event); err != nil {
			log.Error("handle requisition lifecycle event failed",
				zap.String("requisition_id", event.RequisitionID),
				zap.String("company_id", event.CompanyID),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit requisition lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("requisition lifecycle event handled",
			zap.String("requisition_id", event.RequisitionID),
			zap.String("event_type", event.EventType),
			zap.String("to_status", event.ToStatus),
		)
	}
}

// CacheInvalidator drops derived views for a company.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, companyID string) error
}

// LifecycleProjector refreshes dashboard caches and records an audit entry
// for every lifecycle event.
type LifecycleProjector struct {
	dashboards CacheInvalidator
	audit      bootstrap.AuditLogger
}

func NewLifecycleProjector(dashboards CacheInvalidator, audit bootstrap.AuditLogger) *LifecycleProjector {
	return &LifecycleProjector{dashboards: dashboards, audit: audit}
}

func (p *LifecycleProjector) HandleRequisitionEvent(ctx context.Context, event events.RequisitionStatusChangedEvent) error {
	if event.CompanyID == "" || event.RequisitionID == "" {
		return fmt.Errorf("lifecycle event %q missing company or requisition id", event.EventType)
	}
	if err := p.dashboards.Invalidate(ctx, event.CompanyID); err != nil {
		return err
	}

	p.audit.Log(ctx, bootstrap.AuditLog{
		Action:  auditAction(event.EventType),
		Message: fmt.Sprintf("%s -> %s", orNone(event.FromStatus), event.ToStatus),
		ActorID: event.ActorID,
		Meta: map[string]any{
			"requisition_id":  event.RequisitionID,
			"company_id":      event.CompanyID,
			"director_status": event.DirectorStatus,
			"hr_status":       event.HRStatus,
			"occurred_at":     event.OccurredAt,
		},
	})
	return nil
}

func auditAction(eventType string) string {
	switch eventType {
	case events.RequisitionCreated:
		return "REQUISITION_CREATED"
	case events.RequisitionSubmitted:
		return "REQUISITION_SUBMITTED"
	case events.RequisitionWithdrawn:
		return "REQUISITION_WITHDRAWN"
	default:
		return "REQUISITION_STATUS_CHANGED"
	}
}

func orNone(s string) string {
	if s == "" {
		return "(new)"
	}
	return s
}
