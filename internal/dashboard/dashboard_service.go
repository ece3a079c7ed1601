// Package dashboard feeds the admin and functional head dashboards from the
// aggregator, caching each view in redis until a lifecycle event invalidates
// the company.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-mrf/internal/aggregator"
	"go-mrf/internal/manager"
	"go-mrf/internal/requisition"
	"go-mrf/internal/rolegate"
	rolegateerrors "go-mrf/internal/rolegate/errors"
	"go-mrf/internal/workflow"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DashboardKeyPrefix = "dashboard:"
	dashboardCacheTTL  = 5 * time.Minute
	scanBatch          = 100
)

func GetDashboardKey(companyID string, view View, employeeID string) string {
	return fmt.Sprintf("%s%s:%s:%s", DashboardKeyPrefix, companyID, view, employeeID)
}

type RequisitionSource interface {
	FindAllByCompany(ctx context.Context, companyID string, filter requisition.ListFilter) ([]requisition.Requisition, error)
	CountByStatus(ctx context.Context, companyID string, filter requisition.ListFilter) (map[string]any, error)
}

type ManagerSource interface {
	GetAll(ctx context.Context, companyID string) ([]manager.ManagerResponse, error)
}

type AccessChecker interface {
	Can(actor *rolegate.Actor, c rolegate.Capability) error
}

type Service interface {
	Get(ctx context.Context, companyID string, actor *rolegate.Actor) (Response, error)
	Invalidate(ctx context.Context, companyID string) error
}

type service struct {
	requisitions RequisitionSource
	managers     ManagerSource
	gate         AccessChecker
	rdb          *redis.Client
	sf           *singleflight.Group
	logger       *zap.Logger
}

func NewService(
	requisitions RequisitionSource,
	managers ManagerSource,
	gate AccessChecker,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		requisitions: requisitions,
		managers:     managers,
		gate:         gate,
		rdb:          rdb,
		sf:           &singleflight.Group{},
		logger:       l,
	}
}

func (s *service) Get(ctx context.Context, companyID string, actor *rolegate.Actor) (Response, error) {
	view, err := s.viewFor(actor)
	if err != nil {
		return Response{}, err
	}

	cacheKey := GetDashboardKey(companyID, view, actor.EmpID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp Response
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, _, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp := s.build(ctx, companyID, view, actor.EmpID)

		if s.rdb != nil && resp.DataAvailable {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, dashboardCacheTTL).Err(); err != nil {
					s.logger.Warn("cache dashboard failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})

	return v.(Response), nil
}

func (s *service) viewFor(actor *rolegate.Actor) (View, error) {
	err := s.gate.Can(actor, rolegate.CapAdminDashboard)
	switch {
	case err == nil:
		return ViewAdmin, nil
	case errors.Is(err, rolegateerrors.ErrForbidden):
		return ViewFunctionalHead, nil
	default:
		return "", err
	}
}

func (s *service) build(ctx context.Context, companyID string, view View, employeeID string) Response {
	if view == ViewFunctionalHead {
		return s.buildOwn(ctx, companyID, employeeID)
	}

	resp := Response{View: view, Breakdown: []aggregator.Slice{}}

	rows, err := s.requisitions.FindAllByCompany(ctx, companyID, requisition.ListFilter{})
	if err != nil {
		s.logger.Error("load requisitions for dashboard failed",
			zap.String("company_id", companyID),
			zap.String("view", string(view)),
			zap.Error(err),
		)
		rows = nil
	} else {
		resp.DataAvailable = true
	}

	items := lo.Map(rows, func(r requisition.Requisition, _ int) aggregator.Item {
		return aggregator.Item{ID: r.ID.String(), CreatedBy: r.CreatedBy, Status: workflow.Status(r.Status)}
	})

	counts := aggregator.CountByStatus(items)
	resp.Totals = aggregator.Totals(counts)
	resp.Breakdown = aggregator.PendingBreakdown(counts)
	resp.Managers = aggregator.CountByManager(items, s.loadManagers(ctx, companyID))

	return resp
}

// buildOwn needs no per-row data, so it reads grouped counts instead of
// loading the requester's rows.
func (s *service) buildOwn(ctx context.Context, companyID, employeeID string) Response {
	resp := Response{View: ViewFunctionalHead, Breakdown: []aggregator.Slice{}}

	raw, err := s.requisitions.CountByStatus(ctx, companyID, requisition.ListFilter{CreatedBy: employeeID})
	if err != nil {
		s.logger.Error("count requisitions for dashboard failed",
			zap.String("company_id", companyID),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		raw = nil
	} else {
		resp.DataAvailable = true
	}

	counts := aggregator.CountsFromRaw(raw)
	resp.Totals = aggregator.Totals(counts)
	resp.Breakdown = aggregator.PendingBreakdown(counts)
	return resp
}

func (s *service) loadManagers(ctx context.Context, companyID string) []aggregator.Manager {
	if s.managers == nil {
		return nil
	}
	list, err := s.managers.GetAll(ctx, companyID)
	if err != nil {
		s.logger.Warn("load managers for dashboard failed", zap.String("company_id", companyID), zap.Error(err))
		return nil
	}
	return lo.Map(list, func(m manager.ManagerResponse, _ int) aggregator.Manager {
		return aggregator.Manager{EmployeeID: m.EmployeeID, Name: m.Name, ReportingManager: m.ReportingManager}
	})
}

// Invalidate removes every cached view of the company.
func (s *service) Invalidate(ctx context.Context, companyID string) error {
	if s.rdb == nil {
		return nil
	}

	match := DashboardKeyPrefix + companyID + ":*"
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, match, scanBatch).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	s.logger.Debug("dashboard cache invalidated", zap.String("company_id", companyID))
	return nil
}
