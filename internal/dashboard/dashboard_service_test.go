package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-mrf/internal/dashboard"
	"go-mrf/internal/manager"
	"go-mrf/internal/requisition"
	"go-mrf/internal/rolegate"
	rolegateerrors "go-mrf/internal/rolegate/errors"
	"go-mrf/internal/workflow"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRequisitions struct {
	rows    []requisition.Requisition
	raw     map[string]any
	err     error
	filters []requisition.ListFilter
}

func (f *fakeRequisitions) FindAllByCompany(_ context.Context, _ string, filter requisition.ListFilter) ([]requisition.Requisition, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	var out []requisition.Requisition
	for _, r := range f.rows {
		if filter.CreatedBy == "" || r.CreatedBy == filter.CreatedBy {
			out = append(out, r)
		}
	}
	return out, nil
}

// CountByStatus mimics the driver by returning int64 totals.
func (f *fakeRequisitions) CountByStatus(ctx context.Context, companyID string, filter requisition.ListFilter) (map[string]any, error) {
	if f.raw != nil {
		f.filters = append(f.filters, filter)
		return f.raw, nil
	}
	rows, err := f.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	counts := map[string]any{}
	for _, r := range rows {
		n, _ := counts[r.Status].(int64)
		counts[r.Status] = n + 1
	}
	return counts, nil
}

type fakeManagers struct {
	list []manager.ManagerResponse
	err  error
}

func (f *fakeManagers) GetAll(context.Context, string) ([]manager.ManagerResponse, error) {
	return f.list, f.err
}

type fakeGate struct {
	admins map[string]bool
}

func (g fakeGate) Can(actor *rolegate.Actor, _ rolegate.Capability) error {
	if actor == nil {
		return rolegateerrors.ErrUnauthenticated
	}
	if g.admins[actor.EmpID] {
		return nil
	}
	return rolegateerrors.ErrForbidden
}

func row(createdBy string, status workflow.Status) requisition.Requisition {
	return requisition.Requisition{ID: uuid.New(), CreatedBy: createdBy, Status: string(status)}
}

func fixture() *fakeRequisitions {
	return &fakeRequisitions{rows: []requisition.Requisition{
		row("E-1", workflow.StatusPending),
		row("E-1", workflow.StatusPending),
		row("E-1", workflow.StatusDraft),
		row("E-2", workflow.StatusReject),
		row("E-2", workflow.StatusHRApprove),
	}}
}

const companyID = "c-1"

func TestDashboardService_Get(t *testing.T) {
	ctx := context.Background()
	gate := fakeGate{admins: map[string]bool{"SA-1": true}}
	managers := &fakeManagers{list: []manager.ManagerResponse{
		{EmployeeID: "E-1", Name: "Asha"},
		{EmployeeID: "E-2", Name: "Ravi"},
	}}

	t.Run("admin view covers the company", func(t *testing.T) {
		reqs := fixture()
		svc := dashboard.NewService(reqs, managers, gate, nil, zap.NewNop())

		resp, err := svc.Get(ctx, companyID, &rolegate.Actor{EmpID: "SA-1"})

		assert.NoError(t, err)
		assert.Equal(t, dashboard.ViewAdmin, resp.View)
		assert.True(t, resp.DataAvailable)
		assert.Equal(t, 5, resp.Totals.Total)
		assert.Equal(t, 2, resp.Totals.Pending)
		if assert.Len(t, resp.Managers, 2) {
			assert.Equal(t, 3, resp.Managers[0].Total)
			assert.Equal(t, 2, resp.Managers[1].Total)
		}
		assert.Equal(t, "", reqs.filters[0].CreatedBy)
	})

	t.Run("functional head sees own requisitions", func(t *testing.T) {
		reqs := fixture()
		svc := dashboard.NewService(reqs, managers, gate, nil, zap.NewNop())

		resp, err := svc.Get(ctx, companyID, &rolegate.Actor{EmpID: "E-2"})

		assert.NoError(t, err)
		assert.Equal(t, dashboard.ViewFunctionalHead, resp.View)
		assert.Equal(t, 1, resp.Totals.Rejected)
		assert.Equal(t, 1, resp.Totals.Approved)
		assert.Equal(t, 0, resp.Totals.Pending)
		assert.Empty(t, resp.Managers)
		assert.Equal(t, "E-2", reqs.filters[0].CreatedBy)
	})

	t.Run("loosely typed counts are read fail-soft", func(t *testing.T) {
		reqs := &fakeRequisitions{raw: map[string]any{
			"Pending": "4",
			"Reject":  json.Number("2"),
			"On Hold": "n/a",
			"Approve": -3,
		}}
		svc := dashboard.NewService(reqs, managers, gate, nil, zap.NewNop())

		resp, err := svc.Get(ctx, companyID, &rolegate.Actor{EmpID: "E-3"})

		assert.NoError(t, err)
		assert.True(t, resp.DataAvailable)
		assert.Equal(t, 4, resp.Totals.Pending)
		assert.Equal(t, 2, resp.Totals.Rejected)
		assert.Equal(t, 0, resp.Totals.OnHold)
		assert.Equal(t, 6, resp.Totals.Total)
		assert.Equal(t, "E-3", reqs.filters[0].CreatedBy)
	})

	t.Run("storage failure yields an empty dashboard", func(t *testing.T) {
		reqs := &fakeRequisitions{err: errors.New("db down")}
		svc := dashboard.NewService(reqs, managers, gate, nil, zap.NewNop())

		resp, err := svc.Get(ctx, companyID, &rolegate.Actor{EmpID: "E-1"})

		assert.NoError(t, err)
		assert.False(t, resp.DataAvailable)
		assert.Equal(t, 0, resp.Totals.Total)
		assert.Empty(t, resp.Breakdown)
	})

	t.Run("manager directory failure keeps totals", func(t *testing.T) {
		svc := dashboard.NewService(fixture(), &fakeManagers{err: errors.New("redis down")}, gate, nil, zap.NewNop())

		resp, err := svc.Get(ctx, companyID, &rolegate.Actor{EmpID: "SA-1"})

		assert.NoError(t, err)
		assert.Equal(t, 5, resp.Totals.Total)
		assert.Empty(t, resp.Managers)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		svc := dashboard.NewService(fixture(), managers, gate, nil, zap.NewNop())

		_, err := svc.Get(ctx, companyID, nil)

		assert.ErrorIs(t, err, rolegateerrors.ErrUnauthenticated)
	})
}

func TestDashboardService_Cache(t *testing.T) {
	ctx := context.Background()
	gate := fakeGate{}
	actor := &rolegate.Actor{EmpID: "E-1"}
	key := dashboard.GetDashboardKey(companyID, dashboard.ViewFunctionalHead, "E-1")

	t.Run("hit skips storage", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		reqs := fixture()
		svc := dashboard.NewService(reqs, nil, gate, rdb, zap.NewNop())

		cached := dashboard.Response{View: dashboard.ViewFunctionalHead, DataAvailable: true}
		cached.Totals.Total = 42
		payload, _ := json.Marshal(cached)
		mock.ExpectGet(key).SetVal(string(payload))

		resp, err := svc.Get(ctx, companyID, actor)

		assert.NoError(t, err)
		assert.Equal(t, 42, resp.Totals.Total)
		assert.Empty(t, reqs.filters)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss stores for five minutes", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		svc := dashboard.NewService(fixture(), nil, gate, rdb, zap.NewNop())

		mock.ExpectGet(key).RedisNil()
		mock.Regexp().ExpectSet(key, `.*`, 5*time.Minute).SetVal("OK")

		resp, err := svc.Get(ctx, companyID, actor)

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Totals.Total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("degraded result is not cached", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		svc := dashboard.NewService(&fakeRequisitions{err: errors.New("db down")}, nil, gate, rdb, zap.NewNop())

		mock.ExpectGet(key).RedisNil()

		_, err := svc.Get(ctx, companyID, actor)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDashboardService_Invalidate(t *testing.T) {
	ctx := context.Background()
	match := dashboard.DashboardKeyPrefix + companyID + ":*"

	t.Run("deletes every page of keys", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		svc := dashboard.NewService(nil, nil, fakeGate{}, rdb, zap.NewNop())

		mock.ExpectScan(0, match, 100).SetVal([]string{"dashboard:c-1:admin:SA-1"}, 7)
		mock.ExpectDel("dashboard:c-1:admin:SA-1").SetVal(1)
		mock.ExpectScan(7, match, 100).SetVal([]string{}, 0)

		assert.NoError(t, svc.Invalidate(ctx, companyID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("scan error", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		svc := dashboard.NewService(nil, nil, fakeGate{}, rdb, zap.NewNop())

		mock.ExpectScan(0, match, 100).SetErr(errors.New("redis down"))

		assert.Error(t, svc.Invalidate(ctx, companyID))
	})

	t.Run("without redis", func(t *testing.T) {
		svc := dashboard.NewService(nil, nil, fakeGate{}, nil, zap.NewNop())

		assert.NoError(t, svc.Invalidate(ctx, companyID))
	})
}
