package requisition_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-mrf/internal/middleware"
	"go-mrf/internal/requisition"
	requisitionerrors "go-mrf/internal/requisition/errors"
	"go-mrf/internal/rolegate"
	rolegateerrors "go-mrf/internal/rolegate/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRequisitionService struct {
	requisition.Service
	createFn     func(ctx context.Context, companyID string, actor *rolegate.Actor, req requisition.CreateRequisitionRequest) (requisition.RequisitionResponse, error)
	getAllFn     func(ctx context.Context, companyID string, actor *rolegate.Actor, filter requisition.ListFilter) ([]requisition.RequisitionResponse, error)
	transitionFn func(ctx context.Context, companyID string, actor *rolegate.Actor, id string, req requisition.TransitionRequest) (requisition.RequisitionResponse, error)
	deactivateFn func(ctx context.Context, companyID string, actor *rolegate.Actor, id, queryID string) error
}

func (f *fakeRequisitionService) Create(ctx context.Context, companyID string, actor *rolegate.Actor, req requisition.CreateRequisitionRequest) (requisition.RequisitionResponse, error) {
	return f.createFn(ctx, companyID, actor, req)
}

func (f *fakeRequisitionService) GetAll(ctx context.Context, companyID string, actor *rolegate.Actor, filter requisition.ListFilter) ([]requisition.RequisitionResponse, error) {
	return f.getAllFn(ctx, companyID, actor, filter)
}

func (f *fakeRequisitionService) Transition(ctx context.Context, companyID string, actor *rolegate.Actor, id string, req requisition.TransitionRequest) (requisition.RequisitionResponse, error) {
	return f.transitionFn(ctx, companyID, actor, id, req)
}

func (f *fakeRequisitionService) DeactivateQuery(ctx context.Context, companyID string, actor *rolegate.Actor, id, queryID string) error {
	return f.deactivateFn(ctx, companyID, actor, id, queryID)
}

func setupRouter(h *requisition.Handler, empID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.KeyCompanyID, "c-1")
		if empID != "" {
			c.Set(middleware.KeyEmployeeID, empID)
			c.Set(middleware.KeyEmpPos, "Team Lead")
		}
		c.Next()
	})
	r.GET("/requisitions", h.GetAll)
	r.POST("/requisitions", h.Create)
	r.POST("/requisitions/:id/transition", h.Transition)
	r.DELETE("/requisitions/:id/queries/:queryId", h.DeactivateQuery)
	return r
}

func TestRequisitionHandler_Create(t *testing.T) {
	body := `{"department":"Engineering","designation":"SRE","employment_type":"Full Time","requirement_type":"New Requirement","headcount":1,"ctc_min":"100","ctc_max":"200","hiring_tat":"fastag"}`

	t.Run("success", func(t *testing.T) {
		svc := &fakeRequisitionService{
			createFn: func(ctx context.Context, cid string, actor *rolegate.Actor, req requisition.CreateRequisitionRequest) (requisition.RequisitionResponse, error) {
				assert.Equal(t, "c-1", cid)
				assert.Equal(t, "E-1", actor.EmpID)
				assert.Equal(t, "100", req.CTCMin.String())
				return requisition.RequisitionResponse{MRFNumber: "MRF-000001", Status: "Pending"}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/requisitions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(requisition.NewHandler(svc), "E-1").ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "MRF-000001")
	})

	t.Run("unknown requirement type", func(t *testing.T) {
		svc := &fakeRequisitionService{}
		bad := strings.Replace(body, "New Requirement", "Temporary", 1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/requisitions", strings.NewReader(bad))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(requisition.NewHandler(svc), "E-1").ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
		assert.Contains(t, w.Body.String(), "Requirement Type must be one of: Ramp up, New Requirement, Replacement")
	})
}

func TestRequisitionHandler_GetAll(t *testing.T) {
	svc := &fakeRequisitionService{
		getAllFn: func(ctx context.Context, cid string, actor *rolegate.Actor, filter requisition.ListFilter) ([]requisition.RequisitionResponse, error) {
			assert.Equal(t, "Pending", filter.Status)
			out := make([]requisition.RequisitionResponse, 12)
			for i := range out {
				out[i].Status = "Pending"
			}
			return out, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/requisitions?status=Pending&page=2&page_size=5", nil)
	setupRouter(requisition.NewHandler(svc), "E-1").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":12`)
	assert.Contains(t, w.Body.String(), `"page":2`)
}

func TestRequisitionHandler_Transition(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		empID      string
		svcErr     error
		wantStatus int
	}{
		{name: "success", body: `{"role":"Director","status":"Approve"}`, empID: "D-1", wantStatus: http.StatusOK},
		{name: "missing role", body: `{"status":"Approve"}`, empID: "D-1", wantStatus: http.StatusBadRequest},
		{name: "forbidden", body: `{"role":"HR","status":"Approve"}`, empID: "E-1", svcErr: rolegateerrors.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "anonymous", body: `{"role":"HR","status":"Approve"}`, svcErr: rolegateerrors.ErrUnauthenticated, wantStatus: http.StatusUnauthorized},
		{name: "conflict", body: `{"role":"Director","status":"Reject"}`, empID: "D-1", svcErr: requisitionerrors.ErrConcurrentUpdate, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeRequisitionService{
				transitionFn: func(ctx context.Context, cid string, actor *rolegate.Actor, id string, req requisition.TransitionRequest) (requisition.RequisitionResponse, error) {
					assert.Equal(t, "req-1", id)
					if tt.empID == "" {
						assert.Nil(t, actor)
					}
					return requisition.RequisitionResponse{ID: id, Status: req.Status}, tt.svcErr
				},
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/requisitions/req-1/transition", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			setupRouter(requisition.NewHandler(svc), tt.empID).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequisitionHandler_DeactivateQuery(t *testing.T) {
	svc := &fakeRequisitionService{
		deactivateFn: func(ctx context.Context, cid string, actor *rolegate.Actor, id, queryID string) error {
			assert.Equal(t, "req-1", id)
			assert.Equal(t, "q-1", queryID)
			return nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/requisitions/req-1/queries/q-1", nil)
	setupRouter(requisition.NewHandler(svc), "H-1").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Inactive")
}
