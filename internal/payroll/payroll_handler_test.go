package payroll_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-workforce/internal/payroll"
	payrollerrors "go-workforce/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubPayrollService struct {
	payroll.Service
	create   func(ctx context.Context, companyID, actorID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error)
	markPaid func(ctx context.Context, companyID, actorID, id string, version *int) (payroll.PayrollResponse, error)
	update   func(ctx context.Context, companyID, actorID, id string, req payroll.UpdateStatusRequest) (payroll.PayrollResponse, error)
	stats    func(ctx context.Context, companyID string, filter payroll.StatsFilter) (payroll.PayrollStatistics, error)
	remove   func(ctx context.Context, companyID, actorID, id string) error
}

func (s *stubPayrollService) Create(ctx context.Context, companyID, actorID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	return s.create(ctx, companyID, actorID, req)
}
func (s *stubPayrollService) MarkPaid(ctx context.Context, companyID, actorID, id string, version *int) (payroll.PayrollResponse, error) {
	return s.markPaid(ctx, companyID, actorID, id, version)
}
func (s *stubPayrollService) UpdateStatus(ctx context.Context, companyID, actorID, id string, req payroll.UpdateStatusRequest) (payroll.PayrollResponse, error) {
	return s.update(ctx, companyID, actorID, id, req)
}
func (s *stubPayrollService) Stats(ctx context.Context, companyID string, filter payroll.StatsFilter) (payroll.PayrollStatistics, error) {
	return s.stats(ctx, companyID, filter)
}
func (s *stubPayrollService) Delete(ctx context.Context, companyID, actorID, id string) error {
	return s.remove(ctx, companyID, actorID, id)
}

func newPayrollRouter(companyID, actorID string, svc payroll.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := payroll.NewHandler(svc, zap.NewNop())
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Set("employee_id", actorID)
		c.Next()
	})
	r.POST("/payrolls", h.Create)
	r.GET("/payrolls/stats", h.GetStats)
	r.PATCH("/payrolls/:id/status", h.UpdateStatus)
	r.POST("/payrolls/:id/mark-paid", h.MarkPaid)
	r.DELETE("/payrolls/:id", h.Delete)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestPayrollHandler_Create(t *testing.T) {
	companyID, actorID := uuid.NewString(), uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("decimal fields accept numbers and strings", func(t *testing.T) {
		svc := &stubPayrollService{
			create: func(ctx context.Context, cid, aid string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, actorID, aid)
				assert.True(t, d("10000000").Equal(req.BaseSalary))
				assert.True(t, d("500000.50").Equal(req.Allowances.Meal))
				return payroll.PayrollResponse{PayrollCode: "PRL-000001", Status: payroll.StatusDraft, NetPay: d("10500000.50")}, nil
			},
		}
		r := newPayrollRouter(companyID, actorID, svc)

		w := serve(r, http.MethodPost, "/payrolls", `{
			"employee_id":"`+employeeID+`","period_start":"2025-03-01","period_end":"2025-03-31",
			"period_type":"monthly","base_salary":10000000,"allowances":{"meal":"500000.50"}}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"payroll_code":"PRL-000001"`)
		assert.Contains(t, w.Body.String(), `"net_pay":"10500000.5"`)
	})

	t.Run("invalid amount", func(t *testing.T) {
		svc := &stubPayrollService{
			create: func(ctx context.Context, cid, aid string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
				return payroll.PayrollResponse{}, payrollerrors.ErrInvalidAmount.WithDetails(map[string]string{"field": "deductions.tax"})
			},
		}
		r := newPayrollRouter(companyID, actorID, svc)

		w := serve(r, http.MethodPost, "/payrolls", `{
			"employee_id":"`+employeeID+`","period_start":"2025-03-01","period_end":"2025-03-31",
			"period_type":"monthly","deductions":{"tax":-5}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"INVALID_INPUT"`)
	})

	t.Run("unknown period type fails binding", func(t *testing.T) {
		r := newPayrollRouter(companyID, actorID, &stubPayrollService{})

		w := serve(r, http.MethodPost, "/payrolls", `{
			"employee_id":"`+employeeID+`","period_start":"2025-03-01","period_end":"2025-03-31","period_type":"weekly"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPayrollHandler_StatusChanges(t *testing.T) {
	id := uuid.NewString()

	t.Run("mark paid on draft", func(t *testing.T) {
		svc := &stubPayrollService{
			markPaid: func(ctx context.Context, cid, actor, pid string, version *int) (payroll.PayrollResponse, error) {
				assert.Equal(t, id, pid)
				assert.Nil(t, version)
				return payroll.PayrollResponse{}, payrollerrors.ErrInvalidTransition
			},
		}
		r := newPayrollRouter(uuid.NewString(), uuid.NewString(), svc)

		w := serve(r, http.MethodPost, "/payrolls/"+id+"/mark-paid", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"INVALID_STATE"`)
	})

	t.Run("patch status carries version", func(t *testing.T) {
		svc := &stubPayrollService{
			update: func(ctx context.Context, cid, actor, pid string, req payroll.UpdateStatusRequest) (payroll.PayrollResponse, error) {
				assert.Equal(t, payroll.StatusFinalized, req.Status)
				assert.Equal(t, 2, *req.Version)
				return payroll.PayrollResponse{ID: pid, Status: req.Status, Version: 3}, nil
			},
		}
		r := newPayrollRouter(uuid.NewString(), uuid.NewString(), svc)

		w := serve(r, http.MethodPatch, "/payrolls/"+id+"/status", `{"status":"finalized","version":2}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"version":3`)
	})

	t.Run("draft is not a target status", func(t *testing.T) {
		r := newPayrollRouter(uuid.NewString(), uuid.NewString(), &stubPayrollService{})

		w := serve(r, http.MethodPatch, "/payrolls/"+id+"/status", `{"status":"draft"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("paid payroll cannot be deleted", func(t *testing.T) {
		svc := &stubPayrollService{
			remove: func(ctx context.Context, cid, actor, pid string) error { return payrollerrors.ErrDeletePaid },
		}
		r := newPayrollRouter(uuid.NewString(), uuid.NewString(), svc)

		w := serve(r, http.MethodDelete, "/payrolls/"+id, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"INVALID_STATE"`)
	})
}

func TestPayrollHandler_GetStats(t *testing.T) {
	called := false
	svc := &stubPayrollService{
		stats: func(ctx context.Context, cid string, f payroll.StatsFilter) (payroll.PayrollStatistics, error) {
			called = true
			assert.Equal(t, "2025-01-01", f.StartDate)
			return payroll.PayrollStatistics{TotalPayrolls: 9, PaidCount: 4, AverageNetPay: d("7250000")}, nil
		},
	}
	r := newPayrollRouter(uuid.NewString(), uuid.NewString(), svc)

	w := serve(r, http.MethodGet, "/payrolls/stats?start_date=2025-01-01", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)

	w = serve(r, http.MethodGet, "/payrolls/stats?start_date=2025-01-01&end_date=2025-03-31", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_payrolls":9`)
	assert.Contains(t, w.Body.String(), `"average_net_pay":"7250000"`)
}
