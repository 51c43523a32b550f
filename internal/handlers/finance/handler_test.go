package finance_test

import (
	"context"
	"glamp/infras/otel/mocks"
	"glamp/internal/domains/finance/model"
	"glamp/internal/domains/finance/model/dto"
	financeMocks "glamp/internal/domains/finance/service/mocks"
	"glamp/internal/handlers/finance"
	"glamp/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (chi.Router, *financeMocks.MockFinance) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := financeMocks.NewMockFinance(ctrl)
	handler := finance.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_List(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		List(gomock.Any(), model.KindExpenses, dto.Filter{Page: 2, Limit: 10, Status: "SUBMITTED", Search: "fuel"}).
		Return(dto.ListResponse{Kind: model.KindExpenses, Items: []model.Record{{ID: "e-1"}}}, nil)

	rec := serve(router, http.MethodGet, "/finance/expenses?page=2&status=submitted&search=+fuel+", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"e-1"`)
}

func TestHandler_UnknownKind(t *testing.T) {
	router, _ := newRouter(t)

	for _, target := range []string{"/finance/salaries", "/finance/salaries/summary"} {
		rec := serve(router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}

	rec := serve(router, http.MethodPost, "/finance/salaries/s-1/approve", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Summary(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		Summary(gomock.Any(), model.KindIncome, gomock.Any()).
		Return(dto.SummaryResponse{Kind: model.KindIncome, Summary: model.NewSummary()}, nil)

	rec := serve(router, http.MethodGet, "/finance/income/summary", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Create(gomock.Any(), model.KindPurchases, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ model.Kind, req dto.CreateRequest, _ dto.Filter) (dto.ActionResponse, error) {
				assert.Equal(t, "Tent canvas", req.Title)
				assert.Equal(t, "2024-06-01", req.Date)

				return dto.ActionResponse{Message: "Purchase created"}, nil
			})

		rec := serve(router, http.MethodPost, "/finance/purchases", `{"title":"Tent canvas","amount":250000,"date":"2024-06-01"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Purchase created")
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPost, "/finance/purchases", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Transition(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		body     string
		action   model.Action
		reason   string
		err      error
		expected int
	}{
		{name: "submit without body", target: "/finance/expenses/e-1/submit", action: model.ActionSubmit, expected: http.StatusOK},
		{name: "reject with reason", target: "/finance/expenses/e-1/reject", body: `{"reason":"no receipt"}`, action: model.ActionReject, reason: "no receipt", expected: http.StatusOK},
		{name: "approve conflict", target: "/finance/expenses/e-1/approve", action: model.ActionApprove, err: failure.Conflict("This expense is approved and can no longer be approved"), expected: http.StatusConflict},
		{name: "forbidden", target: "/finance/expenses/e-1/approve", action: model.ActionApprove, err: failure.PermissionDenied, expected: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			svc.EXPECT().
				Transition(gomock.Any(), model.KindExpenses, "e-1", tt.action, dto.ActionRequest{Reason: tt.reason}, gomock.Any()).
				Return(dto.ActionResponse{Message: "Expense updated"}, tt.err)

			rec := serve(router, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}

	t.Run("unknown action", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPost, "/finance/expenses/e-1/archive", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		Delete(gomock.Any(), model.KindIncome, "i-1", gomock.Any()).
		Return(dto.ActionResponse{Message: "Income deleted"}, nil)

	rec := serve(router, http.MethodDelete, "/finance/income/i-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Reports(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().PayablesSummary(gomock.Any(), gomock.Any()).Return(dto.PayablesSummaryResponse{}, nil)
	svc.EXPECT().
		ProfitLoss(gomock.Any(), "", dto.ReportFilter{From: "2024-06-01", To: "2024-06-30"}).
		Return(dto.ProfitLossResponse{}, nil)
	svc.EXPECT().
		Statements(gomock.Any(), "", dto.ReportFilter{Page: 2}).
		Return(dto.StatementResponse{}, failure.ConnectionError)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/finance/payables/summary", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/finance/profit-loss?from=2024-06-01&to=2024-06-30", "").Code)
	assert.Equal(t, http.StatusBadGateway, serve(router, http.MethodGet, "/finance/statements?page=2", "").Code)
}
