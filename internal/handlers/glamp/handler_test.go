package glamp_test

import (
	"encoding/json"
	"glamp/infras/otel/mocks"
	"glamp/internal/domains/glamp/model"
	"glamp/internal/domains/glamp/model/dto"
	glampMocks "glamp/internal/domains/glamp/service/mocks"
	"glamp/internal/handlers/glamp"
	"glamp/shared/failure"
	"glamp/shared/money"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (chi.Router, *glampMocks.MockGlamp) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := glampMocks.NewMockGlamp(ctrl)
	handler := glamp.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestHandler_GetGlamps(t *testing.T) {
	router, svc := newRouter(t)

	price := money.FromMajor(25000)
	svc.EXPECT().GetAll(gomock.Any()).Return([]model.Glamp{{ID: "a", Name: "Dome", PricePerNight: &price}, {ID: "b", Name: "Cabin"}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/glamps", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.GetGlampsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 2, body.Data.TotalData)
	assert.Equal(t, "PKR 25,000", body.Data.Glamps[0].PricePerNightDisplay)
	assert.Nil(t, body.Data.Glamps[1].PricePerNight)
}

func TestHandler_GetGlamp(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "found", expected: http.StatusOK},
		{name: "not found", err: failure.NotFound("Glamp not found"), expected: http.StatusNotFound},
		{name: "backend down", err: failure.ConnectionError, expected: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			svc.EXPECT().Get(gomock.Any(), "g-1").Return(model.Glamp{ID: "g-1"}, tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/glamps/g-1", nil))

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
