package booking_test

import (
	"context"
	"encoding/json"
	"glamp/infras/otel/mocks"
	"glamp/internal/domains/booking/model"
	"glamp/internal/domains/booking/model/dto"
	bookingMocks "glamp/internal/domains/booking/service/mocks"
	"glamp/internal/handlers/booking"
	"glamp/shared/constant"
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

const sessionID = "session-1"

func newRouter(t *testing.T) (chi.Router, *bookingMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := bookingMocks.NewMockBooking(ctrl)
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeySessionID, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Current(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Current(gomock.Any(), sessionID).Return(dto.WizardResponse{Wizard: model.NewWizard()}, nil)

	rec := serve(router, http.MethodGet, "/booking", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.WizardResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, model.StepAvailability, body.Data.Wizard.Step)
}

func TestHandler_SubmitAvailability(t *testing.T) {
	t.Run("decodes and forwards the session", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			SubmitAvailability(gomock.Any(), sessionID, dto.AvailabilityRequest{
				CheckIn:        "2024-06-01",
				CheckOut:       "2024-06-03",
				NumberOfGlamps: 1,
				Guests:         2,
			}).
			Return(dto.WizardResponse{Wizard: model.Wizard{Step: model.StepGuestDetails}}, nil)

		rec := serve(router, http.MethodPost, "/booking/availability",
			`{"checkIn":"2024-06-01","checkOut":"2024-06-03","numberOfGlamps":1,"guests":2}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPost, "/booking/availability", `{"checkIn":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service rejects", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			SubmitAvailability(gomock.Any(), sessionID, gomock.Any()).
			Return(dto.WizardResponse{}, failure.BadRequestFromString("Check-out date must be after check-in date"))

		rec := serve(router, http.MethodPost, "/booking/availability", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Check-out date must be after check-in date")
	})
}

func TestHandler_GuestDetailsBackAndReset(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		SubmitGuestDetails(gomock.Any(), sessionID, dto.GuestDetailsRequest{FirstName: "Ayesha", LastName: "Khan", Phone: "03001234567"}).
		Return(dto.WizardResponse{Wizard: model.Wizard{Step: model.StepPayment}}, nil)
	svc.EXPECT().Back(gomock.Any(), sessionID).Return(dto.WizardResponse{Wizard: model.Wizard{Step: model.StepGuestDetails}}, nil)
	svc.EXPECT().Reset(gomock.Any(), sessionID).Return(nil)

	rec := serve(router, http.MethodPost, "/booking/guest-details", `{"firstName":"Ayesha","lastName":"Khan","phone":"03001234567"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodPost, "/booking/back", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodDelete, "/booking", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Booking reset"}`, rec.Body.String())
}

func TestHandler_Quote(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		Quote(gomock.Any(), gomock.Any()).
		Return(dto.QuoteResponse{Nights: 2, Total: 3000000, Advance: 1500000, Remaining: 1500000}, nil)

	rec := serve(router, http.MethodPost, "/booking/quote",
		`{"checkIn":"2024-06-01","checkOut":"2024-06-03","selectedGlampIds":["8a3c1f6e-6b3e-4a51-9d1e-2f4a8c7b9e10"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nights":2`)
}

func TestHandler_Confirm(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "created", expected: http.StatusCreated},
		{name: "already submitting", err: failure.Conflict("Your booking is already being submitted"), expected: http.StatusConflict},
		{name: "backend down", err: failure.ConnectionError, expected: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			svc.EXPECT().
				Confirm(gomock.Any(), sessionID, dto.ConfirmRequest{Method: model.PaymentManual}).
				Return(dto.ConfirmResponse{BookingID: "b-1", Redirect: constant.PathBookingConfirmation + "b-1"}, tt.err)

			rec := serve(router, http.MethodPost, "/booking/confirm", `{"method":"manual"}`)
			assert.Equal(t, tt.expected, rec.Code)

			if tt.err == nil {
				assert.Contains(t, rec.Body.String(), `"redirect":"/booking/confirmation/b-1"`)
			}
		})
	}
}
