package confirmation

import (
	"glamp/infras/otel"
	"glamp/internal/domains/confirmation/model/dto"
	"glamp/internal/domains/confirmation/service"
	"glamp/shared"
	"glamp/shared/constant"
	"glamp/shared/failure"
	"glamp/shared/validator"
	"glamp/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Confirmation
	otel    otel.Otel
}

func New(service service.Confirmation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/booking/confirmation/{id}", handler.Read)
	router.Post("/bookings/{id}/cancel", handler.Cancel)
}

// Read hands the confirmation over once.
// @Summary Booking confirmation
// @Description Returns the confirmation stored at submit time and consumes it. Missing or mismatched confirmations answer 404 with a redirect to the booking page.
// @Tags Booking
// @Produce json
// @Param id path string true "Backend booking id"
// @Success 200 {object} response.Data[dto.ConfirmationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/booking/confirmation/{id} [get]
func (handler *Handler) Read(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Confirmation.Read")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Read(ctx, shared.SessionID(ctx), bookingID)
	if err != nil {
		scope.TraceError(err)

		if failure.GetCode(err) == http.StatusNotFound {
			response.WithErrorRedirect(writer, err, constant.PathBooking)

			return
		}

		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to read confirmation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Cancel cancels a booking on the backend.
// @Summary Cancel booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Backend booking id"
// @Param request body dto.CancelRequest false "Reason"
// @Success 200 {object} response.Data[dto.CancelResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
func (handler *Handler) Cancel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Confirmation.Cancel")
	defer scope.End()

	req := dto.CancelRequest{}

	if request.ContentLength != 0 {
		if err := validator.Decode(request.Body, &req); err != nil {
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}
	}

	res, err := handler.service.Cancel(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
