package booking

import (
	"glamp/infras/otel"
	"glamp/internal/domains/booking/model/dto"
	"glamp/internal/domains/booking/service"
	"glamp/shared"
	"glamp/shared/constant"
	"glamp/shared/validator"
	"glamp/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/booking", handler.Current)
	router.Delete("/booking", handler.Reset)
	router.Post("/booking/availability", handler.SubmitAvailability)
	router.Post("/booking/guest-details", handler.SubmitGuestDetails)
	router.Post("/booking/back", handler.Back)
	router.Post("/booking/quote", handler.Quote)
	router.Post("/booking/confirm", handler.Confirm)
}

// Current returns the wizard for the caller's session.
// @Summary Current booking wizard
// @Description Returns the wizard step, draft, glamp options and live quote of the session.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.WizardResponse]
// @Failure 500 {object} response.Error
// @Router /v1/booking [get]
func (handler *Handler) Current(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Booking.Current")
	defer scope.End()

	res, err := handler.service.Current(ctx, shared.SessionID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load booking wizard")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SubmitAvailability stores step one and advances to guest details.
// @Summary Submit dates and glamps
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.AvailabilityRequest true "Availability"
// @Success 200 {object} response.Data[dto.WizardResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/booking/availability [post]
func (handler *Handler) SubmitAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Booking.SubmitAvailability")
	defer scope.End()

	req := dto.AvailabilityRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SubmitAvailability(ctx, shared.SessionID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("availability rejected")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SubmitGuestDetails stores step two and advances to payment.
// @Summary Submit guest details
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.GuestDetailsRequest true "Guest details"
// @Success 200 {object} response.Data[dto.WizardResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/booking/guest-details [post]
func (handler *Handler) SubmitGuestDetails(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Booking.SubmitGuestDetails")
	defer scope.End()

	req := dto.GuestDetailsRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SubmitGuestDetails(ctx, shared.SessionID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("guest details rejected")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Back moves the wizard one step back without losing the draft.
// @Summary Previous booking step
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.WizardResponse]
// @Failure 409 {object} response.Error
// @Router /v1/booking/back [post]
func (handler *Handler) Back(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Booking.Back")
	defer scope.End()

	res, err := handler.service.Back(ctx, shared.SessionID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to step back")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Reset discards the session's draft.
// @Summary Reset booking wizard
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Message
// @Router /v1/booking [delete]
func (handler *Handler) Reset(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Booking.Reset")
	defer scope.End()

	if err := handler.service.Reset(ctx, shared.SessionID(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset booking wizard")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking reset")
}

// Quote prices a selection without touching the wizard.
// @Summary Price a stay
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Router /v1/booking/quote [post]
func (handler *Handler) Quote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Booking.Quote")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Confirm submits the booking with the chosen payment method.
// @Summary Confirm booking
// @Description manual creates the booking straight away; advance runs the EasyPaisa stub for 50% first.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.ConfirmRequest true "Payment method"
// @Success 201 {object} response.Data[dto.ConfirmResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/booking/confirm [post]
func (handler *Handler) Confirm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Booking.Confirm")
	defer scope.End()

	req := dto.ConfirmRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Confirm(ctx, shared.SessionID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("method", req.Method).Msg("failed to confirm booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking confirmed")

	response.WithJSON(writer, http.StatusCreated, res)
}
