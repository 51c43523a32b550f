package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"glamp/config"
	"glamp/infras/easypaisa"
	"glamp/infras/otel"
	"glamp/internal/domains/booking/model"
	"glamp/internal/domains/booking/model/dto"
	"glamp/internal/domains/booking/repository"
	confirmationModel "glamp/internal/domains/confirmation/model"
	confirmationRepo "glamp/internal/domains/confirmation/repository"
	glampModel "glamp/internal/domains/glamp/model"
	glampService "glamp/internal/domains/glamp/service"
	"glamp/shared/constant"
	"glamp/shared/failure"
	"glamp/shared/logger"
	"glamp/shared/money"
	"glamp/shared/timezone"
	"glamp/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	messageSubmitting      = "Your booking is already being submitted"
	messageGuestDetailsDue = "Please complete the availability step first"
	messagePaymentDue      = "Please complete your guest details first"
	messageBookingFailed   = "Failed to create booking. Please try again"
	messagePaymentFailed   = "Payment could not be completed. Please try again"
)

type Booking interface {
	Current(ctx context.Context, sessionID string) (dto.WizardResponse, error)
	SubmitAvailability(ctx context.Context, sessionID string, req dto.AvailabilityRequest) (dto.WizardResponse, error)
	SubmitGuestDetails(ctx context.Context, sessionID string, req dto.GuestDetailsRequest) (dto.WizardResponse, error)
	Back(ctx context.Context, sessionID string) (dto.WizardResponse, error)
	Reset(ctx context.Context, sessionID string) error
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	Confirm(ctx context.Context, sessionID string, req dto.ConfirmRequest) (dto.ConfirmResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	wizards   repository.Wizard
	snapshots confirmationRepo.Snapshot
	glamps    glampService.Glamp
	gateway   easypaisa.Gateway
	cfg       *config.Config
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	wizards repository.Wizard,
	snapshots confirmationRepo.Snapshot,
	glamps glampService.Glamp,
	gateway easypaisa.Gateway,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		wizards:   wizards,
		snapshots: snapshots,
		glamps:    glamps,
		gateway:   gateway,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) limits() model.Limits {
	return model.Limits{
		MaxGlamps:      s.cfg.Booking.MaxGlamps,
		GuestsPerGlamp: s.cfg.Booking.GuestsPerGlamp,
	}
}

func (s *serviceImpl) fallbackRate() money.Money {
	return money.FromMajor(float64(s.cfg.Booking.FallbackNightlyRate))
}

func (s *serviceImpl) Current(ctx context.Context, sessionID string) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Current")
	defer scope.End()
	defer scope.TraceIfError(err)

	wizard, err := s.wizards.Get(ctx, sessionID)
	if err != nil {
		return res, err
	}

	return s.render(ctx, wizard), nil
}

func (s *serviceImpl) SubmitAvailability(ctx context.Context, sessionID string, req dto.AvailabilityRequest) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.SubmitAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	wizard, err := s.wizards.Get(ctx, sessionID)
	if err != nil {
		return res, err
	}

	if wizard.IsSubmitting {
		return res, failure.Conflict(messageSubmitting)
	}

	glamps, err := s.glamps.GetAll(ctx)
	if err != nil {
		return res, failure.FromBackend(err, "")
	}

	req.Apply(&wizard.Draft)
	wizard.Step = model.StepAvailability

	known := make(map[string]struct{}, len(glamps))
	for _, g := range glamps {
		known[g.ID] = struct{}{}
	}

	validationErr := validator.ValidateStruct(&req)
	if validationErr == nil {
		validationErr = model.ValidateAvailability(wizard.Draft, known, s.limits())
	}

	if validationErr != nil {
		wizard.Fail(validationErr.Error())

		if err := s.wizards.Save(ctx, sessionID, wizard); err != nil {
			return res, err
		}

		return res, failure.BadRequest(validationErr)
	}

	wizard.Error = ""
	wizard.Step = model.StepGuestDetails

	if err = s.wizards.Save(ctx, sessionID, wizard); err != nil {
		return res, err
	}

	return s.renderWith(wizard, glamps, ""), nil
}

func (s *serviceImpl) SubmitGuestDetails(ctx context.Context, sessionID string, req dto.GuestDetailsRequest) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.SubmitGuestDetails")
	defer scope.End()
	defer scope.TraceIfError(err)

	wizard, err := s.wizards.Get(ctx, sessionID)
	if err != nil {
		return res, err
	}

	if wizard.IsSubmitting {
		return res, failure.Conflict(messageSubmitting)
	}

	if wizard.Step < model.StepGuestDetails {
		return res, failure.BadRequestFromString(messageGuestDetailsDue)
	}

	req.Apply(&wizard.Draft)
	wizard.Step = model.StepGuestDetails

	if validationErr := validator.ValidateStruct(&req); validationErr != nil {
		wizard.Fail(validationErr.Error())

		if err := s.wizards.Save(ctx, sessionID, wizard); err != nil {
			return res, err
		}

		return res, failure.BadRequest(validationErr)
	}

	wizard.Error = ""
	wizard.Step = model.StepPayment

	if err = s.wizards.Save(ctx, sessionID, wizard); err != nil {
		return res, err
	}

	return s.render(ctx, wizard), nil
}

func (s *serviceImpl) Back(ctx context.Context, sessionID string) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Back")
	defer scope.End()
	defer scope.TraceIfError(err)

	wizard, err := s.wizards.Get(ctx, sessionID)
	if err != nil {
		return res, err
	}

	if wizard.IsSubmitting {
		return res, failure.Conflict(messageSubmitting)
	}

	wizard.Back()

	if err = s.wizards.Save(ctx, sessionID, wizard); err != nil {
		return res, err
	}

	return s.render(ctx, wizard), nil
}

func (s *serviceImpl) Reset(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Reset")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.wizards.Delete(ctx, sessionID)
}

func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err)
	}

	stay, err := model.ParseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	glamps, err := s.glamps.GetAll(ctx)
	if err != nil {
		// Pricing still works on the fallback rate.
		log.Warn().Err(err).Msg("quoting without glamp prices")
	}

	return dto.BuildQuote(stay, req.SelectedGlampIDs, glampModel.Index(glamps), s.fallbackRate(), s.cfg.Booking.AdvanceRatio), nil
}

// Confirm runs the terminal step. Only one confirmation per session can be in
// flight; the submit lock is always released.
func (s *serviceImpl) Confirm(ctx context.Context, sessionID string, req dto.ConfirmRequest) (res dto.ConfirmResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("booking.method", req.Method)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err)
	}

	token, locked, err := s.wizards.Lock(ctx, sessionID)
	if err != nil {
		return res, err
	}

	if !locked {
		submissions.WithLabelValues(req.Method, outcomeDuplicateBlock).Inc()

		return res, failure.Conflict(messageSubmitting)
	}

	defer func() {
		if err := s.wizards.Unlock(context.WithoutCancel(ctx), sessionID, token); err != nil {
			log.Error().Err(err).Msg("failed to release booking submit lock")
		}
	}()

	wizard, err := s.wizards.Get(ctx, sessionID)
	if err != nil {
		return res, err
	}

	if wizard.Step != model.StepPayment {
		return res, failure.BadRequestFromString(messagePaymentDue)
	}

	glamps, err := s.glamps.GetAll(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("confirming with fallback glamp prices")
	}

	index := glampModel.Index(glamps)

	stay, err := model.ParseStay(wizard.Draft.CheckIn, wizard.Draft.CheckOut)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	quote := dto.BuildQuote(stay, wizard.Draft.SelectedGlampIDs, index, s.fallbackRate(), s.cfg.Booking.AdvanceRatio)

	wizard.Error = ""
	wizard.IsSubmitting = true
	wizard.ShowPaymentModal = req.Method == model.PaymentAdvance
	wizard.PaymentSuccess = false

	if err = s.wizards.Save(ctx, sessionID, wizard); err != nil {
		return res, err
	}

	// any failure from here on must leave the payment step usable again
	defer func() {
		if err != nil && wizard.IsSubmitting {
			err = s.rollback(ctx, sessionID, &wizard, req.Method, err, messageBookingFailed)
		}
	}()

	var receipt easypaisa.Receipt

	if req.Method == model.PaymentAdvance {
		receipt, err = s.gateway.Charge(ctx, quote.Advance)
		if err != nil {
			submissions.WithLabelValues(req.Method, outcomePaymentFailed).Inc()

			return res, s.rollback(ctx, sessionID, &wizard, req.Method, fmt.Errorf("advance payment failed: %w", err), messagePaymentFailed)
		}

		wizard.PaymentSuccess = true

		// the advance is taken, so the booking is still attempted
		if err := s.wizards.Save(ctx, sessionID, wizard); err != nil {
			log.Warn().Err(err).Str("reference", receipt.Reference).Msg("failed to record advance payment progress")
		}
	}

	booking, err := s.repo.Create(ctx, wizard.Draft.ToPayload())
	if err != nil {
		submissions.WithLabelValues(req.Method, outcomeBackendFailed).Inc()

		return res, s.rollback(ctx, sessionID, &wizard, req.Method, err, messageBookingFailed)
	}

	submissions.WithLabelValues(req.Method, outcomeCreated).Inc()

	snapshot := confirmationModel.Snapshot{
		BookingNumber:    confirmationModel.NewBookingNumber(),
		BookingID:        booking.ID,
		Draft:            wizard.Draft,
		GlampNames:       glampNames(quote),
		Nights:           quote.Nights,
		Total:            quote.Total,
		Advance:          quote.Advance,
		Remaining:        quote.Remaining,
		PaymentMethod:    req.Method,
		PaymentReference: receipt.Reference,
		Status:           booking.Status,
		PaymentStatus:    booking.PaymentStatus,
		CreatedAt:        timezone.Now(),
	}

	if err := s.snapshots.Save(ctx, sessionID, snapshot); err != nil {
		// The booking exists; the confirmation page will fall back to /booking.
		log.Error().Err(err).Str("bookingId", string(booking.ID)).Msg("failed to store booking confirmation")
	}

	if err := s.wizards.Delete(ctx, sessionID); err != nil {
		log.Error().Err(err).Msg("failed to clear booking progress")
	}

	wizard.IsSubmitting = false

	res = dto.ConfirmResponse{
		Wizard:           wizard,
		BookingID:        booking.ID,
		BookingNumber:    string(snapshot.BookingNumber),
		PaymentReference: receipt.Reference,
		Redirect:         constant.PathBookingConfirmation + string(booking.ID),
	}

	if req.Method == model.PaymentAdvance {
		res.RedirectAfterMs = s.cfg.Booking.RedirectDelayMillis
	}

	logger.WithContext(ctx).Info().
		Str("bookingId", string(booking.ID)).
		Str("bookingNumber", res.BookingNumber).
		Str("method", req.Method).
		Msg("booking created")

	return res, nil
}

// rollback re-enables the payment step with the failure message and returns
// the error to report. Backend messages are surfaced as is; anything else is
// replaced by fallback.
func (s *serviceImpl) rollback(ctx context.Context, sessionID string, wizard *model.Wizard, method string, cause error, fallback string) error {
	reported := failure.FromBackend(cause, "")

	var fail *failure.Failure
	if !errors.As(cause, &fail) && !isUpstream(cause) {
		reported = failure.InternalError(errors.New(fallback))
	}

	if method == model.PaymentAdvance {
		wizard.RollbackPayment(reported.Error())
	} else {
		wizard.Fail(reported.Error())
	}

	if err := s.wizards.Save(context.WithoutCancel(ctx), sessionID, *wizard); err != nil {
		log.Error().Err(err).Msg("failed to save booking rollback")
	}

	log.Error().Err(cause).Str("method", method).Msg("booking confirmation failed")

	return reported
}

func isUpstream(err error) bool {
	var up interface{ StatusCode() int }

	return errors.As(err, &up)
}

func glampNames(quote dto.QuoteResponse) []string {
	names := make([]string, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		names = append(names, line.Name)
	}

	return names
}

func (s *serviceImpl) render(ctx context.Context, wizard model.Wizard) dto.WizardResponse {
	glamps, err := s.glamps.GetAll(ctx)

	glampsError := ""
	if err != nil {
		glampsError = failure.FromBackend(err, "").Error()
	}

	return s.renderWith(wizard, glamps, glampsError)
}

func (s *serviceImpl) renderWith(wizard model.Wizard, glamps []glampModel.Glamp, glampsError string) dto.WizardResponse {
	res := dto.WizardResponse{
		Wizard:      wizard,
		Glamps:      make([]dto.GlampOption, 0, len(glamps)),
		GlampsError: glampsError,
	}

	selected := make(map[string]struct{}, len(wizard.Draft.SelectedGlampIDs))
	for _, id := range wizard.Draft.SelectedGlampIDs {
		selected[id] = struct{}{}
	}

	for _, g := range glamps {
		_, isSelected := selected[g.ID]

		res.Glamps = append(res.Glamps, dto.GlampOption{
			ID:            g.ID,
			Name:          g.Name,
			Capacity:      g.Capacity,
			PricePerNight: g.PricePerNight,
			NightlyRate:   glampModel.NightlyRate(&g, s.fallbackRate()),
			Selected:      isSelected,
		})
	}

	if len(wizard.Draft.SelectedGlampIDs) > 0 {
		if stay, err := model.ParseStay(wizard.Draft.CheckIn, wizard.Draft.CheckOut); err == nil {
			quote := dto.BuildQuote(stay, wizard.Draft.SelectedGlampIDs, glampModel.Index(glamps), s.fallbackRate(), s.cfg.Booking.AdvanceRatio)
			res.Quote = &quote
		}
	}

	return res
}
