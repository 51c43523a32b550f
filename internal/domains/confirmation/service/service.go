package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"glamp/infras/otel"
	bookingModel "glamp/internal/domains/booking/model"
	bookingRepo "glamp/internal/domains/booking/repository"
	"glamp/internal/domains/confirmation/model"
	"glamp/internal/domains/confirmation/model/dto"
	"glamp/internal/domains/confirmation/repository"
	"glamp/shared/constant"
	"glamp/shared/failure"
	"glamp/shared/timezone"
	"glamp/shared/validator"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	messageNotFound     = "booking confirmation not found"
	messageCannotCancel = "This booking can no longer be cancelled"
)

type Confirmation interface {
	Read(ctx context.Context, sessionID, bookingID string) (dto.ConfirmationResponse, error)
	Cancel(ctx context.Context, bookingID string, req dto.CancelRequest) (dto.CancelResponse, error)
}

type serviceImpl struct {
	snapshots repository.Snapshot
	bookings  bookingRepo.Booking
	otel      otel.Otel
}

func New(snapshots repository.Snapshot, bookings bookingRepo.Booking, otel otel.Otel) Confirmation {
	return &serviceImpl{
		snapshots: snapshots,
		bookings:  bookings,
		otel:      otel,
	}
}

// Read returns the confirmation for bookingID and consumes it. A missing
// snapshot or one for another booking is reported as not found.
func (s *serviceImpl) Read(ctx context.Context, sessionID, bookingID string) (res dto.ConfirmationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirmation.Read")
	defer scope.End()
	defer scope.TraceIfError(err)

	if sessionID == "" || bookingID == "" {
		return res, failure.NotFound(messageNotFound)
	}

	snapshot, err := s.snapshots.Peek(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNoSnapshot) {
			return res, failure.NotFound(messageNotFound)
		}

		return res, err
	}

	if string(snapshot.BookingID) != bookingID {
		log.Warn().Str("requested", bookingID).Str("stored", string(snapshot.BookingID)).Msg("confirmation requested for another booking")

		return res, failure.NotFound(messageNotFound)
	}

	snapshot, err = s.snapshots.Take(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNoSnapshot) {
			return res, failure.NotFound(messageNotFound)
		}

		return res, err
	}

	res.FromModel(snapshot, timezone.Now())

	return res, nil
}

// Cancel asks the backend to cancel the booking. The status only becomes
// Cancelled once the backend accepted the request.
func (s *serviceImpl) Cancel(ctx context.Context, bookingID string, req dto.CancelRequest) (res dto.CancelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirmation.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return res, failure.BadRequestFromString("booking id is required")
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	booking, err := s.bookings.Cancel(ctx, bookingModel.ID(bookingID), strings.TrimSpace(req.Reason))
	if err != nil {
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to cancel booking")

		return res, failure.FromBackend(err, messageCannotCancel)
	}

	return dto.CancelResponse{
		BookingID:     booking.ID,
		BackendStatus: booking.Status,
		DisplayStatus: model.StatusCancelled,
	}, nil
}
