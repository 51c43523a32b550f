package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"glamp/infras/backend"
	"glamp/infras/otel"
	"glamp/internal/domains/booking/model"
	"glamp/shared/constant"
	"net/url"
)

type Booking interface {
	Create(ctx context.Context, payload model.Payload) (model.Booking, error)
	Cancel(ctx context.Context, id model.ID, reason string) (model.Booking, error)
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Booking {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) Create(ctx context.Context, payload model.Payload) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := r.client.Post(ctx, model.EndpointBookings, payload)
	if err != nil {
		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	record, err := backend.UnwrapObject[model.Raw](raw, model.ObjectKey)
	if err != nil {
		return res, fmt.Errorf("failed to read created booking: %w", err)
	}

	res = record.ToModel()
	if res.ID == "" {
		return res, fmt.Errorf("backend returned a booking without id: %w", backend.ErrUnexpectedShape)
	}

	return res, nil
}

type cancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

func (r *repositoryImpl) Cancel(ctx context.Context, id model.ID, reason string) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := r.client.Patch(ctx, model.EndpointBookings+"/"+url.PathEscape(string(id))+"/cancel", cancelRequest{Reason: reason})
	if err != nil {
		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	res.ID = id

	if record, err := backend.UnwrapObject[model.Raw](raw, model.ObjectKey); err == nil {
		res = record.ToModel()
		if res.ID == "" {
			res.ID = id
		}
	}

	return res, nil
}
