package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"glamp/infras/backend"
	"glamp/infras/otel"
	"glamp/internal/domains/glamp/model"
	"glamp/shared/constant"
	"glamp/shared/failure"
	"glamp/shared/logger"
	"net/http"
	"net/url"
)

type Glamp interface {
	GetAll(ctx context.Context) ([]model.Glamp, error)
	Get(ctx context.Context, id string) (model.Glamp, error)
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Glamp {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Glamp, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Glamp.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := r.client.Get(ctx, model.EndpointGlamps, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch glamps: %w", err)
	}

	records, _, err := backend.UnwrapList[model.Raw](raw, model.ListKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read glamps: %w", err)
	}

	res = make([]model.Glamp, 0, len(records))

	for _, record := range records {
		glamp, ok := record.ToModel()
		if !ok {
			logger.WithContext(ctx).Warn().Str("id", record.RawID()).Str("name", record.Name).Msg("dropping glamp with invalid id")

			continue
		}

		res = append(res, glamp)
	}

	scope.SetAttribute("glamp.count", len(res))

	return res, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Glamp, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Glamp.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := r.client.Get(ctx, model.EndpointGlamps+"/"+url.PathEscape(id), nil)
	if err != nil {
		if backend.IsStatus(err, http.StatusNotFound) {
			return res, failure.NotFound("glamp not found")
		}

		return res, fmt.Errorf("failed to fetch glamp: %w", err)
	}

	record, err := backend.UnwrapObject[model.Raw](raw, model.ObjectKey)
	if err != nil {
		return res, fmt.Errorf("failed to read glamp: %w", err)
	}

	res, ok := record.ToModel()
	if !ok {
		return res, failure.NotFound("glamp not found")
	}

	return res, nil
}
