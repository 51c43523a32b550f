package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"glamp/infras/backend"
	"glamp/infras/otel"
	"glamp/internal/domains/admin/model"
	"glamp/internal/domains/admin/model/dto"
	glampService "glamp/internal/domains/glamp/service"
	"glamp/shared/constant"
	"glamp/shared/failure"
	"glamp/shared/logger"
)

// Admin forwards the admin and super-admin consoles to the backend. Bodies
// and responses pass through untouched; only errors are translated.
type Admin interface {
	Forward(ctx context.Context, req dto.ForwardRequest) (json.RawMessage, error)
}

type serviceImpl struct {
	client backend.Client
	glamps glampService.Glamp
	otel   otel.Otel
}

func New(client backend.Client, glamps glampService.Glamp, otel otel.Otel) Admin {
	return &serviceImpl{
		client: client,
		glamps: glamps,
		otel:   otel,
	}
}

func (s *serviceImpl) Forward(ctx context.Context, req dto.ForwardRequest) (res json.RawMessage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Admin.Forward")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.Forwardable(req.Method) {
		return nil, failure.BadRequestFromString("method " + req.Method + " is not supported")
	}

	var body any

	if trimmed := bytes.TrimSpace(req.Body); len(trimmed) > 0 {
		if !json.Valid(trimmed) {
			return nil, failure.BadRequestFromString("request body must be valid JSON")
		}

		body = json.RawMessage(trimmed)
	}

	endpoint := req.Area.Endpoint(req.Path)

	scope.SetAttribute("admin.endpoint", backend.Template(endpoint))

	res, err = s.client.Do(ctx, req.Method, endpoint, req.Query, body)
	if err != nil {
		logger.WithContext(ctx).Error().Err(err).Str("method", req.Method).Str("endpoint", endpoint).Msg("admin request failed")

		return nil, failure.FromBackend(err, "")
	}

	if model.TouchesGlamps(req.Area, req.Method, endpoint) {
		s.glamps.Invalidate(ctx)
	}

	return res, nil
}
