package admin

import (
	"glamp/infras/otel"
	"glamp/internal/domains/admin/model"
	"glamp/internal/domains/admin/model/dto"
	"glamp/internal/domains/admin/service"
	"glamp/shared/constant"
	"glamp/shared/failure"
	"glamp/transport/http/response"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.HandleFunc("/admin/*", handler.forward(model.AreaAdmin))
	r.HandleFunc("/super-admin/*", handler.forward(model.AreaSuperAdmin))
}

// forward relays one admin console call to the backend
// @Summary Admin passthrough
// @Description Any method under /v1/admin/* and /v1/super-admin/* is sent to the same backend path with the caller's token. The backend JSON is returned untouched.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/admin/{path} [get]
// @Router /v1/super-admin/{path} [get]
// @Security BearerAuth
func (handler *Handler) forward(area model.Area) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Admin.Forward")
		defer scope.End()

		body, err := io.ReadAll(http.MaxBytesReader(writer, request.Body, maxBodyBytes))
		if err != nil {
			scope.TraceError(err)

			response.WithError(writer, failure.BadRequest(err))

			return
		}

		req := dto.ForwardRequest{
			Area:   area,
			Method: request.Method,
			Path:   chi.URLParam(request, "*"),
			Query:  request.URL.Query(),
			Body:   body,
		}

		res, err := handler.service.Forward(ctx, req)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("area", string(area)).Str("path", req.Path).Msg("admin passthrough failed")

			response.WithError(writer, err)

			return
		}

		response.WithRaw(writer, http.StatusOK, res)
	}
}
