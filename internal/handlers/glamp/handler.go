package glamp

import (
	"glamp/infras/otel"
	"glamp/internal/domains/glamp/model/dto"
	"glamp/internal/domains/glamp/service"
	"glamp/shared/constant"
	"glamp/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Glamp
	otel    otel.Otel
}

func New(service service.Glamp, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/glamps", handler.GetGlamps)
	r.Get("/glamps/{id}", handler.GetGlamp)
}

// GetGlamps lists the bookable glamps
// @Summary List glamps
// @Description List every glamp with a valid id. Prices are in paisa; a null price means the fallback rate applies.
// @Tags Glamp
// @Produce json
// @Success 200 {object} response.Data[dto.GetGlampsResponse]
// @Failure 502 {object} response.Error
// @Router /v1/glamps [get]
func (handler *Handler) GetGlamps(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGlamps")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get glamps")

		response.WithError(w, err)

		return
	}

	glamps := dto.GetGlampsResponse{}
	glamps.FromModels(res)

	response.WithJSON(w, http.StatusOK, glamps)
}

// GetGlamp returns one glamp
// @Summary Get glamp
// @Tags Glamp
// @Produce json
// @Param id path string true "Glamp ID (UUID)"
// @Success 200 {object} response.Data[dto.GlampResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/glamps/{id} [get]
func (handler *Handler) GetGlamp(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGlamp")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get glamp")

		response.WithError(w, err)

		return
	}

	glamp := dto.GlampResponse{}
	glamp.FromModel(res)

	response.WithJSON(w, http.StatusOK, glamp)
}
