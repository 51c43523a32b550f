package finance

import (
	"glamp/infras/otel"
	"glamp/internal/domains/finance/model"
	"glamp/internal/domains/finance/model/dto"
	"glamp/internal/domains/finance/service"
	"glamp/shared"
	"glamp/shared/constant"
	"glamp/shared/failure"
	"glamp/shared/validator"
	"glamp/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	messageUnknownView   = "Unknown finance view"
	messageUnknownAction = "Unknown action"
)

type Handler struct {
	service service.Finance
	otel    otel.Otel
}

func New(service service.Finance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/finance", func(r chi.Router) {
		r.Get("/payables/summary", handler.PayablesSummary)
		r.Get("/profit-loss", handler.ProfitLoss)
		r.Get("/statements", handler.Statements)

		r.Get("/{kind}", handler.List)
		r.Post("/{kind}", handler.Create)
		r.Get("/{kind}/summary", handler.Summary)
		r.Delete("/{kind}/{id}", handler.Delete)
		r.Post("/{kind}/{id}/{action}", handler.Transition)
	})
}

func kindParam(request *http.Request) (model.Kind, error) {
	kind, ok := model.ParseKind(chi.URLParam(request, constant.RequestParamKind))
	if !ok {
		return kind, failure.NotFound(messageUnknownView)
	}

	return kind, nil
}

func filterParam(request *http.Request) dto.Filter {
	filter := dto.Filter{}
	filter.FromRequest(request)

	return filter
}

// List returns one page of a finance ledger.
// @Summary List finance records
// @Description kind is one of expenses, income, purchases or payables. Payables are approved purchases with outstanding and payment status derived.
// @Tags Finance
// @Produce json
// @Param kind path string true "expenses | income | purchases | payables"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(10)
// @Param search query string false "Search"
// @Param status query string false "DRAFT | SUBMITTED | APPROVED | REJECTED | CANCELLED"
// @Param from query string false "From (YYYY-MM-DD)"
// @Param to query string false "To (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.ListResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/finance/{kind} [get]
// @Security BearerAuth
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Finance.List")
	defer scope.End()

	kind, err := kindParam(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.List(ctx, kind, filterParam(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to list finance records")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Summary aggregates every record matching the filter, across all pages.
// @Summary Summarise finance records
// @Tags Finance
// @Produce json
// @Param kind path string true "expenses | income | purchases | payables"
// @Param search query string false "Search"
// @Param status query string false "Status"
// @Param from query string false "From (YYYY-MM-DD)"
// @Param to query string false "To (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.SummaryResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/finance/{kind}/summary [get]
// @Security BearerAuth
func (handler *Handler) Summary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Finance.Summary")
	defer scope.End()

	kind, err := kindParam(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Summary(ctx, kind, filterParam(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to summarise finance records")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Create adds a draft record and returns the refreshed page.
// @Summary Create finance record
// @Tags Finance
// @Accept json
// @Produce json
// @Param kind path string true "expenses | income | purchases"
// @Param request body dto.CreateRequest true "Record, amount in paisa"
// @Success 201 {object} response.Data[dto.ActionResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/finance/{kind} [post]
// @Security BearerAuth
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Finance.Create")
	defer scope.End()

	kind, err := kindParam(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.CreateRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, kind, req, filterParam(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to create finance record")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// Transition submits, approves or rejects a record.
// @Summary Change record status
// @Description Allowed moves: DRAFT or REJECTED to SUBMITTED, SUBMITTED to APPROVED or REJECTED. Reject needs a reason.
// @Tags Finance
// @Accept json
// @Produce json
// @Param kind path string true "expenses | income | purchases"
// @Param id path string true "Record id"
// @Param action path string true "submit | approve | reject"
// @Param request body dto.ActionRequest false "Reason"
// @Success 200 {object} response.Data[dto.ActionResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/finance/{kind}/{id}/{action} [post]
// @Security BearerAuth
func (handler *Handler) Transition(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Finance.Transition")
	defer scope.End()

	kind, err := kindParam(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	action, ok := model.ParseTransition(chi.URLParam(request, constant.RequestParamAction))
	if !ok {
		response.WithError(writer, failure.NotFound(messageUnknownAction))

		return
	}

	req := dto.ActionRequest{}

	if request.ContentLength != 0 {
		if err := validator.Decode(request.Body, &req); err != nil {
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}
	}

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Transition(ctx, kind, id, action, req, filterParam(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", string(kind)).Str("id", id).Str("action", string(action)).Msg("failed to change finance record")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Delete removes a draft or rejected record.
// @Summary Delete finance record
// @Tags Finance
// @Produce json
// @Param kind path string true "expenses | income | purchases"
// @Param id path string true "Record id"
// @Success 200 {object} response.Data[dto.ActionResponse]
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/finance/{kind}/{id} [delete]
// @Security BearerAuth
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Finance.Delete")
	defer scope.End()

	kind, err := kindParam(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Delete(ctx, kind, id, filterParam(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", string(kind)).Str("id", id).Msg("failed to delete finance record")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// PayablesSummary
// @Summary Payables totals
// @Tags Finance
// @Produce json
// @Success 200 {object} response.Data[dto.PayablesSummaryResponse]
// @Failure 502 {object} response.Error
// @Router /v1/finance/payables/summary [get]
// @Security BearerAuth
func (handler *Handler) PayablesSummary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Finance.PayablesSummary")
	defer scope.End()

	res, err := handler.service.PayablesSummary(ctx, filterParam(request))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ProfitLoss
// @Summary Profit and loss report
// @Description Only the newest request of a session is committed; superseded requests answer stale=true with the newest view.
// @Tags Finance
// @Produce json
// @Param from query string false "From (YYYY-MM-DD)"
// @Param to query string false "To (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.ProfitLossResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/finance/profit-loss [get]
// @Security BearerAuth
func (handler *Handler) ProfitLoss(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Finance.ProfitLoss")
	defer scope.End()

	filter := dto.ReportFilter{}
	filter.FromRequest(request)

	res, err := handler.service.ProfitLoss(ctx, shared.SessionID(ctx), filter)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Statements
// @Summary Account statement
// @Tags Finance
// @Produce json
// @Param from query string false "From (YYYY-MM-DD)"
// @Param to query string false "To (YYYY-MM-DD)"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[dto.StatementResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/finance/statements [get]
// @Security BearerAuth
func (handler *Handler) Statements(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Finance.Statements")
	defer scope.End()

	filter := dto.ReportFilter{}
	filter.FromRequest(request)

	res, err := handler.service.Statements(ctx, shared.SessionID(ctx), filter)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
