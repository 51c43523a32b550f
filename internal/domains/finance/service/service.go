package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"glamp/config"
	"glamp/infras/backend"
	"glamp/infras/otel"
	"glamp/internal/domains/finance/model"
	"glamp/internal/domains/finance/model/dto"
	"glamp/internal/domains/finance/repository"
	"glamp/shared"
	"glamp/shared/constant"
	"glamp/shared/failure"
	"glamp/shared/logger"
	"glamp/shared/money"
	"glamp/shared/sequence"
	"glamp/shared/validator"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	messageNotListable   = "This finance view has no record list"
	messageNoActions     = "Records of this kind cannot be changed here"
	messageReasonMissing = "Please provide a reason for the rejection"

	maxPageLimit            = 100
	defaultSummaryPageLimit = 100
	defaultMaxPages         = 50
	defaultPageConcurrency  = 4
)

type Finance interface {
	List(ctx context.Context, kind model.Kind, filter dto.Filter) (dto.ListResponse, error)
	Summary(ctx context.Context, kind model.Kind, filter dto.Filter) (dto.SummaryResponse, error)
	Create(ctx context.Context, kind model.Kind, req dto.CreateRequest, filter dto.Filter) (dto.ActionResponse, error)
	Transition(ctx context.Context, kind model.Kind, id string, action model.Action, req dto.ActionRequest, filter dto.Filter) (dto.ActionResponse, error)
	Delete(ctx context.Context, kind model.Kind, id string, filter dto.Filter) (dto.ActionResponse, error)
	PayablesSummary(ctx context.Context, filter dto.Filter) (dto.PayablesSummaryResponse, error)
	ProfitLoss(ctx context.Context, sessionID string, filter dto.ReportFilter) (dto.ProfitLossResponse, error)
	Statements(ctx context.Context, sessionID string, filter dto.ReportFilter) (dto.StatementResponse, error)
}

type serviceImpl struct {
	repo       repository.Finance
	cfg        *config.Config
	otel       otel.Otel
	profitLoss *sequence.Sequencer[dto.ProfitLossView]
	statements *sequence.Sequencer[dto.StatementView]
}

func New(repo repository.Finance, cfg *config.Config, otel otel.Otel) Finance {
	return &serviceImpl{
		repo:       repo,
		cfg:        cfg,
		otel:       otel,
		profitLoss: sequence.New[dto.ProfitLossView](),
		statements: sequence.New[dto.StatementView](),
	}
}

func isListable(kind model.Kind) bool {
	return kind.IsLedger() || kind == model.KindPayables
}

// batch is one backend page after the per-kind derivations. Rows counts
// what the backend returned before payables filtering.
type batch struct {
	records []model.Record
	rows    int
	page    backend.Page
}

// fetch reads one page. Payables have no list of their own: they are the
// approved purchases with the outstanding balance derived.
func (s *serviceImpl) fetch(ctx context.Context, kind model.Kind, filter dto.Filter) (batch, error) {
	source := kind
	if kind == model.KindPayables {
		source = model.KindPurchases
		filter.Status = string(model.StatusApproved)
	}

	records, page, err := s.repo.List(ctx, source, filter.Values())
	if err != nil {
		return batch{page: page}, err
	}

	res := batch{records: records, rows: len(records), page: page}

	if kind != model.KindPayables {
		return res, nil
	}

	payables := make([]model.Record, 0, len(records))

	for _, r := range records {
		if !model.IsPayable(r) {
			continue
		}

		model.DerivePayable(&r)
		r.Actions = []model.ActionView{}
		payables = append(payables, r)
	}

	res.records = payables

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, kind model.Kind, filter dto.Filter) (res dto.ListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Finance.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !isListable(kind) {
		return res, failure.BadRequestFromString(messageNotListable)
	}

	if err = validator.ValidateStruct(&filter); err != nil {
		return res, failure.BadRequest(err)
	}

	fetched, err := s.fetch(ctx, kind, filter)
	if err != nil {
		return res, failure.FromBackend(err, "")
	}

	records, page := fetched.records, fetched.page

	res = dto.ListResponse{
		Kind:   kind,
		Items:  records,
		Filter: filter,
		Pagination: dto.Pagination{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	}

	if page.Page > 0 {
		res.Pagination.Page = page.Page
	}

	if page.Limit > 0 {
		res.Pagination.Limit = page.Limit
	}

	if !page.Known {
		res.Pagination.Total = (res.Pagination.Page-1)*res.Pagination.Limit + len(records)
	}

	if res.Pagination.TotalPages == 0 {
		res.Pagination.TotalPages = shared.CalculateTotalPage(res.Pagination.Total, res.Pagination.Limit)
	}

	return res, nil
}

// Summary aggregates the whole filtered set. Page one is read first for the
// totals, the rest concurrently. With no pagination metadata pages are read
// in order until a short one. Complete is false unless every row the backend
// reported was read.
func (s *serviceImpl) Summary(ctx context.Context, kind model.Kind, filter dto.Filter) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Finance.Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !isListable(kind) {
		return res, failure.BadRequestFromString(messageNotListable)
	}

	limit := min(positiveOr(s.cfg.Finance.SummaryPageLimit, defaultSummaryPageLimit), maxPageLimit)
	maxPages := positiveOr(s.cfg.Finance.MaxPages, defaultMaxPages)

	filter.Page = 1
	filter.Limit = limit

	if err = validator.ValidateStruct(&filter); err != nil {
		return res, failure.BadRequest(err)
	}

	first, err := s.fetch(ctx, kind, filter)
	if err != nil {
		return res, failure.FromBackend(err, "")
	}

	// the backend may clamp the requested limit
	pageSize := limit
	if first.page.Limit > 0 {
		pageSize = first.page.Limit
	}

	summary := model.NewSummary()
	batches := []batch{first}

	switch {
	case first.page.Known:
		total := first.page.TotalPages
		if total == 0 {
			total = shared.CalculateTotalPage(first.page.Total, pageSize)
		}

		rest, err := s.fetchPages(ctx, kind, filter, 2, min(total, maxPages))
		if err != nil {
			return res, failure.FromBackend(err, "")
		}

		batches = append(batches, rest...)
		summary.PagesTotal = total
		summary.ExpectedCount = first.page.Total
		summary.Complete = total <= maxPages && rowsOf(batches) >= first.page.Total
	case first.rows >= pageSize:
		summary.Complete = true

		for n := 2; ; n++ {
			if n > maxPages {
				summary.Complete = false

				break
			}

			filter.Page = n

			next, err := s.fetch(ctx, kind, filter)
			if err != nil {
				return res, failure.FromBackend(err, "")
			}

			batches = append(batches, next)

			if next.rows < pageSize {
				break
			}
		}
	default:
		summary.Complete = true
	}

	for _, b := range batches {
		for _, r := range b.records {
			summary.Add(r)
		}
	}

	summary.PagesFetched = len(batches)
	if summary.PagesTotal == 0 {
		summary.PagesTotal = len(batches)
	}

	if summary.ExpectedCount == 0 {
		summary.ExpectedCount = summary.Count
	}

	if kind != model.KindPayables && summary.Count < summary.ExpectedCount {
		summary.Complete = false
	}

	summary.Finish()

	scope.SetAttributes(map[string]any{"finance.pages": summary.PagesFetched, "finance.complete": summary.Complete})

	if !summary.Complete {
		logger.WithContext(ctx).Warn().
			Str("kind", string(kind)).
			Int("pages", summary.PagesTotal).
			Int("fetched", summary.PagesFetched).
			Int("count", summary.Count).
			Int("expected", summary.ExpectedCount).
			Msg("finance summary covers a partial set")
	}

	filter.Page = 0
	filter.Limit = 0

	return dto.SummaryResponse{Kind: kind, Summary: summary, Filter: filter}, nil
}

func rowsOf(batches []batch) int {
	rows := 0
	for _, b := range batches {
		rows += b.rows
	}

	return rows
}

// fetchPages reads pages from..to inclusive and returns them in page order.
func (s *serviceImpl) fetchPages(ctx context.Context, kind model.Kind, filter dto.Filter, from, to int) ([]batch, error) {
	if to < from {
		return nil, nil
	}

	out := make([]batch, to-from+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(positiveOr(s.cfg.Finance.PageConcurrency, defaultPageConcurrency))

	for n := from; n <= to; n++ {
		f := filter
		f.Page = n
		slot := n - from

		g.Go(func() error {
			fetched, err := s.fetch(gctx, kind, f)
			if err != nil {
				return err
			}

			out[slot] = fetched

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *serviceImpl) Create(ctx context.Context, kind model.Kind, req dto.CreateRequest, filter dto.Filter) (res dto.ActionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Finance.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !kind.IsLedger() {
		return res, failure.BadRequestFromString(messageNoActions)
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err)
	}

	created, err := s.repo.Create(ctx, kind, req.Payload(money.ParseUnit(s.cfg.Finance.AmountUnit)))
	if err != nil {
		return res, failure.FromBackend(err, "")
	}

	logger.WithContext(ctx).Info().Str("kind", string(kind)).Str("id", created.ID).Msg("finance record created")

	return s.afterAction(ctx, kind, "", filter), nil
}

func (s *serviceImpl) Transition(ctx context.Context, kind model.Kind, id string, action model.Action, req dto.ActionRequest, filter dto.Filter) (res dto.ActionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Finance.Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err)
	}

	reason := strings.TrimSpace(req.Reason)
	if action == model.ActionReject && reason == "" {
		return res, failure.BadRequestFromString(messageReasonMissing)
	}

	current, err := s.precheck(ctx, kind, id, action)
	if err != nil {
		return res, err
	}

	if err = s.repo.Transition(ctx, kind, id, action, reason); err != nil {
		return res, failure.FromBackend(err, model.ConflictMessage(kind, action, current.Status))
	}

	logger.WithContext(ctx).Info().
		Str("kind", string(kind)).
		Str("id", id).
		Str("action", string(action)).
		Str("from", string(current.Status)).
		Str("to", string(model.Next(action))).
		Msg("finance record transitioned")

	return s.afterAction(ctx, kind, action, filter), nil
}

func (s *serviceImpl) Delete(ctx context.Context, kind model.Kind, id string, filter dto.Filter) (res dto.ActionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Finance.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.precheck(ctx, kind, id, model.ActionDelete)
	if err != nil {
		return res, err
	}

	if err = s.repo.Delete(ctx, kind, id); err != nil {
		return res, failure.FromBackend(err, model.ConflictMessage(kind, model.ActionDelete, current.Status))
	}

	logger.WithContext(ctx).Info().Str("kind", string(kind)).Str("id", id).Msg("finance record deleted")

	return s.afterAction(ctx, kind, model.ActionDelete, filter), nil
}

// precheck refuses actions the record's current status does not allow
// before anything is sent to the backend.
func (s *serviceImpl) precheck(ctx context.Context, kind model.Kind, id string, action model.Action) (model.Record, error) {
	if !kind.IsLedger() {
		return model.Record{}, failure.BadRequestFromString(messageNoActions)
	}

	current, err := s.repo.Get(ctx, kind, id)
	if err != nil {
		return current, failure.FromBackend(err, "")
	}

	if !model.Allows(current.Status, action) {
		return current, failure.Conflict(model.ConflictMessage(kind, action, current.Status))
	}

	return current, nil
}

func (s *serviceImpl) afterAction(ctx context.Context, kind model.Kind, action model.Action, filter dto.Filter) dto.ActionResponse {
	res := dto.ActionResponse{
		Message:    model.SuccessMessage(kind, action),
		ToastTTLMs: s.cfg.Finance.ToastMillis,
	}

	list, err := s.List(ctx, kind, filter)
	if err != nil {
		logger.WithContext(ctx).Warn().Err(err).Str("kind", string(kind)).Msg("failed to refresh finance list")

		res.ListError = err.Error()
		res.List = dto.ListResponse{Kind: kind, Items: []model.Record{}, Filter: filter}

		return res
	}

	res.List = list

	return res
}

func (s *serviceImpl) PayablesSummary(ctx context.Context, filter dto.Filter) (res dto.PayablesSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Finance.PayablesSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter.Page = 0
	filter.Limit = 0

	summary, err := s.repo.PayablesSummary(ctx, filter.Values())
	if err != nil {
		return res, failure.FromBackend(err, "")
	}

	return dto.PayablesSummaryResponse{Summary: summary}, nil
}

// ProfitLoss answers with the newest committed report for the session. A
// response that arrives after a newer request was issued is dropped and the
// newer view is returned with Stale set.
func (s *serviceImpl) ProfitLoss(ctx context.Context, sessionID string, filter dto.ReportFilter) (res dto.ProfitLossResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Finance.ProfitLoss")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&filter); err != nil {
		return res, failure.BadRequest(err)
	}

	key := shared.BuildCacheKey(string(model.KindProfitLoss), sessionID)
	ticket := s.profitLoss.Issue(key)

	report, err := s.repo.ProfitLoss(ctx, filter.Values())
	if err != nil {
		return res, failure.FromBackend(err, "")
	}

	current, stale := s.profitLoss.Commit(ticket, dto.ProfitLossView{Filter: filter, Report: report})
	res.Stale = stale

	if stale {
		if latest, ok := s.profitLoss.Latest(key); ok {
			res.View = &latest
		}

		return res, nil
	}

	res.View = &current

	return res, nil
}

func (s *serviceImpl) Statements(ctx context.Context, sessionID string, filter dto.ReportFilter) (res dto.StatementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Finance.Statements")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&filter); err != nil {
		return res, failure.BadRequest(err)
	}

	key := shared.BuildCacheKey(string(model.KindStatements), sessionID)
	ticket := s.statements.Issue(key)

	statement, err := s.repo.Statement(ctx, filter.Values())
	if err != nil {
		return res, failure.FromBackend(err, "")
	}

	current, stale := s.statements.Commit(ticket, dto.StatementView{Filter: filter, Statement: statement})
	res.Stale = stale

	if stale {
		if latest, ok := s.statements.Latest(key); ok {
			res.View = &latest
		}

		return res, nil
	}

	res.View = &current

	return res, nil
}

func positiveOr(value, fallback int) int {
	if value > 0 {
		return value
	}

	return fallback
}
