package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"glamp/config"
	"glamp/infras/backend"
	"glamp/infras/otel"
	"glamp/internal/domains/finance/model"
	"glamp/shared/constant"
	"glamp/shared/failure"
	"glamp/shared/money"
	"net/http"
	"net/url"
)

type Finance interface {
	List(ctx context.Context, kind model.Kind, query url.Values) ([]model.Record, backend.Page, error)
	Get(ctx context.Context, kind model.Kind, id string) (model.Record, error)
	Create(ctx context.Context, kind model.Kind, payload any) (model.Record, error)
	Transition(ctx context.Context, kind model.Kind, id string, action model.Action, reason string) error
	Delete(ctx context.Context, kind model.Kind, id string) error
	PayablesSummary(ctx context.Context, query url.Values) (model.PayablesSummary, error)
	ProfitLoss(ctx context.Context, query url.Values) (model.ProfitLoss, error)
	Statement(ctx context.Context, query url.Values) (model.Statement, error)
}

type repositoryImpl struct {
	client backend.Client
	unit   money.Unit
	otel   otel.Otel
}

// New builds the repository. Every amount read from the backend is converted
// from cfg.Finance.AmountUnit to minor units here and nowhere else.
func New(client backend.Client, cfg *config.Config, otel otel.Otel) Finance {
	return &repositoryImpl{
		client: client,
		unit:   money.ParseUnit(cfg.Finance.AmountUnit),
		otel:   otel,
	}
}

func recordEndpoint(kind model.Kind, id string) string {
	return kind.Endpoint() + "/" + url.PathEscape(id)
}

func (r *repositoryImpl) List(ctx context.Context, kind model.Kind, query url.Values) (res []model.Record, page backend.Page, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Finance.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("finance.kind", string(kind))

	raw, err := r.client.Get(ctx, kind.Endpoint(), query)
	if err != nil {
		return nil, page, fmt.Errorf("failed to fetch %s: %w", kind, err)
	}

	records, page, err := backend.UnwrapList[model.Raw](raw, kind.ListKeys()...)
	if err != nil {
		return nil, page, fmt.Errorf("failed to read %s: %w", kind, err)
	}

	res = make([]model.Record, 0, len(records))
	for _, record := range records {
		res = append(res, record.ToModel(r.unit))
	}

	return res, page, nil
}

func (r *repositoryImpl) Get(ctx context.Context, kind model.Kind, id string) (res model.Record, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Finance.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := r.client.Get(ctx, recordEndpoint(kind, id), nil)
	if err != nil {
		if backend.IsStatus(err, http.StatusNotFound) {
			return res, failure.NotFound(kind.Label() + " not found")
		}

		return res, fmt.Errorf("failed to fetch %s %s: %w", kind, id, err)
	}

	record, err := backend.UnwrapObject[model.Raw](raw, kind.ObjectKey())
	if err != nil {
		return res, fmt.Errorf("failed to read %s %s: %w", kind, id, err)
	}

	return record.ToModel(r.unit), nil
}

func (r *repositoryImpl) Create(ctx context.Context, kind model.Kind, payload any) (res model.Record, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Finance.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := r.client.Post(ctx, kind.Endpoint(), payload)
	if err != nil {
		return res, fmt.Errorf("failed to create %s: %w", kind, err)
	}

	// The created record is informative only; callers re-fetch the list.
	if record, err := backend.UnwrapObject[model.Raw](raw, kind.ObjectKey()); err == nil {
		res = record.ToModel(r.unit)
	}

	return res, nil
}

type transitionRequest struct {
	Reason string `json:"reason,omitempty"`
}

func (r *repositoryImpl) Transition(ctx context.Context, kind model.Kind, id string, action model.Action, reason string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Finance.Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{"finance.kind": string(kind), "finance.action": string(action)})

	if _, err = r.client.Post(ctx, recordEndpoint(kind, id)+"/"+string(action), transitionRequest{Reason: reason}); err != nil {
		return fmt.Errorf("failed to %s %s %s: %w", action, kind, id, err)
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, kind model.Kind, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Finance.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = r.client.Delete(ctx, recordEndpoint(kind, id)); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", kind, id, err)
	}

	return nil
}

func (r *repositoryImpl) PayablesSummary(ctx context.Context, query url.Values) (res model.PayablesSummary, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Finance.PayablesSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := r.client.Get(ctx, model.KindPayables.Endpoint()+"/summary", query)
	if err != nil {
		return res, fmt.Errorf("failed to fetch payables summary: %w", err)
	}

	summary, err := backend.UnwrapObject[model.PayablesSummaryRaw](raw, "summary")
	if err != nil {
		return res, fmt.Errorf("failed to read payables summary: %w", err)
	}

	return summary.ToModel(r.unit), nil
}

func (r *repositoryImpl) ProfitLoss(ctx context.Context, query url.Values) (res model.ProfitLoss, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Finance.ProfitLoss")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := r.client.Get(ctx, model.KindProfitLoss.Endpoint(), query)
	if err != nil {
		return res, fmt.Errorf("failed to fetch profit and loss: %w", err)
	}

	report, err := backend.UnwrapObject[model.ProfitLossRaw](raw, model.KindProfitLoss.ObjectKey())
	if err != nil {
		return res, fmt.Errorf("failed to read profit and loss: %w", err)
	}

	return report.ToModel(r.unit), nil
}

func (r *repositoryImpl) Statement(ctx context.Context, query url.Values) (res model.Statement, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Finance.Statement")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := r.client.Get(ctx, model.KindStatements.Endpoint(), query)
	if err != nil {
		return res, fmt.Errorf("failed to fetch statement: %w", err)
	}

	lines, page, err := backend.UnwrapList[model.StatementLineRaw](raw, model.KindStatements.ListKeys()...)
	if err != nil {
		return res, fmt.Errorf("failed to read statement: %w", err)
	}

	res.Lines = make([]model.StatementLine, 0, len(lines))
	for _, line := range lines {
		res.Lines = append(res.Lines, line.ToModel(r.unit))
	}

	res.Page, res.Limit, res.Total, res.TotalPages = page.Page, page.Limit, page.Total, page.TotalPages

	// Balances sit beside the lines when the backend sends them at all.
	if totals, err := backend.UnwrapObject[model.StatementTotalsRaw](raw, model.KindStatements.ObjectKey()); err == nil {
		res.OpeningBalance = money.ParseOrZero(totals.OpeningBalance, r.unit)
		res.ClosingBalance = money.ParseOrZero(totals.ClosingBalance, r.unit)
	}

	res.OpeningBalanceDisplay = res.OpeningBalance.String()
	res.ClosingBalanceDisplay = res.ClosingBalance.String()

	return res, nil
}
