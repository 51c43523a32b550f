package dto

import (
	"encoding/json"
	"glamp/internal/domains/finance/model"
	"glamp/shared/constant"
	"glamp/shared/money"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Filter narrows a finance list. It is forwarded to the backend as query
// parameters and echoed back so the client can re-render the same page.
type Filter struct {
	Page     int    `json:"page"               validate:"gte=1"`
	Limit    int    `json:"limit"              validate:"gte=1,lte=100"`
	Search   string `json:"search,omitempty"   validate:"omitempty,max=100"`
	From     string `json:"from,omitempty"     validate:"omitempty,dateonly"`
	To       string `json:"to,omitempty"       validate:"omitempty,dateonly"`
	Status   string `json:"status,omitempty"   validate:"omitempty,oneof=DRAFT SUBMITTED APPROVED REJECTED CANCELLED"`
	Currency string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// FromRequest reads the filter from the query string, defaulting page and
// limit.
func (f *Filter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.Page = positive(query.Get(constant.RequestParamPage), constant.DefaultValuePage)
	f.Limit = positive(query.Get(constant.RequestParamLimit), constant.DefaultValueLimit)
	f.Search = strings.TrimSpace(query.Get(constant.RequestParamSearch))
	f.From = query.Get(constant.RequestParamFrom)
	f.To = query.Get(constant.RequestParamTo)
	f.Status = strings.ToUpper(strings.TrimSpace(query.Get(constant.RequestParamStatus)))
	f.Currency = strings.ToUpper(strings.TrimSpace(query.Get(constant.RequestParamCurrency)))
}

// Values renders the filter as backend query parameters, omitting empty ones.
func (f Filter) Values() url.Values {
	values := url.Values{}

	if f.Page > 0 {
		values.Set(constant.RequestParamPage, strconv.Itoa(f.Page))
	}

	if f.Limit > 0 {
		values.Set(constant.RequestParamLimit, strconv.Itoa(f.Limit))
	}

	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}

	set(constant.RequestParamSearch, f.Search)
	set(constant.RequestParamFrom, f.From)
	set(constant.RequestParamTo, f.To)
	set(constant.RequestParamStatus, f.Status)
	set(constant.RequestParamCurrency, f.Currency)

	return values
}

func positive(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}

	return n
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ListResponse struct {
	Kind       model.Kind     `json:"kind"`
	Items      []model.Record `json:"items"`
	Pagination Pagination     `json:"pagination"`
	Filter     Filter         `json:"filter"`
}

type SummaryResponse struct {
	Kind    model.Kind    `json:"kind"`
	Summary model.Summary `json:"summary"`
	Filter  Filter        `json:"filter"`
}

type PayablesSummaryResponse struct {
	Summary model.PayablesSummary `json:"summary"`
}

// ActionRequest carries the optional reason of a transition; reject requires
// one.
type ActionRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// ActionResponse is returned by every mutation together with the re-fetched
// page the client is looking at. ListError is set when the mutation went
// through but the re-fetch did not.
type ActionResponse struct {
	Message    string       `json:"message"`
	ToastTTLMs int          `json:"toastTtlMs"`
	List       ListResponse `json:"list"`
	ListError  string       `json:"listError,omitempty"`
}

// CreateRequest is a new ledger record. Amount is in minor units.
type CreateRequest struct {
	Title       string      `json:"title"       validate:"required,max=200"`
	Description string      `json:"description" validate:"omitempty,max=1000"`
	Category    string      `json:"category"    validate:"omitempty,max=100"`
	Vendor      string      `json:"vendor"      validate:"omitempty,max=200"`
	Amount      money.Money `json:"amount"      validate:"gt=0"`
	Currency    string      `json:"currency"    validate:"omitempty,len=3"`
	Date        string      `json:"date"        validate:"required,dateonly"`
}

// Payload converts the request to the backend body, denominating the amount
// in the backend's unit.
func (r CreateRequest) Payload(unit money.Unit) CreatePayload {
	currency := strings.ToUpper(r.Currency)
	if currency == "" {
		currency = money.DefaultCurrency
	}

	return CreatePayload{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		Category:    strings.TrimSpace(r.Category),
		Vendor:      strings.TrimSpace(r.Vendor),
		Amount:      r.Amount.In(unit),
		Currency:    currency,
		Date:        r.Date,
	}
}

type CreatePayload struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	Vendor      string      `json:"vendor,omitempty"`
	Amount      json.Number `json:"amount"`
	Currency    string      `json:"currency"`
	Date        string      `json:"date"`
}

type ReportFilter struct {
	From     string `json:"from,omitempty"     validate:"omitempty,dateonly"`
	To       string `json:"to,omitempty"       validate:"omitempty,dateonly"`
	Currency string `json:"currency,omitempty" validate:"omitempty,len=3"`
	Page     int    `json:"page,omitempty"     validate:"omitempty,gte=1"`
	Limit    int    `json:"limit,omitempty"    validate:"omitempty,gte=1,lte=100"`
}

func (f *ReportFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.From = query.Get(constant.RequestParamFrom)
	f.To = query.Get(constant.RequestParamTo)
	f.Currency = strings.ToUpper(strings.TrimSpace(query.Get(constant.RequestParamCurrency)))
	f.Page = positive(query.Get(constant.RequestParamPage), 0)
	f.Limit = positive(query.Get(constant.RequestParamLimit), 0)
}

func (f ReportFilter) Values() url.Values {
	return Filter{From: f.From, To: f.To, Currency: f.Currency, Page: f.Page, Limit: f.Limit}.Values()
}

// ProfitLossView is a report together with the filter it was computed for.
type ProfitLossView struct {
	Filter ReportFilter     `json:"filter"`
	Report model.ProfitLoss `json:"report"`
}

type StatementView struct {
	Filter    ReportFilter    `json:"filter"`
	Statement model.Statement `json:"statement"`
}

// ProfitLossResponse carries the latest committed view. Stale is set when a
// newer request from the same session superseded this one; View then holds
// the newer result, or is nil when none has completed yet.
type ProfitLossResponse struct {
	View  *ProfitLossView `json:"view"`
	Stale bool            `json:"stale"`
}

type StatementResponse struct {
	View  *StatementView `json:"view"`
	Stale bool           `json:"stale"`
}
