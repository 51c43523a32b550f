package model

import (
	"encoding/json"
	"glamp/shared/money"
)

type StatusTotal struct {
	Count         int         `json:"count"`
	Amount        money.Money `json:"amount"`
	AmountDisplay string      `json:"amountDisplay"`
}

// Summary aggregates every record matching a filter, not just one page.
// Complete is false when the page cap cut the set short.
type Summary struct {
	Count              int                    `json:"count"`
	Total              money.Money            `json:"total"`
	TotalDisplay       string                 `json:"totalDisplay"`
	Outstanding        money.Money            `json:"outstanding"`
	OutstandingDisplay string                 `json:"outstandingDisplay"`
	ByStatus           map[Status]StatusTotal `json:"byStatus"`
	ExpectedCount      int                    `json:"expectedCount"`
	PagesFetched       int                    `json:"pagesFetched"`
	PagesTotal         int                    `json:"pagesTotal"`
	Complete           bool                   `json:"complete"`
}

func NewSummary() Summary {
	return Summary{ByStatus: make(map[Status]StatusTotal)}
}

func (s *Summary) Add(r Record) {
	s.Count++
	s.Total += r.Amount
	s.Outstanding += r.Outstanding

	if r.Status == "" {
		return
	}

	st := s.ByStatus[r.Status]
	st.Count++
	st.Amount += r.Amount
	s.ByStatus[r.Status] = st
}

// Finish renders the display strings.
func (s *Summary) Finish() {
	s.TotalDisplay = s.Total.String()
	s.OutstandingDisplay = s.Outstanding.String()

	for status, st := range s.ByStatus {
		st.AmountDisplay = st.Amount.String()
		s.ByStatus[status] = st
	}
}

// PayablesSummary comes from the backend aggregate endpoint.
type PayablesSummary struct {
	Total              money.Money `json:"total"`
	Paid               money.Money `json:"paid"`
	Outstanding        money.Money `json:"outstanding"`
	TotalDisplay       string      `json:"totalDisplay"`
	PaidDisplay        string      `json:"paidDisplay"`
	OutstandingDisplay string      `json:"outstandingDisplay"`
	Count              int         `json:"count"`
	UnpaidCount        int         `json:"unpaidCount"`
	PartialCount       int         `json:"partialCount"`
	PaidCount          int         `json:"paidCount"`
}

type PayablesSummaryRaw struct {
	TotalPayable     json.RawMessage `json:"totalPayable"`
	TotalAmount      json.RawMessage `json:"totalAmount"`
	TotalPaid        json.RawMessage `json:"totalPaid"`
	TotalOutstanding json.RawMessage `json:"totalOutstanding"`
	Count            json.RawMessage `json:"count"`
	TotalCount       json.RawMessage `json:"totalCount"`
	UnpaidCount      json.RawMessage `json:"unpaidCount"`
	PartialCount     json.RawMessage `json:"partialCount"`
	PaidCount        json.RawMessage `json:"paidCount"`
}

func (r PayablesSummaryRaw) ToModel(unit money.Unit) PayablesSummary {
	s := PayablesSummary{
		Total:        money.ParseOrZero(firstPresent(r.TotalPayable, r.TotalAmount), unit),
		Paid:         money.ParseOrZero(r.TotalPaid, unit),
		Count:        count(firstPresent(r.Count, r.TotalCount)),
		UnpaidCount:  count(r.UnpaidCount),
		PartialCount: count(r.PartialCount),
		PaidCount:    count(r.PaidCount),
	}

	s.Outstanding = s.Total - s.Paid
	if outstanding, err := money.Parse(r.TotalOutstanding, unit); err == nil {
		s.Outstanding = outstanding
	}

	s.TotalDisplay = s.Total.String()
	s.PaidDisplay = s.Paid.String()
	s.OutstandingDisplay = s.Outstanding.String()

	return s
}

func count(raw json.RawMessage) int {
	n, err := money.ParseNumber(raw)
	if err != nil || n < 0 {
		return 0
	}

	return int(n)
}
