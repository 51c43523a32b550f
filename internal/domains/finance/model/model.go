package model

import (
	"bytes"
	"encoding/json"
	"glamp/shared/money"
	"strings"
	"time"
)

const EntityName = "finance record"

// Kind is a finance view served under /finance/{kind}.
type Kind string

const (
	KindExpenses   Kind = "expenses"
	KindIncome     Kind = "income"
	KindPurchases  Kind = "purchases"
	KindPayables   Kind = "payables"
	KindProfitLoss Kind = "profit-loss"
	KindStatements Kind = "statements"
)

var kinds = map[Kind]struct {
	label    string
	listKeys []string
	objKey   string
	ledger   bool
}{
	KindExpenses:   {label: "Expense", listKeys: []string{"expenses", "items"}, objKey: "expense", ledger: true},
	KindIncome:     {label: "Income", listKeys: []string{"income", "incomes", "items"}, objKey: "income", ledger: true},
	KindPurchases:  {label: "Purchase", listKeys: []string{"purchases", "items"}, objKey: "purchase", ledger: true},
	KindPayables:   {label: "Payable", listKeys: []string{"payables", "purchases", "items"}, objKey: "payable"},
	KindProfitLoss: {label: "Profit & Loss", objKey: "report"},
	KindStatements: {label: "Statement", listKeys: []string{"statements", "lines", "transactions", "items"}, objKey: "statement"},
}

// ParseKind accepts any known kind name.
func ParseKind(name string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	_, ok := kinds[k]

	return k, ok
}

// IsLedger reports whether records of the kind follow the approval workflow.
func (k Kind) IsLedger() bool {
	return kinds[k].ledger
}

func (k Kind) Label() string {
	return kinds[k].label
}

func (k Kind) Endpoint() string {
	return "/finance/" + string(k)
}

// ListKeys are the named properties the backend may wrap a list in.
func (k Kind) ListKeys() []string {
	return kinds[k].listKeys
}

func (k Kind) ObjectKey() string {
	return kinds[k].objKey
}

// Category is always {id, name}; the backend may send either that object or
// a bare name.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *Category) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*c = Category{}

		return nil
	case data[0] == '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}

		name = strings.TrimSpace(name)
		*c = Category{ID: name, Name: name}

		return nil
	}

	var raw struct {
		ID   json.RawMessage `json:"id"`
		Name string          `json:"name"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = Category{ID: scalarString(raw.ID), Name: strings.TrimSpace(raw.Name)}
	if c.Name == "" {
		c.Name = c.ID
	}

	return nil
}

// Actor is an audit reference. It may arrive as a name or as a user object.
type Actor struct {
	ID    string     `json:"id,omitempty"`
	Name  string     `json:"name,omitempty"`
	Email string     `json:"email,omitempty"`
	At    *time.Time `json:"at,omitempty"`
}

func (a *Actor) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}

		*a = Actor{Name: name}

		return nil
	}

	var raw struct {
		ID        json.RawMessage `json:"id"`
		Name      string          `json:"name"`
		FullName  string          `json:"fullName"`
		FirstName string          `json:"firstName"`
		LastName  string          `json:"lastName"`
		Email     string          `json:"email"`
		At        *time.Time      `json:"at"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	name := raw.Name
	if name == "" {
		name = raw.FullName
	}

	if name == "" {
		name = strings.TrimSpace(raw.FirstName + " " + raw.LastName)
	}

	*a = Actor{ID: scalarString(raw.ID), Name: name, Email: raw.Email, At: raw.At}

	return nil
}

// Record is one expense, income, purchase or payable row. All amounts are in
// minor units.
type Record struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	Category      *Category    `json:"category,omitempty"`
	Vendor        string       `json:"vendor,omitempty"`
	Amount        money.Money  `json:"amount"`
	AmountDisplay string       `json:"amountDisplay"`
	Currency      string       `json:"currency"`
	Date          string       `json:"date,omitempty"`
	Status        Status       `json:"status,omitempty"`
	PaymentStatus string       `json:"paymentStatus,omitempty"`
	Total         money.Money  `json:"total"`
	Paid          money.Money  `json:"paid"`
	Outstanding   money.Money  `json:"outstanding"`
	CreatedBy     *Actor       `json:"createdBy,omitempty"`
	SubmittedBy   *Actor       `json:"submittedBy,omitempty"`
	ApprovedBy    *Actor       `json:"approvedBy,omitempty"`
	RejectedBy    *Actor       `json:"rejectedBy,omitempty"`
	RejectReason  string       `json:"rejectionReason,omitempty"`
	Actions       []ActionView `json:"actions"`
}

// Raw is the backend representation. Amount fields are decoded with the
// configured unit exactly once, in ToModel.
type Raw struct {
	ID            json.RawMessage `json:"id"`
	Title         string          `json:"title"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      *Category       `json:"category"`
	Vendor        json.RawMessage `json:"vendor"`
	Supplier      json.RawMessage `json:"supplier"`
	Amount        json.RawMessage `json:"amount"`
	Currency      string          `json:"currency"`
	Date          string          `json:"date"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	TotalAmount   json.RawMessage `json:"totalAmount"`
	Total         json.RawMessage `json:"total"`
	PaidAmount    json.RawMessage `json:"paidAmount"`
	AmountPaid    json.RawMessage `json:"amountPaid"`
	CreatedBy     *Actor          `json:"createdBy"`
	SubmittedBy   *Actor          `json:"submittedBy"`
	ApprovedBy    *Actor          `json:"approvedBy"`
	RejectedBy    *Actor          `json:"rejectedBy"`
	RejectReason  string          `json:"rejectionReason"`
}

func (r Raw) ToModel(unit money.Unit) Record {
	rec := Record{
		ID:            scalarString(r.ID),
		Title:         firstNonEmpty(r.Title, r.Name, r.Description),
		Description:   r.Description,
		Category:      r.Category,
		Vendor:        firstNonEmpty(partyName(r.Vendor), partyName(r.Supplier)),
		Amount:        money.ParseOrZero(r.Amount, unit),
		Currency:      firstNonEmpty(r.Currency, money.DefaultCurrency),
		Date:          dateOnly(r.Date),
		Status:        ParseStatus(r.Status),
		PaymentStatus: strings.ToUpper(strings.TrimSpace(r.PaymentStatus)),
		CreatedBy:     r.CreatedBy,
		SubmittedBy:   r.SubmittedBy,
		ApprovedBy:    r.ApprovedBy,
		RejectedBy:    r.RejectedBy,
		RejectReason:  r.RejectReason,
	}

	if rec.Category != nil && *rec.Category == (Category{}) {
		rec.Category = nil
	}

	rec.Total = rec.Amount
	if total, err := money.Parse(firstPresent(r.TotalAmount, r.Total), unit); err == nil {
		rec.Total = total
	}

	rec.Paid = money.ParseOrZero(firstPresent(r.PaidAmount, r.AmountPaid), unit)
	rec.Outstanding = rec.Total - rec.Paid
	rec.AmountDisplay = money.Format(rec.Amount, rec.Currency)
	rec.Actions = Actions(rec.Status)

	return rec
}

// Payment statuses of a payable.
const (
	PaymentUnpaid  = "UNPAID"
	PaymentPartial = "PARTIAL"
	PaymentPaid    = "PAID"
)

// DerivePayable fills the payable fields of an approved purchase:
// outstanding = total − paid, and the payment status when the backend left it
// out.
func DerivePayable(r *Record) {
	r.Outstanding = r.Total - r.Paid
	if r.Outstanding < 0 {
		r.Outstanding = 0
	}

	if r.PaymentStatus != "" {
		return
	}

	switch {
	case r.Paid <= 0:
		r.PaymentStatus = PaymentUnpaid
	case r.Paid >= r.Total:
		r.PaymentStatus = PaymentPaid
	default:
		r.PaymentStatus = PaymentPartial
	}
}

// IsPayable reports whether a purchase row belongs on the payables view.
// Rows without a workflow status are trusted to be confirmed already.
func IsPayable(r Record) bool {
	return r.Status == "" || r.Status == StatusApproved
}

func scalarString(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var number json.Number
	if err := json.Unmarshal(raw, &number); err == nil {
		return number.String()
	}

	return ""
}

func partyName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var actor Actor
	if err := json.Unmarshal(raw, &actor); err != nil {
		return ""
	}

	return actor.Name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}

func firstPresent(values ...json.RawMessage) json.RawMessage {
	for _, v := range values {
		if trimmed := bytes.TrimSpace(v); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
			return v
		}
	}

	return nil
}

// dateOnly trims RFC 3339 timestamps down to the calendar date.
func dateOnly(value string) string {
	value = strings.TrimSpace(value)
	if len(value) > 10 && value[10] == 'T' {
		return value[:10]
	}

	return value
}
