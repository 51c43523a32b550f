package model

import (
	"encoding/json"
	"glamp/shared/money"
	"strings"
)

type ReportLine struct {
	Category      Category    `json:"category"`
	Amount        money.Money `json:"amount"`
	AmountDisplay string      `json:"amountDisplay"`
}

type ProfitLoss struct {
	From             string       `json:"from,omitempty"`
	To               string       `json:"to,omitempty"`
	Income           money.Money  `json:"income"`
	Expenses         money.Money  `json:"expenses"`
	Purchases        money.Money  `json:"purchases"`
	NetProfit        money.Money  `json:"netProfit"`
	IncomeDisplay    string       `json:"incomeDisplay"`
	ExpensesDisplay  string       `json:"expensesDisplay"`
	PurchasesDisplay string       `json:"purchasesDisplay"`
	NetProfitDisplay string       `json:"netProfitDisplay"`
	IncomeLines      []ReportLine `json:"incomeLines"`
	ExpenseLines     []ReportLine `json:"expenseLines"`
}

type reportLineRaw struct {
	Category *Category       `json:"category"`
	Name     string          `json:"name"`
	Amount   json.RawMessage `json:"amount"`
	Total    json.RawMessage `json:"total"`
}

type ProfitLossRaw struct {
	From               string          `json:"from"`
	To                 string          `json:"to"`
	StartDate          string          `json:"startDate"`
	EndDate            string          `json:"endDate"`
	TotalIncome        json.RawMessage `json:"totalIncome"`
	Income             json.RawMessage `json:"income"`
	TotalExpenses      json.RawMessage `json:"totalExpenses"`
	Expenses           json.RawMessage `json:"expenses"`
	TotalPurchases     json.RawMessage `json:"totalPurchases"`
	Purchases          json.RawMessage `json:"purchases"`
	NetProfit          json.RawMessage `json:"netProfit"`
	Net                json.RawMessage `json:"net"`
	IncomeByCategory   []reportLineRaw `json:"incomeByCategory"`
	ExpensesByCategory []reportLineRaw `json:"expensesByCategory"`
}

// ToModel reads the report. Net profit is derived when the backend does not
// send it.
func (r ProfitLossRaw) ToModel(unit money.Unit) ProfitLoss {
	p := ProfitLoss{
		From:         dateOnly(firstNonEmpty(r.From, r.StartDate)),
		To:           dateOnly(firstNonEmpty(r.To, r.EndDate)),
		Income:       money.ParseOrZero(firstPresent(r.TotalIncome, r.Income), unit),
		Expenses:     money.ParseOrZero(firstPresent(r.TotalExpenses, r.Expenses), unit),
		Purchases:    money.ParseOrZero(firstPresent(r.TotalPurchases, r.Purchases), unit),
		IncomeLines:  lines(r.IncomeByCategory, unit),
		ExpenseLines: lines(r.ExpensesByCategory, unit),
	}

	p.NetProfit = p.Income - p.Expenses - p.Purchases
	if net, err := money.Parse(firstPresent(r.NetProfit, r.Net), unit); err == nil {
		p.NetProfit = net
	}

	p.IncomeDisplay = p.Income.String()
	p.ExpensesDisplay = p.Expenses.String()
	p.PurchasesDisplay = p.Purchases.String()
	p.NetProfitDisplay = p.NetProfit.String()

	return p
}

func lines(raw []reportLineRaw, unit money.Unit) []ReportLine {
	out := make([]ReportLine, 0, len(raw))

	for _, l := range raw {
		line := ReportLine{Amount: money.ParseOrZero(firstPresent(l.Amount, l.Total), unit)}

		switch {
		case l.Category != nil:
			line.Category = *l.Category
		case l.Name != "":
			line.Category = Category{ID: l.Name, Name: l.Name}
		}

		line.AmountDisplay = line.Amount.String()
		out = append(out, line)
	}

	return out
}

// Entry directions on a statement.
const (
	EntryCredit = "CREDIT"
	EntryDebit  = "DEBIT"
)

type StatementLine struct {
	ID             string      `json:"id"`
	Date           string      `json:"date"`
	Description    string      `json:"description"`
	Reference      string      `json:"reference,omitempty"`
	Type           string      `json:"type"`
	Amount         money.Money `json:"amount"`
	Balance        money.Money `json:"balance"`
	AmountDisplay  string      `json:"amountDisplay"`
	BalanceDisplay string      `json:"balanceDisplay"`
}

type StatementLineRaw struct {
	ID          json.RawMessage `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Title       string          `json:"title"`
	Reference   string          `json:"reference"`
	Type        string          `json:"type"`
	Amount      json.RawMessage `json:"amount"`
	Balance     json.RawMessage `json:"balance"`
}

func (r StatementLineRaw) ToModel(unit money.Unit) StatementLine {
	l := StatementLine{
		ID:          scalarString(r.ID),
		Date:        dateOnly(r.Date),
		Description: firstNonEmpty(r.Description, r.Title),
		Reference:   r.Reference,
		Type:        strings.ToUpper(strings.TrimSpace(r.Type)),
		Amount:      money.ParseOrZero(r.Amount, unit),
		Balance:     money.ParseOrZero(r.Balance, unit),
	}

	if l.Type == "" {
		l.Type = EntryCredit
		if l.Amount < 0 {
			l.Type = EntryDebit
		}
	}

	l.AmountDisplay = l.Amount.String()
	l.BalanceDisplay = l.Balance.String()

	return l
}

type Statement struct {
	OpeningBalance        money.Money     `json:"openingBalance"`
	ClosingBalance        money.Money     `json:"closingBalance"`
	OpeningBalanceDisplay string          `json:"openingBalanceDisplay"`
	ClosingBalanceDisplay string          `json:"closingBalanceDisplay"`
	Lines                 []StatementLine `json:"lines"`
	Page                  int             `json:"page"`
	Limit                 int             `json:"limit"`
	Total                 int             `json:"total"`
	TotalPages            int             `json:"totalPages"`
}

// StatementTotalsRaw carries the balances that sit beside the lines.
type StatementTotalsRaw struct {
	OpeningBalance json.RawMessage `json:"openingBalance"`
	ClosingBalance json.RawMessage `json:"closingBalance"`
}
