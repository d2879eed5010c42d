package domain

import (
	"github.com/shopspring/decimal"
)

// Dialect identifies which message format a webhook body matched.
type Dialect string

const (
	DialectCashSettlement Dialect = "cash_settlement"
	DialectVedanta        Dialect = "vedanta"
	DialectHindalco       Dialect = "hindalco"
	DialectNalco          Dialect = "nalco"
	DialectSpotTicker     Dialect = "spot_ticker"
)

type Company string

const (
	CompanyVedanta  Company = "Vedanta"
	CompanyHindalco Company = "Hindalco"
	CompanyNalco    Company = "NALCO"
)

type Action string

const (
	ActionIncrease Action = "increase"
	ActionDecrease Action = "decrease"
)

// Sign returns the price-change sign implied by the action.
func (a Action) Sign() string {
	if a == ActionDecrease {
		return "-"
	}
	return "+"
}

// SpotQuote is the result of a matched spot ticker line, e.g.
// "*Aluminium* 245.50 (+1.25)".
type SpotQuote struct {
	Price  decimal.Decimal
	Change decimal.Decimal
}

// ChangePercent derives change/price*100. ok is false when the price is
// zero; callers must render a defined zero instead of dividing.
func (q SpotQuote) ChangePercent() (decimal.Decimal, bool) {
	if q.Price.IsZero() {
		return decimal.Zero, false
	}
	return q.Change.Div(q.Price).Mul(decimal.NewFromInt(100)), true
}

// CashSettlement is the result of a matched daily cash-settlement report.
// Date is YYYY-MM-DD (reformatted from the message's DD-MM-YYYY stamp);
// Time is the processing wall clock HH:MM:SS, not taken from the message.
type CashSettlement struct {
	Price decimal.Decimal
	Date  string
	Time  string
}

// CompanyPriceChange is the result of a matched company announcement.
// EffectiveDate is canonical DD/MM/YYYY. DateApproximate is set when the
// date normalizer had to fall back on a default for any component.
type CompanyPriceChange struct {
	Company         Company
	Action          Action
	Amount          decimal.Decimal
	Sign            string
	Unit            string
	EffectiveDate   string
	DateApproximate bool
}
