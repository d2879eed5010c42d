package parser

import (
	"metalwatch/internal/domain"
)

// Result is a classified message: the dialect tag plus exactly one
// populated payload field.
type Result struct {
	Dialect    domain.Dialect
	Spot       *domain.SpotQuote
	Settlement *domain.CashSettlement
	Company    *domain.CompanyPriceChange
}

// Classify tries the dialect matchers in fixed priority order and stops
// at the first success. The settlement and company formats go before the
// spot ticker: the lenient ticker fallback would otherwise match
// "Aluminium ..." substrings inside the richer dialects. Returns false
// when no dialect matched; that is the normal outcome for free text.
func Classify(text string) (Result, bool) {
	if settlement := MatchCashSettlement(text); settlement != nil {
		return Result{Dialect: domain.DialectCashSettlement, Settlement: settlement}, true
	}
	if company := MatchVedanta(text); company != nil {
		return Result{Dialect: domain.DialectVedanta, Company: company}, true
	}
	if company := MatchHindalco(text); company != nil {
		return Result{Dialect: domain.DialectHindalco, Company: company}, true
	}
	if company := MatchNalco(text); company != nil {
		return Result{Dialect: domain.DialectNalco, Company: company}, true
	}
	if spot := MatchSpotTicker(text); spot != nil {
		return Result{Dialect: domain.DialectSpotTicker, Spot: spot}, true
	}
	return Result{}, false
}
