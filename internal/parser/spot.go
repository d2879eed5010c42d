package parser

import (
	"regexp"

	"metalwatch/internal/domain"

	"github.com/shopspring/decimal"
)

// Spot ticker lines arrive as "*Aluminium* 245.50 (+1.25)", sometimes
// without the emphasis markers. The strict pattern is tried first so a
// starred message never falls through to the lenient one.
var (
	spotStrictPattern  = regexp.MustCompile(`\*\s*Aluminium\s*\*\s*(\d+(?:\.\d+)?)\s*\(([+-]?\d+(?:\.\d+)?)\)`)
	spotLenientPattern = regexp.MustCompile(`Aluminium\s*(\d+(?:\.\d+)?)\s*\(([+-]?\d+(?:\.\d+)?)\)`)
)

// MatchSpotTicker extracts price and signed change from a ticker line.
// A nil result means the text belongs to some other dialect, not an
// error; the caller tries the next matcher.
func MatchSpotTicker(text string) *domain.SpotQuote {
	m := spotStrictPattern.FindStringSubmatch(text)
	if m == nil {
		m = spotLenientPattern.FindStringSubmatch(text)
	}
	if m == nil {
		return nil
	}

	price, err := decimal.NewFromString(m[1])
	if err != nil {
		return nil
	}
	change, err := decimal.NewFromString(m[2])
	if err != nil {
		return nil
	}
	return &domain.SpotQuote{Price: price, Change: change}
}
