package parser

import (
	"regexp"
	"strings"

	"metalwatch/internal/domain"

	"github.com/shopspring/decimal"
)

// One pattern per company announcement dialect. The company name anchors
// the clause, so cross-company false positives are structurally
// impossible; everything after it tolerates the punctuation each sender
// actually produces (w.e.f./wef, INR/Rs./₹, comma-grouped amounts,
// "/"-joined units).
var (
	// "Vedanta wef 08/05/2025 decreases the basic price of I/R/B by INR 2500 pmt"
	vedantaPattern = regexp.MustCompile(
		`(?i)Vedanta\s+w\.?e\.?f\.?\s+(\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4})\s+` +
			`(increases?|decreases?)\s+the\s+basic\s+price\s+of.+?by\s+` +
			`(?:INR|Rs\.?|₹)?\s*(\d+(?:,\d+)*(?:\.\d+)?)\s*/?\s*(pmt|mt|per\s+ton)?`)

	// "Hindalco Prices of our all-primary products have been increased by Rs. 6,500/MT wef 10thh May 2025."
	// Past-tense verbs, a day ordinal with an occasional stray trailing
	// letter, and a month-name date at the end.
	hindalcoPattern = regexp.MustCompile(
		`(?i)Hindalco.+?(increased|decreased)\s+by\s+(?:Rs\.?|INR|₹)?\s*` +
			`(\d+(?:,\d+)*(?:\.\d+)?)\s*/?\s*(mt|pmt|per\s+ton)?\s+` +
			`w\.?e\.?f\.?\s+(\d{1,2}(?:st|nd|rd|th)?h?\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{2,4})`)

	// "NALCO w.e.f. 14.05.2025 increases the basic price of All Aluminium Metal Products by Rs 9100/-PMT"
	// Dashes show up both as date separators and as the "/-" amount tail.
	nalcoPattern = regexp.MustCompile(
		`(?i)NALCO\s+w\.?e\.?f\.?\s+(\d{1,2}\.?/?-?\d{1,2}\.?/?-?\d{2,4})\s+` +
			`(increases?|decreases?)\s+.+?by\s+(?:Rs\.?|INR|₹)?\s*` +
			`(\d+(?:,\d+)*(?:\.\d+)?)\s*(?:/|-)?\s*(pmt|mt|per\s+ton)?`)
)

// MatchVedanta recognizes Vedanta basic-price announcements. Unit
// defaults to PMT, dates are numeric D/M/Y with mixed separators.
func MatchVedanta(text string) *domain.CompanyPriceChange {
	m := vedantaPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return buildCompanyChange(domain.CompanyVedanta, m[2], m[3], m[4], "PMT", normalizeNumericDate(m[1]))
}

// MatchHindalco recognizes Hindalco announcements. Unit defaults to MT,
// the effective date uses an English month name.
func MatchHindalco(text string) *domain.CompanyPriceChange {
	m := hindalcoPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return buildCompanyChange(domain.CompanyHindalco, m[1], m[2], m[3], "MT", normalizeMonthNameDate(m[4]))
}

// MatchNalco recognizes NALCO basic-price announcements. Unit defaults
// to PMT.
func MatchNalco(text string) *domain.CompanyPriceChange {
	m := nalcoPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return buildCompanyChange(domain.CompanyNalco, m[2], m[3], m[4], "PMT", normalizeNumericDate(m[1]))
}

func buildCompanyChange(company domain.Company, verb, rawAmount, rawUnit, defaultUnit string, date NormalizedDate) *domain.CompanyPriceChange {
	amount, err := decimal.NewFromString(strings.ReplaceAll(rawAmount, ",", ""))
	if err != nil {
		return nil
	}

	// "increases"/"increased" and friends all collapse to one vocabulary.
	action := domain.ActionIncrease
	if strings.Contains(strings.ToLower(verb), "decrease") {
		action = domain.ActionDecrease
	}

	unit := defaultUnit
	if rawUnit != "" {
		unit = strings.ToUpper(rawUnit)
	}

	return &domain.CompanyPriceChange{
		Company:         company,
		Action:          action,
		Amount:          amount,
		Sign:            action.Sign(),
		Unit:            unit,
		EffectiveDate:   date.Value,
		DateApproximate: !date.Exact,
	}
}
