package parser

import (
	"regexp"
	"strings"

	"metalwatch/internal/domain"

	"github.com/shopspring/decimal"
)

// A metal-info-services daily report carries a "*DD-MM-YYYY*" stamp and a
// "*CASH SETTLMENT*" section (the feed's own spelling) followed by per-
// metal entries, then a "*3-MONTH*" section or a 📣 announcement block.
var (
	settlementDatePattern    = regexp.MustCompile(`\*(\d{1,2}-\d{1,2}-\d{4})\*`)
	settlementSectionPattern = regexp.MustCompile(`(?s)\*CASH SETTLMENT\*(.*?)(?:\*3-MONTH\*|\*📣)`)
	settlementPricePattern   = regexp.MustCompile(`\*Aluminium\*:\s*(\d+(?:\.\d+)?)`)
)

// MatchCashSettlement extracts the Aluminium cash-settlement price from a
// daily report. All three extractions (date stamp, section body, price
// entry) must succeed; the price is only looked up inside the settlement
// section so 3-month quotes never leak in. The returned Date is
// YYYY-MM-DD; Time is left for the caller to stamp at processing time.
func MatchCashSettlement(text string) *domain.CashSettlement {
	dateMatch := settlementDatePattern.FindStringSubmatch(text)
	if dateMatch == nil {
		return nil
	}
	day, month, year, ok := splitStampedDate(dateMatch[1])
	if !ok {
		return nil
	}

	section := settlementSectionPattern.FindStringSubmatch(text)
	if section == nil {
		return nil
	}

	priceMatch := settlementPricePattern.FindStringSubmatch(section[1])
	if priceMatch == nil {
		return nil
	}
	price, err := decimal.NewFromString(priceMatch[1])
	if err != nil {
		return nil
	}

	return &domain.CashSettlement{
		Price: price,
		Date:  year + "-" + padDay(month) + "-" + padDay(day),
	}
}

func splitStampedDate(stamp string) (day, month, year string, ok bool) {
	parts := strings.Split(stamp, "-")
	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}
