package quote

import (
	"fmt"
	"time"

	"metalwatch/internal/domain"
)

// FallbackReply answers anything no matcher recognized. The sender
// always gets some reply.
const FallbackReply = "Sorry, could not parse data from the message."

const replyTimestampLayout = "2006-01-02 15:04:05"

func renderSpotReply(q domain.SpotQuote, at time.Time) string {
	// ChangePercent returns a defined zero for a zero price, so the
	// template never renders NaN or Inf.
	percent, _ := q.ChangePercent()
	return fmt.Sprintf("spotPrice = %s,\nchange = %s,\nchangePercent = %s,\ndateTime = %s",
		q.Price.StringFixed(2), q.Change.StringFixed(2), percent.StringFixed(2),
		at.Format(replyTimestampLayout))
}

func renderSettlementReply(s domain.CashSettlement) string {
	return fmt.Sprintf("cashSettlement = %s\ndateTime = %s %s",
		s.Price.StringFixed(2), s.Date, s.Time)
}

func renderCompanyReply(c domain.CompanyPriceChange, at time.Time) string {
	return fmt.Sprintf("%s, %s%s, %s %s",
		c.Company, c.Sign, c.Amount.String(), c.EffectiveDate, at.Format("15:04"))
}
