package quote

import (
	"metalwatch/internal/adapters"
	"metalwatch/internal/domain"
	"metalwatch/internal/parser"
	"metalwatch/internal/store"

	"github.com/sirupsen/logrus"
)

// Service runs the full pipeline for one inbound message: classify,
// stamp, update the last-known-value slots, render the reply. Pure
// computation apart from one clock read and the store writes.
type Service struct {
	store adapters.QuoteStore
	clock adapters.Clock
}

func NewService(quoteStore adapters.QuoteStore, clock adapters.Clock) *Service {
	return &Service{store: quoteStore, clock: clock}
}

// Process classifies the message text and, on a match, overwrites the
// matching store slot. It returns the dialect tag and the reply to relay
// back to the sender; matched is false when no dialect recognized the
// text, in which case nothing was stored and the reply is the fixed
// fallback.
func (s *Service) Process(execID, text string) (dialect domain.Dialect, reply string, matched bool) {
	result, ok := parser.Classify(text)
	if !ok {
		logrus.WithField("execID", execID).Info("Message matched no dialect")
		return "", FallbackReply, false
	}

	now := s.clock.Now()

	switch result.Dialect {
	case domain.DialectCashSettlement:
		settlement := *result.Settlement
		// The report carries no time of day; the processing instant is
		// stamped in, matching the reply template.
		settlement.Time = now.Format("15:04:05")
		s.store.SetSpot(store.SpotRecord{
			Price:       settlement.Price,
			Source:      domain.DialectCashSettlement,
			LastUpdated: now,
		})
		reply = renderSettlementReply(settlement)

	case domain.DialectSpotTicker:
		spot := *result.Spot
		rec := store.SpotRecord{
			Price:       spot.Price,
			Change:      &spot.Change,
			Source:      domain.DialectSpotTicker,
			LastUpdated: now,
		}
		if percent, ok := spot.ChangePercent(); ok {
			rec.ChangePercent = &percent
		} else {
			logrus.WithField("execID", execID).Warn("Spot price is zero, skipping change percent")
		}
		s.store.SetSpot(rec)
		reply = renderSpotReply(spot, now)

	default:
		company := *result.Company
		if company.DateApproximate {
			logrus.WithFields(logrus.Fields{
				"execID":  execID,
				"company": company.Company,
				"date":    company.EffectiveDate,
			}).Warn("Effective date was built from fallback defaults")
		}
		s.store.SetCompany(company.Company, store.CompanyRecord{
			Amount:          company.Amount,
			Sign:            company.Sign,
			Unit:            company.Unit,
			EffectiveDate:   company.EffectiveDate,
			DateApproximate: company.DateApproximate,
			LastUpdated:     now,
		})
		reply = renderCompanyReply(company, now)
	}

	logrus.WithFields(logrus.Fields{
		"execID":  execID,
		"dialect": result.Dialect,
	}).Info("Message classified and stored")
	return result.Dialect, reply, true
}
