package adapters

import (
	"time"

	"metalwatch/internal/domain"
	"metalwatch/internal/store"
)

// Clock abstracts wall-clock reads so replies and store timestamps are
// testable with a fixed time.
type Clock interface {
	Now() time.Time
}

// QuoteStore is the last-known-value holder: one spot slot plus the
// fixed per-company slots.
type QuoteStore interface {
	SetSpot(rec store.SpotRecord)
	Spot() (store.SpotRecord, bool)
	SetCompany(company domain.Company, rec store.CompanyRecord)
	Companies() (map[domain.Company]store.CompanyRecord, bool)
}

// ReplyCache remembers the reply rendered for a provider message SID so
// webhook redeliveries stay idempotent.
type ReplyCache interface {
	Get(messageSid string) (string, bool)
	Set(messageSid, reply string)
}
