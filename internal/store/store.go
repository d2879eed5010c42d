package store

import (
	"sync"
	"time"

	"metalwatch/internal/domain"

	"github.com/shopspring/decimal"
)

// SpotRecord is the single latest spot price. Both the ticker and the
// cash-settlement dialects write this slot; Source keeps the provenance
// distinguishable. Change and ChangePercent are nil for settlement-
// sourced records, and ChangePercent is nil when the price was zero.
type SpotRecord struct {
	Price         decimal.Decimal
	Change        *decimal.Decimal
	ChangePercent *decimal.Decimal
	Source        domain.Dialect
	LastUpdated   time.Time
}

// CompanyRecord is the latest announcement for one tracked company.
type CompanyRecord struct {
	Amount          decimal.Decimal
	Sign            string
	Unit            string
	EffectiveDate   string
	DateApproximate bool
	LastUpdated     time.Time
}

// Store holds the two last-known-value slots: one spot record and a
// fixed three-entry company map. Each slot has its own lock so a spot
// write never blocks a company read. No history is kept; every write
// replaces the previous record for its slot.
type Store struct {
	spotMu sync.RWMutex
	spot   *SpotRecord

	companyMu sync.RWMutex
	companies map[domain.Company]CompanyRecord
}

func New() *Store {
	return &Store{companies: make(map[domain.Company]CompanyRecord, 3)}
}

func (s *Store) SetSpot(rec SpotRecord) {
	s.spotMu.Lock()
	defer s.spotMu.Unlock()
	s.spot = &rec
}

// Spot returns a copy of the latest spot record; ok is false until the
// first quote arrives.
func (s *Store) Spot() (SpotRecord, bool) {
	s.spotMu.RLock()
	defer s.spotMu.RUnlock()
	if s.spot == nil {
		return SpotRecord{}, false
	}
	return *s.spot, true
}

func (s *Store) SetCompany(company domain.Company, rec CompanyRecord) {
	s.companyMu.Lock()
	defer s.companyMu.Unlock()
	s.companies[company] = rec
}

// Company returns a copy of one company's latest record.
func (s *Store) Company(company domain.Company) (CompanyRecord, bool) {
	s.companyMu.RLock()
	defer s.companyMu.RUnlock()
	rec, ok := s.companies[company]
	return rec, ok
}

// Companies returns a snapshot of all company records; ok is false when
// no company has reported yet. Mutating the snapshot does not affect the
// store.
func (s *Store) Companies() (map[domain.Company]CompanyRecord, bool) {
	s.companyMu.RLock()
	defer s.companyMu.RUnlock()
	if len(s.companies) == 0 {
		return nil, false
	}
	snapshot := make(map[domain.Company]CompanyRecord, len(s.companies))
	for company, rec := range s.companies {
		snapshot[company] = rec
	}
	return snapshot, true
}
