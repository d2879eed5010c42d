package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"metalwatch/internal/domain"

	"github.com/shopspring/decimal"
)

type CompanyUpdateResponse struct {
	Amount          decimal.Decimal `json:"amount" example:"2500"`
	Sign            string          `json:"sign" example:"-"`
	Unit            string          `json:"unit" example:"PMT"`
	EffectiveDate   string          `json:"effective_date" example:"08/05/2025"`
	DateApproximate bool            `json:"date_approximate"`
	LastUpdated     time.Time       `json:"last_updated" example:"2025-05-08T12:30:00Z"`
}

// GetCompanyUpdates godoc
// @Summary Latest company price changes
// @Description Get the latest announcement per tracked company; companies that have not reported yet are null
// @Tags Prices
// @Produce json
// @Success 200 {object} map[string]CompanyUpdateResponse
// @Failure 404 {object} errorResponse
// @Router /prices/companies [get]
func (h *Handler) GetCompanyUpdates(w http.ResponseWriter, _ *http.Request) {
	records, ok := h.quotes.Companies()
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrNoCompanyUpdates.Error())
		return
	}

	// All three slots are always present in the response, null when the
	// company has not reported yet.
	res := map[domain.Company]*CompanyUpdateResponse{
		domain.CompanyVedanta:  nil,
		domain.CompanyHindalco: nil,
		domain.CompanyNalco:    nil,
	}
	for company, rec := range records {
		res[company] = &CompanyUpdateResponse{
			Amount:          rec.Amount,
			Sign:            rec.Sign,
			Unit:            rec.Unit,
			EffectiveDate:   rec.EffectiveDate,
			DateApproximate: rec.DateApproximate,
			LastUpdated:     rec.LastUpdated,
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(res)
}
