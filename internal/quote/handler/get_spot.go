package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"metalwatch/internal/domain"

	"github.com/shopspring/decimal"
)

type GetSpotPriceResponse struct {
	SpotPrice        decimal.Decimal  `json:"spot_price" example:"245.5"`
	PriceChange      *decimal.Decimal `json:"price_change" example:"1.25"`
	ChangePercentage *decimal.Decimal `json:"change_percentage" example:"0.51"`
	Source           string           `json:"source" example:"spot_ticker"`
	LastUpdated      time.Time        `json:"last_updated" example:"2025-05-14T15:04:05Z"`
}

// GetSpotPrice godoc
// @Summary Latest spot price
// @Description Get the most recently ingested Aluminium spot price; change fields are null for cash-settlement-sourced records
// @Tags Prices
// @Produce json
// @Success 200 {object} GetSpotPriceResponse
// @Failure 404 {object} errorResponse
// @Router /prices/spot [get]
func (h *Handler) GetSpotPrice(w http.ResponseWriter, _ *http.Request) {
	rec, ok := h.quotes.Spot()
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrNoSpotPrice.Error())
		return
	}

	res := GetSpotPriceResponse{
		SpotPrice:        rec.Price,
		PriceChange:      rec.Change,
		ChangePercentage: rec.ChangePercent,
		Source:           string(rec.Source),
		LastUpdated:      rec.LastUpdated,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(res)
}
