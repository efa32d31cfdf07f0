package http

import (
	"context"
	"net/http"

	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
)

type StatsService interface {
	SellerTotals(ctx context.Context, sellerEmail string) (*domain.SalesSummary, error)
	MarketplaceTotals(ctx context.Context) (*domain.SalesSummary, error)
}

type StatsHandler struct {
	stats StatsService
}

func NewStatsHandler(stats StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GET /seller/stats
func (h *StatsHandler) SellerTotals(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())

	summary, err := h.stats.SellerTotals(r.Context(), p.Email)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// GET /admin/stats
func (h *StatsHandler) MarketplaceTotals(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.MarketplaceTotals(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
