package service

import (
	"context"

	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/repository"
)

// StatsService is a read-only view over the purchase ledger. No mutation,
// no caching: the sums come straight from the store so they are safe to
// run concurrently with any writer and never serve a stale snapshot.
type StatsService struct {
	payments repository.PaymentRepository
}

func NewStatsService(payments repository.PaymentRepository) *StatsService {
	return &StatsService{payments: payments}
}

// SellerTotals sums one seller's pending, paid and overall amounts.
// A seller with no sales gets zeros, not an error.
func (s *StatsService) SellerTotals(ctx context.Context, sellerEmail string) (*domain.SalesSummary, error) {
	return s.payments.SummarizeSeller(ctx, sellerEmail)
}

// MarketplaceTotals sums the whole ledger.
func (s *StatsService) MarketplaceTotals(ctx context.Context) (*domain.SalesSummary, error) {
	return s.payments.SummarizeAll(ctx)
}
