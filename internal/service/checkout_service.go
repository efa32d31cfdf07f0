package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/logger"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/repository"
)

// CheckoutService finalizes purchases against two collections with a
// fixed ordering: insert the settlement record first, then clear the
// buyer's cart. A clear that fails leaves the sale recorded and stale
// lines in the cart; the buyer sees those on the next read. Losing the
// sale record would be worse, so the ordering is never inverted and
// there is no compensating delete.
type CheckoutService struct {
	payments repository.PaymentRepository
	carts    repository.CartRepository
	cache    cartInvalidator
	log      *logger.Logger
}

type cartInvalidator interface {
	DeleteCart(ctx context.Context, buyerEmail string) error
}

func NewCheckoutService(payments repository.PaymentRepository, carts repository.CartRepository, cache cartInvalidator, log *logger.Logger) *CheckoutService {
	return &CheckoutService{
		payments: payments,
		carts:    carts,
		cache:    cache,
		log:      log,
	}
}

// FinalizePurchase records the purchase with status pending and empties
// the buyer's cart. Only the insert outcome is surfaced; the cart clear
// is logged but never reported to the caller.
func (s *CheckoutService) FinalizePurchase(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	if p.TransactionID == "" {
		return nil, fmt.Errorf("%w: transaction id is required", ErrInvalidState)
	}

	p.Status = domain.StatusPending
	if err := s.payments.Insert(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicatePayment) {
			return nil, fmt.Errorf("%w: transaction %s already recorded", ErrConflict, p.TransactionID)
		}
		return nil, err
	}

	deleted, err := s.carts.ClearForBuyer(ctx, p.BuyerEmail)
	if err != nil {
		s.log.Error("cart clear after purchase failed, cart may retain stale lines",
			"transaction_id", p.TransactionID, "buyer", p.BuyerEmail, "error", err)
	} else {
		s.log.Info("purchase finalized", "transaction_id", p.TransactionID,
			"buyer", p.BuyerEmail, "cart_lines_cleared", deleted)
	}

	if err := s.cache.DeleteCart(ctx, p.BuyerEmail); err != nil {
		s.log.Warn("cart cache invalidate failed", "buyer", p.BuyerEmail, "error", err)
	}

	return p, nil
}

// UpdateStatus sets the status field verbatim. Idempotent; the stored
// value is whatever the caller sent, so the payment processor callback
// can write "paid" without this layer second-guessing it.
func (s *CheckoutService) UpdateStatus(ctx context.Context, transactionID string, status domain.PaymentStatus) error {
	if err := s.payments.UpdateStatus(ctx, transactionID, status); err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return fmt.Errorf("%w: transaction %s", ErrNotFound, transactionID)
		}
		return err
	}
	return nil
}

func (s *CheckoutService) GetPurchase(ctx context.Context, transactionID string) (*domain.Payment, error) {
	p, err := s.payments.GetByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, fmt.Errorf("%w: transaction %s", ErrNotFound, transactionID)
		}
		return nil, err
	}
	return p, nil
}

func (s *CheckoutService) ListByBuyer(ctx context.Context, buyerEmail string) ([]domain.Payment, error) {
	return s.payments.ListByBuyer(ctx, buyerEmail)
}

func (s *CheckoutService) ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Payment, error) {
	return s.payments.ListBySeller(ctx, sellerEmail)
}
