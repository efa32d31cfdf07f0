package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/cache"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/logger"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/singleflight"
)

// CartService owns the cart ledger. Every quantity change re-derives its
// price delta from the medicine's current price, never from the value
// stored on the line, so a stale denormalized price cannot compound.
type CartService struct {
	carts     repository.CartRepository
	medicines repository.MedicineRepository
	cache     cache.MarketCache
	log       *logger.Logger
	sfg       singleflight.Group // Prevents cache stampede
}

func NewCartService(carts repository.CartRepository, medicines repository.MedicineRepository, c cache.MarketCache, log *logger.Logger) *CartService {
	return &CartService{
		carts:     carts,
		medicines: medicines,
		cache:     c,
		log:       log,
	}
}

func (s *CartService) GetCart(ctx context.Context, buyerEmail string) ([]domain.CartItem, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(buyerEmail, func() (interface{}, error) {
		items, err := s.cache.GetCart(ctx, buyerEmail)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn("cart cache get failed", "buyer", buyerEmail, "error", err)
		}

		items, err = s.carts.ListByBuyer(ctx, buyerEmail)
		if err != nil {
			return nil, err
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := s.cache.SetCart(ctx, buyerEmail, items); err != nil {
				s.log.Warn("cart cache set failed", "buyer", buyerEmail, "error", err)
			}
		}()

		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.CartItem), nil
}

// AddItem inserts the line exactly as supplied by the caller, including
// its quantity and price. The request payload is the seed; nothing is
// recomputed from the catalog here.
func (s *CartService) AddItem(ctx context.Context, item *domain.CartItem) error {
	if err := s.carts.AddItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateCartItem) {
			return fmt.Errorf("%w: %s already in cart", ErrConflict, item.ItemName)
		}
		return err
	}

	s.invalidateCart(item.BuyerEmail)
	return nil
}

// IncreaseQuantity bumps the line by one unit at the medicine's canonical
// price. The price is looked up fresh on every call.
func (s *CartService) IncreaseQuantity(ctx context.Context, itemName, buyerEmail string) error {
	med, err := s.medicines.GetByName(ctx, itemName)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return fmt.Errorf("%w: medicine %s", ErrNotFound, itemName)
		}
		return err
	}

	if err := s.carts.AdjustItem(ctx, itemName, buyerEmail, 1, med.Price); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return fmt.Errorf("%w: cart item %s", ErrNotFound, itemName)
		}
		return err
	}

	s.invalidateCart(buyerEmail)
	return nil
}

// DecreaseQuantity removes one unit at the canonical price, refusing to
// go below one unit's worth: a line whose price already equals the
// listing price is at the floor.
func (s *CartService) DecreaseQuantity(ctx context.Context, itemName, buyerEmail string) error {
	med, err := s.medicines.GetByName(ctx, itemName)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return fmt.Errorf("%w: medicine %s", ErrNotFound, itemName)
		}
		return err
	}

	item, err := s.carts.GetItem(ctx, itemName, buyerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return fmt.Errorf("%w: cart item %s", ErrNotFound, itemName)
		}
		return err
	}

	if item.Price <= med.Price {
		return ErrPriceFloor
	}

	if err := s.carts.AdjustItem(ctx, itemName, buyerEmail, -1, -med.Price); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return fmt.Errorf("%w: cart item %s", ErrNotFound, itemName)
		}
		return err
	}

	s.invalidateCart(buyerEmail)
	return nil
}

func (s *CartService) RemoveItem(ctx context.Context, id primitive.ObjectID, buyerEmail string) error {
	if err := s.carts.RemoveItem(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return fmt.Errorf("%w: cart item %s", ErrNotFound, id.Hex())
		}
		return err
	}

	s.invalidateCart(buyerEmail)
	return nil
}

func (s *CartService) ClearCart(ctx context.Context, buyerEmail string) (int64, error) {
	deleted, err := s.carts.ClearForBuyer(ctx, buyerEmail)
	if err != nil {
		return 0, err
	}

	s.invalidateCart(buyerEmail)
	return deleted, nil
}

func (s *CartService) invalidateCart(buyerEmail string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.DeleteCart(ctx, buyerEmail); err != nil {
		s.log.Warn("cart cache invalidate failed", "buyer", buyerEmail, "error", err)
	}
}
