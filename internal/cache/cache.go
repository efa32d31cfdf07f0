package cache

import (
	"context"
	"errors"

	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
)

// MarketCache caches the hot read paths: a buyer's cart lines, the
// homepage slider and the full catalog listing. Writers invalidate,
// readers fill. Canonical unit prices are deliberately NOT served from
// here; cart quantity math always re-reads the listing from the store.
type MarketCache interface {
	GetCart(ctx context.Context, buyerEmail string) ([]domain.CartItem, error)
	SetCart(ctx context.Context, buyerEmail string, items []domain.CartItem) error
	DeleteCart(ctx context.Context, buyerEmail string) error

	GetSlider(ctx context.Context) ([]domain.SliderItem, error)
	SetSlider(ctx context.Context, items []domain.SliderItem) error
	DeleteSlider(ctx context.Context) error

	GetCatalog(ctx context.Context) ([]domain.Medicine, error)
	SetCatalog(ctx context.Context, meds []domain.Medicine) error
	DeleteCatalog(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
