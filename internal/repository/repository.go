package repository

import (
	"context"
	"errors"

	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrMedicineNotFound      = errors.New("medicine not found")
	ErrDuplicateMedicine     = errors.New("medicine with this name already exists")
	ErrCartItemNotFound      = errors.New("cart item not found")
	ErrDuplicateCartItem     = errors.New("item already in cart for this buyer")
	ErrAdvertisementNotFound = errors.New("advertisement not found")
	ErrDuplicateAd           = errors.New("advertisement already requested for this item")
	ErrSliderItemNotFound    = errors.New("slider item not found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrDuplicatePayment      = errors.New("payment with this transaction id already exists")
)

// MedicineRepository is the catalog store. Medicine names are the unique
// business key; conflict detection is backed by a unique index.
type MedicineRepository interface {
	Create(ctx context.Context, m *domain.Medicine) error
	GetByName(ctx context.Context, name string) (*domain.Medicine, error)
	List(ctx context.Context) ([]domain.Medicine, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Medicine, error)
	Update(ctx context.Context, name, sellerEmail string, upd domain.MedicineUpdate) error
	SetPromotionFlag(ctx context.Context, name string, flag domain.PromotionFlag) error
	Delete(ctx context.Context, name, sellerEmail string) error
}

// CartRepository is the per-buyer cart ledger. Quantity and price deltas
// go through AdjustItem, which is a store-native atomic add so concurrent
// adjustments to the same line never lose updates.
type CartRepository interface {
	AddItem(ctx context.Context, item *domain.CartItem) error
	GetItem(ctx context.Context, itemName, buyerEmail string) (*domain.CartItem, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]domain.CartItem, error)
	AdjustItem(ctx context.Context, itemName, buyerEmail string, quantityDelta int, priceDelta float64) error
	RemoveItem(ctx context.Context, id primitive.ObjectID) error
	ClearForBuyer(ctx context.Context, buyerEmail string) (int64, error)
}

// PromotionRepository covers the advertisement queue and the slider set.
type PromotionRepository interface {
	CreateAdvertisement(ctx context.Context, ad *domain.Advertisement) error
	ListAdvertisements(ctx context.Context) ([]domain.Advertisement, error)
	ListAdvertisementsBySeller(ctx context.Context, sellerEmail string) ([]domain.Advertisement, error)
	SetAdvertisementFlag(ctx context.Context, itemName string, flag domain.PromotionFlag) error
	GetSliderItem(ctx context.Context, itemName string) (*domain.SliderItem, error)
	ListSlider(ctx context.Context) ([]domain.SliderItem, error)
	InsertSliderItem(ctx context.Context, s *domain.SliderItem) error
	DeleteSliderItem(ctx context.Context, itemName string) (int64, error)
}

// PaymentRepository is the append-only purchase ledger plus its sums.
type PaymentRepository interface {
	Insert(ctx context.Context, p *domain.Payment) error
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]domain.Payment, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Payment, error)
	UpdateStatus(ctx context.Context, transactionID string, status domain.PaymentStatus) error
	SummarizeSeller(ctx context.Context, sellerEmail string) (*domain.SalesSummary, error)
	SummarizeAll(ctx context.Context) (*domain.SalesSummary, error)
}
