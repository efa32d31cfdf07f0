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
)

// ToggleResult reports which direction a toggle took and what the final
// slider mutation did. Callers only ever see this last step; flag updates
// that happened before a mid-sequence failure are not reported back.
type ToggleResult struct {
	Promoted     bool  `json:"promoted"`
	DeletedCount int64 `json:"deleted_count,omitempty"`
}

// PromotionService keeps the medicine flag, the advertisement flag and
// the slider set in step. The three collections are mutated in order with
// no transaction and no rollback: a failure partway leaves them
// disagreeing until the next successful toggle. That is the accepted
// consistency mode, not an oversight.
type PromotionService struct {
	medicines repository.MedicineRepository
	promos    repository.PromotionRepository
	cache     cache.MarketCache
	log       *logger.Logger
}

func NewPromotionService(medicines repository.MedicineRepository, promos repository.PromotionRepository, c cache.MarketCache, log *logger.Logger) *PromotionService {
	return &PromotionService{
		medicines: medicines,
		promos:    promos,
		cache:     c,
		log:       log,
	}
}

// RequestAdvertisement files a seller's promotion request. One request
// per item name; a second request is a conflict.
func (s *PromotionService) RequestAdvertisement(ctx context.Context, ad *domain.Advertisement) error {
	if err := s.promos.CreateAdvertisement(ctx, ad); err != nil {
		if errors.Is(err, repository.ErrDuplicateAd) {
			return fmt.Errorf("%w: advertisement for %s already exists", ErrConflict, ad.ItemName)
		}
		return err
	}
	return nil
}

func (s *PromotionService) ListAdvertisements(ctx context.Context) ([]domain.Advertisement, error) {
	return s.promos.ListAdvertisements(ctx)
}

func (s *PromotionService) ListAdvertisementsBySeller(ctx context.Context, sellerEmail string) ([]domain.Advertisement, error) {
	return s.promos.ListAdvertisementsBySeller(ctx, sellerEmail)
}

// Toggle flips an item's promotion. Slider presence decides the
// direction: an existing entry means this call demotes, otherwise it
// promotes. Flags on the medicine and the advertisement are written
// before the slider set is touched.
func (s *PromotionService) Toggle(ctx context.Context, itemName string, payload domain.SliderItem) (*ToggleResult, error) {
	_, err := s.promos.GetSliderItem(ctx, itemName)
	switch {
	case err == nil:
		return s.demote(ctx, itemName)
	case errors.Is(err, repository.ErrSliderItemNotFound):
		return s.promote(ctx, itemName, payload)
	default:
		return nil, err
	}
}

func (s *PromotionService) promote(ctx context.Context, itemName string, payload domain.SliderItem) (*ToggleResult, error) {
	if err := s.setFlags(ctx, itemName, domain.Advertised); err != nil {
		return nil, err
	}

	payload.ItemName = itemName
	if err := s.promos.InsertSliderItem(ctx, &payload); err != nil {
		if errors.Is(err, repository.ErrDuplicateAd) {
			return nil, fmt.Errorf("%w: %s is already on the slider", ErrConflict, itemName)
		}
		return nil, err
	}

	s.invalidate()
	return &ToggleResult{Promoted: true}, nil
}

func (s *PromotionService) demote(ctx context.Context, itemName string) (*ToggleResult, error) {
	if err := s.setFlags(ctx, itemName, domain.NotAdvertised); err != nil {
		return nil, err
	}

	deleted, err := s.promos.DeleteSliderItem(ctx, itemName)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return &ToggleResult{Promoted: false, DeletedCount: deleted}, nil
}

func (s *PromotionService) setFlags(ctx context.Context, itemName string, flag domain.PromotionFlag) error {
	if err := s.medicines.SetPromotionFlag(ctx, itemName, flag); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return fmt.Errorf("%w: medicine %s", ErrNotFound, itemName)
		}
		return err
	}

	// The advertisement mirror is best-effort: a missing request is fine,
	// the slider mutation still proceeds.
	if err := s.promos.SetAdvertisementFlag(ctx, itemName, flag); err != nil && !errors.Is(err, repository.ErrAdvertisementNotFound) {
		return err
	}
	return nil
}

func (s *PromotionService) ListSlider(ctx context.Context) ([]domain.SliderItem, error) {
	items, err := s.cache.GetSlider(ctx)
	if err == nil {
		return items, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.Warn("slider cache get failed", "error", err)
	}

	items, err = s.promos.ListSlider(ctx)
	if err != nil {
		return nil, err
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := s.cache.SetSlider(ctx, items); err != nil {
			s.log.Warn("slider cache set failed", "error", err)
		}
	}()

	return items, nil
}

func (s *PromotionService) invalidate() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.DeleteSlider(ctx); err != nil {
		s.log.Warn("slider cache invalidate failed", "error", err)
	}
	if err := s.cache.DeleteCatalog(ctx); err != nil {
		s.log.Warn("catalog cache invalidate failed", "error", err)
	}
}
