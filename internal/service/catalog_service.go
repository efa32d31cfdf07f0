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
	"golang.org/x/sync/singleflight"
)

// CatalogService manages listings. A medicine name is created exactly
// once; everything downstream (cart lines, advertisements, slider
// entries) references listings by that name.
type CatalogService struct {
	medicines repository.MedicineRepository
	cache     cache.MarketCache
	log       *logger.Logger
	sfg       singleflight.Group
}

func NewCatalogService(medicines repository.MedicineRepository, c cache.MarketCache, log *logger.Logger) *CatalogService {
	return &CatalogService{
		medicines: medicines,
		cache:     c,
		log:       log,
	}
}

func (s *CatalogService) Create(ctx context.Context, med *domain.Medicine) error {
	if err := s.medicines.Create(ctx, med); err != nil {
		if errors.Is(err, repository.ErrDuplicateMedicine) {
			return fmt.Errorf("%w: medicine %s already exists", ErrConflict, med.Name)
		}
		return err
	}

	s.invalidateCatalog()
	return nil
}

func (s *CatalogService) Get(ctx context.Context, name string) (*domain.Medicine, error) {
	med, err := s.medicines.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, fmt.Errorf("%w: medicine %s", ErrNotFound, name)
		}
		return nil, err
	}
	return med, nil
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Medicine, error) {
	v, err, _ := s.sfg.Do(catalogFlightKey, func() (interface{}, error) {
		meds, err := s.cache.GetCatalog(ctx)
		if err == nil {
			return meds, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn("catalog cache get failed", "error", err)
		}

		meds, err = s.medicines.List(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := s.cache.SetCatalog(ctx, meds); err != nil {
				s.log.Warn("catalog cache set failed", "error", err)
			}
		}()

		return meds, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Medicine), nil
}

const catalogFlightKey = "catalog"

func (s *CatalogService) ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Medicine, error) {
	return s.medicines.ListBySeller(ctx, sellerEmail)
}

func (s *CatalogService) Update(ctx context.Context, name, sellerEmail string, upd domain.MedicineUpdate) error {
	if err := s.medicines.Update(ctx, name, sellerEmail, upd); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return fmt.Errorf("%w: medicine %s", ErrNotFound, name)
		}
		return err
	}

	s.invalidateCatalog()
	return nil
}

func (s *CatalogService) Delete(ctx context.Context, name, sellerEmail string) error {
	if err := s.medicines.Delete(ctx, name, sellerEmail); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return fmt.Errorf("%w: medicine %s", ErrNotFound, name)
		}
		return err
	}

	s.invalidateCatalog()
	return nil
}

func (s *CatalogService) invalidateCatalog() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.DeleteCatalog(ctx); err != nil {
		s.log.Warn("catalog cache invalidate failed", "error", err)
	}
}
