package repository

import (
	"context"
	"testing"

	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromotionRepository_AdvertisementUniquePerItem(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPromotionRepository(db)
	ctx := context.Background()

	ad := &domain.Advertisement{ItemName: "Napa", SellerEmail: "seller@pharma.com"}
	require.NoError(t, repo.CreateAdvertisement(ctx, ad))
	assert.Equal(t, domain.NotAdvertised, ad.Flag)

	err := repo.CreateAdvertisement(ctx, &domain.Advertisement{ItemName: "Napa"})
	assert.ErrorIs(t, err, ErrDuplicateAd)
}

func TestPromotionRepository_SetAdvertisementFlag(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPromotionRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateAdvertisement(ctx, &domain.Advertisement{
		ItemName:    "Napa",
		SellerEmail: "seller@pharma.com",
	}))

	require.NoError(t, repo.SetAdvertisementFlag(ctx, "Napa", domain.Advertised))

	ads, err := repo.ListAdvertisements(ctx)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, domain.Advertised, ads[0].Flag)

	err = repo.SetAdvertisementFlag(ctx, "ghost", domain.Advertised)
	assert.ErrorIs(t, err, ErrAdvertisementNotFound)
}

func TestPromotionRepository_SliderLifecycle(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPromotionRepository(db)
	ctx := context.Background()

	_, err := repo.GetSliderItem(ctx, "Napa")
	assert.ErrorIs(t, err, ErrSliderItemNotFound)

	require.NoError(t, repo.InsertSliderItem(ctx, &domain.SliderItem{
		ItemName: "Napa",
		Image:    "napa.png",
	}))

	got, err := repo.GetSliderItem(ctx, "Napa")
	require.NoError(t, err)
	assert.Equal(t, "napa.png", got.Image)

	// A second insert for the same item hits the unique index.
	err = repo.InsertSliderItem(ctx, &domain.SliderItem{ItemName: "Napa"})
	assert.Error(t, err)

	deleted, err := repo.DeleteSliderItem(ctx, "Napa")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Deleting a missing entry reports zero, not an error.
	deleted, err = repo.DeleteSliderItem(ctx, "Napa")
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
