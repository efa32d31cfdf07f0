package repository

import (
	"context"
	"testing"

	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicineRepository_CreateOncePerName(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMedicineRepository(db)
	ctx := context.Background()

	med := &domain.Medicine{
		Name:        "Paracetamol",
		SellerEmail: "seller@pharma.com",
		Price:       5,
	}
	require.NoError(t, repo.Create(ctx, med))
	assert.Equal(t, domain.NotAdvertised, med.Flag)

	err := repo.Create(ctx, &domain.Medicine{
		Name:        "Paracetamol",
		SellerEmail: "other@pharma.com",
		Price:       6,
	})
	assert.ErrorIs(t, err, ErrDuplicateMedicine)

	got, err := repo.GetByName(ctx, "Paracetamol")
	require.NoError(t, err)
	assert.Equal(t, "seller@pharma.com", got.SellerEmail)
	assert.Equal(t, float64(5), got.Price)
}

func TestMedicineRepository_GetMissing_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMedicineRepository(db)
	_, err := repo.GetByName(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrMedicineNotFound)
}

func TestMedicineRepository_UpdateAndFlag(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMedicineRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Medicine{
		Name:        "Seclo",
		SellerEmail: "seller@pharma.com",
		Price:       8,
	}))

	require.NoError(t, repo.Update(ctx, "Seclo", "seller@pharma.com", domain.MedicineUpdate{
		Price:              9,
		DiscountPercentage: 10,
	}))

	// Another seller cannot edit the listing.
	err := repo.Update(ctx, "Seclo", "other@pharma.com", domain.MedicineUpdate{Price: 1})
	assert.ErrorIs(t, err, ErrMedicineNotFound)

	require.NoError(t, repo.SetPromotionFlag(ctx, "Seclo", domain.Advertised))

	got, err := repo.GetByName(ctx, "Seclo")
	require.NoError(t, err)
	assert.Equal(t, float64(9), got.Price)
	assert.Equal(t, float64(10), got.DiscountPercentage)
	assert.Equal(t, domain.Advertised, got.Flag)
}

func TestMedicineRepository_ListBySeller(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMedicineRepository(db)
	ctx := context.Background()

	for _, m := range []domain.Medicine{
		{Name: "Napa", SellerEmail: "a@pharma.com", Price: 3},
		{Name: "Seclo", SellerEmail: "a@pharma.com", Price: 8},
		{Name: "Monas", SellerEmail: "b@pharma.com", Price: 10},
	} {
		med := m
		require.NoError(t, repo.Create(ctx, &med))
	}

	meds, err := repo.ListBySeller(ctx, "a@pharma.com")
	require.NoError(t, err)
	assert.Len(t, meds, 2)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
