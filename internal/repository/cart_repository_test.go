package repository

import (
	"context"
	"testing"

	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_AddAndAdjust(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(db)
	ctx := context.Background()

	item := &domain.CartItem{
		ItemName:   "Paracetamol",
		BuyerEmail: "buyer@mail.com",
		Quantity:   1,
		Price:      5,
	}
	require.NoError(t, repo.AddItem(ctx, item))

	// Same (item, buyer) pair is rejected by the unique index.
	err := repo.AddItem(ctx, &domain.CartItem{
		ItemName:   "Paracetamol",
		BuyerEmail: "buyer@mail.com",
		Quantity:   1,
		Price:      5,
	})
	assert.ErrorIs(t, err, ErrDuplicateCartItem)

	// Same item for a different buyer is a separate line.
	require.NoError(t, repo.AddItem(ctx, &domain.CartItem{
		ItemName:   "Paracetamol",
		BuyerEmail: "other@mail.com",
		Quantity:   1,
		Price:      5,
	}))

	// $inc both fields up, then back down.
	require.NoError(t, repo.AdjustItem(ctx, "Paracetamol", "buyer@mail.com", 1, 5))
	got, err := repo.GetItem(ctx, "Paracetamol", "buyer@mail.com")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, float64(10), got.Price)

	require.NoError(t, repo.AdjustItem(ctx, "Paracetamol", "buyer@mail.com", -1, -5))
	got, err = repo.GetItem(ctx, "Paracetamol", "buyer@mail.com")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity)
	assert.Equal(t, float64(5), got.Price)
}

func TestCartRepository_AdjustMissing_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(db)
	err := repo.AdjustItem(context.Background(), "ghost", "buyer@mail.com", 1, 5)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartRepository_ClearForBuyer(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Napa", "Seclo", "Monas"} {
		require.NoError(t, repo.AddItem(ctx, &domain.CartItem{
			ItemName:   name,
			BuyerEmail: "buyer@mail.com",
			Quantity:   1,
			Price:      3,
		}))
	}
	require.NoError(t, repo.AddItem(ctx, &domain.CartItem{
		ItemName:   "Napa",
		BuyerEmail: "other@mail.com",
		Quantity:   1,
		Price:      3,
	}))

	deleted, err := repo.ClearForBuyer(ctx, "buyer@mail.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	// Idempotent on an already empty cart.
	deleted, err = repo.ClearForBuyer(ctx, "buyer@mail.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	// Other buyers' lines are untouched.
	items, err := repo.ListByBuyer(ctx, "other@mail.com")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartRepository_RemoveItem(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(db)
	ctx := context.Background()

	item := &domain.CartItem{
		ItemName:   "Napa",
		BuyerEmail: "buyer@mail.com",
		Quantity:   1,
		Price:      3,
	}
	require.NoError(t, repo.AddItem(ctx, item))

	items, err := repo.ListByBuyer(ctx, "buyer@mail.com")
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, repo.RemoveItem(ctx, items[0].ID))
	assert.ErrorIs(t, repo.RemoveItem(ctx, items[0].ID), ErrCartItemNotFound)
}
