package store_test

import (
	"context"
	"testing"
	"time"

	"warehouse-server/internal/core"
	"warehouse-server/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedItem(t *testing.T, s *store.MemoryStore, brand, name string, quantity int, price string) *core.WarehouseItem {
	t.Helper()
	now := time.Now()
	item := &core.WarehouseItem{
		Name: name, Brand: brand, Category: "Shoes",
		Price: decimal.RequireFromString(price), Year: 2022, Quantity: quantity,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, s.Save(context.Background(), item))
	require.NotZero(t, item.ID, "Save should assign an ID")
	return item
}

func TestMemoryStore_SaveAssignsIDsAndFindsByPair(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	first := seedItem(t, s, "Nike", "Air Max", 2, "129.99")
	second := seedItem(t, s, "Adidas", "Gazelle", 1, "99.50")
	require.NotEqual(t, first.ID, second.ID)

	found, err := s.FindByBrandAndName(ctx, "Nike", "Air Max")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, first.ID, found.ID)
	assert.Equal(t, 2, found.Quantity)

	missing, err := s.FindByBrandAndName(ctx, "Nike", "Gazelle")
	require.NoError(t, err)
	assert.Nil(t, missing, "pair matching must use brand and name together")
}

func TestMemoryStore_UpdateInPlace(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	item := seedItem(t, s, "Nike", "Air Max", 2, "129.99")
	item.Quantity = 7
	require.NoError(t, s.Save(ctx, item))

	got, err := s.GetByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 7, got.Quantity)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "update must not create a second record")
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	item := seedItem(t, s, "Nike", "Air Max", 2, "129.99")
	found, err := s.FindByBrandAndName(ctx, "Nike", "Air Max")
	require.NoError(t, err)

	found.Quantity = 999
	again, err := s.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Quantity, "mutating a returned item must not affect the store")
}

func TestMemoryStore_DeleteIsIdempotent(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	item := seedItem(t, s, "Nike", "Air Max", 2, "129.99")
	require.NoError(t, s.Delete(ctx, item.ID))
	require.NoError(t, s.Delete(ctx, item.ID))

	got, err := s.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_ListPage(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	seedItem(t, s, "Nike", "Air Max", 5, "129.99")
	seedItem(t, s, "Adidas", "Gazelle", 1, "99.50")
	seedItem(t, s, "Puma", "Suede", 3, "79.00")

	page, total, err := s.ListPage(ctx, 0, 2, core.SortByBrand)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "Adidas", page[0].Brand)
	assert.Equal(t, "Nike", page[1].Brand)

	page, total, err = s.ListPage(ctx, 2, 2, core.SortByBrand)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "Puma", page[0].Brand)

	page, total, err = s.ListPage(ctx, 0, 0, core.SortByQuantity)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 3)
	assert.Equal(t, 1, page[0].Quantity)
	assert.Equal(t, 5, page[2].Quantity)

	page, total, err = s.ListPage(ctx, 10, 2, core.SortByName)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, page)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	s := store.NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	err = s.Save(ctx, &core.WarehouseItem{Name: "x", Brand: "y"})
	assert.ErrorIs(t, err, context.Canceled)
}
