package core

import "context"

// Sort fields accepted by ItemStore.ListPage.
const (
	SortByName     = "name"
	SortByBrand    = "brand"
	SortByPrice    = "price"
	SortByYear     = "year"
	SortByQuantity = "quantity"
)

// ItemStore is the warehouse persistence contract. The store itself does not
// enforce one-record-per-(brand,name); the reconciler serializes its
// read-then-write sequence so duplicates cannot be created through this core.
type ItemStore interface {
	// FindByBrandAndName returns the canonical record for the pair, or nil
	// when the pair has never been stocked.
	FindByBrandAndName(ctx context.Context, brand, name string) (*WarehouseItem, error)

	// GetByID returns the record with the given ID, or nil if absent.
	GetByID(ctx context.Context, id int64) (*WarehouseItem, error)

	// Save inserts item when its ID is zero (assigning a new ID in place) and
	// updates the existing row otherwise.
	Save(ctx context.Context, item *WarehouseItem) error

	// Delete removes the record with the given ID. Deleting an absent ID is
	// not an error.
	Delete(ctx context.Context, id int64) error

	// List returns all records ordered by ID.
	List(ctx context.Context) ([]WarehouseItem, error)

	// ListPage returns a page of records sorted ascending by one of the
	// SortBy* fields (ID order for anything else), plus the total record
	// count.
	ListPage(ctx context.Context, offset, limit int, sortBy string) ([]WarehouseItem, int, error)
}
