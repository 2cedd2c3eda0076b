package core

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Defaults applied when a newly replenished item has no matching entry in the
// source center's catalog snapshot.
const defaultCategory = "Unknown"

var defaultPrice = decimal.RequireFromString("1.00")

// StockReconciler merges fulfillment results into warehouse inventory with
// create-or-increment semantics. The read-then-write sequence for each
// (brand, name) pair runs under a pair-scoped lock so concurrent
// replenishments of the same item never lose an increment or create
// duplicate records.
type StockReconciler struct {
	store ItemStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStockReconciler(store ItemStore) *StockReconciler {
	return &StockReconciler{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// Reconcile records a transfer of quantity units of (brand, name) into the
// warehouse. An existing record is incremented and its updated-timestamp
// refreshed; an unseen pair becomes a new record, with category/price/year
// copied from the matching entry in source's item list when one exists and
// fixed defaults otherwise. source may be nil.
func (r *StockReconciler) Reconcile(ctx context.Context, brand, name string, quantity int, source *DistributionCenter) (*WarehouseItem, error) {
	pairLock := r.lockFor(brand, name)
	pairLock.Lock()
	defer pairLock.Unlock()

	item, err := r.store.FindByBrandAndName(ctx, brand, name)
	if err != nil {
		return nil, fmt.Errorf("warehouse lookup for %s/%s: %w", brand, name, err)
	}

	now := time.Now()
	if item != nil {
		item.Quantity += quantity
		item.UpdatedAt = now
		if err := r.store.Save(ctx, item); err != nil {
			return nil, fmt.Errorf("warehouse update for %s/%s: %w", brand, name, err)
		}
		log.Printf("updated warehouse stock for %s by %s (+%d)", name, brand, quantity)
		return item, nil
	}

	fresh := &WarehouseItem{
		Name:      name,
		Brand:     brand,
		Category:  defaultCategory,
		Price:     defaultPrice,
		Year:      now.Year(),
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if source != nil {
		if ci := source.FindItem(brand, name); ci != nil {
			fresh.Category = ci.Category
			fresh.Price = ci.Price
			fresh.Year = ci.Year
		}
	}
	if err := r.store.Save(ctx, fresh); err != nil {
		return nil, fmt.Errorf("warehouse insert for %s/%s: %w", brand, name, err)
	}
	log.Printf("added new item to warehouse: %s by %s (quantity %d)", name, brand, quantity)
	return fresh, nil
}

// lockFor returns the mutex guarding one (brand, name) pair. Locks are kept
// for the process lifetime; the key space is bounded by the catalog size.
func (r *StockReconciler) lockFor(brand, name string) *sync.Mutex {
	key := brand + "\x00" + name
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}
