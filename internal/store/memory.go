// Package store provides the warehouse persistence drivers behind
// core.ItemStore: an in-memory map for tests and single-node use, and a
// PostgreSQL driver for durable deployments.
package store

import (
	"context"
	"sort"
	"sync"

	"warehouse-server/internal/core"
)

// MemoryStore keeps warehouse items in a mutex-guarded map. It is the default
// store when no DATABASE_URL is configured and the backing store for tests.
type MemoryStore struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]core.WarehouseItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[int64]core.WarehouseItem)}
}

func (s *MemoryStore) FindByBrandAndName(ctx context.Context, brand, name string) (*core.WarehouseItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.Brand == brand && item.Name == name {
			copied := item
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id int64) (*core.WarehouseItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	copied := item
	return &copied, nil
}

func (s *MemoryStore) Save(ctx context.Context, item *core.WarehouseItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == 0 {
		s.seq++
		item.ID = s.seq
	}
	s.items[item.ID] = *item
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]core.WarehouseItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.WarehouseItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) ListPage(ctx context.Context, offset, limit int, sortBy string) ([]core.WarehouseItem, int, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	sortItems(all, sortBy)

	total := len(all)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return nil, total, nil
	}
	end := total
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], total, nil
}

func sortItems(items []core.WarehouseItem, sortBy string) {
	less := func(i, j int) bool { return items[i].ID < items[j].ID }
	switch sortBy {
	case core.SortByName:
		less = func(i, j int) bool { return items[i].Name < items[j].Name }
	case core.SortByBrand:
		less = func(i, j int) bool { return items[i].Brand < items[j].Brand }
	case core.SortByPrice:
		less = func(i, j int) bool { return items[i].Price.LessThan(items[j].Price) }
	case core.SortByYear:
		less = func(i, j int) bool { return items[i].Year < items[j].Year }
	case core.SortByQuantity:
		less = func(i, j int) bool { return items[i].Quantity < items[j].Quantity }
	}
	sort.SliceStable(items, less)
}
