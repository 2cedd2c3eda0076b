package store

import (
	"context"
	"errors"
	"fmt"

	"warehouse-server/internal/core"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists warehouse items in the warehouse_items table
// (migrations/001_init.sql). The UNIQUE (brand, name) constraint backs the
// one-canonical-record invariant: Save inserts with ON CONFLICT so a racing
// create from another process can never produce a duplicate row.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const itemColumns = "id, name, brand, category, price, year, quantity, created_at, updated_at"

func (s *PostgresStore) FindByBrandAndName(ctx context.Context, brand, name string) (*core.WarehouseItem, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM warehouse_items
		WHERE brand = $1 AND name = $2
	`, brand, name)
	return scanItem(row)
}

func (s *PostgresStore) GetByID(ctx context.Context, id int64) (*core.WarehouseItem, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM warehouse_items
		WHERE id = $1
	`, id)
	return scanItem(row)
}

func (s *PostgresStore) Save(ctx context.Context, item *core.WarehouseItem) error {
	if item.ID == 0 {
		err := s.pool.QueryRow(ctx, `
			INSERT INTO warehouse_items (name, brand, category, price, year, quantity, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (brand, name) DO UPDATE
			SET quantity   = warehouse_items.quantity + EXCLUDED.quantity,
			    updated_at = EXCLUDED.updated_at
			RETURNING id
		`, item.Name, item.Brand, item.Category, item.Price, item.Year,
			item.Quantity, item.CreatedAt, item.UpdatedAt).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert warehouse item: %w", err)
		}
		return nil
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE warehouse_items
		SET name = $2, brand = $3, category = $4, price = $5, year = $6,
		    quantity = $7, updated_at = $8
		WHERE id = $1
	`, item.ID, item.Name, item.Brand, item.Category, item.Price, item.Year,
		item.Quantity, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update warehouse item %d: %w", item.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update warehouse item %d: no such row", item.ID)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM warehouse_items WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete warehouse item %d: %w", id, err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]core.WarehouseItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM warehouse_items
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list warehouse items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (s *PostgresStore) ListPage(ctx context.Context, offset, limit int, sortBy string) ([]core.WarehouseItem, int, error) {
	var total int
	if err := s.pool.QueryRow(ctx, "SELECT count(*) FROM warehouse_items").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count warehouse items: %w", err)
	}

	// sortBy is matched against a fixed column list, never interpolated raw.
	orderBy := "id"
	switch sortBy {
	case core.SortByName, core.SortByBrand, core.SortByPrice, core.SortByYear, core.SortByQuantity:
		orderBy = sortBy
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = total
	}

	rows, err := s.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM warehouse_items
		ORDER BY `+orderBy+`, id
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("page warehouse items: %w", err)
	}
	defer rows.Close()

	items, err := collectItems(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*core.WarehouseItem, error) {
	var item core.WarehouseItem
	err := row.Scan(&item.ID, &item.Name, &item.Brand, &item.Category,
		&item.Price, &item.Year, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan warehouse item: %w", err)
	}
	return &item, nil
}

func collectItems(rows pgx.Rows) ([]core.WarehouseItem, error) {
	var items []core.WarehouseItem
	for rows.Next() {
		var item core.WarehouseItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Brand, &item.Category,
			&item.Price, &item.Year, &item.Quantity, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
