package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coordinate is a geographic position in floating-point degrees (WGS 84).
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CenterItem is one catalog entry inside a distribution center's response.
// Items are matched across systems by the (brand, name) pair; the numeric ID
// is only meaningful for mutation calls back to the owning center.
type CenterItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Year     int             `json:"year"`
	Quantity int             `json:"quantity"`
}

// DistributionCenter is a request-scoped snapshot of an external center.
// It is rebuilt from the API response on every call and never cached or
// persisted locally; center stock changes out from under us between calls.
type DistributionCenter struct {
	ID                      int64        `json:"id"`
	Name                    string       `json:"name"`
	Location                Coordinate   `json:"location"`
	DistanceFromWarehouseKm float64      `json:"distance_from_warehouse_km"`
	ItemCount               int          `json:"item_count"`
	Items                   []CenterItem `json:"items,omitempty"`
}

// FindItem returns the first item matching (brand, name) exactly, or nil.
func (c *DistributionCenter) FindItem(brand, name string) *CenterItem {
	for i := range c.Items {
		if c.Items[i].Brand == brand && c.Items[i].Name == name {
			return &c.Items[i]
		}
	}
	return nil
}

// WarehouseItem is the local inventory record. At most one record per
// (brand, name) pair is canonical; the reconciler enforces this by always
// looking up the pair before deciding create-vs-increment.
type WarehouseItem struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Year      int             `json:"year"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
