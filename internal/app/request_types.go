package app

import "github.com/shopspring/decimal"

// ReplenishRequest is the input for Replenish. Quantity zero or less means
// one unit.
type ReplenishRequest struct {
	Brand    string `json:"brand"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// AddCenterItemRequest is the input for AddCenterItem.
type AddCenterItemRequest struct {
	CenterID int64           `json:"center_id"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Year     int             `json:"year"`
	Quantity int             `json:"quantity"`
}
