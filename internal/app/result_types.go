package app

import "warehouse-server/internal/core"

// ReplenishResult is returned by Replenish.
type ReplenishResult struct {
	core.ReplenishmentResult
}

// CenterListResult is returned by ListCenters.
type CenterListResult struct {
	Centers []core.DistributionCenter `json:"centers"`
}

// CenterResult is returned by GetCenter.
type CenterResult struct {
	Center *core.DistributionCenter `json:"center"`
}

// CatalogResult is returned by AvailableByBrand.
type CatalogResult struct {
	Brands       []string                  `json:"brands"`
	ItemsByBrand map[string]map[string]int `json:"items_by_brand"`
}
