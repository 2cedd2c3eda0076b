package core

import (
	"context"
	"fmt"
	"sort"
)

// BrandCatalog is the cross-center availability view: for each brand, the
// total quantity of each item summed over every distribution center.
// Items with zero available quantity are excluded entirely.
type BrandCatalog struct {
	Brands       []string                  `json:"brands"`
	ItemsByBrand map[string]map[string]int `json:"items_by_brand"`
}

// CatalogService aggregates distribution-center stock into a read-only
// brand-keyed view. It holds no state and reads fresh from the gateway on
// every call.
type CatalogService struct {
	gateway DistributionGateway
}

func NewCatalogService(gateway DistributionGateway) *CatalogService {
	return &CatalogService{gateway: gateway}
}

// AvailableByBrand fetches every center and flattens their item lists into
// brand -> item name -> total quantity, keeping only strictly positive
// quantities. Brands are sorted lexicographically. An upstream failure is
// returned as an error wrapping ErrServiceUnavailable; whether to render that
// as an empty catalog is the caller's decision.
func (s *CatalogService) AvailableByBrand(ctx context.Context) (*BrandCatalog, error) {
	centers, err := s.gateway.ListCenters(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog aggregation: %w", err)
	}

	itemsByBrand := make(map[string]map[string]int)
	for _, center := range centers {
		for _, item := range center.Items {
			if item.Quantity <= 0 {
				continue
			}
			byName, ok := itemsByBrand[item.Brand]
			if !ok {
				byName = make(map[string]int)
				itemsByBrand[item.Brand] = byName
			}
			byName[item.Name] += item.Quantity
		}
	}

	brands := make([]string, 0, len(itemsByBrand))
	for brand := range itemsByBrand {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	return &BrandCatalog{Brands: brands, ItemsByBrand: itemsByBrand}, nil
}
