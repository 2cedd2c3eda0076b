package app

import (
	"context"
	"fmt"
	"strings"

	"warehouse-server/internal/core"
)

type appService struct {
	gateway     core.DistributionGateway
	replenisher *core.ReplenishmentService
	catalog     *core.CatalogService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	gateway core.DistributionGateway,
	replenisher *core.ReplenishmentService,
	catalog *core.CatalogService,
) ApplicationService {
	return &appService{
		gateway:     gateway,
		replenisher: replenisher,
		catalog:     catalog,
	}
}

func (s *appService) Replenish(ctx context.Context, req ReplenishRequest) (*ReplenishResult, error) {
	result := s.replenisher.Replenish(ctx, req.Brand, req.Name, req.Quantity)
	return &ReplenishResult{ReplenishmentResult: result}, nil
}

func (s *appService) AvailableByBrand(ctx context.Context) (*CatalogResult, error) {
	catalog, err := s.catalog.AvailableByBrand(ctx)
	if err != nil {
		return nil, err
	}
	return &CatalogResult{Brands: catalog.Brands, ItemsByBrand: catalog.ItemsByBrand}, nil
}

func (s *appService) ListCenters(ctx context.Context) (*CenterListResult, error) {
	centers, err := s.gateway.ListCenters(ctx)
	if err != nil {
		return nil, err
	}
	return &CenterListResult{Centers: centers}, nil
}

func (s *appService) GetCenter(ctx context.Context, id int64) (*CenterResult, error) {
	center, err := s.gateway.GetCenter(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CenterResult{Center: center}, nil
}

func (s *appService) AddCenterItem(ctx context.Context, req AddCenterItemRequest) error {
	if strings.TrimSpace(req.Brand) == "" || strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: brand and name are required", ErrInvalidInput)
	}
	if req.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	if req.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	item := core.CenterItem{
		Name:     req.Name,
		Brand:    req.Brand,
		Category: req.Category,
		Price:    req.Price,
		Year:     req.Year,
		Quantity: req.Quantity,
	}
	return s.gateway.AddItem(ctx, req.CenterID, item)
}

func (s *appService) DeleteCenterItem(ctx context.Context, centerID, itemID int64) error {
	return s.gateway.DeleteItem(ctx, centerID, itemID)
}
