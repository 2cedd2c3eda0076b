package app_test

import (
	"context"
	"errors"
	"testing"

	"warehouse-server/internal/app"
	"warehouse-server/internal/core"
	"warehouse-server/internal/store"

	"github.com/shopspring/decimal"
)

// recordingGateway counts mutation calls so tests can assert that invalid
// input never reaches the network.
type recordingGateway struct {
	addCalls    int
	deleteCalls int
	addErr      error
}

func (g *recordingGateway) ListCenters(ctx context.Context) ([]core.DistributionCenter, error) {
	return nil, nil
}

func (g *recordingGateway) GetCenter(ctx context.Context, id int64) (*core.DistributionCenter, error) {
	return nil, core.ErrCenterNotFound
}

func (g *recordingGateway) FindClosestStocking(ctx context.Context, brand, name string) (*core.DistributionCenter, error) {
	return nil, core.ErrCenterNotFound
}

func (g *recordingGateway) RequestFulfillment(ctx context.Context, centerID int64, brand, name string, quantity int) error {
	return nil
}

func (g *recordingGateway) AddItem(ctx context.Context, centerID int64, item core.CenterItem) error {
	g.addCalls++
	return g.addErr
}

func (g *recordingGateway) DeleteItem(ctx context.Context, centerID, itemID int64) error {
	g.deleteCalls++
	return nil
}

func newService(gw *recordingGateway) app.ApplicationService {
	reconciler := core.NewStockReconciler(store.NewMemoryStore())
	return app.NewAppService(gw, core.NewReplenishmentService(gw, reconciler), core.NewCatalogService(gw))
}

func TestAddCenterItem_BlankInputRejectedBeforeNetwork(t *testing.T) {
	gw := &recordingGateway{}
	svc := newService(gw)

	cases := []app.AddCenterItemRequest{
		{CenterID: 1, Name: "", Brand: "Nike"},
		{CenterID: 1, Name: "Air Max", Brand: "   "},
		{CenterID: 1, Name: "Air Max", Brand: "Nike", Quantity: -1},
		{CenterID: 1, Name: "Air Max", Brand: "Nike", Price: decimal.RequireFromString("-5")},
	}
	for _, req := range cases {
		err := svc.AddCenterItem(context.Background(), req)
		if !errors.Is(err, app.ErrInvalidInput) {
			t.Errorf("%+v: expected ErrInvalidInput, got %v", req, err)
		}
	}
	if gw.addCalls != 0 {
		t.Errorf("expected no gateway calls for invalid input, got %d", gw.addCalls)
	}
}

func TestAddCenterItem_PassesThrough(t *testing.T) {
	gw := &recordingGateway{}
	svc := newService(gw)

	err := svc.AddCenterItem(context.Background(), app.AddCenterItemRequest{
		CenterID: 1, Name: "Air Max", Brand: "Nike", Category: "Shoes",
		Price: decimal.RequireFromString("129.99"), Year: 2022, Quantity: 5,
	})
	if err != nil {
		t.Fatalf("AddCenterItem failed: %v", err)
	}
	if gw.addCalls != 1 {
		t.Errorf("expected one gateway call, got %d", gw.addCalls)
	}
}

func TestReplenish_SurfacesResultNotError(t *testing.T) {
	gw := &recordingGateway{}
	svc := newService(gw)

	result, err := svc.Replenish(context.Background(), app.ReplenishRequest{Brand: "Nike", Name: "Air Max"})
	if err != nil {
		t.Fatalf("Replenish returned transport error: %v", err)
	}
	if result.Succeeded || result.Reason != core.ReasonNotAvailable {
		t.Errorf("expected not-available result, got %+v", result)
	}
}
