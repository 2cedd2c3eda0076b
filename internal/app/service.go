package app

import "context"

// ApplicationService is the single interface the presentation layer calls.
// It decouples the (out-of-scope) CRUD/admin UI from the replenishment core.
// Implementations contain no display logic of any kind.
type ApplicationService interface {
	// Replenish acquires stock for one (brand, name) from the closest
	// stocking distribution center and merges it into the warehouse. The
	// result classifies success or failure; it never carries a raw transport
	// error.
	Replenish(ctx context.Context, req ReplenishRequest) (*ReplenishResult, error)

	// AvailableByBrand returns the cross-center availability view: sorted
	// brands plus brand -> item -> total quantity, excluding zero-quantity
	// items. When the upstream service is unavailable the error wraps
	// core.ErrServiceUnavailable and the caller decides how to render it.
	AvailableByBrand(ctx context.Context) (*CatalogResult, error)

	// ListCenters returns every distribution center in summary form with the
	// display distance from the warehouse.
	ListCenters(ctx context.Context) (*CenterListResult, error)

	// GetCenter returns one center with its full item list, or
	// core.ErrCenterNotFound.
	GetCenter(ctx context.Context, id int64) (*CenterResult, error)

	// AddCenterItem creates a catalog entry at a center. Blank brand or name
	// is rejected before any network call.
	AddCenterItem(ctx context.Context, req AddCenterItemRequest) error

	// DeleteCenterItem removes a catalog entry from a center.
	DeleteCenterItem(ctx context.Context, centerID, itemID int64) error
}
