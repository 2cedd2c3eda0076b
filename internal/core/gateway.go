package core

import "context"

// DistributionGateway is the network boundary to the external
// distribution-center API. Implementations convert every transport problem
// (unreachable host, timeout, non-2xx status, malformed body) into
// ErrServiceUnavailable at the operation boundary; raw HTTP errors never
// reach the callers.
type DistributionGateway interface {
	// ListCenters returns every known center in summary form: identity,
	// location, distance from the warehouse, and item count. Item details are
	// included when the upstream response carries them.
	ListCenters(ctx context.Context) ([]DistributionCenter, error)

	// GetCenter returns one center with its full item list.
	// Returns ErrCenterNotFound if the ID is unknown upstream.
	GetCenter(ctx context.Context, id int64) (*DistributionCenter, error)

	// FindClosestStocking asks the external service for the center nearest the
	// warehouse that stocks the given (brand, name). Selection is delegated
	// entirely to the service; this client only supplies the warehouse
	// coordinates. Returns ErrCenterNotFound when no center stocks the item.
	FindClosestStocking(ctx context.Context, brand, name string) (*DistributionCenter, error)

	// RequestFulfillment asks one specific center to reserve and ship the
	// given quantity of an item. There is no partial success: a non-nil error
	// means nothing was transferred.
	RequestFulfillment(ctx context.Context, centerID int64, brand, name string, quantity int) error

	// AddItem creates a new catalog entry at a center. Administrative
	// pass-through; the item's ID field is assigned upstream and ignored here.
	AddItem(ctx context.Context, centerID int64, item CenterItem) error

	// DeleteItem removes a catalog entry from a center by its upstream ID.
	DeleteItem(ctx context.Context, centerID, itemID int64) error
}
