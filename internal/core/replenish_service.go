package core

import (
	"context"
	"errors"
	"log"
	"strings"
)

// FailureReason classifies why a replenishment attempt failed.
type FailureReason string

const (
	// ReasonInvalidInput: blank brand or name; rejected before any network call.
	ReasonInvalidInput FailureReason = "invalid_input"
	// ReasonNotAvailable: no distribution center stocks the item.
	ReasonNotAvailable FailureReason = "not_available"
	// ReasonServiceUnavailable: the closest-center search could not be completed.
	ReasonServiceUnavailable FailureReason = "service_unavailable"
	// ReasonRequestFailed: the selected center rejected the fulfillment request
	// or became unreachable; no stock was transferred.
	ReasonRequestFailed FailureReason = "request_failed"
	// ReasonInconsistent: the center confirmed the transfer but the local
	// warehouse update failed. External stock was decremented without a
	// matching local increment; an operator must reconcile manually.
	ReasonInconsistent FailureReason = "inconsistent"
)

// ReplenishmentResult is the single outcome of one replenishment attempt.
type ReplenishmentResult struct {
	Succeeded  bool          `json:"succeeded"`
	CenterID   int64         `json:"center_id,omitempty"`
	CenterName string        `json:"center_name,omitempty"`
	Quantity   int           `json:"quantity,omitempty"`
	Reason     FailureReason `json:"reason,omitempty"`
	Message    string        `json:"message,omitempty"`
}

// ReplenishmentService is the top-level replenishment use case: find the
// closest stocking center, request fulfillment from it, and merge the result
// into warehouse stock. Single-shot: the external closest-center search is
// trusted to have filtered to centers with sufficient stock, so a rejected
// request is not retried against another center.
type ReplenishmentService struct {
	gateway    DistributionGateway
	reconciler *StockReconciler
}

func NewReplenishmentService(gateway DistributionGateway, reconciler *StockReconciler) *ReplenishmentService {
	return &ReplenishmentService{gateway: gateway, reconciler: reconciler}
}

// Replenish acquires quantity units of (brand, name) from the closest
// stocking distribution center. A quantity of zero or less defaults to one
// unit. The returned result always carries either a success with the resolved
// center identity or a classified failure; errors never escape.
func (s *ReplenishmentService) Replenish(ctx context.Context, brand, name string, quantity int) ReplenishmentResult {
	brand = strings.TrimSpace(brand)
	name = strings.TrimSpace(name)
	if brand == "" || name == "" {
		return failure(ReasonInvalidInput, "brand and name are required")
	}
	if quantity <= 0 {
		quantity = 1
	}

	center, err := s.gateway.FindClosestStocking(ctx, brand, name)
	switch {
	case errors.Is(err, ErrCenterNotFound):
		return failure(ReasonNotAvailable, "item not available at any distribution center")
	case err != nil:
		return failure(ReasonServiceUnavailable, "distribution center service unreachable")
	}
	log.Printf("found %s by %s at center %q (id %d)", name, brand, center.Name, center.ID)

	if err := s.gateway.RequestFulfillment(ctx, center.ID, brand, name, quantity); err != nil {
		log.Printf("fulfillment request to center %d failed: %v", center.ID, err)
		return failure(ReasonRequestFailed, "fulfillment rejected or center unreachable")
	}

	if _, err := s.reconciler.Reconcile(ctx, brand, name, quantity, center); err != nil {
		// The center has already shipped: external stock is down, local stock
		// is not up. Surface loudly and distinctly; never fold into an
		// ordinary failure.
		log.Printf("CRITICAL: center %d (%s) fulfilled %d x %s/%s but the warehouse update failed: %v",
			center.ID, center.Name, quantity, brand, name, err)
		return ReplenishmentResult{
			CenterID:   center.ID,
			CenterName: center.Name,
			Reason:     ReasonInconsistent,
			Message:    "stock transferred from center but warehouse update failed; manual reconciliation required",
		}
	}

	return ReplenishmentResult{
		Succeeded:  true,
		CenterID:   center.ID,
		CenterName: center.Name,
		Quantity:   quantity,
	}
}

func failure(reason FailureReason, message string) ReplenishmentResult {
	return ReplenishmentResult{Reason: reason, Message: message}
}
