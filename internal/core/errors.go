package core

import "errors"

var (
	// ErrCenterNotFound signals that the external service has no matching
	// center: either the requested center ID does not exist, or no center
	// stocks the requested (brand, name). The upstream API does not
	// distinguish the two cases.
	ErrCenterNotFound = errors.New("distribution center not found")

	// ErrServiceUnavailable signals a transport-level failure talking to the
	// distribution-center API: network error, timeout, 5xx, or a malformed
	// response body.
	ErrServiceUnavailable = errors.New("distribution center service unavailable")
)
