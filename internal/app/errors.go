package app

import "errors"

// ErrInvalidInput marks caller mistakes that are rejected before any network
// call is made.
var ErrInvalidInput = errors.New("invalid input")
