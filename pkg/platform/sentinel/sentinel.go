package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and platform adapters
// return these (optionally wrapped) so callers can translate them into
// pipeline decisions without string matching.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in store
// - ErrUnavailable: service or capability temporarily unavailable
// - ErrTimeout: bounded operation exceeded its deadline
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrTimeout     = errors.New("timeout")
)
