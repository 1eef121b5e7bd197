package sentinel

import "errors"

// Sentinel errors for store facts. Stores return these (optionally wrapped) so
// services can translate them into coded domain errors.
//
//   - ErrNotFound: no entity with that id in the target collection
//   - ErrConflict: an id or unique code is already taken
//   - ErrInvalidState: entity belongs to a different collection than the one addressed
//
// For validation errors (missing fields, bad input) use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)
