package models

import (
	"strings"

	dErrors "wardregistry/pkg/domain-errors"
)

// Status is the lifecycle state shared by dwellings and beneficiary records.
// The only permitted transition is active -> inactive.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// CanTransitionTo reports whether the lifecycle allows moving to target.
// Reactivation is not part of the lifecycle.
func (s Status) CanTransitionTo(target Status) bool {
	return s == StatusActive && target == StatusInactive
}

func (s Status) String() string {
	return string(s)
}

// StatusFilter narrows list and report views by lifecycle state.
type StatusFilter string

const (
	StatusFilterAll      StatusFilter = "all"
	StatusFilterActive   StatusFilter = "active"
	StatusFilterInactive StatusFilter = "inactive"
)

// ParseStatusFilter accepts all, active or inactive. Empty input means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatusFilterAll:
		return StatusFilterAll, nil
	case StatusFilterActive:
		return StatusFilterActive, nil
	case StatusFilterInactive:
		return StatusFilterInactive, nil
	default:
		return "", dErrors.NewField(dErrors.CodeInvalidInput, "status", "status must be one of all, active, inactive")
	}
}

// Matches applies the filter to a record status.
func (f StatusFilter) Matches(s Status) bool {
	switch f {
	case StatusFilterActive:
		return s == StatusActive
	case StatusFilterInactive:
		return s == StatusInactive
	default:
		return true
	}
}
