// Package audit records who changed what in the registry. Soft deletes keep
// rows around; the audit trail keeps the history of how they got there.
package audit

import (
	"context"
	"time"
)

// Action names a registry mutation.
type Action string

const (
	ActionDwellingCreated     Action = "dwelling_created"
	ActionDwellingUpdated     Action = "dwelling_updated"
	ActionDwellingSoftDeleted Action = "dwelling_soft_deleted"

	ActionRecordCreated     Action = "record_created"
	ActionRecordUpdated     Action = "record_updated"
	ActionRecordSoftDeleted Action = "record_soft_deleted"

	ActionCatalogEntryCreated Action = "catalog_entry_created"
	ActionCatalogEntryRenamed Action = "catalog_entry_renamed"
	ActionCatalogEntryDeleted Action = "catalog_entry_deleted"
)

// Event is one entry in the trail. Subject is the id of the dwelling, record
// or catalog entry that changed; Kind is its category or catalog kind.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	Kind      string    `json:"kind"`
	Subject   string    `json:"subject"`
	Actor     string    `json:"actor"`
	RequestID string    `json:"request_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// Store persists events in emission order.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListBySubject(ctx context.Context, subject string) ([]Event, error)
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}
