// Package domain holds the typed identifiers shared across the registry.
//
// Every entity kind gets its own UUID-backed type so a record id can never be
// passed where a dwelling id is expected. Construct ids from external input with
// the Parse* functions; they reject empty, malformed and nil UUIDs.
package domain

import (
	"github.com/google/uuid"

	dErrors "wardregistry/pkg/domain-errors"
)

type (
	// DwellingID identifies a house-number record.
	DwellingID uuid.UUID
	// RecordID identifies a beneficiary record in any category.
	RecordID uuid.UUID
	// MemberID identifies a household member inside a dwelling.
	MemberID uuid.UUID
	// CatalogEntryID identifies a reference catalog entry.
	CatalogEntryID uuid.UUID
)

func NewDwellingID() DwellingID         { return DwellingID(uuid.New()) }
func NewRecordID() RecordID             { return RecordID(uuid.New()) }
func NewMemberID() MemberID             { return MemberID(uuid.New()) }
func NewCatalogEntryID() CatalogEntryID { return CatalogEntryID(uuid.New()) }

func parseUUID(s, kind string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" cannot be nil")
	}
	return u, nil
}

func ParseDwellingID(s string) (DwellingID, error) {
	u, err := parseUUID(s, "dwelling id")
	return DwellingID(u), err
}

func ParseRecordID(s string) (RecordID, error) {
	u, err := parseUUID(s, "record id")
	return RecordID(u), err
}

func ParseMemberID(s string) (MemberID, error) {
	u, err := parseUUID(s, "member id")
	return MemberID(u), err
}

func ParseCatalogEntryID(s string) (CatalogEntryID, error) {
	u, err := parseUUID(s, "catalog entry id")
	return CatalogEntryID(u), err
}

func (id DwellingID) String() string     { return uuid.UUID(id).String() }
func (id RecordID) String() string       { return uuid.UUID(id).String() }
func (id MemberID) String() string       { return uuid.UUID(id).String() }
func (id CatalogEntryID) String() string { return uuid.UUID(id).String() }

func (id DwellingID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id RecordID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id MemberID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id CatalogEntryID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// Text marshalling keeps ids readable in JSON and YAML payloads.

func (id DwellingID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id *DwellingID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id RecordID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id *RecordID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id MemberID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id *MemberID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id CatalogEntryID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id *CatalogEntryID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}
