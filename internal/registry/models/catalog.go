package models

import (
	"strings"
	"time"

	id "wardregistry/pkg/domain"
	dErrors "wardregistry/pkg/domain-errors"
)

// CatalogKind names a reference catalog.
type CatalogKind string

const (
	CatalogRelationship   CatalogKind = "relationship"
	CatalogMilitaryRank   CatalogKind = "military_rank"
	CatalogMeritType      CatalogKind = "merit_type"
	CatalogMedalType      CatalogKind = "medal_type"
	CatalogPolicyType     CatalogKind = "policy_type"
	CatalogProtectionType CatalogKind = "protection_type"
	CatalogRecordStatus   CatalogKind = "record_status"
	CatalogBank           CatalogKind = "bank"
)

var validCatalogKinds = map[CatalogKind]bool{
	CatalogRelationship:   true,
	CatalogMilitaryRank:   true,
	CatalogMeritType:      true,
	CatalogMedalType:      true,
	CatalogPolicyType:     true,
	CatalogProtectionType: true,
	CatalogRecordStatus:   true,
	CatalogBank:           true,
}

func ParseCatalogKind(s string) (CatalogKind, error) {
	k := CatalogKind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !validCatalogKinds[k] {
		return "", dErrors.NewField(dErrors.CodeInvalidInput, "kind", "unknown catalog kind")
	}
	return k, nil
}

// CatalogEntry is a lookup value. Entries are hard-deleted; records that copied
// an entry's name keep their snapshot.
type CatalogEntry struct {
	ID        id.CatalogEntryID `json:"id"`
	Kind      CatalogKind       `json:"kind"`
	Code      string            `json:"code"`
	Name      string            `json:"name"`
	CreatedAt time.Time         `json:"created_at"`
}

func NewCatalogEntry(entryID id.CatalogEntryID, kind CatalogKind, code, name string, now time.Time) (*CatalogEntry, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if !validCatalogKinds[kind] {
		return nil, dErrors.NewField(dErrors.CodeValidation, "kind", "unknown catalog kind")
	}
	if code == "" {
		return nil, dErrors.NewField(dErrors.CodeValidation, "code", "code is required")
	}
	if name == "" {
		return nil, dErrors.NewField(dErrors.CodeValidation, "name", "name is required")
	}
	return &CatalogEntry{ID: entryID, Kind: kind, Code: code, Name: name, CreatedAt: now}, nil
}
