package models

import "strings"

// Classification is a snapshot of a catalog entry taken when a record is
// created or edited. It is deliberately not a foreign key: renaming or deleting
// the catalog entry leaves existing records untouched.
type Classification struct {
	Code string `json:"code,omitempty"`
	Name string `json:"name"`
}

// SnapshotClassification copies the display values out of a catalog entry.
func SnapshotClassification(entry CatalogEntry) Classification {
	return Classification{Code: entry.Code, Name: entry.Name}
}

func (c Classification) IsZero() bool {
	return strings.TrimSpace(c.Name) == ""
}

func (c Classification) String() string {
	return c.Name
}
