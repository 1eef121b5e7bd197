package service

import (
	"context"
	"strings"

	"wardregistry/internal/registry/models"
	id "wardregistry/pkg/domain"
	dErrors "wardregistry/pkg/domain-errors"
	audit "wardregistry/pkg/platform/audit"
)

// CreateCatalogEntry adds a lookup value. Codes are unique within a kind.
func (s *Service) CreateCatalogEntry(ctx context.Context, kind models.CatalogKind, code, name string) (*models.CatalogEntry, error) {
	_, now := s.stamp(ctx)
	e, err := models.NewCatalogEntry(id.NewCatalogEntryID(), kind, code, name, now)
	if err != nil {
		return nil, err
	}
	if err := s.catalogs.CreateIfCodeAvailable(ctx, e); err != nil {
		return nil, wrapStoreErr(err, "catalog code")
	}
	s.logEvent(ctx, "catalog_entry_created", "kind", string(kind), "code", e.Code)
	s.trail(ctx, audit.ActionCatalogEntryCreated, string(kind), e.ID.String())
	return e, nil
}

func (s *Service) ListCatalog(ctx context.Context, kind models.CatalogKind) ([]*models.CatalogEntry, error) {
	entries, err := s.catalogs.ListByKind(ctx, kind)
	if err != nil {
		return nil, wrapStoreErr(err, "catalog")
	}
	return entries, nil
}

// RenameCatalogEntry changes an entry's display name. Records that already
// copied the old name keep it.
func (s *Service) RenameCatalogEntry(ctx context.Context, kind models.CatalogKind, entryID id.CatalogEntryID, name string) (*models.CatalogEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.NewField(dErrors.CodeValidation, "name", "name is required")
	}
	e, err := s.catalogs.Rename(ctx, kind, entryID, name)
	if err != nil {
		return nil, wrapStoreErr(err, "catalog entry")
	}
	s.logEvent(ctx, "catalog_entry_renamed", "kind", string(kind), "code", e.Code)
	s.trail(ctx, audit.ActionCatalogEntryRenamed, string(kind), e.ID.String())
	return e, nil
}

// DeleteCatalogEntry removes an entry for good.
func (s *Service) DeleteCatalogEntry(ctx context.Context, kind models.CatalogKind, entryID id.CatalogEntryID) error {
	if err := s.catalogs.Delete(ctx, kind, entryID); err != nil {
		return wrapStoreErr(err, "catalog entry")
	}
	s.logEvent(ctx, "catalog_entry_deleted", "kind", string(kind), "entry_id", entryID.String())
	s.trail(ctx, audit.ActionCatalogEntryDeleted, string(kind), entryID.String())
	return nil
}
