package service

import (
	"context"

	"wardregistry/internal/registry/linkage"
	"wardregistry/internal/registry/models"
	"wardregistry/internal/registry/query"
	id "wardregistry/pkg/domain"
	dErrors "wardregistry/pkg/domain-errors"
	audit "wardregistry/pkg/platform/audit"
)

// CreateDwelling stores a new active dwelling with the next case number of
// the current year.
func (s *Service) CreateDwelling(ctx context.Context, draft models.DwellingDraft) (*models.Dwelling, error) {
	actor, now := s.stamp(ctx)

	// validate before allocating so rejected drafts leave no gap in the sequence
	d, err := models.NewDwelling(id.NewDwellingID(), "", draft, actor, now)
	if err != nil {
		return nil, err
	}
	if s.sequencer != nil {
		year := now.In(s.location).Year()
		seq, err := s.sequencer.Next(ctx, year)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to allocate case number")
		}
		d.CaseNumber = models.FormatCaseNumber(year, seq)
	}
	if err := s.dwellings.Insert(ctx, d); err != nil {
		return nil, wrapStoreErr(err, "dwelling")
	}

	s.incrementCreated(models.CategoryDwelling, 1)
	s.logEvent(ctx, "dwelling_created", "dwelling_id", d.ID.String(), "case_number", d.CaseNumber)
	s.trail(ctx, audit.ActionDwellingCreated, string(models.CategoryDwelling), d.ID.String())
	return d, nil
}

func (s *Service) GetDwelling(ctx context.Context, dwellingID id.DwellingID) (*models.Dwelling, error) {
	d, err := s.dwellings.Get(ctx, dwellingID)
	if err != nil {
		return nil, wrapStoreErr(err, "dwelling")
	}
	return d, nil
}

// UpdateDwelling merges patch into the stored dwelling. Unknown ids are
// NotFound; nothing is created.
func (s *Service) UpdateDwelling(ctx context.Context, dwellingID id.DwellingID, patch models.DwellingPatch) (*models.Dwelling, error) {
	actor, now := s.stamp(ctx)
	d, err := s.dwellings.Update(ctx, dwellingID, func(cur *models.Dwelling) error {
		return cur.Apply(patch, actor, now)
	})
	if err != nil {
		return nil, wrapStoreErr(err, "dwelling")
	}
	s.logEvent(ctx, "dwelling_updated", "dwelling_id", d.ID.String())
	s.trail(ctx, audit.ActionDwellingUpdated, string(models.CategoryDwelling), d.ID.String())
	return d, nil
}

// SoftDeleteDwelling marks the dwelling inactive. Repeating the call is a
// no-op. Linked beneficiary records keep their own status.
func (s *Service) SoftDeleteDwelling(ctx context.Context, dwellingID id.DwellingID) (*models.Dwelling, error) {
	actor, now := s.stamp(ctx)
	d, changed, err := s.dwellings.SoftDelete(ctx, dwellingID, actor, now)
	if err != nil {
		return nil, wrapStoreErr(err, "dwelling")
	}
	if changed {
		s.incrementSoftDeleted(models.CategoryDwelling)
		s.logEvent(ctx, "dwelling_soft_deleted", "dwelling_id", d.ID.String())
		s.trail(ctx, audit.ActionDwellingSoftDeleted, string(models.CategoryDwelling), d.ID.String())
	}
	return d, nil
}

// ListDwellings returns the dwellings matching c in insertion order.
func (s *Service) ListDwellings(ctx context.Context, c query.Criteria) ([]*models.Dwelling, error) {
	all, err := s.dwellings.List(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "dwellings")
	}
	return query.Filter(all, c, query.DwellingFields), nil
}

// HouseholdChoices lists who may receive an entitlement for records linked to
// the dwelling: the owner, then members in stored order.
func (s *Service) HouseholdChoices(ctx context.Context, dwellingID id.DwellingID) ([]linkage.Choice, error) {
	if _, err := s.dwellings.Get(ctx, dwellingID); err != nil {
		return nil, wrapStoreErr(err, "dwelling")
	}
	return s.links.ResolveHouseholdChoices(dwellingID), nil
}
