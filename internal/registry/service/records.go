package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wardregistry/internal/registry/models"
	"wardregistry/internal/registry/query"
	id "wardregistry/pkg/domain"
	dErrors "wardregistry/pkg/domain-errors"
	audit "wardregistry/pkg/platform/audit"
	"wardregistry/pkg/platform/sentinel"
)

// RecordInput is the caller's content for a new beneficiary record.
//
// Classification is taken from the category's catalog when ClassificationCode
// is set, otherwise ClassificationName is used as typed. PayeeChoice is a
// household-choice id from HouseholdChoices; empty means in person.
type RecordInput struct {
	LinkedHouseID      id.DwellingID
	SubjectName        string
	SubjectNationalID  string
	Relationship       string
	ClassificationCode string
	ClassificationName string
	SubsidyAmount      int64
	PayeeChoice        string
	BankName           string
	BankAccount        string
	Note               string
}

// RecordPatch carries the fields an update may change. Nil means unchanged.
// Moving a record to another dwelling resets the payee to in person unless
// PayeeChoice is also given.
type RecordPatch struct {
	LinkedHouseID      *id.DwellingID
	SubjectName        *string
	SubjectNationalID  *string
	Relationship       *string
	ClassificationCode *string
	ClassificationName *string
	SubsidyAmount      *int64
	PayeeChoice        *string
	BankName           *string
	BankAccount        *string
	Note               *string
}

// CreateRecord validates in and stores an active record in category.
func (s *Service) CreateRecord(ctx context.Context, category models.Category, in RecordInput) (*models.BeneficiaryRecord, error) {
	st, err := s.recordStore(category)
	if err != nil {
		return nil, err
	}
	r, err := s.buildRecord(ctx, category, in)
	if err != nil {
		return nil, err
	}
	if err := st.Insert(ctx, r); err != nil {
		return nil, wrapStoreErr(err, "record")
	}
	s.incrementCreated(category, 1)
	s.logEvent(ctx, "record_created",
		"category", string(category),
		"record_id", r.ID.String(),
		"dwelling_id", r.LinkedHouseID.String(),
	)
	s.trail(ctx, audit.ActionRecordCreated, string(category), r.ID.String())
	return r, nil
}

// BatchCreate stores several drafts for one dwelling as a unit. Every draft is
// validated before anything is written; if any draft fails, none is stored and
// the error names the failing draft.
func (s *Service) BatchCreate(ctx context.Context, category models.Category, dwellingID id.DwellingID, inputs []RecordInput) ([]*models.BeneficiaryRecord, error) {
	st, err := s.recordStore(category)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, dErrors.NewField(dErrors.CodeValidation, "drafts", "at least one draft is required")
	}

	records := make([]*models.BeneficiaryRecord, 0, len(inputs))
	for i, in := range inputs {
		in.LinkedHouseID = dwellingID
		r, err := s.buildRecord(ctx, category, in)
		if err != nil {
			s.incrementBatchRejected()
			return nil, draftError(i, err)
		}
		records = append(records, r)
	}
	if err := st.InsertAll(ctx, records); err != nil {
		s.incrementBatchRejected()
		return nil, wrapStoreErr(err, "record")
	}

	s.incrementCreated(category, len(records))
	s.logEvent(ctx, "record_batch_created",
		"category", string(category),
		"dwelling_id", dwellingID.String(),
		"count", len(records),
	)
	for _, r := range records {
		s.trail(ctx, audit.ActionRecordCreated, string(category), r.ID.String())
	}
	return records, nil
}

func draftError(index int, err error) error {
	de, ok := dErrors.As(err)
	if !ok {
		return err
	}
	field := fmt.Sprintf("drafts[%d]", index)
	if de.Field != "" {
		field += "." + de.Field
	}
	return &dErrors.Error{
		Code:    de.Code,
		Field:   field,
		Message: fmt.Sprintf("draft %d: %s", index+1, de.Message),
		Err:     err,
	}
}

func (s *Service) GetRecord(ctx context.Context, category models.Category, recordID id.RecordID) (*models.BeneficiaryRecord, error) {
	st, err := s.recordStore(category)
	if err != nil {
		return nil, err
	}
	r, err := st.Get(ctx, recordID)
	if err != nil {
		return nil, wrapStoreErr(err, "record")
	}
	return r, nil
}

// UpdateRecord merges patch into a record of category. A record id that lives
// in another category is NotFound here.
func (s *Service) UpdateRecord(ctx context.Context, category models.Category, recordID id.RecordID, patch RecordPatch) (*models.BeneficiaryRecord, error) {
	st, err := s.recordStore(category)
	if err != nil {
		return nil, err
	}
	actor, now := s.stamp(ctx)
	r, err := st.Update(ctx, recordID, func(cur *models.BeneficiaryRecord) error {
		mp, err := s.resolvePatch(ctx, category, cur, patch)
		if err != nil {
			return err
		}
		return cur.Apply(mp, actor, now)
	})
	if err != nil {
		return nil, wrapStoreErr(err, "record")
	}
	s.logEvent(ctx, "record_updated", "category", string(category), "record_id", r.ID.String())
	s.trail(ctx, audit.ActionRecordUpdated, string(category), r.ID.String())
	return r, nil
}

// SoftDeleteRecord marks a record inactive. Repeating the call is a no-op.
func (s *Service) SoftDeleteRecord(ctx context.Context, category models.Category, recordID id.RecordID) (*models.BeneficiaryRecord, error) {
	st, err := s.recordStore(category)
	if err != nil {
		return nil, err
	}
	actor, now := s.stamp(ctx)
	r, changed, err := st.SoftDelete(ctx, recordID, actor, now)
	if err != nil {
		return nil, wrapStoreErr(err, "record")
	}
	if changed {
		s.incrementSoftDeleted(category)
		s.logEvent(ctx, "record_soft_deleted", "category", string(category), "record_id", r.ID.String())
		s.trail(ctx, audit.ActionRecordSoftDeleted, string(category), r.ID.String())
	}
	return r, nil
}

// ListRecords returns category's records matching c in insertion order.
func (s *Service) ListRecords(ctx context.Context, category models.Category, c query.Criteria) ([]*models.BeneficiaryRecord, error) {
	st, err := s.recordStore(category)
	if err != nil {
		return nil, err
	}
	all, err := st.List(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "records")
	}
	return query.Filter(all, c, query.BeneficiaryIndexer(s.links)), nil
}

// LinkedRecords returns every beneficiary record pointing at the dwelling,
// grouped by category in report order.
func (s *Service) LinkedRecords(ctx context.Context, dwellingID id.DwellingID) (map[models.Category][]*models.BeneficiaryRecord, error) {
	if _, err := s.dwellings.Get(ctx, dwellingID); err != nil {
		return nil, wrapStoreErr(err, "dwelling")
	}
	out := make(map[models.Category][]*models.BeneficiaryRecord)
	for _, category := range models.BeneficiaryCategories() {
		st, ok := s.records[category]
		if !ok {
			continue
		}
		recs, err := st.ListByDwelling(ctx, dwellingID)
		if err != nil {
			return nil, wrapStoreErr(err, "records")
		}
		if len(recs) > 0 {
			out[category] = recs
		}
	}
	return out, nil
}

func (s *Service) buildRecord(ctx context.Context, category models.Category, in RecordInput) (*models.BeneficiaryRecord, error) {
	classification, err := s.resolveClassification(ctx, category, in.ClassificationCode, in.ClassificationName)
	if err != nil {
		return nil, err
	}
	draft := models.BeneficiaryDraft{
		LinkedHouseID:     in.LinkedHouseID,
		SubjectName:       in.SubjectName,
		SubjectNationalID: in.SubjectNationalID,
		Relationship:      in.Relationship,
		Classification:    classification,
		SubsidyAmount:     in.SubsidyAmount,
		BankName:          in.BankName,
		BankAccount:       in.BankAccount,
		Note:              in.Note,
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireLinkTarget(ctx, in.LinkedHouseID); err != nil {
		return nil, err
	}
	payee, err := s.links.BindPayee(in.LinkedHouseID, in.PayeeChoice)
	if err != nil {
		return nil, err
	}
	draft.Payee = payee

	actor, now := s.stamp(ctx)
	return models.NewBeneficiaryRecord(id.NewRecordID(), category, draft, actor, now)
}

func (s *Service) resolvePatch(ctx context.Context, category models.Category, cur *models.BeneficiaryRecord, p RecordPatch) (models.BeneficiaryPatch, error) {
	mp := models.BeneficiaryPatch{
		SubjectName:       p.SubjectName,
		SubjectNationalID: p.SubjectNationalID,
		Relationship:      p.Relationship,
		SubsidyAmount:     p.SubsidyAmount,
		BankName:          p.BankName,
		BankAccount:       p.BankAccount,
		Note:              p.Note,
	}

	if p.ClassificationCode != nil || p.ClassificationName != nil {
		c, err := s.resolveClassification(ctx, category, deref(p.ClassificationCode), deref(p.ClassificationName))
		if err != nil {
			return mp, err
		}
		mp.Classification = &c
	}

	house := cur.LinkedHouseID
	if p.LinkedHouseID != nil && *p.LinkedHouseID != cur.LinkedHouseID {
		if p.LinkedHouseID.IsNil() {
			return mp, dErrors.NewField(dErrors.CodeValidation, "linked_house_id", "a dwelling must be selected")
		}
		if err := s.requireLinkTarget(ctx, *p.LinkedHouseID); err != nil {
			return mp, err
		}
		house = *p.LinkedHouseID
		mp.LinkedHouseID = &house
		if p.PayeeChoice == nil {
			mp.Payee = &models.Payee{}
		}
	}
	if p.PayeeChoice != nil {
		payee, err := s.links.BindPayee(house, *p.PayeeChoice)
		if err != nil {
			return mp, err
		}
		mp.Payee = &payee
	}
	return mp, nil
}

// resolveClassification snapshots the catalog entry named by code, or takes
// name as typed when no code is given. Both empty yields the zero value and
// leaves the required-field check to the draft.
func (s *Service) resolveClassification(ctx context.Context, category models.Category, code, name string) (models.Classification, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return models.Classification{Name: strings.TrimSpace(name)}, nil
	}
	if s.catalogs == nil {
		return models.Classification{}, dErrors.New(dErrors.CodeInternal, "catalogs are not configured")
	}
	entry, err := s.catalogs.FindByCode(ctx, category.ClassificationKind(), code)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Classification{}, dErrors.NewField(dErrors.CodeValidation, "classification", "unknown classification code "+code)
		}
		return models.Classification{}, wrapStoreErr(err, "catalog entry")
	}
	return models.SnapshotClassification(*entry), nil
}

// requireLinkTarget checks that a new link points at an existing, active dwelling.
func (s *Service) requireLinkTarget(ctx context.Context, dwellingID id.DwellingID) error {
	d, err := s.dwellings.Get(ctx, dwellingID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.NewField(dErrors.CodeReferential, "linked_house_id", "linked dwelling does not exist")
		}
		return wrapStoreErr(err, "dwelling")
	}
	if !d.IsActive() {
		return dErrors.NewField(dErrors.CodeReferential, "linked_house_id", "linked dwelling is inactive")
	}
	return nil
}

func (s *Service) incrementBatchRejected() {
	if s.metrics != nil {
		s.metrics.IncrementBatchRejected()
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
