package models

import (
	"strings"
	"time"

	id "wardregistry/pkg/domain"
	dErrors "wardregistry/pkg/domain-errors"
)

// BeneficiaryRecord is an entitlement tied to a person at a dwelling. The five
// beneficiary categories share this shape; Category pins the record to exactly
// one collection.
//
// Invariants:
//   - Category is a beneficiary category and never changes
//   - LinkedHouseID references a dwelling that existed at creation and is never cleared
//   - SubjectName and Classification are non-empty
//   - SubsidyAmount is zero or positive
//   - Status only moves active -> inactive
type BeneficiaryRecord struct {
	ID                id.RecordID    `json:"id"`
	Category          Category       `json:"category"`
	LinkedHouseID     id.DwellingID  `json:"linked_house_id"`
	SubjectName       string         `json:"subject_name"`
	SubjectNationalID string         `json:"subject_national_id,omitempty"`
	Relationship      string         `json:"relationship"`
	Classification    Classification `json:"classification"`
	SubsidyAmount     int64          `json:"subsidy_amount"`
	Payee             Payee          `json:"payee"`
	BankName          string         `json:"bank_name,omitempty"`
	BankAccount       string         `json:"bank_account,omitempty"`
	Note              string         `json:"note"`
	Status            Status         `json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
	CreatedBy         string         `json:"created_by"`
	UpdatedAt         *time.Time     `json:"updated_at,omitempty"`
	UpdatedBy         string         `json:"updated_by,omitempty"`
}

// BeneficiaryDraft is the caller-supplied content of a new record. Batch create
// submits several drafts sharing one LinkedHouseID.
type BeneficiaryDraft struct {
	LinkedHouseID     id.DwellingID
	SubjectName       string
	SubjectNationalID string
	Relationship      string
	Classification    Classification
	SubsidyAmount     int64
	Payee             Payee
	BankName          string
	BankAccount       string
	Note              string
}

// BeneficiaryPatch carries the fields an update may change. Nil means unchanged.
type BeneficiaryPatch struct {
	LinkedHouseID     *id.DwellingID
	SubjectName       *string
	SubjectNationalID *string
	Relationship      *string
	Classification    *Classification
	SubsidyAmount     *int64
	Payee             *Payee
	BankName          *string
	BankAccount       *string
	Note              *string
}

// Validate checks the required fields of a draft without touching any store.
func (d BeneficiaryDraft) Validate() error {
	if d.LinkedHouseID.IsNil() {
		return dErrors.NewField(dErrors.CodeValidation, "linked_house_id", "a dwelling must be selected")
	}
	if strings.TrimSpace(d.SubjectName) == "" {
		return dErrors.NewField(dErrors.CodeValidation, "subject_name", "subject name is required")
	}
	if d.Classification.IsZero() {
		return dErrors.NewField(dErrors.CodeValidation, "classification", "classification is required")
	}
	if d.SubsidyAmount < 0 {
		return dErrors.NewField(dErrors.CodeValidation, "subsidy_amount", "subsidy amount cannot be negative")
	}
	return nil
}

// NewBeneficiaryRecord validates a draft and returns an active record.
func NewBeneficiaryRecord(recordID id.RecordID, category Category, draft BeneficiaryDraft, actor string, now time.Time) (*BeneficiaryRecord, error) {
	if !category.IsBeneficiary() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "records must belong to a beneficiary category")
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return &BeneficiaryRecord{
		ID:                recordID,
		Category:          category,
		LinkedHouseID:     draft.LinkedHouseID,
		SubjectName:       strings.TrimSpace(draft.SubjectName),
		SubjectNationalID: strings.TrimSpace(draft.SubjectNationalID),
		Relationship:      strings.TrimSpace(draft.Relationship),
		Classification:    draft.Classification,
		SubsidyAmount:     draft.SubsidyAmount,
		Payee:             draft.Payee.clone(),
		BankName:          strings.TrimSpace(draft.BankName),
		BankAccount:       strings.TrimSpace(draft.BankAccount),
		Note:              draft.Note,
		Status:            StatusActive,
		CreatedAt:         now,
		CreatedBy:         actor,
	}, nil
}

// Apply merges a patch and stamps the update. The receiver is left unchanged
// when the merged record would be invalid.
func (r *BeneficiaryRecord) Apply(p BeneficiaryPatch, actor string, now time.Time) error {
	next := r.Clone()
	if p.LinkedHouseID != nil {
		next.LinkedHouseID = *p.LinkedHouseID
	}
	setTrimmed(&next.SubjectName, p.SubjectName)
	setTrimmed(&next.SubjectNationalID, p.SubjectNationalID)
	setTrimmed(&next.Relationship, p.Relationship)
	if p.Classification != nil {
		next.Classification = *p.Classification
	}
	if p.SubsidyAmount != nil {
		next.SubsidyAmount = *p.SubsidyAmount
	}
	if p.Payee != nil {
		next.Payee = p.Payee.clone()
	}
	setTrimmed(&next.BankName, p.BankName)
	setTrimmed(&next.BankAccount, p.BankAccount)
	if p.Note != nil {
		next.Note = *p.Note
	}
	if err := next.Draft().Validate(); err != nil {
		return err
	}
	next.touch(actor, now)
	*r = *next
	return nil
}

// Draft projects the editable content of the record.
func (r *BeneficiaryRecord) Draft() BeneficiaryDraft {
	return BeneficiaryDraft{
		LinkedHouseID:     r.LinkedHouseID,
		SubjectName:       r.SubjectName,
		SubjectNationalID: r.SubjectNationalID,
		Relationship:      r.Relationship,
		Classification:    r.Classification,
		SubsidyAmount:     r.SubsidyAmount,
		Payee:             r.Payee.clone(),
		BankName:          r.BankName,
		BankAccount:       r.BankAccount,
		Note:              r.Note,
	}
}

// Deactivate soft-deletes the record. It reports false and changes nothing
// when the record is already inactive.
func (r *BeneficiaryRecord) Deactivate(actor string, now time.Time) bool {
	if !r.Status.CanTransitionTo(StatusInactive) {
		return false
	}
	r.Status = StatusInactive
	r.touch(actor, now)
	return true
}

func (r *BeneficiaryRecord) touch(actor string, now time.Time) {
	t := now
	r.UpdatedAt = &t
	r.UpdatedBy = actor
}

func (r *BeneficiaryRecord) IsActive() bool {
	return r.Status == StatusActive
}

func (r *BeneficiaryRecord) LifecycleStatus() Status {
	return r.Status
}

// ActivityAt is UpdatedAt when present, else CreatedAt.
func (r *BeneficiaryRecord) ActivityAt() time.Time {
	if r.UpdatedAt != nil {
		return *r.UpdatedAt
	}
	return r.CreatedAt
}

// BudgetAmount is the subsidy that counts toward the combined budget: the
// subsidy for monetary categories, zero for military records.
func (r *BeneficiaryRecord) BudgetAmount() int64 {
	if !r.Category.Monetary() {
		return 0
	}
	return r.SubsidyAmount
}

func (r *BeneficiaryRecord) Clone() *BeneficiaryRecord {
	cp := *r
	cp.Payee = r.Payee.clone()
	if r.UpdatedAt != nil {
		t := *r.UpdatedAt
		cp.UpdatedAt = &t
	}
	return &cp
}
