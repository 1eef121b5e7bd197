package models

import (
	"strings"
	"time"

	id "wardregistry/pkg/domain"
	dErrors "wardregistry/pkg/domain-errors"
)

// Dwelling is the house-number record every beneficiary record links to.
//
// Invariants:
//   - ID is unique across all dwellings and immutable
//   - OwnerName and HouseNumber are non-empty
//   - Status only moves active -> inactive; dwellings are never removed
//   - CreatedAt and CreatedBy are immutable after construction
//
// Soft-deleting a dwelling does not touch its beneficiary records.
type Dwelling struct {
	ID              id.DwellingID     `json:"id"`
	CaseNumber      string            `json:"case_number"`
	HouseNumber     string            `json:"house_number"`
	StreetName      string            `json:"street_name"`
	Neighborhood    string            `json:"neighborhood"`
	OwnerName       string            `json:"owner_name"`
	OwnerNationalID string            `json:"owner_national_id"`
	CadastralSheet  string            `json:"cadastral_sheet"`
	CadastralParcel string            `json:"cadastral_parcel"`
	Disputed        bool              `json:"disputed"`
	Location        *GeoPoint         `json:"location,omitempty"`
	Boundary        Polygon           `json:"boundary,omitempty"`
	Members         []HouseholdMember `json:"members"`
	Note            string            `json:"note"`
	Status          Status            `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	CreatedBy       string            `json:"created_by"`
	UpdatedAt       *time.Time        `json:"updated_at,omitempty"`
	UpdatedBy       string            `json:"updated_by,omitempty"`
}

// HouseholdMember is a person living at a dwelling other than the owner.
type HouseholdMember struct {
	ID           id.MemberID `json:"id"`
	Name         string      `json:"name"`
	Relationship string      `json:"relationship"`
	NationalID   string      `json:"national_id"`
	BirthDate    *time.Time  `json:"birth_date,omitempty"`
	Deceased     bool        `json:"deceased"`
}

// DwellingDraft is the caller-supplied content of a new dwelling.
type DwellingDraft struct {
	HouseNumber     string
	StreetName      string
	Neighborhood    string
	OwnerName       string
	OwnerNationalID string
	CadastralSheet  string
	CadastralParcel string
	Disputed        bool
	Location        *GeoPoint
	Boundary        Polygon
	Members         []HouseholdMember
	Note            string
}

// DwellingPatch carries the fields an update may change. Nil means unchanged.
// Members, when set, replaces the whole list.
type DwellingPatch struct {
	HouseNumber     *string
	StreetName      *string
	Neighborhood    *string
	OwnerName       *string
	OwnerNationalID *string
	CadastralSheet  *string
	CadastralParcel *string
	Disputed        *bool
	Location        *GeoPoint
	Boundary        *Polygon
	Members         *[]HouseholdMember
	Note            *string
}

// NewDwelling validates a draft and returns an active dwelling.
func NewDwelling(dwellingID id.DwellingID, caseNumber string, draft DwellingDraft, actor string, now time.Time) (*Dwelling, error) {
	d := &Dwelling{
		ID:              dwellingID,
		CaseNumber:      caseNumber,
		HouseNumber:     strings.TrimSpace(draft.HouseNumber),
		StreetName:      strings.TrimSpace(draft.StreetName),
		Neighborhood:    strings.TrimSpace(draft.Neighborhood),
		OwnerName:       strings.TrimSpace(draft.OwnerName),
		OwnerNationalID: strings.TrimSpace(draft.OwnerNationalID),
		CadastralSheet:  strings.TrimSpace(draft.CadastralSheet),
		CadastralParcel: strings.TrimSpace(draft.CadastralParcel),
		Disputed:        draft.Disputed,
		Location:        cloneGeoPoint(draft.Location),
		Boundary:        append(Polygon(nil), draft.Boundary...),
		Members:         assignMemberIDs(draft.Members),
		Note:            draft.Note,
		Status:          StatusActive,
		CreatedAt:       now,
		CreatedBy:       actor,
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dwelling) validate() error {
	if d.OwnerName == "" {
		return dErrors.NewField(dErrors.CodeValidation, "owner_name", "owner name is required")
	}
	if d.HouseNumber == "" {
		return dErrors.NewField(dErrors.CodeValidation, "house_number", "house number is required")
	}
	if d.Location != nil && !d.Location.Valid() {
		return dErrors.NewField(dErrors.CodeValidation, "location", "location is out of range")
	}
	if len(d.Boundary) > 0 && !d.Boundary.Valid() {
		return dErrors.NewField(dErrors.CodeValidation, "boundary", "boundary needs at least 3 points")
	}
	for _, m := range d.Members {
		if strings.TrimSpace(m.Name) == "" {
			return dErrors.NewField(dErrors.CodeValidation, "members", "household member name is required")
		}
	}
	return nil
}

// Apply merges a patch and stamps the update. The receiver is left unchanged
// when validation fails.
func (d *Dwelling) Apply(p DwellingPatch, actor string, now time.Time) error {
	next := d.Clone()
	setTrimmed(&next.HouseNumber, p.HouseNumber)
	setTrimmed(&next.StreetName, p.StreetName)
	setTrimmed(&next.Neighborhood, p.Neighborhood)
	setTrimmed(&next.OwnerName, p.OwnerName)
	setTrimmed(&next.OwnerNationalID, p.OwnerNationalID)
	setTrimmed(&next.CadastralSheet, p.CadastralSheet)
	setTrimmed(&next.CadastralParcel, p.CadastralParcel)
	if p.Disputed != nil {
		next.Disputed = *p.Disputed
	}
	if p.Location != nil {
		next.Location = cloneGeoPoint(p.Location)
	}
	if p.Boundary != nil {
		next.Boundary = append(Polygon(nil), (*p.Boundary)...)
	}
	if p.Members != nil {
		next.Members = assignMemberIDs(*p.Members)
	}
	if p.Note != nil {
		next.Note = *p.Note
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.touch(actor, now)
	*d = *next
	return nil
}

// Deactivate soft-deletes the dwelling. It reports false and changes nothing
// when the dwelling is already inactive.
func (d *Dwelling) Deactivate(actor string, now time.Time) bool {
	if !d.Status.CanTransitionTo(StatusInactive) {
		return false
	}
	d.Status = StatusInactive
	d.touch(actor, now)
	return true
}

func (d *Dwelling) touch(actor string, now time.Time) {
	t := now
	d.UpdatedAt = &t
	d.UpdatedBy = actor
}

func (d *Dwelling) IsActive() bool {
	return d.Status == StatusActive
}

// LifecycleStatus implements the query engine's status accessor.
func (d *Dwelling) LifecycleStatus() Status {
	return d.Status
}

// ActivityAt is UpdatedAt when present, else CreatedAt.
func (d *Dwelling) ActivityAt() time.Time {
	if d.UpdatedAt != nil {
		return *d.UpdatedAt
	}
	return d.CreatedAt
}

// Address renders "<house number> <street>" trimmed.
func (d *Dwelling) Address() string {
	return strings.TrimSpace(d.HouseNumber + " " + d.StreetName)
}

// Member finds a household member by id.
func (d *Dwelling) Member(memberID id.MemberID) (HouseholdMember, bool) {
	for _, m := range d.Members {
		if m.ID == memberID {
			return m, true
		}
	}
	return HouseholdMember{}, false
}

// Clone returns a deep copy so stores never share slices with callers.
func (d *Dwelling) Clone() *Dwelling {
	cp := *d
	cp.Location = cloneGeoPoint(d.Location)
	cp.Boundary = append(Polygon(nil), d.Boundary...)
	cp.Members = make([]HouseholdMember, len(d.Members))
	for i, m := range d.Members {
		cp.Members[i] = m.clone()
	}
	if d.UpdatedAt != nil {
		t := *d.UpdatedAt
		cp.UpdatedAt = &t
	}
	return &cp
}

func (m HouseholdMember) clone() HouseholdMember {
	cp := m
	if m.BirthDate != nil {
		b := *m.BirthDate
		cp.BirthDate = &b
	}
	return cp
}

func assignMemberIDs(members []HouseholdMember) []HouseholdMember {
	out := make([]HouseholdMember, 0, len(members))
	for _, m := range members {
		m = m.clone()
		m.Name = strings.TrimSpace(m.Name)
		if m.ID.IsNil() {
			m.ID = id.NewMemberID()
		}
		out = append(out, m)
	}
	return out
}

func cloneGeoPoint(p *GeoPoint) *GeoPoint {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func setTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
