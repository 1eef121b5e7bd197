package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"wardregistry/internal/registry/models"
	"wardregistry/internal/registry/query"
	"wardregistry/internal/registry/service"
	id "wardregistry/pkg/domain"
	dErrors "wardregistry/pkg/domain-errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// checkStruct runs the struct tags and reports the first failure as a field
// validation error.
func checkStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request")
	}
	fe := fieldErrs[0]
	field := fieldPath(fe)
	return dErrors.NewField(dErrors.CodeValidation, field, fieldMessage(field, fe))
}

// fieldPath drops the request type and embedded struct names from the
// validator namespace, leaving e.g. "drafts[1].subject_name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ReplaceAll(ns, "recordFields.", "")
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return field + " is required"
	case "uuid":
		return field + " must be a valid id"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, fe.Param())
	case "min":
		return field + " must not be empty"
	default:
		return field + " is invalid"
	}
}

type memberRequest struct {
	ID           string `json:"id" validate:"omitempty,uuid"`
	Name         string `json:"name" validate:"required,max=200"`
	Relationship string `json:"relationship" validate:"max=100"`
	NationalID   string `json:"national_id" validate:"max=20"`
	BirthDate    string `json:"birth_date"`
	Deceased     bool   `json:"deceased"`
}

func (m memberRequest) toModel(index int) (models.HouseholdMember, error) {
	out := models.HouseholdMember{
		Name:         strings.TrimSpace(m.Name),
		Relationship: strings.TrimSpace(m.Relationship),
		NationalID:   strings.TrimSpace(m.NationalID),
		Deceased:     m.Deceased,
	}
	if m.ID != "" {
		memberID, err := id.ParseMemberID(m.ID)
		if err != nil {
			return models.HouseholdMember{}, err
		}
		out.ID = memberID
	}
	born, err := query.ParseDate(fmt.Sprintf("members[%d].birth_date", index), m.BirthDate, nil)
	if err != nil {
		return models.HouseholdMember{}, err
	}
	out.BirthDate = born
	return out, nil
}

func membersToModel(in []memberRequest) ([]models.HouseholdMember, error) {
	out := make([]models.HouseholdMember, 0, len(in))
	for i, m := range in {
		member, err := m.toModel(i)
		if err != nil {
			return nil, err
		}
		out = append(out, member)
	}
	return out, nil
}

// CreateDwellingRequest is the body of POST /dwellings. Boundary takes pasted
// "lat,lng" lines.
type CreateDwellingRequest struct {
	HouseNumber     string           `json:"house_number" validate:"required,max=32"`
	StreetName      string           `json:"street_name" validate:"max=200"`
	Neighborhood    string           `json:"neighborhood" validate:"max=200"`
	OwnerName       string           `json:"owner_name" validate:"required,max=200"`
	OwnerNationalID string           `json:"owner_national_id" validate:"max=20"`
	CadastralSheet  string           `json:"cadastral_sheet" validate:"max=32"`
	CadastralParcel string           `json:"cadastral_parcel" validate:"max=32"`
	Disputed        bool             `json:"disputed"`
	Location        *models.GeoPoint `json:"location"`
	Boundary        string           `json:"boundary"`
	Members         []memberRequest  `json:"members" validate:"dive"`
	Note            string           `json:"note"`

	draft models.DwellingDraft
}

func (r *CreateDwellingRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := checkStruct(r); err != nil {
		return err
	}
	if r.Location != nil && !r.Location.Valid() {
		return dErrors.NewField(dErrors.CodeValidation, "location", "location is outside valid coordinates")
	}
	var boundary models.Polygon
	if strings.TrimSpace(r.Boundary) != "" {
		p, err := models.ParsePolygon(r.Boundary)
		if err != nil {
			return err
		}
		boundary = p
	}
	members, err := membersToModel(r.Members)
	if err != nil {
		return err
	}
	r.draft = models.DwellingDraft{
		HouseNumber:     r.HouseNumber,
		StreetName:      r.StreetName,
		Neighborhood:    r.Neighborhood,
		OwnerName:       r.OwnerName,
		OwnerNationalID: r.OwnerNationalID,
		CadastralSheet:  r.CadastralSheet,
		CadastralParcel: r.CadastralParcel,
		Disputed:        r.Disputed,
		Location:        r.Location,
		Boundary:        boundary,
		Members:         members,
		Note:            r.Note,
	}
	return nil
}

func (r *CreateDwellingRequest) Draft() models.DwellingDraft {
	return r.draft
}

// UpdateDwellingRequest is the body of PATCH /dwellings/{id}. Absent fields are
// left unchanged; members, when present, replaces the whole list.
type UpdateDwellingRequest struct {
	HouseNumber     *string          `json:"house_number" validate:"omitempty,max=32"`
	StreetName      *string          `json:"street_name" validate:"omitempty,max=200"`
	Neighborhood    *string          `json:"neighborhood" validate:"omitempty,max=200"`
	OwnerName       *string          `json:"owner_name" validate:"omitempty,max=200"`
	OwnerNationalID *string          `json:"owner_national_id" validate:"omitempty,max=20"`
	CadastralSheet  *string          `json:"cadastral_sheet" validate:"omitempty,max=32"`
	CadastralParcel *string          `json:"cadastral_parcel" validate:"omitempty,max=32"`
	Disputed        *bool            `json:"disputed"`
	Location        *models.GeoPoint `json:"location"`
	Boundary        *string          `json:"boundary"`
	Members         *[]memberRequest `json:"members" validate:"omitempty,dive"`
	Note            *string          `json:"note"`

	patch models.DwellingPatch
}

func (r *UpdateDwellingRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := checkStruct(r); err != nil {
		return err
	}
	if r.Location != nil && !r.Location.Valid() {
		return dErrors.NewField(dErrors.CodeValidation, "location", "location is outside valid coordinates")
	}
	r.patch = models.DwellingPatch{
		HouseNumber:     r.HouseNumber,
		StreetName:      r.StreetName,
		Neighborhood:    r.Neighborhood,
		OwnerName:       r.OwnerName,
		OwnerNationalID: r.OwnerNationalID,
		CadastralSheet:  r.CadastralSheet,
		CadastralParcel: r.CadastralParcel,
		Disputed:        r.Disputed,
		Location:        r.Location,
		Note:            r.Note,
	}
	if r.Boundary != nil {
		var boundary models.Polygon
		if strings.TrimSpace(*r.Boundary) != "" {
			p, err := models.ParsePolygon(*r.Boundary)
			if err != nil {
				return err
			}
			boundary = p
		}
		r.patch.Boundary = &boundary
	}
	if r.Members != nil {
		members, err := membersToModel(*r.Members)
		if err != nil {
			return err
		}
		r.patch.Members = &members
	}
	return nil
}

func (r *UpdateDwellingRequest) Patch() models.DwellingPatch {
	return r.patch
}

// recordFields is the record content shared by single and batch create.
type recordFields struct {
	SubjectName        string `json:"subject_name" validate:"required,max=200"`
	SubjectNationalID  string `json:"subject_national_id" validate:"max=20"`
	Relationship       string `json:"relationship" validate:"max=100"`
	ClassificationCode string `json:"classification_code" validate:"max=64"`
	ClassificationName string `json:"classification_name" validate:"required_without=ClassificationCode,max=200"`
	SubsidyAmount      int64  `json:"subsidy_amount" validate:"gte=0"`
	PayeeChoice        string `json:"payee_choice"`
	BankName           string `json:"bank_name" validate:"max=200"`
	BankAccount        string `json:"bank_account" validate:"max=64"`
	Note               string `json:"note"`
}

func (f recordFields) input(dwellingID id.DwellingID) service.RecordInput {
	return service.RecordInput{
		LinkedHouseID:      dwellingID,
		SubjectName:        f.SubjectName,
		SubjectNationalID:  f.SubjectNationalID,
		Relationship:       f.Relationship,
		ClassificationCode: strings.TrimSpace(f.ClassificationCode),
		ClassificationName: f.ClassificationName,
		SubsidyAmount:      f.SubsidyAmount,
		PayeeChoice:        strings.TrimSpace(f.PayeeChoice),
		BankName:           f.BankName,
		BankAccount:        f.BankAccount,
		Note:               f.Note,
	}
}

// CreateRecordRequest is the body of POST /records/{category}.
type CreateRecordRequest struct {
	LinkedHouseID string `json:"linked_house_id" validate:"required,uuid"`
	recordFields

	dwellingID id.DwellingID
}

func (r *CreateRecordRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := checkStruct(r); err != nil {
		return err
	}
	dwellingID, err := id.ParseDwellingID(r.LinkedHouseID)
	if err != nil {
		return dErrors.NewField(dErrors.CodeValidation, "linked_house_id", "a dwelling must be selected")
	}
	r.dwellingID = dwellingID
	return nil
}

func (r *CreateRecordRequest) Input() service.RecordInput {
	return r.recordFields.input(r.dwellingID)
}

// BatchCreateRequest is the body of POST /records/{category}/batch: several
// drafts for one dwelling.
type BatchCreateRequest struct {
	LinkedHouseID string         `json:"linked_house_id" validate:"required,uuid"`
	Drafts        []recordFields `json:"drafts" validate:"required,min=1,dive"`

	dwellingID id.DwellingID
}

func (r *BatchCreateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := checkStruct(r); err != nil {
		return err
	}
	dwellingID, err := id.ParseDwellingID(r.LinkedHouseID)
	if err != nil {
		return dErrors.NewField(dErrors.CodeValidation, "linked_house_id", "a dwelling must be selected")
	}
	r.dwellingID = dwellingID
	return nil
}

func (r *BatchCreateRequest) DwellingID() id.DwellingID {
	return r.dwellingID
}

func (r *BatchCreateRequest) Inputs() []service.RecordInput {
	out := make([]service.RecordInput, len(r.Drafts))
	for i, d := range r.Drafts {
		out[i] = d.input(r.dwellingID)
	}
	return out
}

// UpdateRecordRequest is the body of PATCH /records/{category}/{id}.
type UpdateRecordRequest struct {
	LinkedHouseID      *string `json:"linked_house_id" validate:"omitempty,uuid"`
	SubjectName        *string `json:"subject_name" validate:"omitempty,max=200"`
	SubjectNationalID  *string `json:"subject_national_id" validate:"omitempty,max=20"`
	Relationship       *string `json:"relationship" validate:"omitempty,max=100"`
	ClassificationCode *string `json:"classification_code" validate:"omitempty,max=64"`
	ClassificationName *string `json:"classification_name" validate:"omitempty,max=200"`
	SubsidyAmount      *int64  `json:"subsidy_amount" validate:"omitempty,gte=0"`
	PayeeChoice        *string `json:"payee_choice"`
	BankName           *string `json:"bank_name" validate:"omitempty,max=200"`
	BankAccount        *string `json:"bank_account" validate:"omitempty,max=64"`
	Note               *string `json:"note"`

	patch service.RecordPatch
}

func (r *UpdateRecordRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := checkStruct(r); err != nil {
		return err
	}
	r.patch = service.RecordPatch{
		SubjectName:        r.SubjectName,
		SubjectNationalID:  r.SubjectNationalID,
		Relationship:       r.Relationship,
		ClassificationCode: r.ClassificationCode,
		ClassificationName: r.ClassificationName,
		SubsidyAmount:      r.SubsidyAmount,
		PayeeChoice:        r.PayeeChoice,
		BankName:           r.BankName,
		BankAccount:        r.BankAccount,
		Note:               r.Note,
	}
	if r.LinkedHouseID != nil {
		dwellingID, err := id.ParseDwellingID(*r.LinkedHouseID)
		if err != nil {
			return dErrors.NewField(dErrors.CodeValidation, "linked_house_id", "a dwelling must be selected")
		}
		r.patch.LinkedHouseID = &dwellingID
	}
	return nil
}

func (r *UpdateRecordRequest) Patch() service.RecordPatch {
	return r.patch
}

// CatalogEntryRequest is the body of POST /catalogs/{kind}.
type CatalogEntryRequest struct {
	Code string `json:"code" validate:"required,max=64"`
	Name string `json:"name" validate:"required,max=200"`
}

func (r *CatalogEntryRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return checkStruct(r)
}

// RenameCatalogEntryRequest is the body of PATCH /catalogs/{kind}/{id}.
type RenameCatalogEntryRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

func (r *RenameCatalogEntryRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return checkStruct(r)
}

// PolygonRequest is the body of POST /geometry/polygon.
type PolygonRequest struct {
	Text string `json:"text" validate:"required"`

	polygon models.Polygon
}

func (r *PolygonRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := checkStruct(r); err != nil {
		return err
	}
	p, err := models.ParsePolygon(r.Text)
	if err != nil {
		return err
	}
	r.polygon = p
	return nil
}
