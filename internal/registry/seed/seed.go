// Package seed loads a registry snapshot from YAML. It backs `wardctl report`
// and `wardctl export` and can pre-populate the server at startup.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"wardregistry/internal/registry/models"
	"wardregistry/internal/registry/query"
	"wardregistry/internal/registry/service"
	id "wardregistry/pkg/domain"
	"wardregistry/pkg/requestcontext"
)

// File is the YAML document.
//
//	catalogs:
//	  military_rank:
//	    - {code: TS, name: Trung sĩ}
//	dwellings:
//	  - key: h1
//	    house_number: "12"
//	    owner_name: Nguyen Van A
//	    members: [{name: Tran Thi B, relationship: Vợ}]
//	records:
//	  merit:
//	    - dwelling: h1
//	      subject_name: Nguyen Van A
//	      classification_name: Thương binh
//	      subsidy_amount: 500000
//	      payee: Tran Thi B
type File struct {
	Actor     string                      `yaml:"actor"`
	Catalogs  map[string][]CatalogEntry   `yaml:"catalogs"`
	Dwellings []Dwelling                  `yaml:"dwellings"`
	Records   map[string][]BeneficiaryRow `yaml:"records"`
}

type CatalogEntry struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type Member struct {
	Name         string `yaml:"name"`
	Relationship string `yaml:"relationship"`
	NationalID   string `yaml:"national_id"`
	BirthDate    string `yaml:"birth_date"`
	Deceased     bool   `yaml:"deceased"`
}

// Dwelling is one seeded dwelling. Key is how records refer to it.
type Dwelling struct {
	Key             string           `yaml:"key"`
	HouseNumber     string           `yaml:"house_number"`
	StreetName      string           `yaml:"street_name"`
	Neighborhood    string           `yaml:"neighborhood"`
	OwnerName       string           `yaml:"owner_name"`
	OwnerNationalID string           `yaml:"owner_national_id"`
	CadastralSheet  string           `yaml:"cadastral_sheet"`
	CadastralParcel string           `yaml:"cadastral_parcel"`
	Disputed        bool             `yaml:"disputed"`
	Location        *models.GeoPoint `yaml:"location"`
	Boundary        string           `yaml:"boundary"`
	Members         []Member         `yaml:"members"`
	Note            string           `yaml:"note"`
	CreatedAt       string           `yaml:"created_at"`
	Inactive        bool             `yaml:"inactive"`
}

// BeneficiaryRow is one seeded record. Payee is empty for in person, "owner",
// or the name of a household member.
type BeneficiaryRow struct {
	Dwelling           string `yaml:"dwelling"`
	SubjectName        string `yaml:"subject_name"`
	SubjectNationalID  string `yaml:"subject_national_id"`
	Relationship       string `yaml:"relationship"`
	ClassificationCode string `yaml:"classification_code"`
	ClassificationName string `yaml:"classification_name"`
	SubsidyAmount      int64  `yaml:"subsidy_amount"`
	Payee              string `yaml:"payee"`
	BankName           string `yaml:"bank_name"`
	BankAccount        string `yaml:"bank_account"`
	Note               string `yaml:"note"`
	CreatedAt          string `yaml:"created_at"`
	Inactive           bool   `yaml:"inactive"`
}

// Registry is the subset of the service a seed is applied through, so seeded
// data passes the same validation as interactive input.
type Registry interface {
	CreateCatalogEntry(ctx context.Context, kind models.CatalogKind, code, name string) (*models.CatalogEntry, error)
	CreateDwelling(ctx context.Context, draft models.DwellingDraft) (*models.Dwelling, error)
	SoftDeleteDwelling(ctx context.Context, dwellingID id.DwellingID) (*models.Dwelling, error)
	CreateRecord(ctx context.Context, category models.Category, in service.RecordInput) (*models.BeneficiaryRecord, error)
	SoftDeleteRecord(ctx context.Context, category models.Category, recordID id.RecordID) (*models.BeneficiaryRecord, error)
}

// Result counts what a seed created.
type Result struct {
	Catalogs  int
	Dwellings int
	Records   map[models.Category]int
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &f, nil
}

// LoadFile parses the seed at path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer fh.Close()
	return Parse(fh)
}

// Apply writes f through reg: catalogs, then dwellings, then records. Entries
// marked inactive are soft-deleted after creation. created_at dates are read
// in loc and stamped at 09:00 that day.
func Apply(ctx context.Context, reg Registry, f *File, loc *time.Location) (*Result, error) {
	if loc == nil {
		loc = time.UTC
	}
	if f.Actor != "" {
		ctx = requestcontext.WithActor(ctx, f.Actor)
	}
	for rawCategory := range f.Records {
		if c, err := models.ParseBeneficiaryCategory(rawCategory); err != nil || string(c) != rawCategory {
			return nil, fmt.Errorf("records: unknown category %q", rawCategory)
		}
	}
	res := &Result{Records: make(map[models.Category]int)}

	for rawKind, entries := range f.Catalogs {
		kind, err := models.ParseCatalogKind(rawKind)
		if err != nil {
			return nil, fmt.Errorf("catalog %q: %w", rawKind, err)
		}
		for _, e := range entries {
			if _, err := reg.CreateCatalogEntry(ctx, kind, e.Code, e.Name); err != nil {
				return nil, fmt.Errorf("catalog %s/%s: %w", kind, e.Code, err)
			}
			res.Catalogs++
		}
	}

	dwellings := make(map[string]*models.Dwelling, len(f.Dwellings))
	for i, sd := range f.Dwellings {
		key := sd.Key
		if key == "" {
			key = fmt.Sprintf("#%d", i+1)
		}
		if _, dup := dwellings[key]; dup {
			return nil, fmt.Errorf("dwelling %s: duplicate key", key)
		}
		dctx, err := at(ctx, sd.CreatedAt, loc)
		if err != nil {
			return nil, fmt.Errorf("dwelling %s: %w", key, err)
		}
		draft, err := sd.draft(loc)
		if err != nil {
			return nil, fmt.Errorf("dwelling %s: %w", key, err)
		}
		d, err := reg.CreateDwelling(dctx, draft)
		if err != nil {
			return nil, fmt.Errorf("dwelling %s: %w", key, err)
		}
		dwellings[key] = d
		res.Dwellings++
	}

	for _, category := range models.BeneficiaryCategories() {
		for i, row := range f.Records[string(category)] {
			d, ok := dwellings[row.Dwelling]
			if !ok {
				return nil, fmt.Errorf("%s record %d: unknown dwelling key %q", category, i+1, row.Dwelling)
			}
			rctx, err := at(ctx, row.CreatedAt, loc)
			if err != nil {
				return nil, fmt.Errorf("%s record %d: %w", category, i+1, err)
			}
			choice, err := payeeChoice(d, row.Payee)
			if err != nil {
				return nil, fmt.Errorf("%s record %d: %w", category, i+1, err)
			}
			rec, err := reg.CreateRecord(rctx, category, service.RecordInput{
				LinkedHouseID:      d.ID,
				SubjectName:        row.SubjectName,
				SubjectNationalID:  row.SubjectNationalID,
				Relationship:       row.Relationship,
				ClassificationCode: row.ClassificationCode,
				ClassificationName: row.ClassificationName,
				SubsidyAmount:      row.SubsidyAmount,
				PayeeChoice:        choice,
				BankName:           row.BankName,
				BankAccount:        row.BankAccount,
				Note:               row.Note,
			})
			if err != nil {
				return nil, fmt.Errorf("%s record %d: %w", category, i+1, err)
			}
			if row.Inactive {
				if _, err := reg.SoftDeleteRecord(rctx, category, rec.ID); err != nil {
					return nil, fmt.Errorf("%s record %d: %w", category, i+1, err)
				}
			}
			res.Records[category]++
		}
	}

	// Dwellings go inactive last so their records could still link to them.
	for i, sd := range f.Dwellings {
		if !sd.Inactive {
			continue
		}
		key := sd.Key
		if key == "" {
			key = fmt.Sprintf("#%d", i+1)
		}
		dctx, _ := at(ctx, sd.CreatedAt, loc)
		if _, err := reg.SoftDeleteDwelling(dctx, dwellings[key].ID); err != nil {
			return nil, fmt.Errorf("dwelling %s: %w", key, err)
		}
	}
	return res, nil
}

func at(ctx context.Context, date string, loc *time.Location) (context.Context, error) {
	t, err := query.ParseDate("created_at", date, loc)
	if err != nil || t == nil {
		return ctx, err
	}
	return requestcontext.WithTime(ctx, t.Add(9*time.Hour)), nil
}

func (sd Dwelling) draft(loc *time.Location) (models.DwellingDraft, error) {
	draft := models.DwellingDraft{
		HouseNumber:     sd.HouseNumber,
		StreetName:      sd.StreetName,
		Neighborhood:    sd.Neighborhood,
		OwnerName:       sd.OwnerName,
		OwnerNationalID: sd.OwnerNationalID,
		CadastralSheet:  sd.CadastralSheet,
		CadastralParcel: sd.CadastralParcel,
		Disputed:        sd.Disputed,
		Location:        sd.Location,
		Note:            sd.Note,
	}
	if strings.TrimSpace(sd.Boundary) != "" {
		p, err := models.ParsePolygon(sd.Boundary)
		if err != nil {
			return models.DwellingDraft{}, err
		}
		draft.Boundary = p
	}
	for _, m := range sd.Members {
		born, err := query.ParseDate("birth_date", m.BirthDate, loc)
		if err != nil {
			return models.DwellingDraft{}, err
		}
		draft.Members = append(draft.Members, models.HouseholdMember{
			Name:         m.Name,
			Relationship: m.Relationship,
			NationalID:   m.NationalID,
			BirthDate:    born,
			Deceased:     m.Deceased,
		})
	}
	return draft, nil
}

func payeeChoice(d *models.Dwelling, payee string) (string, error) {
	payee = strings.TrimSpace(payee)
	switch {
	case payee == "":
		return "", nil
	case strings.EqualFold(payee, models.OwnerChoiceID):
		return models.OwnerChoiceID, nil
	}
	for _, m := range d.Members {
		if strings.EqualFold(m.Name, payee) {
			return m.ID.String(), nil
		}
	}
	return "", fmt.Errorf("payee %q is not a member of dwelling %s", payee, d.CaseNumber)
}
