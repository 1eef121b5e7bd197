package query

import (
	"wardregistry/internal/registry/models"
	id "wardregistry/pkg/domain"
)

// AddressResolver turns a dwelling reference into its display address.
type AddressResolver interface {
	ResolveAddress(dwellingID id.DwellingID) string
}

// DwellingFields indexes a dwelling by its address, case number, owner,
// location names and note. National and cadastral numbers match exactly.
func DwellingFields(d *models.Dwelling) Fields {
	return Fields{
		Folded: []string{d.Address(), d.CaseNumber, d.OwnerName, d.Neighborhood, d.Note},
		Exact:  []string{d.OwnerNationalID, d.CadastralSheet, d.CadastralParcel},
	}
}

// BeneficiaryIndexer indexes a beneficiary record by its linked dwelling's
// address, subject, classification and note. The subject's national id
// matches exactly.
func BeneficiaryIndexer(addresses AddressResolver) Indexer[*models.BeneficiaryRecord] {
	return func(r *models.BeneficiaryRecord) Fields {
		return Fields{
			Folded: []string{
				addresses.ResolveAddress(r.LinkedHouseID),
				r.SubjectName,
				r.Classification.Name,
				r.Note,
			},
			Exact: []string{r.SubjectNationalID},
		}
	}
}
