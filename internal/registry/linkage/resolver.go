// Package linkage resolves what a beneficiary record's dwelling reference
// means for display: the dwelling's address and the people at it who may
// collect an entitlement on the subject's behalf.
package linkage

import (
	"strings"

	"wardregistry/internal/registry/models"
	id "wardregistry/pkg/domain"
	dErrors "wardregistry/pkg/domain-errors"
)

const (
	ownerMarker   = "(owner)"
	removedMarker = "(removed)"
)

// DwellingLookup is the read side of the dwelling store the resolver needs.
type DwellingLookup interface {
	Lookup(dwellingID id.DwellingID) (*models.Dwelling, bool)
}

// Choice is one "received on behalf of" option for a dwelling.
type Choice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Resolver struct {
	dwellings DwellingLookup
}

func New(dwellings DwellingLookup) *Resolver {
	return &Resolver{dwellings: dwellings}
}

// ResolveAddress returns "<house number> <street>" for the dwelling, or "" when
// the id is nil or unknown. Soft-deleted dwellings still resolve.
func (r *Resolver) ResolveAddress(dwellingID id.DwellingID) string {
	if dwellingID.IsNil() {
		return ""
	}
	d, ok := r.dwellings.Lookup(dwellingID)
	if !ok {
		return ""
	}
	return d.Address()
}

// ResolveHouseholdChoices lists the owner first, then household members in
// stored order. Unknown dwellings have no choices.
func (r *Resolver) ResolveHouseholdChoices(dwellingID id.DwellingID) []Choice {
	d, ok := r.lookup(dwellingID)
	if !ok {
		return nil
	}
	return choicesFor(d)
}

func choicesFor(d *models.Dwelling) []Choice {
	out := make([]Choice, 0, len(d.Members)+1)
	out = append(out, Choice{ID: models.OwnerChoiceID, Label: d.OwnerName + " " + ownerMarker})
	for _, m := range d.Members {
		out = append(out, Choice{ID: m.ID.String(), Label: memberLabel(m)})
	}
	return out
}

func memberLabel(m models.HouseholdMember) string {
	if strings.TrimSpace(m.Relationship) == "" {
		return m.Name
	}
	return m.Name + " (" + m.Relationship + ")"
}

// BindPayee turns a household-choice id into a stored payee. An empty choice
// means the subject collects in person. The display name is captured now so it
// can still be shown if the member is later removed from the dwelling.
func (r *Resolver) BindPayee(dwellingID id.DwellingID, choiceID string) (models.Payee, error) {
	choiceID = strings.TrimSpace(choiceID)
	if choiceID == "" {
		return models.Payee{}, nil
	}
	d, ok := r.lookup(dwellingID)
	if !ok {
		return models.Payee{}, dErrors.NewField(dErrors.CodeReferential, "linked_house_id", "linked dwelling does not exist")
	}
	if choiceID == models.OwnerChoiceID {
		return models.Payee{Owner: true, DisplayName: d.OwnerName}, nil
	}
	memberID, err := id.ParseMemberID(choiceID)
	if err != nil {
		return models.Payee{}, dErrors.NewField(dErrors.CodeReferential, "payee", "payee must be the owner or a household member")
	}
	m, ok := d.Member(memberID)
	if !ok {
		return models.Payee{}, dErrors.NewField(dErrors.CodeReferential, "payee", "payee is not a member of the linked household")
	}
	return models.Payee{MemberID: &memberID, DisplayName: m.Name}, nil
}

// ResolvePayee renders the payee for a record linked to dwellingID: "in person"
// for an empty payee, the live owner or member name otherwise, and the stored
// snapshot marked as removed when the member has left the household.
func (r *Resolver) ResolvePayee(dwellingID id.DwellingID, p models.Payee) string {
	if p.IsInPerson() {
		return models.PayeeInPerson
	}
	d, ok := r.lookup(dwellingID)
	if p.Owner {
		if ok {
			return d.OwnerName
		}
		return p.DisplayName
	}
	if ok {
		if m, found := d.Member(*p.MemberID); found {
			return m.Name
		}
	}
	return strings.TrimSpace(p.DisplayName + " " + removedMarker)
}

func (r *Resolver) lookup(dwellingID id.DwellingID) (*models.Dwelling, bool) {
	if dwellingID.IsNil() {
		return nil, false
	}
	return r.dwellings.Lookup(dwellingID)
}
