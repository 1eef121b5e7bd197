package models

import id "wardregistry/pkg/domain"

// PayeeInPerson is shown when the subject collects the entitlement personally.
const PayeeInPerson = "in person"

// OwnerChoiceID is the synthetic household-choice id standing for the dwelling owner.
const OwnerChoiceID = "owner"

// Payee records who receives an entitlement on the subject's behalf.
//
// The zero value means "recipient in person". A delegate is either the dwelling
// owner or a household member referenced by id; DisplayName is the name at the
// time of selection and is only shown when the member no longer exists.
type Payee struct {
	Owner       bool         `json:"owner,omitempty"`
	MemberID    *id.MemberID `json:"member_id,omitempty"`
	DisplayName string       `json:"display_name,omitempty"`
}

func (p Payee) IsInPerson() bool {
	return !p.Owner && p.MemberID == nil
}

// ChoiceID returns the household-choice id this payee was selected from, or ""
// for in person.
func (p Payee) ChoiceID() string {
	switch {
	case p.Owner:
		return OwnerChoiceID
	case p.MemberID != nil:
		return p.MemberID.String()
	default:
		return ""
	}
}

func (p Payee) clone() Payee {
	cp := p
	if p.MemberID != nil {
		m := *p.MemberID
		cp.MemberID = &m
	}
	return cp
}
