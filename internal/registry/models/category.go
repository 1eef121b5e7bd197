package models

import (
	"strings"

	dErrors "wardregistry/pkg/domain-errors"
)

// Category names a record collection. Dwelling is the anchor collection; the
// other five are beneficiary categories and are never mixed.
type Category string

const (
	CategoryDwelling         Category = "dwelling"
	CategoryMilitary         Category = "military"
	CategoryMerit            Category = "merit"
	CategoryMedal            Category = "medal"
	CategoryPolicy           Category = "policy"
	CategorySocialProtection Category = "social_protection"
)

// BeneficiaryCategories lists the five beneficiary collections in report order.
func BeneficiaryCategories() []Category {
	return []Category{
		CategoryMilitary,
		CategoryMerit,
		CategoryMedal,
		CategoryPolicy,
		CategorySocialProtection,
	}
}

// AllCategories lists every collection, dwelling first.
func AllCategories() []Category {
	return append([]Category{CategoryDwelling}, BeneficiaryCategories()...)
}

// ParseCategory accepts a category tag, also tolerating dashes for social-protection.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, known := range AllCategories() {
		if c == known {
			return c, nil
		}
	}
	return "", dErrors.NewField(dErrors.CodeInvalidInput, "category", "unknown category")
}

// ParseBeneficiaryCategory is ParseCategory restricted to the five beneficiary kinds.
func ParseBeneficiaryCategory(s string) (Category, error) {
	c, err := ParseCategory(s)
	if err != nil {
		return "", err
	}
	if !c.IsBeneficiary() {
		return "", dErrors.NewField(dErrors.CodeInvalidInput, "category", "not a beneficiary category")
	}
	return c, nil
}

func (c Category) IsBeneficiary() bool {
	return c != CategoryDwelling && c != ""
}

// Monetary reports whether subsidy amounts in this category count toward the
// combined budget. Military records are excluded even when they carry an amount.
func (c Category) Monetary() bool {
	switch c {
	case CategoryMerit, CategoryMedal, CategoryPolicy, CategorySocialProtection:
		return true
	default:
		return false
	}
}

// ClassificationKind is the catalog that supplies this category's classification values.
func (c Category) ClassificationKind() CatalogKind {
	switch c {
	case CategoryMilitary:
		return CatalogMilitaryRank
	case CategoryMerit:
		return CatalogMeritType
	case CategoryMedal:
		return CatalogMedalType
	case CategoryPolicy:
		return CatalogPolicyType
	case CategorySocialProtection:
		return CatalogProtectionType
	default:
		return ""
	}
}

// Label is the display name used in export headers and file names.
func (c Category) Label() string {
	switch c {
	case CategoryDwelling:
		return "Số nhà"
	case CategoryMilitary:
		return "Quân nhân"
	case CategoryMerit:
		return "Người có công"
	case CategoryMedal:
		return "Huân huy chương"
	case CategoryPolicy:
		return "Chính sách"
	case CategorySocialProtection:
		return "Bảo trợ xã hội"
	default:
		return string(c)
	}
}

func (c Category) String() string {
	return string(c)
}
