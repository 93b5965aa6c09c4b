// Package classify maps raw extraction signals onto the closed classification
// sets the guidance engine branches on: the document family and the
// time-sensitivity tier of a deadline.
package classify

import "strings"

// DocumentFamily is the legal category of a notice. It drives which response
// plan, template, and outline apply downstream.
type DocumentFamily string

// Document family variants. FamilyOther is the universal fallback.
const (
	FamilySummons               DocumentFamily = "summons"
	FamilySmallClaims           DocumentFamily = "small_claims"
	FamilySubpoena              DocumentFamily = "subpoena"
	FamilyCeaseAndDesist        DocumentFamily = "cease_and_desist"
	FamilyCollectionsValidation DocumentFamily = "collections_validation"
	FamilyDebtCollection        DocumentFamily = "debt_collection"
	FamilyEviction              DocumentFamily = "eviction"
	FamilyAgencyNotice          DocumentFamily = "agency_notice"
	FamilyDemandLetter          DocumentFamily = "demand_letter"
	FamilyLien                  DocumentFamily = "lien"
	FamilyOther                 DocumentFamily = "other"
)

// familyRule is one ordered classification predicate.
type familyRule struct {
	family DocumentFamily
	match  func(label string) bool
}

func containsAny(label string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(label, term) {
			return true
		}
	}
	return false
}

func containsAll(label string, terms ...string) bool {
	for _, term := range terms {
		if !strings.Contains(label, term) {
			return false
		}
	}
	return true
}

// familyRules is evaluated top to bottom; the first match wins. Order is
// load-bearing: several categories share keywords (a debt validation notice
// must classify as collections_validation before the plain debt/collection
// rule can claim it, and specific filings must win over the broad
// summons/complaint rule).
var familyRules = []familyRule{
	{FamilySubpoena, func(l string) bool {
		return containsAny(l, "subpoena", "duces")
	}},
	{FamilySmallClaims, func(l string) bool {
		return containsAll(l, "small", "claim")
	}},
	{FamilySummons, func(l string) bool {
		return containsAny(l, "summons", "complaint", "petition")
	}},
	{FamilyCeaseAndDesist, func(l string) bool {
		return containsAny(l, "cease", "desist")
	}},
	{FamilyCollectionsValidation, func(l string) bool {
		return strings.Contains(l, "validation") && containsAny(l, "debt", "collection")
	}},
	{FamilyDebtCollection, func(l string) bool {
		return containsAny(l, "debt", "collection")
	}},
	{FamilyEviction, func(l string) bool {
		return containsAny(l, "eviction", "unlawful detainer", "notice to quit", "pay or quit")
	}},
	{FamilyAgencyNotice, func(l string) bool {
		return containsAny(l, "agency", "administrative", "government")
	}},
	{FamilyDemandLetter, func(l string) bool {
		return strings.Contains(l, "demand")
	}},
	{FamilyLien, func(l string) bool {
		return strings.Contains(l, "lien")
	}},
}

// ClassifyFamily maps a free-text document-type label to a document family.
// The label is matched case-insensitively; an empty or unrecognized label
// classifies as FamilyOther.
func ClassifyFamily(label string) DocumentFamily {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if normalized == "" {
		return FamilyOther
	}

	for _, rule := range familyRules {
		if rule.match(normalized) {
			return rule.family
		}
	}
	return FamilyOther
}
