package classify

import "testing"

func TestClassifyFamily(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected DocumentFamily
	}{
		{"summons and complaint", "Summons and Complaint", FamilySummons},
		{"petition", "Petition for Damages", FamilySummons},
		{"small claims", "Small Claims Notice", FamilySmallClaims},
		{"subpoena", "Subpoena Duces Tecum", FamilySubpoena},
		{"cease and desist", "Cease and Desist Letter", FamilyCeaseAndDesist},
		{"debt validation", "Debt Validation Notice", FamilyCollectionsValidation},
		{"collection validation", "Collection Validation Request", FamilyCollectionsValidation},
		{"plain debt collection", "Debt Collection Notice", FamilyDebtCollection},
		{"eviction", "eviction notice", FamilyEviction},
		{"unlawful detainer", "Unlawful Detainer", FamilyEviction},
		{"pay or quit", "3-Day Notice to Pay or Quit", FamilyEviction},
		{"agency", "Administrative Notice of Determination", FamilyAgencyNotice},
		{"demand", "Demand for Payment", FamilyDemandLetter},
		{"lien", "Notice of Mechanic's Lien", FamilyLien},
		{"empty label", "", FamilyOther},
		{"whitespace label", "   ", FamilyOther},
		{"unknown label", "Holiday Greetings", FamilyOther},
		{"mixed case", "SUMMONS", FamilySummons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyFamily(tt.label); got != tt.expected {
				t.Errorf("ClassifyFamily(%q) = %s, want %s", tt.label, got, tt.expected)
			}
		})
	}
}

// Rule order is observable behavior: labels matching several rules must
// resolve to the earliest one.
func TestClassifyFamilyRuleOrder(t *testing.T) {
	// "small claims summons" matches both small_claims and summons;
	// small_claims is evaluated first.
	if got := ClassifyFamily("Small Claims Summons"); got != FamilySmallClaims {
		t.Errorf("Expected small_claims to outrank summons, got %s", got)
	}

	// A validation notice also contains "debt" but must not fall through
	// to the plain debt/collection rule.
	if got := ClassifyFamily("Debt Validation Notice"); got != FamilyCollectionsValidation {
		t.Errorf("Expected collections_validation to outrank debt_collection, got %s", got)
	}

	// A subpoena issued in a small claims case is still a subpoena.
	if got := ClassifyFamily("Small Claims Subpoena"); got != FamilySubpoena {
		t.Errorf("Expected subpoena to outrank small_claims, got %s", got)
	}
}

func TestClassifyFamilyDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := ClassifyFamily("eviction notice"); got != FamilyEviction {
			t.Fatalf("Run %d: got %s", i, got)
		}
	}
}
