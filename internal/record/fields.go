package record

// ExtractedFields is the canonical fact set pulled out of an analysis record.
// Every field is optional; the empty string means the fact is unknown.
type ExtractedFields struct {
	SenderName    string
	SenderEmail   string
	SenderPhone   string
	SenderAddress string

	CourtName    string
	CourtAddress string
	CourtWebsite string

	CaseNumber        string
	Website           string
	AppearanceDateISO string

	Sources []string
}

// Alias priority lists for each canonical field. Extractor versions have
// used different key names over time; first non-empty match wins.
var fieldAliases = map[string][]string{
	"senderName":    {"issuingParty", "senderName", "attorneyName", "from"},
	"senderEmail":   {"senderEmail", "contactEmail", "email"},
	"senderPhone":   {"senderPhone", "contactPhone", "phone"},
	"senderAddress": {"senderAddress", "returnAddress", "mailingAddress"},
	"courtName":     {"courtName", "court", "tribunal"},
	"courtAddress":  {"courtAddress", "courthouseAddress"},
	"courtWebsite":  {"courtWebsite", "portalUrl"},
	"caseNumber":    {"caseNumber", "caseNo", "docketNumber"},
	"website":       {"website", "url"},
	"appearanceDateIso": {
		"appearanceDateIso", "appearanceDate", "hearingDate", "courtDate",
	},
}

// Normalize extracts the canonical fact set from an analysis record.
// A nil record yields the zero value. Malformed values are omitted,
// never reported as errors.
func Normalize(rec AnalysisRecord) ExtractedFields {
	if rec == nil {
		return ExtractedFields{}
	}

	pick := func(field string) string {
		for _, key := range fieldAliases[field] {
			if s := AsString(rec[key]); s != "" {
				return s
			}
		}
		return ""
	}

	return ExtractedFields{
		SenderName:        pick("senderName"),
		SenderEmail:       pick("senderEmail"),
		SenderPhone:       pick("senderPhone"),
		SenderAddress:     pick("senderAddress"),
		CourtName:         pick("courtName"),
		CourtAddress:      pick("courtAddress"),
		CourtWebsite:      pick("courtWebsite"),
		CaseNumber:        pick("caseNumber"),
		Website:           pick("website"),
		AppearanceDateISO: pick("appearanceDateIso"),
		Sources:           AsStringSlice(rec["sources"]),
	}
}

// HasSenderContact reports whether at least one direct contact route to the
// sender (email, phone, or mailing address) is known.
func (f ExtractedFields) HasSenderContact() bool {
	return f.SenderEmail != "" || f.SenderPhone != "" || f.SenderAddress != ""
}

// HasCourt reports whether any court identification is known.
func (f ExtractedFields) HasCourt() bool {
	return f.CourtName != "" || f.CourtAddress != "" || f.CourtWebsite != "" || f.CaseNumber != ""
}
