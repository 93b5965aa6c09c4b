package guidance

import (
	"github.com/rmoran/noticeguide/internal/classify"
	"github.com/rmoran/noticeguide/internal/record"
)

// RequiredAction is one concrete real-world action a recipient must take.
type RequiredAction string

// Required actions. Order within a plan matters: steps are generated in
// plan order.
const (
	ActionRespond          RequiredAction = "respond"
	ActionAppear           RequiredAction = "appear"
	ActionProduceDocuments RequiredAction = "produce_documents"
	ActionFileAnswer       RequiredAction = "file_answer"
	ActionDispute          RequiredAction = "dispute"
	ActionPay              RequiredAction = "pay"
	ActionNegotiate        RequiredAction = "negotiate"
)

// ResponsePlan is the ordered set of required actions implied by a document
// family plus its known facts, along with the routing carried through from
// the signals.
type ResponsePlan struct {
	RequiredActions []RequiredAction    `json:"requiredActions"`
	ProofToKeep     []string            `json:"proofToKeep"`
	Destination     ResponseDestination `json:"destination"`
	Channels        []ResponseChannel   `json:"channels"`
	DeadlineISO     string              `json:"deadlineIso,omitempty"`
}

// proofToKeep applies to every family: recipients should preserve the same
// paper trail no matter what kind of notice arrived.
var proofToKeep = []string{
	"The original notice and its envelope",
	"Proof of mailing or delivery receipts for anything you send",
	"Dated notes of every phone call or conversation",
}

// BuildPlan derives the ordered required actions for a document.
// Destination, channels, and deadline pass through from signals unchanged.
func BuildPlan(family classify.DocumentFamily, fields record.ExtractedFields, signals ResponseSignals) ResponsePlan {
	var actions []RequiredAction

	switch family {
	case classify.FamilySummons, classify.FamilySmallClaims:
		switch {
		case fields.AppearanceDateISO != "":
			actions = []RequiredAction{ActionAppear}
		case fields.CourtName != "":
			actions = []RequiredAction{ActionFileAnswer}
		default:
			actions = []RequiredAction{ActionRespond}
		}
	case classify.FamilySubpoena:
		actions = []RequiredAction{ActionProduceDocuments}
		if fields.AppearanceDateISO != "" {
			actions = append(actions, ActionAppear)
		}
	case classify.FamilyDemandLetter:
		actions = []RequiredAction{ActionRespond, ActionNegotiate}
	case classify.FamilyDebtCollection, classify.FamilyCollectionsValidation:
		actions = []RequiredAction{ActionDispute, ActionRespond}
	case classify.FamilyEviction:
		actions = []RequiredAction{ActionRespond, ActionAppear}
	case classify.FamilyLien:
		actions = []RequiredAction{ActionRespond, ActionPay}
	default:
		actions = []RequiredAction{ActionRespond}
	}

	return ResponsePlan{
		RequiredActions: actions,
		ProofToKeep:     proofToKeep,
		Destination:     signals.Destination,
		Channels:        signals.Channels,
		DeadlineISO:     signals.ResponseDeadlineISO,
	}
}
