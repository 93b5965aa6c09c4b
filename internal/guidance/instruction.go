package guidance

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rmoran/noticeguide/internal/classify"
	"github.com/rmoran/noticeguide/internal/record"
)

// maxInstructionSteps caps the step list so the rendered card stays scannable.
const maxInstructionSteps = 8

// ContactBlock is the sender contact info shown on an instruction. Present
// only when at least one constituent field is known.
type ContactBlock struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
}

// CourtBlock is the court identification shown on an instruction. Present
// only when at least one constituent field is known.
type CourtBlock struct {
	Name       string `json:"name,omitempty"`
	Address    string `json:"address,omitempty"`
	Website    string `json:"website,omitempty"`
	CaseNumber string `json:"caseNumber,omitempty"`
}

// ActionInstruction is the localized, user-facing guidance bundle for one
// document: what this notice is, what to do about it, and how sure the
// engine is.
type ActionInstruction struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Explanation   string        `json:"explanation"`
	Steps         []string      `json:"steps"`
	Channels      []string      `json:"channels,omitempty"`
	Contact       *ContactBlock `json:"contact,omitempty"`
	Court         *CourtBlock   `json:"court,omitempty"`
	DeadlineISO   string        `json:"deadlineIso,omitempty"`
	DeadlineLabel string        `json:"deadlineLabel,omitempty"`
	Consequences  []string      `json:"consequences"`
	Confidence    int           `json:"confidence"`
	MissingInfo   []string      `json:"missingInfo,omitempty"`
	Sources       []string      `json:"sources,omitempty"`
}

// BuildInstructions runs the full derivation pipeline for one document and
// returns its action instructions. The result is currently always a single
// instruction; the slice leaves room for multi-instruction documents later.
func BuildInstructions(rec record.AnalysisRecord, docType, deadlineISO string, lang Language, now time.Time) []ActionInstruction {
	fields := record.Normalize(rec)
	family := classify.ClassifyFamily(docType)
	signals := ComputeSignals(family, fields, deadlineISO, now)
	plan := BuildPlan(family, fields, signals)

	tpl, matched := lookupTemplate(family)

	var title, explanation, consequence string
	var steps []string

	planSteps := planDerivedSteps(plan, lang)

	if matched {
		title = tpl.title.get(lang)
		explanation = tpl.explanation.get(lang)
		consequence = tpl.consequence.get(lang)
		steps = appendDistinctSteps(tpl.steps(fields, lang), planSteps)
	} else {
		title = genericFallback.title.get(lang)
		explanation = genericFallback.explanation.get(lang)
		consequence = genericFallback.consequence.get(lang)
		generic := genericSteps(lang)
		if len(planSteps) > 0 {
			steps = append(planSteps, generic[:3]...)
		} else {
			steps = generic
		}
	}

	if len(steps) > maxInstructionSteps {
		steps = steps[:maxInstructionSteps]
	}

	inst := ActionInstruction{
		ID:           uuid.NewString(),
		Title:        title,
		Explanation:  explanation,
		Steps:        steps,
		Channels:     displayChannels(fields, lang),
		Contact:      contactBlock(fields),
		Court:        courtBlock(fields),
		Consequences: []string{consequence},
		Confidence:   computeConfidence(deadlineISO != "", issuerKnown(fields), matched),
		MissingInfo:  missingInfo(signals, lang),
		Sources:      fields.Sources,
	}

	if deadlineISO != "" {
		inst.DeadlineISO = deadlineISO
		inst.DeadlineLabel = text{
			LangEN: fmt.Sprintf("Respond by %s", deadlineISO),
			LangES: fmt.Sprintf("Responda antes del %s", deadlineISO),
		}.get(lang)
	}

	return []ActionInstruction{inst}
}

// planDerivedSteps turns the plan's required actions into guidance steps,
// in plan order. Actions without a phrase (respond) contribute nothing.
func planDerivedSteps(plan ResponsePlan, lang Language) []string {
	var steps []string
	for _, action := range plan.RequiredActions {
		if phrase, ok := actionPhrases[action]; ok {
			steps = append(steps, phrase.get(lang))
		}
	}
	return steps
}

// appendDistinctSteps appends each candidate step unless near-identical
// guidance already exists. Similarity is judged by the candidate's first ten
// characters appearing, case-insensitively, inside an existing step.
func appendDistinctSteps(steps, candidates []string) []string {
	for _, candidate := range candidates {
		key := strings.ToLower(candidate)
		if len(key) > 10 {
			key = key[:10]
		}
		duplicate := false
		for _, existing := range steps {
			if strings.Contains(strings.ToLower(existing), key) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			steps = append(steps, candidate)
		}
	}
	return steps
}

// issuerKnown reports whether the document's issuer (sender or court) was
// identified.
func issuerKnown(fields record.ExtractedFields) bool {
	return fields.SenderName != "" || fields.CourtName != ""
}

// computeConfidence scores the instruction: 80 when both the deadline and
// the issuer are known, 60 when either is, 40 otherwise. The template match
// is accepted for parity with the scoring inputs but cannot move the result
// between bands on its own.
func computeConfidence(hasDeadline, hasIssuer, templateMatched bool) int {
	switch {
	case hasDeadline && hasIssuer:
		return 80
	case hasDeadline || hasIssuer:
		return 60
	default:
		return 40
	}
}

// displayChannels builds the localized "how to respond" list shown to the
// user. This is presentation copy, distinct from ResponseSignals.Channels.
func displayChannels(fields record.ExtractedFields, lang Language) []string {
	var channels []string
	if fields.SenderEmail != "" {
		channels = append(channels, text{LangEN: "Email", LangES: "Correo electrónico"}.get(lang))
	}
	if fields.SenderAddress != "" {
		channels = append(channels, text{LangEN: "Mail", LangES: "Correo postal"}.get(lang))
	}
	channels = append(channels, text{LangEN: "In writing", LangES: "Por escrito"}.get(lang))
	if fields.CourtName != "" {
		channels = append(channels, text{LangEN: "Court filing", LangES: "Presentación ante el tribunal"}.get(lang))
	}
	return channels
}

// contactBlock returns the sender contact block, or nil when nothing about
// the sender is known.
func contactBlock(fields record.ExtractedFields) *ContactBlock {
	if fields.SenderName == "" && fields.SenderEmail == "" && fields.SenderPhone == "" &&
		fields.SenderAddress == "" && fields.Website == "" {
		return nil
	}
	return &ContactBlock{
		Name:    fields.SenderName,
		Email:   fields.SenderEmail,
		Phone:   fields.SenderPhone,
		Address: fields.SenderAddress,
		Website: fields.Website,
	}
}

// courtBlock returns the court block, or nil when nothing about the court
// is known.
func courtBlock(fields record.ExtractedFields) *CourtBlock {
	if !fields.HasCourt() {
		return nil
	}
	return &CourtBlock{
		Name:       fields.CourtName,
		Address:    fields.CourtAddress,
		Website:    fields.CourtWebsite,
		CaseNumber: fields.CaseNumber,
	}
}

// missingInfo converts the missing flags into localized caveats. The court
// caveat is raised only when the response is court-bound or the sender is
// also unknown; flagging "no court" on an ordinary letter with a known
// sender would just be noise.
func missingInfo(signals ResponseSignals, lang Language) []string {
	var info []string
	if signals.Missing.Deadline {
		info = append(info, text{
			LangEN: "No response deadline was found in the document.",
			LangES: "No se encontró una fecha límite de respuesta en el documento.",
		}.get(lang))
	}
	if signals.Missing.Sender {
		info = append(info, text{
			LangEN: "The sender could not be identified.",
			LangES: "No se pudo identificar al remitente.",
		}.get(lang))
	}
	if signals.Missing.Court && (signals.Destination == DestinationCourt || signals.Missing.Sender) {
		info = append(info, text{
			LangEN: "The court could not be identified.",
			LangES: "No se pudo identificar el tribunal.",
		}.get(lang))
	}
	return info
}
