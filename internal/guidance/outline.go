package guidance

import (
	"strings"

	"github.com/rmoran/noticeguide/internal/classify"
	"github.com/rmoran/noticeguide/internal/record"
)

// ResponseOutline is a skeleton for a written response letter: a subject
// line plus ordered section prompts the user fills in.
type ResponseOutline struct {
	Subject  string   `json:"subject,omitempty"`
	Sections []string `json:"sections"`
}

// familyOutline holds the outline copy for one document family. Section
// strings may contain placeholder tokens that are substituted when the
// concrete value is known.
type familyOutline struct {
	subject  text
	sections [4]text
}

var outlineCatalog = map[classify.DocumentFamily]familyOutline{
	classify.FamilySummons: {
		subject: text{
			LangEN: "Re: Answer to Summons and Complaint, Case [Insert case number]",
			LangES: "Asunto: Contestación a la citación y demanda, Caso [Insertar número de caso]",
		},
		sections: [4]text{
			{
				LangEN: "State your full name, the case number [Insert case number], and that this letter answers the complaint.",
				LangES: "Indique su nombre completo, el número de caso [Insertar número de caso] y que esta carta contesta la demanda.",
			},
			{
				LangEN: "Admit or deny each numbered allegation, one by one.",
				LangES: "Admita o niegue cada alegación numerada, una por una.",
			},
			{
				LangEN: "List any defenses you intend to raise.",
				LangES: "Enumere las defensas que piensa presentar.",
			},
			{
				LangEN: "Close with the relief you request, your signature, and the date.",
				LangES: "Cierre con lo que solicita al tribunal, su firma y la fecha.",
			},
		},
	},
	classify.FamilySmallClaims: {
		subject: text{
			LangEN: "Re: Response to Small Claims Case [Insert case number]",
			LangES: "Asunto: Respuesta al caso de reclamos menores [Insertar número de caso]",
		},
		sections: [4]text{
			{
				LangEN: "Reference the claim and the hearing date of [Insert date].",
				LangES: "Haga referencia al reclamo y a la fecha de audiencia del [Insertar fecha].",
			},
			{
				LangEN: "Give your version of events in date order.",
				LangES: "Presente su versión de los hechos en orden de fechas.",
			},
			{
				LangEN: "List the evidence and witnesses you will bring.",
				LangES: "Enumere la evidencia y los testigos que llevará.",
			},
			{
				LangEN: "State the outcome you are asking for, then sign and date.",
				LangES: "Indique el resultado que solicita, luego firme y feche.",
			},
		},
	},
	classify.FamilySubpoena: {
		subject: text{
			LangEN: "Re: Response to Subpoena, Case [Insert case number]",
			LangES: "Asunto: Respuesta a la citación judicial, Caso [Insertar número de caso]",
		},
		sections: [4]text{
			{
				LangEN: "Acknowledge receipt of the subpoena and reference case [Insert case number].",
				LangES: "Acuse recibo de la citación judicial y haga referencia al caso [Insertar número de caso].",
			},
			{
				LangEN: "State what you will produce and by what date.",
				LangES: "Indique qué entregará y en qué fecha.",
			},
			{
				LangEN: "Note any objections, privileges, or undue burdens.",
				LangES: "Señale cualquier objeción, privilegio o carga excesiva.",
			},
			{
				LangEN: "Provide your contact information, signature, and the date.",
				LangES: "Incluya su información de contacto, su firma y la fecha.",
			},
		},
	},
	classify.FamilyCeaseAndDesist: {
		subject: text{
			LangEN: "Re: Response to Your Cease and Desist Letter",
			LangES: "Asunto: Respuesta a su carta de cese y desista",
		},
		sections: [4]text{
			{
				LangEN: "Acknowledge the letter and the date you received it.",
				LangES: "Acuse recibo de la carta y la fecha en que la recibió.",
			},
			{
				LangEN: "State your position on each allegation.",
				LangES: "Exponga su posición sobre cada alegación.",
			},
			{
				LangEN: "Say what, if anything, you agree to change.",
				LangES: "Indique qué, si acaso, está de acuerdo en cambiar.",
			},
			{
				LangEN: "Reserve your rights, then sign and date.",
				LangES: "Reserve sus derechos, luego firme y feche.",
			},
		},
	},
	classify.FamilyCollectionsValidation: {
		subject: text{
			LangEN: "Re: Debt Validation Request, Account [Insert case number]",
			LangES: "Asunto: Solicitud de validación de deuda, Cuenta [Insertar número de caso]",
		},
		sections: [4]text{
			{
				LangEN: "Identify the account and state that you dispute the debt.",
				LangES: "Identifique la cuenta e indique que disputa la deuda.",
			},
			{
				LangEN: "Request validation documents proving the debt and the collector's right to collect it.",
				LangES: "Solicite documentos de validación que prueben la deuda y el derecho del cobrador a cobrarla.",
			},
			{
				LangEN: "Demand that all further contact happen in writing.",
				LangES: "Exija que todo contacto posterior sea por escrito.",
			},
			{
				LangEN: "Note that you are sending the letter by certified mail, then sign and date.",
				LangES: "Indique que envía la carta por correo certificado, luego firme y feche.",
			},
		},
	},
	classify.FamilyDebtCollection: {
		subject: text{
			LangEN: "Re: Response to Collection Notice, Account [Insert case number]",
			LangES: "Asunto: Respuesta al aviso de cobro, Cuenta [Insertar número de caso]",
		},
		sections: [4]text{
			{
				LangEN: "Reference the account and the notice you received.",
				LangES: "Haga referencia a la cuenta y al aviso que recibió.",
			},
			{
				LangEN: "State whether you dispute the debt or the amount.",
				LangES: "Indique si disputa la deuda o el monto.",
			},
			{
				LangEN: "Request that all communication happen in writing.",
				LangES: "Solicite que toda comunicación sea por escrito.",
			},
			{
				LangEN: "Close with your contact information, signature, and the date.",
				LangES: "Cierre con su información de contacto, su firma y la fecha.",
			},
		},
	},
	classify.FamilyEviction: {
		subject: text{
			LangEN: "Re: Response to Eviction Notice",
			LangES: "Asunto: Respuesta al aviso de desalojo",
		},
		sections: [4]text{
			{
				LangEN: "Reference the notice and the rental property address.",
				LangES: "Haga referencia al aviso y a la dirección de la propiedad alquilada.",
			},
			{
				LangEN: "State your response: you have paid, will cure, or contest the notice.",
				LangES: "Indique su respuesta: ya pagó, va a subsanar, o impugna el aviso.",
			},
			{
				LangEN: "List the facts and documents supporting your position.",
				LangES: "Enumere los hechos y documentos que respaldan su posición.",
			},
			{
				LangEN: "State what you are asking the landlord to do, then sign and date.",
				LangES: "Indique qué le pide al arrendador, luego firme y feche.",
			},
		},
	},
	classify.FamilyAgencyNotice: {
		subject: text{
			LangEN: "Re: Response to Agency Notice, Reference [Insert case number]",
			LangES: "Asunto: Respuesta al aviso de la agencia, Referencia [Insertar número de caso]",
		},
		sections: [4]text{
			{
				LangEN: "Reference the notice, its date, and reference number [Insert case number].",
				LangES: "Haga referencia al aviso, su fecha y el número de referencia [Insertar número de caso].",
			},
			{
				LangEN: "State whether you accept the decision or intend to appeal.",
				LangES: "Indique si acepta la decisión o piensa apelar.",
			},
			{
				LangEN: "Present the facts and documents supporting your position.",
				LangES: "Presente los hechos y documentos que respaldan su posición.",
			},
			{
				LangEN: "State the relief you request, then sign and date.",
				LangES: "Indique lo que solicita, luego firme y feche.",
			},
		},
	},
	classify.FamilyDemandLetter: {
		subject: text{
			LangEN: "Re: Response to Your Demand Letter",
			LangES: "Asunto: Respuesta a su carta de demanda",
		},
		sections: [4]text{
			{
				LangEN: "Acknowledge the demand letter and the date you received it.",
				LangES: "Acuse recibo de la carta de demanda y la fecha en que la recibió.",
			},
			{
				LangEN: "State your position, supported by facts.",
				LangES: "Exponga su posición, respaldada por hechos.",
			},
			{
				LangEN: "Make a counter-offer or request the documents behind the demand.",
				LangES: "Haga una contraoferta o solicite los documentos que respaldan la exigencia.",
			},
			{
				LangEN: "Give a date by which you expect a reply, then sign and date.",
				LangES: "Indique una fecha para recibir respuesta, luego firme y feche.",
			},
		},
	},
	classify.FamilyLien: {
		subject: text{
			LangEN: "Re: Response to Lien Notice",
			LangES: "Asunto: Respuesta al aviso de gravamen",
		},
		sections: [4]text{
			{
				LangEN: "Identify the lien and the property it names.",
				LangES: "Identifique el gravamen y la propiedad que nombra.",
			},
			{
				LangEN: "State the basis of your dispute, or request a payoff statement.",
				LangES: "Indique la base de su disputa, o solicite un estado de liquidación.",
			},
			{
				LangEN: "Attach the documents supporting your position.",
				LangES: "Adjunte los documentos que respaldan su posición.",
			},
			{
				LangEN: "Request a release or correction of the lien, then sign and date.",
				LangES: "Solicite la liberación o corrección del gravamen, luego firme y feche.",
			},
		},
	},
}

// defaultOutline covers documents that classify as FamilyOther.
var defaultOutline = familyOutline{
	subject: text{
		LangEN: "Re: Response to Your Notice",
		LangES: "Asunto: Respuesta a su aviso",
	},
	sections: [4]text{
		{
			LangEN: "Identify yourself and the notice you received, including its date.",
			LangES: "Identifíquese e indique el aviso que recibió, incluida su fecha.",
		},
		{
			LangEN: "State your understanding of what the notice asks of you.",
			LangES: "Exponga lo que entiende que el aviso le pide.",
		},
		{
			LangEN: "Give your response, or ask the questions you need answered.",
			LangES: "Dé su respuesta, o haga las preguntas que necesita aclarar.",
		},
		{
			LangEN: "Close with your contact information, signature, and the date.",
			LangES: "Cierre con su información de contacto, su firma y la fecha.",
		},
	},
}

// BuildOutline produces the response-letter skeleton for a document family.
// Placeholder tokens are replaced with the real case number or appearance
// date when the extractor found one.
func BuildOutline(family classify.DocumentFamily, fields record.ExtractedFields, lang Language) ResponseOutline {
	outline, ok := outlineCatalog[family]
	if !ok {
		outline = defaultOutline
	}

	sections := make([]string, 0, len(outline.sections))
	for _, section := range outline.sections {
		sections = append(sections, fillPlaceholders(section.get(lang), fields))
	}

	return ResponseOutline{
		Subject:  fillPlaceholders(outline.subject.get(lang), fields),
		Sections: sections,
	}
}

// fillPlaceholders substitutes known facts for the literal placeholder
// tokens used in outline copy. Unknown facts leave the token for the user
// to fill in.
func fillPlaceholders(s string, fields record.ExtractedFields) string {
	if fields.CaseNumber != "" {
		s = strings.ReplaceAll(s, "[Insert case number]", fields.CaseNumber)
		s = strings.ReplaceAll(s, "[Insertar número de caso]", fields.CaseNumber)
	}
	if fields.AppearanceDateISO != "" {
		s = strings.ReplaceAll(s, "[Insert date]", fields.AppearanceDateISO)
		s = strings.ReplaceAll(s, "[Insertar fecha]", fields.AppearanceDateISO)
	}
	return s
}
