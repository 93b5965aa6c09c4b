package guidance

import (
	"fmt"

	"github.com/rmoran/noticeguide/internal/classify"
	"github.com/rmoran/noticeguide/internal/record"
)

// familyTemplate holds the static guidance copy for one document family.
// The steps builder receives the normalized fields so individual steps can
// name the sender when the extractor identified one.
type familyTemplate struct {
	title       text
	explanation text
	consequence text
	steps       func(fields record.ExtractedFields, lang Language) []string
}

// senderStep names the sender when known; otherwise it tells the reader how
// to identify the sender themselves.
func senderStep(fields record.ExtractedFields, lang Language) string {
	if fields.SenderName != "" {
		if lang == LangES {
			return fmt.Sprintf("Confirme que %s es realmente quien envió el documento antes de responder.", fields.SenderName)
		}
		return fmt.Sprintf("Confirm that %s is really the party who sent the document before you respond.", fields.SenderName)
	}
	return text{
		LangEN: "Look at the letterhead and signature block to identify exactly who sent the notice.",
		LangES: "Revise el membrete y el bloque de firma para identificar exactamente quién envió el aviso.",
	}.get(lang)
}

// templateCatalog has one row per document family except "other", which
// falls back to the generic instruction in the builder.
var templateCatalog = map[classify.DocumentFamily]familyTemplate{
	classify.FamilySummons: {
		title: text{
			LangEN: "Respond to the court summons",
			LangES: "Responda a la citación del tribunal",
		},
		explanation: text{
			LangEN: "You have been named in a lawsuit. The court expects a formal response within the stated period, which usually starts the day you were served.",
			LangES: "Usted ha sido nombrado en una demanda. El tribunal espera una respuesta formal dentro del plazo indicado, que normalmente comienza el día en que fue notificado.",
		},
		consequence: text{
			LangEN: "If you do not respond in time, the court can enter a default judgment against you.",
			LangES: "Si no responde a tiempo, el tribunal puede dictar una sentencia en rebeldía en su contra.",
		},
		steps: func(f record.ExtractedFields, lang Language) []string {
			return []string{
				text{
					LangEN: "Read the summons and complaint carefully and note every stated deadline.",
					LangES: "Lea la citación y la demanda con atención y anote cada plazo indicado.",
				}.get(lang),
				senderStep(f, lang),
				text{
					LangEN: "Decide whether to hire an attorney or respond on your own.",
					LangES: "Decida si contratará a un abogado o responderá por su cuenta.",
				}.get(lang),
			}
		},
	},
	classify.FamilySmallClaims: {
		title: text{
			LangEN: "Prepare for small claims court",
			LangES: "Prepárese para el tribunal de reclamos menores",
		},
		explanation: text{
			LangEN: "A small claims case has been filed against you. These cases move quickly and are designed to be handled without an attorney.",
			LangES: "Se ha presentado un caso de reclamos menores en su contra. Estos casos avanzan rápido y están diseñados para manejarse sin abogado.",
		},
		consequence: text{
			LangEN: "If you miss the hearing, the court can rule for the other side by default.",
			LangES: "Si falta a la audiencia, el tribunal puede fallar a favor de la otra parte en rebeldía.",
		},
		steps: func(f record.ExtractedFields, lang Language) []string {
			return []string{
				text{
					LangEN: "Find the hearing date and location on the notice and put them on your calendar.",
					LangES: "Ubique la fecha y el lugar de la audiencia en el aviso y anótelos en su calendario.",
				}.get(lang),
				text{
					LangEN: "Gather receipts, contracts, photos, and any messages related to the dispute.",
					LangES: "Reúna recibos, contratos, fotos y cualquier mensaje relacionado con la disputa.",
				}.get(lang),
				senderStep(f, lang),
			}
		},
	},
	classify.FamilySubpoena: {
		title: text{
			LangEN: "Comply with the subpoena",
			LangES: "Cumpla con la citación judicial",
		},
		explanation: text{
			LangEN: "A subpoena is a binding order to provide testimony or documents. It applies even if you are not a party to the case.",
			LangES: "Una citación judicial es una orden vinculante de dar testimonio o entregar documentos. Se aplica aunque usted no sea parte del caso.",
		},
		consequence: text{
			LangEN: "Ignoring a subpoena can lead to contempt of court, including fines.",
			LangES: "Ignorar una citación judicial puede llevar a desacato al tribunal, incluidas multas.",
		},
		steps: func(f record.ExtractedFields, lang Language) []string {
			return []string{
				text{
					LangEN: "Identify exactly what is being requested and the date it is due.",
					LangES: "Identifique exactamente qué se solicita y la fecha de entrega.",
				}.get(lang),
				text{
					LangEN: "Do not delete or discard anything the subpoena covers.",
					LangES: "No elimine ni deseche nada que la citación cubra.",
				}.get(lang),
				senderStep(f, lang),
			}
		},
	},
	classify.FamilyCeaseAndDesist: {
		title: text{
			LangEN: "Review the cease and desist demand",
			LangES: "Revise la carta de cese y desista",
		},
		explanation: text{
			LangEN: "The sender is demanding that you stop a described activity. The letter itself is not a court order, but it is often the step before one.",
			LangES: "El remitente exige que usted detenga una actividad descrita. La carta en sí no es una orden judicial, pero suele ser el paso previo a una.",
		},
		consequence: text{
			LangEN: "Continuing the described conduct can expose you to a lawsuit.",
			LangES: "Continuar con la conducta descrita puede exponerlo a una demanda.",
		},
		steps: func(f record.ExtractedFields, lang Language) []string {
			return []string{
				text{
					LangEN: "Identify precisely what conduct the letter demands you stop.",
					LangES: "Identifique con precisión qué conducta le exige detener la carta.",
				}.get(lang),
				senderStep(f, lang),
				text{
					LangEN: "Avoid admitting anything in writing before getting advice.",
					LangES: "Evite admitir algo por escrito antes de recibir asesoría.",
				}.get(lang),
			}
		},
	},
	classify.FamilyCollectionsValidation: {
		title: text{
			LangEN: "Exercise your debt validation rights",
			LangES: "Ejerza sus derechos de validación de deuda",
		},
		explanation: text{
			LangEN: "A collector must prove a debt is yours if you ask in writing within 30 days of first contact. This notice starts that window.",
			LangES: "Un cobrador debe probar que la deuda es suya si usted lo solicita por escrito dentro de los 30 días del primer contacto. Este aviso inicia ese plazo.",
		},
		consequence: text{
			LangEN: "If you do not dispute within the window, the collector may treat the debt as valid.",
			LangES: "Si no disputa dentro del plazo, el cobrador puede considerar la deuda como válida.",
		},
		steps: func(f record.ExtractedFields, lang Language) []string {
			return []string{
				text{
					LangEN: "Compare the claimed amount and account against your own records.",
					LangES: "Compare el monto y la cuenta reclamados con sus propios registros.",
				}.get(lang),
				text{
					LangEN: "Request validation in writing and send it by certified mail.",
					LangES: "Solicite la validación por escrito y envíela por correo certificado.",
				}.get(lang),
				senderStep(f, lang),
			}
		},
	},
	classify.FamilyDebtCollection: {
		title: text{
			LangEN: "Respond to the collection notice",
			LangES: "Responda al aviso de cobro",
		},
		explanation: text{
			LangEN: "A collector claims you owe a debt. You have the right to question the debt and to demand all contact happen in writing.",
			LangES: "Un cobrador afirma que usted debe una deuda. Tiene derecho a cuestionar la deuda y a exigir que todo contacto sea por escrito.",
		},
		consequence: text{
			LangEN: "Unanswered collection notices can escalate to a lawsuit or damage your credit.",
			LangES: "Los avisos de cobro sin respuesta pueden escalar a una demanda o dañar su crédito.",
		},
		steps: func(f record.ExtractedFields, lang Language) []string {
			return []string{
				text{
					LangEN: "Verify the debt is actually yours and the amount is correct.",
					LangES: "Verifique que la deuda realmente sea suya y que el monto sea correcto.",
				}.get(lang),
				senderStep(f, lang),
				text{
					LangEN: "Respond in writing; never rely on a phone call alone.",
					LangES: "Responda por escrito; nunca confíe solo en una llamada telefónica.",
				}.get(lang),
			}
		},
	},
	classify.FamilyEviction: {
		title: text{
			LangEN: "Act on the eviction notice",
			LangES: "Actúe ante el aviso de desalojo",
		},
		explanation: text{
			LangEN: "Your landlord has started the eviction process. Notice periods are short and strictly enforced, but you usually have the right to respond or cure.",
			LangES: "Su arrendador ha iniciado el proceso de desalojo. Los plazos de aviso son cortos y se aplican estrictamente, pero normalmente usted tiene derecho a responder o subsanar.",
		},
		consequence: text{
			LangEN: "Missing the response window can lead to a default eviction order and removal by the sheriff.",
			LangES: "Perder el plazo de respuesta puede llevar a una orden de desalojo en rebeldía y al retiro por parte del alguacil.",
		},
		steps: func(f record.ExtractedFields, lang Language) []string {
			return []string{
				text{
					LangEN: "Check how many days the notice gives you and what it demands (pay, fix, or move out).",
					LangES: "Verifique cuántos días le da el aviso y qué exige (pagar, corregir o mudarse).",
				}.get(lang),
				text{
					LangEN: "Contact a local tenant assistance or legal aid program right away.",
					LangES: "Contacte de inmediato un programa local de asistencia a inquilinos o de ayuda legal.",
				}.get(lang),
				senderStep(f, lang),
			}
		},
	},
	classify.FamilyAgencyNotice: {
		title: text{
			LangEN: "Answer the agency notice",
			LangES: "Responda al aviso de la agencia",
		},
		explanation: text{
			LangEN: "A government agency has taken or proposed an action that affects you. Agency procedures have their own strict response formats and deadlines.",
			LangES: "Una agencia gubernamental ha tomado o propuesto una acción que le afecta. Los procedimientos de las agencias tienen formatos y plazos de respuesta estrictos.",
		},
		consequence: text{
			LangEN: "Agency deadlines are often short, and missing them can forfeit your right to appeal.",
			LangES: "Los plazos de las agencias suelen ser cortos, y perderlos puede hacerle perder su derecho a apelar.",
		},
		steps: func(f record.ExtractedFields, lang Language) []string {
			return []string{
				text{
					LangEN: "Identify the agency, the case or reference number, and the decision described.",
					LangES: "Identifique la agencia, el número de caso o referencia y la decisión descrita.",
				}.get(lang),
				text{
					LangEN: "Follow the exact response format the notice requires.",
					LangES: "Siga el formato de respuesta exacto que exige el aviso.",
				}.get(lang),
				senderStep(f, lang),
			}
		},
	},
	classify.FamilyDemandLetter: {
		title: text{
			LangEN: "Respond to the demand letter",
			LangES: "Responda a la carta de demanda",
		},
		explanation: text{
			LangEN: "The sender is demanding payment or action before taking legal steps. A measured written response often resolves the matter without court.",
			LangES: "El remitente exige un pago o una acción antes de tomar medidas legales. Una respuesta escrita y mesurada a menudo resuelve el asunto sin ir al tribunal.",
		},
		consequence: text{
			LangEN: "Silence is often treated as refusal and can trigger a lawsuit.",
			LangES: "El silencio suele interpretarse como negativa y puede desencadenar una demanda.",
		},
		steps: func(f record.ExtractedFields, lang Language) []string {
			return []string{
				text{
					LangEN: "Weigh the demand against your own records and documents.",
					LangES: "Contraste la exigencia con sus propios registros y documentos.",
				}.get(lang),
				senderStep(f, lang),
				text{
					LangEN: "Keep any reply factual, dated, and free of admissions you are not sure about.",
					LangES: "Mantenga cualquier respuesta objetiva, fechada y sin admisiones de las que no esté seguro.",
				}.get(lang),
			}
		},
	},
	classify.FamilyLien: {
		title: text{
			LangEN: "Address the lien notice",
			LangES: "Atienda el aviso de gravamen",
		},
		explanation: text{
			LangEN: "A lien has been recorded or threatened against your property. Liens attach to the property itself and do not simply expire.",
			LangES: "Se ha registrado o amenazado un gravamen contra su propiedad. Los gravámenes recaen sobre la propiedad misma y no expiran por sí solos.",
		},
		consequence: text{
			LangEN: "An unresolved lien can block sale or refinancing of the property and accrue interest.",
			LangES: "Un gravamen sin resolver puede impedir la venta o refinanciación de la propiedad y acumular intereses.",
		},
		steps: func(f record.ExtractedFields, lang Language) []string {
			return []string{
				text{
					LangEN: "Confirm the lien amount and that it names the correct property.",
					LangES: "Confirme el monto del gravamen y que nombre la propiedad correcta.",
				}.get(lang),
				senderStep(f, lang),
				text{
					LangEN: "Check the filing with your county recorder's office.",
					LangES: "Verifique el registro en la oficina del registrador del condado.",
				}.get(lang),
			}
		},
	},
}

// lookupTemplate returns the catalog row for a family. FamilyOther has no
// row; the instruction builder falls back to generic guidance.
func lookupTemplate(family classify.DocumentFamily) (familyTemplate, bool) {
	tpl, ok := templateCatalog[family]
	return tpl, ok
}

// actionPhrases maps each plan action to guidance text. ActionRespond has no
// phrase: every template and fallback already tells the reader to respond.
var actionPhrases = map[RequiredAction]text{
	ActionFileAnswer: {
		LangEN: "Prepare a formal written answer and file it with the court.",
		LangES: "Prepare una contestación formal por escrito y preséntela ante el tribunal.",
	},
	ActionAppear: {
		LangEN: "Ensure you appear at the scheduled hearing date.",
		LangES: "Asegúrese de comparecer en la fecha de audiencia programada.",
	},
	ActionProduceDocuments: {
		LangEN: "Produce the requested documents by the stated date.",
		LangES: "Entregue los documentos solicitados antes de la fecha indicada.",
	},
	ActionDispute: {
		LangEN: "Send a written dispute within the allowed window.",
		LangES: "Envíe una disputa por escrito dentro del plazo permitido.",
	},
	ActionPay: {
		LangEN: "Consider payment or a payment plan if the claim is valid.",
		LangES: "Considere el pago o un plan de pagos si el reclamo es válido.",
	},
	ActionNegotiate: {
		LangEN: "Consider negotiating a settlement before the deadline.",
		LangES: "Considere negociar un acuerdo antes de la fecha límite.",
	},
}

// genericFallback is the copy used when no family template exists.
var genericFallback = struct {
	title       text
	explanation text
	consequence text
}{
	title: text{
		LangEN: "Review this legal notice",
		LangES: "Revise este aviso legal",
	},
	explanation: text{
		LangEN: "We could not match this document to a specific notice type, but legal notices generally require a timely response.",
		LangES: "No pudimos asociar este documento con un tipo de aviso específico, pero los avisos legales generalmente requieren una respuesta oportuna.",
	},
	consequence: text{
		LangEN: "Ignoring a legal notice can limit your options and lead to judgments or penalties.",
		LangES: "Ignorar un aviso legal puede limitar sus opciones y llevar a sentencias o sanciones.",
	},
}

// genericSteps builds the fallback step list used when no template matches.
func genericSteps(lang Language) []string {
	return []string{
		text{
			LangEN: "Search the document for deadline language such as \"within X days\" or \"no later than\".",
			LangES: "Busque en el documento lenguaje de plazos como \"dentro de X días\" o \"a más tardar\".",
		}.get(lang),
		text{
			LangEN: "Identify who sent the notice from the letterhead or signature block.",
			LangES: "Identifique quién envió el aviso por el membrete o el bloque de firma.",
		}.get(lang),
		text{
			LangEN: "Determine exactly what action the notice is asking you to take.",
			LangES: "Determine exactamente qué acción le pide tomar el aviso.",
		}.get(lang),
		text{
			LangEN: "Gather and preserve every related document, envelope, and receipt.",
			LangES: "Reúna y conserve todos los documentos, sobres y recibos relacionados.",
		}.get(lang),
		text{
			LangEN: "Contact a local legal aid office or an attorney if anything is unclear.",
			LangES: "Contacte una oficina local de ayuda legal o a un abogado si algo no está claro.",
		}.get(lang),
	}
}
