// Package prompt assembles the few-shot message sequence sent to the
// grading engine.
//
// Grading consistency depends entirely on stable example ordering and
// stable gold answers: the examples anchor the boundary between adjacent
// grades more reliably than rubric text alone. Changing an example or its
// gold result measurably shifts the grading distribution.
package prompt

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pkoukk/tiktoken-go"

	"github.com/silver-dev/resume-checker/internal/adapter/observability"
	"github.com/silver-dev/resume-checker/internal/domain"
)

// TypstTemplateURL is the recommended resume template linked from flags and
// the grading guide.
const TypstTemplateURL = "https://typst.app/universe/package/silver-dev-cv"

// SentinelAuthor is the reserved PDF author value for self-authored showcase
// documents. When a submitted resume carries it, the system prompt suppresses
// template-promotion language.
const SentinelAuthor = "silver"

// Guide is the grading guideline. It is embedded verbatim in both the system
// prompt and the user prompt; the two copies must stay textually identical to
// avoid conflicting instructions.
const Guide = `
  - Formato
    - Usá un template
      - Google Docs tiene una buena plantilla para empezar que es fácil de usar y está bien estéticamente
      - A las empresas en USA les gusta el CV en estilo Latex, podés usar un builder estilo Latex como Typst y usá el [template de silver.dev](` + TypstTemplateURL + `).
    - Los diseños creativos y entregados en Word le bajan la calidad a tu CV y hasta pueden llegar a ser motivos de rechazo.
    - Tiene que ser en una sola página.
  - Contenido principal
    - Editá tu CV de acuerdo a la empresa que lo estés mandando:
      - Mirá perfiles de Linkedin de personas que trabajan en la empresa y copialos, estos son los “ganadores”.
      - Cambiá nombres de las posiciones, contenido, mensajes y habilidades para tratar de que se ajusten más a lo que la empresa está buscando.
      - Querés contar una historia que resalte los principales puntos fuertes de tu perfil.
    - [Recomendado] Agregá una introducción o “acerca de” que acomodes para cada empresa.
      - Esta introducción debería responder explícita o implícitamente a la pregunta de “Por qué la empresa XXX debería contratarme”.
    - No incluyas imágenes ni foto de perfil. Esto es tabú para empresas en USA.
    - Cada vez que edites el contenido pasale Grammarly, errores de tipeo en el CV son inaceptables.
  - Lo que no tenés que hacer
    - Crear templates propios o usar herramientas anticuadas como Word.
    - Evitar estrategias tipo “spray & pray” (usar el mismo CV genérico, indistintamente para todas tus postulaciones).
    - Agregar imágenes y fotos.
    - Tener más de una página.
    - Usar una dirección de email @hotmail.
    - Escribir el currículum en español.
    - Tener errores de ortografía.
`

// NonFlags lists findings the engine must not report.
const NonFlags = `
  Ejemplos de cosas que NO son "red_flags" o "yellow_flags" y que no tenés que incluir en tu respuesta:
   - Si bien mencionás las fechas de inicio y fin de cada experiencia, no especificás si los puestos fueron a tiempo completo o parcial. Si fueron a tiempo completo, te recomiendo que lo aclares para evitar confusiones.
   - Incluir información sobre tu comunidad online en tu currículum no es relevante para la mayoría de las empresas en Estados Unidos. Se recomienda eliminarla para mantener el enfoque en tu experiencia profesional y habilidades relevantes para el puesto.
   - No hay un orden cronológico inverso en la experiencia laboral. Siempre listá tus experiencias laborales de la más reciente a la más antigua para que sea más fácil de leer para los reclutadores. (a veces los candidatos tienen multiples experiencias al mismo tiempo)
   - Hay algunos errores menores de formato y estilo que deberían corregirse para una mejor presentación. Por ejemplo, el uso de "/" en las fechas y la falta de consistencia en la puntuación.
   - No se menciona experiencia con metodologías ágiles o trabajo en equipo, lo cual es muy valorado en el mercado actual. Si tenés experiencia en estas áreas, incluilas en tu CV.
   - El correo electrónico utiliza un dominio público como Gmail. Es preferible usar un dominio propio o uno más profesional para una mejor imagen.
   - El nombre del archivo del CV no sigue un formato profesional. Se recomienda usar un formato como 'NombreApellido-CV.pdf'.
   - Tener fechas como '2019 - 2021' y '2021 - current' es redundante. Podés simplificarlo a '2019-2021' y '2021-Presente'.
`

// UserPrompt is the per-document instruction attached to every example and
// to the real submission.
const UserPrompt = `
Por favor, evaluá este currículum y proporciona una calificación que vaya de C a A, con S para currículums excepcionalmente buenos.
Además, ofrece comentarios detallados sobre cómo se puede mejorar el currículum.

La respuesta debe dirigirse a mí, por lo que en lugar de hablar "sobre el candidato", comunícate directamente conmigo para darme los consejos y debe ser en español argentino/rio-platense.

Seguí estas guía:
--- Comienzo de guía ---
` + Guide + `
--- Fin de guía ---

` + NonFlags + `
`

// SystemPrompt renders the system-role instruction. authorHint is the PDF
// author metadata of the submitted document; passing it here keeps the
// sentinel special case visible to the engine.
func SystemPrompt(authorHint string) string {
	return fmt.Sprintf(`
Sos un asesor profesional y reclutador experto con amplia experiencia en revisar y analizar currículums.
Tu objetivo es evaluar el contenido, el formato y el impacto de los currículums enviados por los solicitantes de empleo.
Proporcionas retroalimentación constructiva, una calificación de C a A, y S para un currículum excepcionalmente bueno, junto con sugerencias específicas para mejorar.

No comentes de cosas de las que no estas 100%% seguro, no asumas nada del currículum que no se encuentra en el mismo.
No uses tu propia opinión, usá la guía proporcionada.
No importa la ubicación de los trabajos pasados del candidato, no lo menciones como una falta o un "flag".

Seguí estas guía:
--- Comienzo de guía ---
%s
--- Fin de guía ---

--- Aclaraciones sobre la guía ---
- Nunca digas que usar gmail está mal.
- Si el autor mencionado dentro de parentesis es "%s" no vas a mencionar nada del template (autor: %s)
--- Fin de aclaraciones sobre la guía ---

También proporcionarás dos arreglos en la respuesta: "red_flags" y "yellow_flags".
Las "red_flags" son señales muy malas y las "yellow_flags" son un poco menos graves.
Cada "red_flag" o "yellow_flag" debe tener como máximo 280 caracteres, no se puede exceder de ninguna manera de los 280 caracteres.

%s

La respuesta será en este formato EXACTAMENTE, reemplazando el texto dentro de los #, evita cualquier salto de línea y envuelve las oraciones entre comillas como estas "",
La respuesta debe ser en español argentino/rio-platense, no quiero palabras como debes o incluyes, sino tenés o incluís.
La respuesta DEBE SER JSON:

{
  "grade": #GRADE#,
  "red_flags": [#red_flag_1#, #red_flag_2#],
  "yellow_flags": [#yellow_flag_1#, #yellow_flag_2#],
}
`, Guide, SentinelAuthor, authorHint, NonFlags)
}

// Builder assembles ordered message sequences for the grading engine.
type Builder struct {
	encoding *tiktoken.Tiktoken
}

// NewBuilder constructs a Builder. Token accounting is best-effort: when the
// encoding cannot be loaded, prompts are still assembled and the token
// metric is skipped.
func NewBuilder() *Builder {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		slog.Warn("token encoding unavailable; prompt token metrics disabled", slog.Any("error", err))
		enc = nil
	}
	return &Builder{encoding: enc}
}

// Messages builds the ordered sequence: system prompt, then for each example
// a user message (prompt + example PDF) and an assistant message (gold
// result as JSON), then the final user message with the real PDF.
func (b *Builder) Messages(doc domain.ExtractedDocument, pdf []byte, examples []domain.GradeExample) ([]domain.ChatMessage, error) {
	msgs := make([]domain.ChatMessage, 0, 2*len(examples)+2)
	msgs = append(msgs, domain.TextMessage(domain.RoleSystem, SystemPrompt(doc.AuthorHint)))

	for _, ex := range examples {
		gold, err := json.Marshal(ex.Gold)
		if err != nil {
			return nil, fmt.Errorf("%w: marshal gold result for %s: %v", domain.ErrInternal, ex.Name, err)
		}
		msgs = append(msgs, documentMessage(ex.Document))
		msgs = append(msgs, domain.TextMessage(domain.RoleAssistant, string(gold)))
	}

	msgs = append(msgs, documentMessage(pdf))
	b.recordTokens(msgs)
	return msgs, nil
}

func documentMessage(pdf []byte) domain.ChatMessage {
	return domain.ChatMessage{
		Role: domain.RoleUser,
		Parts: []domain.ContentPart{
			{Text: UserPrompt},
			{File: pdf},
		},
	}
}

// recordTokens measures the text portion of the assembled prompt and feeds
// the prompt-size histogram. File parts are excluded; they are billed by the
// provider per page, not per token.
func (b *Builder) recordTokens(msgs []domain.ChatMessage) {
	if b.encoding == nil {
		return
	}
	total := 0
	for _, m := range msgs {
		for _, p := range m.Parts {
			if p.Text != "" {
				total += len(b.encoding.Encode(p.Text, nil, nil))
			}
		}
	}
	observability.PromptTokens.Observe(float64(total))
	slog.Debug("prompt assembled", slog.Int("messages", len(msgs)), slog.Int("text_tokens", total))
}
