// Package intent classifies chatbot queries into coarse topics by keyword containment.
package intent

import "github.com/sant0-9/concierge/internal/content"

// ID names a topic the chatbot has a canned answer for
type ID string

const (
	Services              ID = "services"
	Pricing               ID = "pricing"
	Security              ID = "security"
	AIOptimisation        ID = "ai-optimisation"
	DigitalTransformation ID = "digital-transformation"
	DataAnalytics         ID = "data-analytics"
	ClientPortal          ID = "client-portal"
	CaseStudies           ID = "case-studies"
	Meetings              ID = "meetings"
	Events                ID = "events"
	Contact               ID = "contact"
	FAQ                   ID = "faq"
	About                 ID = "about"
)

// Resolver returns the fixed answer for one intent in the given locale
type Resolver func(content.Locale) string

// Definition binds an intent to its keyword hints and its canned answer.
// Keywords are lower-case substrings; they are hints, not an exhaustive vocabulary.
type Definition struct {
	ID       ID
	Keywords map[content.Locale][]string
	Resolve  Resolver
}

// definitions is checked top to bottom and the first hit wins, so broad
// intents declared early shadow narrower ones declared later.
var definitions = []Definition{
	{
		ID: Services,
		Keywords: map[content.Locale][]string{
			content.English: {"service", "what do you offer", "what do you do", "offerings", "help my business"},
			content.Spanish: {"servicio", "qué ofrecen", "que ofrecen", "qué hacen", "que hacen"},
		},
	},
	{
		ID: Pricing,
		Keywords: map[content.Locale][]string{
			content.English: {"price", "pricing", "does it cost", "cost of", "costs", "how much", "budget", "quote", "your fees", "fee structure", "your rates", "hourly rate", "day rate"},
			content.Spanish: {"precio", "costo", "coste", "cuánto cuesta", "cuanto cuesta", "presupuesto", "tarifa", "cotización", "cotizacion"},
		},
	},
	{
		ID: Security,
		Keywords: map[content.Locale][]string{
			content.English: {"security", "secure", "cyber", "compliance", "gdpr", "iso 27001", "privacy", "data protection", "breach"},
			content.Spanish: {"seguridad", "ciberseg", "cumplimiento", "rgpd", "gdpr", "privacidad", "protección de datos", "proteccion de datos", "brecha"},
		},
	},
	{
		ID: AIOptimisation,
		Keywords: map[content.Locale][]string{
			content.English: {"ai optimi", "use ai to", "using ai", "ai solution", "ai tool", "adopt ai", "artificial intelligence", "machine learning", "automation", "automate", "llm", "chatbot", "generative"},
			content.Spanish: {"inteligencia artificial", "optimización con ia", "optimizacion con ia", "usar ia", "aprendizaje automático", "aprendizaje automatico", "automatiza", "chatbot", "llm", "generativa"},
		},
	},
	{
		ID: DigitalTransformation,
		Keywords: map[content.Locale][]string{
			content.English: {"digital transformation", "transformation", "moderni", "legacy", "cloud migration", "migrate"},
			content.Spanish: {"transformación digital", "transformacion digital", "transformación", "moderniz", "heredad", "migración", "migracion", "nube"},
		},
	},
	{
		ID: DataAnalytics,
		Keywords: map[content.Locale][]string{
			content.English: {"analytics", "dashboard", "business intelligence", "data warehouse", "forecast", "reporting", "kpi"},
			content.Spanish: {"analítica", "analitica", "tablero", "inteligencia de negocio", "almacén de datos", "pronóstico", "pronostico", "informes", "kpi"},
		},
	},
	{
		ID: ClientPortal,
		Keywords: map[content.Locale][]string{
			content.English: {"portal", "to log in", "i log in", "login", "to sign in", "i sign in", "sign-in", "my account", "password", "demo request", "demo session", "demo of", "feedback"},
			content.Spanish: {"portal", "iniciar sesión", "iniciar sesion", "mi cuenta", "contraseña", "demo de", "demostración del", "comentarios"},
		},
	},
	{
		ID: CaseStudies,
		Keywords: map[content.Locale][]string{
			content.English: {"case stud", "success stor", "clients", "portfolio", "past work", "references", "who have you worked"},
			content.Spanish: {"caso de éxito", "casos de éxito", "caso de exito", "casos de exito", "clientes", "portafolio", "referencias", "con quién han trabajado", "con quien han trabajado"},
		},
	},
	{
		ID: Meetings,
		Keywords: map[content.Locale][]string{
			content.English: {"meeting", "book a call", "book a session", "schedule", "appointment", "consultation", "call with", "talk to"},
			content.Spanish: {"reunión", "reunion", "agenda", "una cita", "cita con", "una consulta", "consulta gratuita", "llamada", "hablar con"},
		},
	},
	{
		ID: Events,
		Keywords: map[content.Locale][]string{
			content.English: {"events", "upcoming event", "next event", "event calendar", "webinar", "workshop", "conference", "meetup"},
			content.Spanish: {"evento", "webinar", "taller", "conferencia", "seminario"},
		},
	},
	{
		ID: Contact,
		Keywords: map[content.Locale][]string{
			content.English: {"contact", "email", "e-mail", "phone number", "telephone", "your phone", "reach you", "your address", "mailing address", "where are you", "located", "your office", "offices"},
			content.Spanish: {"contacto", "contactar", "correo", "teléfono", "telefono", "dirección", "direccion", "dónde están", "donde estan", "ubicad", "oficina"},
		},
	},
	{
		ID: FAQ,
		Keywords: map[content.Locale][]string{
			content.English: {"faq", "frequently asked", "common questions", "how long", "small business", "which languages", "what languages"},
			content.Spanish: {"preguntas frecuentes", "cuánto dura", "cuanto dura", "pequeñas empresas", "idiomas"},
		},
	},
	{
		ID: About,
		Keywords: map[content.Locale][]string{
			content.English: {"about us", "about vanguard", "who are you", "who is vanguard", "your story", "your history"},
			content.Spanish: {"sobre ustedes", "sobre vanguard", "quiénes son", "quienes son", "su historia", "acerca de ustedes"},
		},
	},
}

func init() {
	for i := range definitions {
		definitions[i].Resolve = scriptResolver(definitions[i].ID)
	}
}

// Definitions returns the intent table in match order
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the definition for id
func Lookup(id ID) (Definition, bool) {
	for _, d := range definitions {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// Resolve returns the canned answer for id, or "" for an unknown id
func Resolve(id ID, locale content.Locale) string {
	d, ok := Lookup(id)
	if !ok {
		return ""
	}
	return d.Resolve(locale)
}
