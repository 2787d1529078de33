// Package responder turns a chatbot query into a localized answer.
//
// A Generator detects the query's intent and builds the answer from the static
// content tables, a canned script, or a summary of the retrieved documents.
// It performs no I/O and keeps no state between calls, so one Generator can
// serve any number of goroutines.
package responder

import (
	"fmt"
	"strings"

	"github.com/sant0-9/concierge/internal/content"
	"github.com/sant0-9/concierge/internal/document"
	"github.com/sant0-9/concierge/internal/intent"
)

// MaxDocuments is how many leading retrieved documents are considered
const MaxDocuments = 3

const maxListed = 2

// Fallback tells how an answer was produced when no intent matched
type Fallback string

const (
	FallbackNone      Fallback = ""
	FallbackDocuments Fallback = "documents"
	FallbackApology   Fallback = "apology"
)

// Reply is a generated answer plus how it was produced
type Reply struct {
	Text     string
	Intent   intent.ID
	Fallback Fallback
}

// Matched reports whether an intent produced the answer
func (r Reply) Matched() bool {
	return r.Intent != ""
}

type phrases struct {
	servicesHeader  string
	faqHeader       string
	documentsHeader string
	mission         string
	vision          string
	values          string
	email           string
	location        string
	apology         string
}

var localized = map[content.Locale]phrases{
	content.English: {
		servicesHeader:  "Here is how we can help:",
		faqHeader:       "Here are some answers that may help:",
		documentsHeader: "Here is what I found:",
		mission:         "Mission",
		vision:          "Vision",
		values:          "Values",
		email:           "Email",
		location:        "Location",
		apology:         "I'm sorry, I couldn't find an answer to that. Please write to us at %s and our team will get back to you.",
	},
	content.Spanish: {
		servicesHeader:  "Así es como podemos ayudarte:",
		faqHeader:       "Estas respuestas pueden ayudarte:",
		documentsHeader: "Esto es lo que encontré:",
		mission:         "Misión",
		vision:          "Visión",
		values:          "Valores",
		email:           "Correo",
		location:        "Ubicación",
		apology:         "Lo siento, no encontré una respuesta a eso. Escríbenos a %s y nuestro equipo te responderá.",
	},
}

// Generator builds answers from read-only content tables
type Generator struct {
	tables *content.Tables
}

// New creates a generator over tables; nil selects the embedded content
func New(tables *content.Tables) *Generator {
	if tables == nil {
		tables = content.MustDefault()
	}
	return &Generator{tables: tables}
}

// Generate answers query using at most the first MaxDocuments docs
func (g *Generator) Generate(query string, docs []document.Document, locale content.Locale) string {
	return g.Answer(query, docs, locale).Text
}

// Answer is Generate with the matched intent and fallback path attached
func (g *Generator) Answer(query string, docs []document.Document, locale content.Locale) Reply {
	locale = locale.OrDefault()
	q := strings.ToLower(strings.TrimSpace(query))
	top := document.Top(docs, MaxDocuments)

	if id, ok := intent.Detect(q, locale); ok {
		if text := g.respond(id, q, top, locale); text != "" {
			return Reply{Text: applyIntentIcon(id, text), Intent: id}
		}
	}

	if summary := g.summarizeDocuments(top, locale); summary != "" {
		return Reply{Text: applyIntentIcon(Documents, summary), Fallback: FallbackDocuments}
	}

	return Reply{Text: g.apology(locale), Fallback: FallbackApology}
}

func (g *Generator) respond(id intent.ID, query string, top []document.Document, locale content.Locale) string {
	switch id {
	case intent.Services:
		return g.servicesResponse(query, top, locale)
	case intent.FAQ:
		return g.faqResponse(query, top, locale)
	case intent.About:
		return g.aboutResponse(top, locale)
	case intent.Contact:
		return g.contactResponse(locale)
	default:
		return intent.Resolve(id, locale)
	}
}

func (g *Generator) servicesResponse(query string, top []document.Document, locale content.Locale) string {
	sources := document.FilterByType(top, document.TypeServices)
	all := g.tables.ServicesFor(locale).Services
	if len(all) == 0 {
		return intent.Resolve(intent.Services, locale)
	}

	var picked []content.Service
	for _, s := range all {
		title := strings.ToLower(strings.TrimSpace(s.Title))
		if title != "" && strings.Contains(query, title) {
			picked = append(picked, s)
		}
	}
	if len(picked) == 0 {
		picked = all
	}
	picked = picked[:min(maxListed, len(picked))]

	lines := []string{localized[locale].servicesHeader}
	for _, s := range picked {
		lines = append(lines, serviceLine(s))
	}
	return g.formatResponse(lines, locale, sources)
}

func serviceLine(s content.Service) string {
	line := "- " + s.Title
	if desc := firstSentence(s.Description); desc != "" {
		line += ": " + desc
	}
	features := s.Features[:min(maxListed, len(s.Features))]
	if len(features) > 0 {
		line += " (" + strings.Join(features, "; ") + ")"
	}
	return line
}

func (g *Generator) faqResponse(query string, top []document.Document, locale content.Locale) string {
	sources := document.FilterByType(top, document.TypeFAQ)
	all := g.tables.FAQFor(locale).FAQs
	if len(all) == 0 {
		return intent.Resolve(intent.FAQ, locale)
	}

	var picked []content.FAQ
	for _, f := range all {
		if strings.Contains(strings.ToLower(f.Question), query) || strings.Contains(strings.ToLower(f.Answer), query) {
			picked = append(picked, f)
		}
	}
	if len(picked) == 0 {
		picked = all
	}
	picked = picked[:min(maxListed, len(picked))]

	lines := []string{localized[locale].faqHeader}
	for _, f := range picked {
		lines = append(lines, strings.TrimSpace("- "+strings.TrimSpace(f.Question)+" "+firstSentence(f.Answer)))
	}
	return g.formatResponse(lines, locale, sources)
}

func (g *Generator) aboutResponse(top []document.Document, locale content.Locale) string {
	sources := document.FilterByType(top, document.TypeAbout)
	about := g.tables.AboutFor(locale)
	p := localized[locale]

	var lines []string
	switch {
	case about.Title != "" && about.Subtitle != "":
		lines = append(lines, about.Title+": "+about.Subtitle)
	case about.Title != "":
		lines = append(lines, about.Title)
	}
	if m := firstSentence(about.Mission); m != "" {
		lines = append(lines, p.mission+": "+m)
	}
	if v := firstSentence(about.Vision); v != "" {
		lines = append(lines, p.vision+": "+v)
	}
	var values []string
	for _, item := range about.Values.Items {
		if item.Title != "" {
			values = append(values, item.Title)
		}
	}
	if len(values) > 0 {
		lines = append(lines, p.values+": "+strings.Join(values, ", "))
	}

	if len(lines) == 0 {
		return intent.Resolve(intent.About, locale)
	}
	return g.formatResponse(lines, locale, sources)
}

func (g *Generator) contactResponse(locale content.Locale) string {
	info := g.tables.ContactFor(locale)
	p := localized[locale]

	place := strings.Join(nonEmpty(info.City, info.Country), ", ")
	lines := []string{p.email + ": " + info.Email}
	if place != "" {
		lines = append(lines, p.location+": "+place)
	}
	return g.formatResponse(lines, locale, nil)
}

// summarizeDocuments lists a snippet per document, or returns "" when none has text
func (g *Generator) summarizeDocuments(top []document.Document, locale content.Locale) string {
	var bullets []string
	for _, d := range document.Top(top, MaxDocuments) {
		snippet := firstSentence(d.PageContent)
		if snippet == "" {
			continue
		}
		if label := strings.TrimSpace(d.Metadata.Label()); label != "" {
			bullets = append(bullets, "- "+label+": "+snippet)
		} else {
			bullets = append(bullets, "- "+snippet)
		}
	}
	if len(bullets) == 0 {
		return ""
	}
	lines := append([]string{localized[locale].documentsHeader}, bullets...)
	return g.formatResponse(lines, locale, top)
}

func (g *Generator) apology(locale content.Locale) string {
	return fmt.Sprintf(localized[locale].apology, g.tables.ContactFor(locale).Email)
}

func nonEmpty(parts ...string) []string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
