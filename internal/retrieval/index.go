// Package retrieval finds the site content most relevant to a chatbot query.
package retrieval

import (
	"sort"
	"strings"
	"unicode"

	"github.com/sant0-9/concierge/internal/content"
	"github.com/sant0-9/concierge/internal/document"
)

// DefaultTopK is used when Search is called with k <= 0
const DefaultTopK = 3

const titleWeight = 2

var stopwords = map[string]bool{
	// en
	"the": true, "and": true, "for": true, "you": true, "your": true, "are": true, "what": true,
	"how": true, "can": true, "does": true, "with": true, "our": true, "this": true, "that": true,
	"is": true, "do": true, "we": true, "of": true, "to": true, "in": true, "me": true, "it": true,
	// es
	"el": true, "la": true, "los": true, "las": true, "de": true, "del": true, "que": true,
	"qué": true, "en": true, "un": true, "una": true, "por": true, "con": true, "para": true,
	"es": true, "su": true, "sus": true, "se": true, "al": true, "lo": true, "como": true, "cómo": true,
}

type entry struct {
	doc   document.Document
	body  map[string]bool
	title map[string]bool
}

// Index is an in-memory term index over the content tables, one per locale.
// It is built once and only read afterwards.
type Index struct {
	entries map[content.Locale][]entry
}

// NewIndex builds documents for every locale in tables
func NewIndex(tables *content.Tables, chunkSize int) *Index {
	ix := &Index{entries: make(map[content.Locale][]entry)}
	for _, l := range content.Locales {
		for _, d := range Documents(tables, l, chunkSize) {
			ix.entries[l] = append(ix.entries[l], entry{
				doc:   d,
				body:  termSet(d.PageContent),
				title: termSet(d.Metadata.Title),
			})
		}
	}
	return ix
}

// Len returns how many documents are indexed for locale
func (ix *Index) Len(locale content.Locale) int {
	return len(ix.entries[locale.OrDefault()])
}

// Search returns up to k documents ranked by query term overlap.
// Documents sharing no term with the query are never returned.
func (ix *Index) Search(query string, locale content.Locale, k int) []document.Document {
	if k <= 0 {
		k = DefaultTopK
	}
	terms := termSet(query)
	if len(terms) == 0 {
		return nil
	}

	type scored struct {
		doc   document.Document
		score int
	}
	var hits []scored
	for _, e := range ix.entries[locale.OrDefault()] {
		score := 0
		for t := range terms {
			if e.body[t] {
				score++
			}
			if e.title[t] {
				score += titleWeight
			}
		}
		if score > 0 {
			hits = append(hits, scored{doc: e.doc, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	out := make([]document.Document, 0, min(k, len(hits)))
	for _, h := range hits[:min(k, len(hits))] {
		out = append(out, h.doc)
	}
	return out
}

// Documents flattens the tables for one locale into retrievable documents
func Documents(tables *content.Tables, locale content.Locale, chunkSize int) []document.Document {
	var docs []document.Document
	meta := func(typ, title, slug string) document.Metadata {
		return document.Metadata{Type: typ, Title: title, Slug: slug, Locale: string(locale)}
	}

	for _, s := range tables.ServicesFor(locale).Services {
		text := s.Title + ". " + strings.TrimSpace(s.Description)
		if len(s.Features) > 0 {
			text += " " + strings.Join(s.Features, ". ") + "."
		}
		docs = append(docs, document.Document{PageContent: text, Metadata: meta(document.TypeServices, s.Title, "services")})
	}

	for _, f := range tables.FAQFor(locale).FAQs {
		docs = append(docs, document.Document{
			PageContent: strings.TrimSpace(f.Answer),
			Metadata:    meta(document.TypeFAQ, f.Question, "faq"),
		})
	}

	if about := tables.AboutFor(locale); about.Title != "" {
		var values []string
		for _, v := range about.Values.Items {
			values = append(values, v.Title+": "+v.Description)
		}
		text := strings.Join(nonEmpty(about.Subtitle+".", about.Mission, about.Vision, strings.Join(values, " ")), " ")
		docs = append(docs, document.Document{PageContent: text, Metadata: meta(document.TypeAbout, about.Title, "about")})
	}

	if c := tables.ContactFor(locale); c.Email != "" {
		text := strings.Join(nonEmpty(c.Email, c.Phone, c.City, c.Country), " · ")
		title := "Contact"
		if locale == content.Spanish {
			title = "Contacto"
		}
		docs = append(docs, document.Document{PageContent: text, Metadata: meta(document.TypeContact, title, "contact")})
	}

	for _, p := range tables.PagesFor(locale) {
		for _, c := range ChunkDocument(p.Body, chunkSize) {
			title := p.Title
			if c.Section != "" && !strings.EqualFold(c.Section, p.Title) {
				title = p.Title + " / " + c.Section
			}
			docs = append(docs, document.Document{PageContent: c.Content, Metadata: meta(document.TypePage, title, p.Slug)})
		}
	}

	return docs
}

func termSet(text string) map[string]bool {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]bool, len(words))
	for _, w := range words {
		if len([]rune(w)) < 2 || stopwords[w] {
			continue
		}
		set[w] = true
	}
	return set
}

func nonEmpty(parts ...string) []string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" && p != "." {
			out = append(out, p)
		}
	}
	return out
}
