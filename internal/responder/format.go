package responder

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sant0-9/concierge/internal/content"
	"github.com/sant0-9/concierge/internal/document"
	"github.com/sant0-9/concierge/internal/intent"
)

// Documents is the pseudo-intent used for the generic document summary
const Documents intent.ID = "documents"

const maxSnippetRunes = 220

var icons = map[intent.ID]string{
	intent.Services:              "🧭",
	intent.Pricing:               "💼",
	intent.Security:              "🔐",
	intent.AIOptimisation:        "🤖",
	intent.DigitalTransformation: "🚀",
	intent.DataAnalytics:         "📊",
	intent.ClientPortal:          "🔑",
	intent.CaseStudies:           "🏆",
	intent.Meetings:              "📅",
	intent.Events:                "🎤",
	intent.Contact:               "📬",
	intent.FAQ:                   "❓",
	intent.About:                 "🏢",
	Documents:                    "📚",
}

// Icon returns the emoji registered for id, or ""
func Icon(id intent.ID) string {
	return icons[id]
}

func applyIntentIcon(id intent.ID, text string) string {
	icon, ok := icons[id]
	if !ok || text == "" {
		return text
	}
	return icon + " " + text
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	leadSentence  = regexp.MustCompile(`^.*?[.!?](?:\s|$)`)
)

// firstSentence returns the leading sentence of text with whitespace collapsed,
// or the whole collapsed text when it has no terminal punctuation.
func firstSentence(text string) string {
	clean := strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	if clean == "" {
		return ""
	}
	if m := leadSentence.FindString(clean); m != "" {
		clean = m
	}
	return strings.TrimSpace(truncateRunes(clean, maxSnippetRunes))
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// formatResponse joins answer lines. sources is accepted for citations but not rendered yet.
func (g *Generator) formatResponse(lines []string, _ content.Locale, sources []document.Document) string {
	return g.withSourceLine(strings.Join(lines, "\n"), sources)
}

// withSourceLine is where a "Sources: ..." footer will be appended once
// the site exposes stable document URLs. It returns text unchanged.
func (g *Generator) withSourceLine(text string, _ []document.Document) string {
	return text
}
