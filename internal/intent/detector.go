package intent

import (
	"regexp"
	"strings"

	"github.com/sant0-9/concierge/internal/content"
)

var (
	aboutTopicEN = regexp.MustCompile(`mission|vision|values|approach|leadership|team`)
	aboutBrandEN = regexp.MustCompile(`vanguard|your|company|business|team|culture|history`)

	aboutTopicES = regexp.MustCompile(`misi[oó]n|visi[oó]n|valores|enfoque|liderazgo|equipo`)
	aboutLeadES  = regexp.MustCompile(`sobre|acerca`)
	aboutBrandES = regexp.MustCompile(`vanguard|ustedes|empresa|compañía|negocio|equipo|cultura|historia`)
)

// Detect returns the first intent whose keywords occur in query.
// The query must already be trimmed and lower-cased.
func Detect(query string, locale content.Locale) (ID, bool) {
	locale = locale.OrDefault()
	for _, d := range definitions {
		for _, kw := range d.Keywords[locale] {
			if kw != "" && strings.Contains(query, kw) {
				return d.ID, true
			}
		}
	}
	if isAboutIntent(query, locale) {
		return About, true
	}
	return "", false
}

// isAboutIntent catches company questions the keyword table misses
// ("what is your mission", "tell me about your team").
func isAboutIntent(query string, locale content.Locale) bool {
	if locale == content.Spanish {
		return aboutTopicES.MatchString(query) ||
			(aboutLeadES.MatchString(query) && aboutBrandES.MatchString(query))
	}
	return aboutTopicEN.MatchString(query) ||
		(strings.Contains(query, "about") && aboutBrandEN.MatchString(query))
}
