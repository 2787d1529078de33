// Package content holds the static, localized site content the chatbot answers from.
//
// Tables are loaded once at startup, either from the copy embedded in the binary
// or from an override file, and are read-only afterwards.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embedded []byte

// Locale is a two-letter language tag
type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"
)

// Locales lists every supported locale in display order
var Locales = []Locale{English, Spanish}

var (
	ErrUnsupportedLocale = errors.New("unsupported locale")
	ErrInvalidContent    = errors.New("invalid content")
)

// ParseLocale accepts "en", "es" and region tags such as "es-MX"
func ParseLocale(s string) (Locale, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	switch Locale(tag) {
	case English:
		return English, nil
	case Spanish:
		return Spanish, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
}

// Valid reports whether l is one of the supported locales
func (l Locale) Valid() bool {
	return l == English || l == Spanish
}

// OrDefault returns l, or English when l is not supported
func (l Locale) OrDefault() Locale {
	if l.Valid() {
		return l
	}
	return English
}

// Name returns the human-readable language name
func (l Locale) Name() string {
	switch l {
	case Spanish:
		return "Español"
	default:
		return "English"
	}
}

type Service struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
}

type ServicesContent struct {
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Services []Service `yaml:"services"`
}

type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type FAQContent struct {
	Title string `yaml:"title"`
	FAQs  []FAQ  `yaml:"faqs"`
}

type Value struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Values struct {
	Title string  `yaml:"title"`
	Items []Value `yaml:"items"`
}

type AboutContent struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Mission  string `yaml:"mission"`
	Vision   string `yaml:"vision"`
	Values   Values `yaml:"values"`
}

type ContactInfo struct {
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	City    string `yaml:"city"`
	Country string `yaml:"country"`
}

// Page is a public site page (privacy, events, ...) with a markdown body
type Page struct {
	Slug  string `yaml:"slug"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Tables is the full content set, keyed by locale
type Tables struct {
	Services map[Locale]ServicesContent `yaml:"services"`
	FAQ      map[Locale]FAQContent      `yaml:"faq"`
	About    map[Locale]AboutContent    `yaml:"about"`
	Contact  map[Locale]ContactInfo     `yaml:"contact"`
	Pages    map[Locale][]Page          `yaml:"pages"`
}

// Default parses the tables embedded in the binary
func Default() (*Tables, error) {
	return Parse(embedded)
}

// MustDefault is Default for package-level initialization and tests
func MustDefault() *Tables {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}

// Load reads an override content file with the same shape as the embedded one
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a YAML content document
func Parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that every locale has services, faq, about and contact entries
func (t *Tables) Validate() error {
	var problems []string
	for _, l := range Locales {
		if _, ok := t.Services[l]; !ok {
			problems = append(problems, fmt.Sprintf("services.%s missing", l))
		}
		if _, ok := t.FAQ[l]; !ok {
			problems = append(problems, fmt.Sprintf("faq.%s missing", l))
		}
		if _, ok := t.About[l]; !ok {
			problems = append(problems, fmt.Sprintf("about.%s missing", l))
		}
		c, ok := t.Contact[l]
		if !ok {
			problems = append(problems, fmt.Sprintf("contact.%s missing", l))
		} else if strings.TrimSpace(c.Email) == "" {
			problems = append(problems, fmt.Sprintf("contact.%s.email empty", l))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(problems, ", "))
	}
	return nil
}

// The accessors below fall back to English for unsupported locales.
// Returned values share backing arrays with the tables; treat them as read-only.

func (t *Tables) ServicesFor(l Locale) ServicesContent {
	return t.Services[l.OrDefault()]
}

func (t *Tables) FAQFor(l Locale) FAQContent {
	return t.FAQ[l.OrDefault()]
}

func (t *Tables) AboutFor(l Locale) AboutContent {
	return t.About[l.OrDefault()]
}

func (t *Tables) ContactFor(l Locale) ContactInfo {
	return t.Contact[l.OrDefault()]
}

func (t *Tables) PagesFor(l Locale) []Page {
	return t.Pages[l.OrDefault()]
}
