package responder

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sant0-9/concierge/internal/content"
	"github.com/sant0-9/concierge/internal/document"
	"github.com/sant0-9/concierge/internal/intent"
)

func TestFirstSentence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "two sentences", in: "Hello world. More text.", want: "Hello world."},
		{name: "no punctuation", in: "no punctuation here", want: "no punctuation here"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: " \n\t ", want: ""},
		{name: "collapses whitespace", in: "  Hello\n\n   there  friend!  Bye.", want: "Hello there friend!"},
		{name: "question", in: "Is it? Yes.", want: "Is it?"},
		{name: "dot inside token", in: "Version 2.5 is out. Upgrade now.", want: "Version 2.5 is out."},
		{name: "ellipsis", in: "Wait... what?", want: "Wait..."},
		{name: "accents", in: "¿Cuánto dura? Depende.", want: "¿Cuánto dura?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstSentence(tt.in); got != tt.want {
				t.Errorf("firstSentence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFirstSentenceCapsLength(t *testing.T) {
	long := strings.Repeat("word ", 100) + "end."
	if got := firstSentence(long); len(got) > 220 {
		t.Errorf("firstSentence() length = %d, want <= 220", len(got))
	}

	accented := strings.Repeat("á", 300)
	got := firstSentence(accented)
	if n := utf8.RuneCountInString(got); n != 220 {
		t.Errorf("firstSentence() rune count = %d, want 220", n)
	}
	if !utf8.ValidString(got) {
		t.Error("firstSentence() split a multi-byte rune")
	}
}

func TestApplyIntentIcon(t *testing.T) {
	tests := []struct {
		id   intent.ID
		text string
		want string
	}{
		{id: intent.Pricing, text: "Quote", want: "💼 Quote"},
		{id: intent.Services, text: "Help", want: "🧭 Help"},
		{id: Documents, text: "Found", want: "📚 Found"},
		{id: intent.ID("unknown"), text: "Plain", want: "Plain"},
		{id: intent.Pricing, text: "", want: ""},
	}

	for _, tt := range tests {
		if got := applyIntentIcon(tt.id, tt.text); got != tt.want {
			t.Errorf("applyIntentIcon(%s, %q) = %q, want %q", tt.id, tt.text, got, tt.want)
		}
	}
}

func TestEveryIntentHasIcon(t *testing.T) {
	for _, d := range intent.Definitions() {
		if Icon(d.ID) == "" {
			t.Errorf("intent %s has no icon", d.ID)
		}
	}
}

func TestFormatResponseIgnoresSources(t *testing.T) {
	g := New(nil)
	sources := []document.Document{{PageContent: "x", Metadata: document.Metadata{Title: "Source"}}}

	got := g.formatResponse([]string{"a", "b"}, content.English, sources)
	if got != "a\nb" {
		t.Errorf("formatResponse() = %q, want %q", got, "a\nb")
	}
	if got := g.formatResponse(nil, content.Spanish, nil); got != "" {
		t.Errorf("formatResponse(nil) = %q, want empty", got)
	}
}
