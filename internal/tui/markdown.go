package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders chatbot answers for the terminal
type Markdown struct {
	renderer *glamour.TermRenderer
	width    int
}

// NewMarkdown creates a renderer wrapping at width. style is a glamour
// standard style name ("dark", "light", "notty"); empty selects "dark".
// Rendering falls back to plain wrapped text when glamour cannot be set up.
func NewMarkdown(width int, style string) *Markdown {
	if width <= 0 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		r = nil
	}
	return &Markdown{renderer: r, width: width}
}

// Render formats an answer. Single newlines between answer lines are kept.
func (m *Markdown) Render(text string) string {
	if m == nil || m.renderer == nil {
		return wrapText(text, m.wrapWidth())
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return wrapText(text, m.wrapWidth())
	}
	return strings.Trim(out, "\n")
}

func (m *Markdown) wrapWidth() int {
	if m == nil {
		return 0
	}
	return m.width
}

// wrapText wraps each line of text to maxWidth runes, preserving words
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 60
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = wrapLine(line, maxWidth)
	}
	return strings.Join(lines, "\n")
}

func wrapLine(line string, maxWidth int) string {
	if len([]rune(line)) <= maxWidth {
		return line
	}

	var result strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(line) {
		n := len([]rune(word))
		if i > 0 {
			if lineLen+1+n > maxWidth {
				result.WriteString("\n")
				lineLen = 0
			} else {
				result.WriteString(" ")
				lineLen++
			}
		}
		result.WriteString(word)
		lineLen += n
	}
	return result.String()
}
