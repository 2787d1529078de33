package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/concierge/internal/chat"
)

func (a *App) renderChat() string {
	boxWidth := a.boxWidth()
	leftPad := max((a.width-boxWidth)/2, 2)
	indent := strings.Repeat(" ", leftPad)
	locale := a.state.session.Locale()
	text := textFor(locale)

	headerHeight := 3 // title + language + blank line
	inputHeight := 4  // input box + status bar
	availableHeight := max(a.height-headerHeight-inputHeight, 5)

	// === HEADER ===
	var header strings.Builder
	title := styleTitle.Render("Vanguard Concierge")
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	header.WriteString("\n")
	sub := styleSubtitle.Render(locale.Name())
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, sub))
	header.WriteString("\n\n")

	// === MESSAGES ===
	var messageLines []string
	history := a.state.session.History()
	if len(history) == 0 && !a.state.pending {
		messageLines = append(messageLines, indent+styleSubtitle.Render(text.empty))
	}

	for i, msg := range history {
		if msg.Role == chat.RoleUser {
			messageLines = append(messageLines, a.userLines(msg.Text, boxWidth, indent)...)
		} else {
			for _, line := range strings.Split(a.renderedAnswer(i, msg.Text, boxWidth), "\n") {
				messageLines = append(messageLines, indent+line)
			}
		}
		messageLines = append(messageLines, "")
	}

	if a.state.pending {
		messageLines = append(messageLines, a.userLines(a.state.pendingQuery, boxWidth, indent)...)
		messageLines = append(messageLines, "")
		thinking := styleTitle.Render(a.state.spinner.View() + " " + text.thinking)
		messageLines = append(messageLines, indent+thinking)
	}

	// === SCROLL (from the bottom) ===
	totalLines := len(messageLines)
	maxScroll := max(totalLines-availableHeight, 0)
	a.state.scrollOffset = min(max(a.state.scrollOffset, 0), maxScroll)

	endIdx := totalLines - a.state.scrollOffset
	startIdx := max(endIdx-availableHeight, 0)
	visibleLines := messageLines[startIdx:endIdx]

	// === FOOTER ===
	var footer strings.Builder
	inputBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(colorMuted).
		Render(a.state.input.View())
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	footer.WriteString("\n")

	var hints []string
	if a.state.scrollOffset > 0 {
		hints = append(hints, fmt.Sprintf("[scroll: %d]", a.state.scrollOffset))
	}
	hints = append(hints, "[Up/Down] Scroll  [Tab] "+otherLocale(locale).Name()+"  [Esc] Back")
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.statusLine(strings.Join(hints, "  "))))

	// === COMBINE ===
	var messageArea strings.Builder
	messageArea.WriteString(strings.Join(visibleLines, "\n"))
	if padding := availableHeight - len(visibleLines); padding > 0 {
		messageArea.WriteString(strings.Repeat("\n", padding))
	}

	return header.String() + messageArea.String() + "\n" + footer.String()
}

func (a *App) userLines(text string, boxWidth int, indent string) []string {
	var out []string
	for j, line := range strings.Split(wrapText(text, boxWidth-4), "\n") {
		prefix := "> "
		if j > 0 {
			prefix = "  "
		}
		out = append(out, indent+styleUser.Render(prefix+line))
	}
	return out
}

// renderedAnswer renders history[i] once and caches it until the size or
// language changes.
func (a *App) renderedAnswer(i int, text string, width int) string {
	if i < len(a.state.rendered) && a.state.rendered[i] != "" {
		return a.state.rendered[i]
	}
	if a.markdown == nil {
		a.markdown = NewMarkdown(width, a.style)
	}
	for len(a.state.rendered) <= i {
		a.state.rendered = append(a.state.rendered, "")
	}
	a.state.rendered[i] = a.markdown.Render(text)
	return a.state.rendered[i]
}
