package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := styleTitle.Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	commands := []string{
		"  /help, /h          Show this help",
		"  /settings, /s      Choose the language",
		"  /lang en|es        Switch language",
		"  /new, /n           Start a new conversation",
		"  /quit, /q          Quit concierge",
		"",
		"  Anything else is sent as a question",
	}

	commandsBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(commands, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, commandsBox))
	b.WriteString("\n\n")

	shortcuts := []string{
		"  Enter              Send",
		"  Tab                Switch language",
		"  Up/Down, PgUp/PgDn Scroll the conversation",
		"  Esc                Back / Quit",
		"  Ctrl+C             Quit",
	}

	shortcutsTitle := styleSubtitle.Render("Keyboard Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcutsBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
