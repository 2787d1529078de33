package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/concierge/internal/config"
	"github.com/sant0-9/concierge/internal/content"
)

func (a *App) renderSettings() string {
	var b strings.Builder

	title := styleTitle.Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	cfg := a.state.config
	source := "built-in"
	if cfg.ContentPath != "" {
		source = truncate(cfg.ContentPath, 36)
	}
	path, err := config.ConfigPath()
	if err != nil {
		path = "unavailable"
	}

	configLines := []string{
		fmt.Sprintf("  Content:  %s", source),
		fmt.Sprintf("  Top K:    %d", cfg.TopK),
		fmt.Sprintf("  File:     %s", truncate(path, 36)),
	}
	configBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(configLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, configBox))
	b.WriteString("\n\n")

	langTitle := styleSubtitle.Render("Language")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, langTitle))
	b.WriteString("\n\n")

	current := a.state.session.Locale()
	var lines []string
	for i, l := range content.Locales {
		cursor := "  "
		if i == a.state.settingsSelected {
			cursor = "> "
		}
		mark := ""
		if l == current {
			mark = " (current)"
		}
		line := fmt.Sprintf("%s%s%s", cursor, l.Name(), mark)
		if i == a.state.settingsSelected {
			line = styleSelected.Render(line)
		}
		lines = append(lines, line)
	}

	listBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	instructions := a.statusLine("[Up/Down] Navigate  [Enter] Select  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
