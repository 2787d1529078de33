package tui

import "github.com/charmbracelet/lipgloss"

const logo = `
 ╔═╗╔═╗╔╗╔╔═╗╦╔═╗╦═╗╔═╗╔═╗
 ║  ║ ║║║║║  ║║╣ ╠╦╝║ ╦║╣
 ╚═╝╚═╝╝╚╝╚═╝╩╚═╝╩╚═╚═╝╚═╝
`

func (a *App) renderWelcome() string {
	text := textFor(a.state.session.Locale())

	logoRendered := styleLogo.Render(logo)
	subtitle := styleSubtitle.Render("Vanguard Consulting")
	greeting := lipgloss.NewStyle().Bold(true).Render("\n" + text.greeting)
	hint := styleSubtitle.Render(text.hint)

	inputBox := styleBox.Copy().
		Width(a.boxWidth()).
		BorderForeground(colorPrimary).
		Render(a.state.input.View())

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		greeting,
		hint,
		"",
		inputBox,
	)

	// Leave room for the status bar
	mainArea := lipgloss.Place(
		a.width,
		max(a.height-2, 0),
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.statusLine("[Tab] "+otherLocale(a.state.session.Locale()).Name()+"  [?] Help  [Esc] Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}

// statusLine shows the pending notice or error in place of the key hints
func (a *App) statusLine(hints string) string {
	switch {
	case a.state.err != nil:
		return styleError.Render(a.state.err.Error())
	case a.state.notice != "":
		return styleNotice.Render(a.state.notice) + "  " + styleStatusBar.Render(hints)
	default:
		return styleStatusBar.Render(hints)
	}
}

func (a *App) boxWidth() int {
	return max(24, min(70, a.width-4))
}
