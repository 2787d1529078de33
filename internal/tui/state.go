package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sant0-9/concierge/internal/chat"
	"github.com/sant0-9/concierge/internal/config"
	"github.com/sant0-9/concierge/internal/content"
)

type state struct {
	config  *config.Config
	session *chat.Session

	// Input
	input textinput.Model

	// Rendered assistant messages, aligned with session.History()
	rendered []string

	// Waiting for a reply
	pending      bool
	pendingQuery string
	spinner      spinner.Model

	// Chat scroll, counted in lines from the bottom
	scrollOffset int

	// Settings cursor
	settingsSelected int

	// One-line feedback shown in the status bar
	notice string
	err    error
}

type uiText struct {
	greeting    string
	hint        string
	placeholder string
	thinking    string
	empty       string
}

var ui = map[content.Locale]uiText{
	content.English: {
		greeting:    "Hi! I'm the Vanguard Consulting assistant.",
		hint:        "Ask about our services, pricing, events or how to reach us",
		placeholder: "Ask a question, or /help for commands...",
		thinking:    "Thinking...",
		empty:       "No messages yet",
	},
	content.Spanish: {
		greeting:    "¡Hola! Soy el asistente de Vanguard Consulting.",
		hint:        "Pregunta por nuestros servicios, precios, eventos o cómo contactarnos",
		placeholder: "Escribe tu pregunta, o /help para ver los comandos...",
		thinking:    "Pensando...",
		empty:       "Todavía no hay mensajes",
	},
}

func textFor(l content.Locale) uiText {
	return ui[l.OrDefault()]
}

func newState(cfg *config.Config, session *chat.Session) *state {
	input := textinput.New()
	input.Placeholder = textFor(session.Locale()).placeholder
	input.CharLimit = chat.MaxQueryLength
	input.Width = 60
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleTitle

	return &state{
		config:  cfg,
		session: session,
		input:   input,
		spinner: sp,
	}
}
