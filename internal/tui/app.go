// Package tui is the terminal chat client.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/concierge/internal/chat"
	"github.com/sant0-9/concierge/internal/config"
	"github.com/sant0-9/concierge/internal/content"
)

type view int

const (
	viewWelcome view = iota
	viewChat
	viewSettings
	viewHelp
)

const scrollPage = 10

type App struct {
	width    int
	height   int
	view     view
	prev     view
	state    *state
	markdown *Markdown
	style    string
	save     func(*config.Config) error
	quitting bool
}

// NewApp creates the TUI over svc. cfg is updated and saved when the
// language changes.
func NewApp(svc *chat.Service, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	session := svc.NewSession(cfg.Locale())

	return &App{
		view:  viewWelcome,
		state: newState(cfg, session),
		style: "dark",
		save:  (*config.Config).Save,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

type replyMsg struct {
	reply *chat.Reply
	err   error
}

type configSavedMsg struct{ err error }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := a.handleKey(msg); handled {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.state.input.Width = max(20, min(70, a.width-4)-4)
		a.markdown = nil
		a.state.rendered = nil

	case replyMsg:
		a.state.pending = false
		a.state.pendingQuery = ""
		a.state.scrollOffset = 0
		if msg.err != nil {
			a.state.err = msg.err
		}
		return a, textinput.Blink

	case configSavedMsg:
		a.state.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.state.pending {
			var cmd tea.Cmd
			a.state.spinner, cmd = a.state.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if (a.view == viewWelcome || a.view == viewChat) && !a.state.pending {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit, true

	case key.Matches(msg, keys.Back):
		switch a.view {
		case viewSettings, viewHelp:
			a.view = a.prev
		case viewChat:
			a.view = viewWelcome
		default:
			a.quitting = true
			return tea.Quit, true
		}
		return nil, true
	}

	switch a.view {
	case viewSettings:
		return a.handleSettingsKey(msg), true
	case viewHelp:
		return nil, true
	}

	switch {
	case key.Matches(msg, keys.Enter):
		if a.state.pending {
			return nil, true
		}
		return a.handleInput(), true
	case key.Matches(msg, keys.Language):
		return a.setLocale(otherLocale(a.state.session.Locale())), true
	case key.Matches(msg, keys.Help) && a.state.input.Value() == "":
		a.open(viewHelp)
		return nil, true
	case key.Matches(msg, keys.Up):
		a.state.scrollOffset++
		return nil, true
	case key.Matches(msg, keys.Down):
		a.state.scrollOffset = max(0, a.state.scrollOffset-1)
		return nil, true
	case key.Matches(msg, keys.PageUp):
		a.state.scrollOffset += scrollPage
		return nil, true
	case key.Matches(msg, keys.PageDown):
		a.state.scrollOffset = max(0, a.state.scrollOffset-scrollPage)
		return nil, true
	}

	return nil, false
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}
	a.state.input.Reset()
	a.state.notice = ""
	a.state.err = nil

	if strings.HasPrefix(input, "/") {
		return a.runCommand(input)
	}

	a.view = viewChat
	a.state.pending = true
	a.state.pendingQuery = input
	a.state.scrollOffset = 0
	return tea.Batch(a.askCmd(input), a.state.spinner.Tick)
}

func (a *App) askCmd(query string) tea.Cmd {
	session := a.state.session
	return func() tea.Msg {
		reply, err := session.Ask(context.Background(), query)
		return replyMsg{reply: reply, err: err}
	}
}

func (a *App) runCommand(input string) tea.Cmd {
	cmd, arg := parseCommand(input)
	switch cmd {
	case cmdHelp:
		a.open(viewHelp)
	case cmdSettings:
		a.open(viewSettings)
	case cmdLang:
		if arg == "" {
			return a.setLocale(otherLocale(a.state.session.Locale()))
		}
		l, err := content.ParseLocale(arg)
		if err != nil {
			a.state.err = err
			return nil
		}
		return a.setLocale(l)
	case cmdNew:
		a.state.session.Reset()
		a.state.rendered = nil
		a.state.scrollOffset = 0
		a.view = viewWelcome
	case cmdQuit:
		a.quitting = true
		return tea.Quit
	default:
		a.state.err = fmt.Errorf("unknown command %q, type /help", input)
	}
	return nil
}

func (a *App) open(v view) {
	if a.view != viewSettings && a.view != viewHelp {
		a.prev = a.view
	}
	if v == viewSettings {
		a.state.settingsSelected = localeIndex(a.state.session.Locale())
	}
	a.view = v
}

// setLocale switches the conversation language and persists it
func (a *App) setLocale(l content.Locale) tea.Cmd {
	a.state.session.SetLocale(l)
	a.state.input.Placeholder = textFor(l).placeholder
	a.state.notice = "Language: " + l.Name()
	a.state.rendered = nil

	cfg := a.state.config
	cfg.Language = string(l)
	save := a.save
	return func() tea.Msg {
		return configSavedMsg{err: save(cfg)}
	}
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if a.state.settingsSelected > 0 {
			a.state.settingsSelected--
		}
	case "down", "j":
		if a.state.settingsSelected < len(content.Locales)-1 {
			a.state.settingsSelected++
		}
	case "enter":
		a.view = a.prev
		return a.setLocale(content.Locales[a.state.settingsSelected])
	}
	return nil
}

func otherLocale(l content.Locale) content.Locale {
	if l == content.Spanish {
		return content.English
	}
	return content.Spanish
}

func localeIndex(l content.Locale) int {
	for i, loc := range content.Locales {
		if loc == l {
			return i
		}
	}
	return 0
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewChat:
		return a.renderChat()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderWelcome()
	}
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}

// Run starts the TUI on the alternate screen
func Run(svc *chat.Service, cfg *config.Config) error {
	p := tea.NewProgram(NewApp(svc, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
