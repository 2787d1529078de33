package tui

import "strings"

type command string

const (
	cmdHelp     command = "help"
	cmdSettings command = "settings"
	cmdLang     command = "lang"
	cmdNew      command = "new"
	cmdQuit     command = "quit"
	cmdUnknown  command = ""
)

var commandAliases = map[string]command{
	"help":     cmdHelp,
	"h":        cmdHelp,
	"settings": cmdSettings,
	"s":        cmdSettings,
	"lang":     cmdLang,
	"language": cmdLang,
	"idioma":   cmdLang,
	"l":        cmdLang,
	"new":      cmdNew,
	"n":        cmdNew,
	"quit":     cmdQuit,
	"q":        cmdQuit,
	"exit":     cmdQuit,
}

// parseCommand splits "/lang es" into the command and its argument
func parseCommand(input string) (command, string) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(input), "/"))
	if len(fields) == 0 {
		return cmdUnknown, ""
	}
	cmd, ok := commandAliases[strings.ToLower(fields[0])]
	if !ok {
		return cmdUnknown, fields[0]
	}
	return cmd, strings.Join(fields[1:], " ")
}
