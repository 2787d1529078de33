package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sant0-9/concierge/internal/chat"
	"github.com/sant0-9/concierge/internal/tui"
)

func newAskCmd(c *cli) *cobra.Command {
	var asJSON, plain bool

	cmd := &cobra.Command{
		Use:   "ask [query]",
		Short: "Answer a single question",
		Example: `  concierge ask "what services do you offer?"
  concierge ask --lang es "¿cuánto cuesta?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.service(nil)
			if err != nil {
				return err
			}

			reply, err := svc.Ask(cmd.Context(), chat.Request{Query: strings.Join(args, " ")})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(reply)
			case plain:
				_, err = fmt.Fprintln(out, reply.Text)
			default:
				_, err = fmt.Fprintln(out, tui.NewMarkdown(80, "auto").Render(reply.Text))
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the reply as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the reply without markdown rendering")
	return cmd
}
