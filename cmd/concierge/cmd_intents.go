package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/sant0-9/concierge/internal/content"
	"github.com/sant0-9/concierge/internal/intent"
	"github.com/sant0-9/concierge/internal/responder"
)

func newIntentsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "intents",
		Short: "List the recognised intents in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locale := c.cfg.Locale()

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "ICON", "INTENT", "KEYWORDS ("+strings.ToUpper(string(locale))+")")
			for i, d := range intent.Definitions() {
				t.Row(fmt.Sprint(i+1), responder.Icon(d.ID), string(d.ID), keywordList(d, locale))
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}

func keywordList(d intent.Definition, locale content.Locale) string {
	kw := d.Keywords[locale]
	if d.ID == intent.About {
		kw = append(kw[:len(kw):len(kw)], "(+ company topics)")
	}
	return strings.Join(kw, ", ")
}
