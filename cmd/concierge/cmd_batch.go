package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sant0-9/concierge/internal/chat"
)

type batchLine struct {
	Query    string `json:"query"`
	Answer   string `json:"answer,omitempty"`
	Intent   string `json:"intent,omitempty"`
	Fallback string `json:"fallback,omitempty"`
	Error    string `json:"error,omitempty"`
}

func newBatchCmd(c *cli) *cobra.Command {
	var parallel int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Answer one question per line of FILE (- for stdin)",
		Long: `Answers every non-empty line of FILE. Lines starting with # are skipped.
Answers are printed in input order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			queries, err := readQueries(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			svc, err := c.service(nil)
			if err != nil {
				return err
			}

			reqs := make([]chat.Request, len(queries))
			for i, q := range queries {
				reqs[i] = chat.Request{Query: q}
			}

			results, err := svc.AskBatch(cmd.Context(), reqs, parallel)
			if err != nil {
				return err
			}

			lines := make([]batchLine, len(results))
			failed := 0
			for i, r := range results {
				lines[i].Query = queries[i]
				if r.Err != nil {
					failed++
					lines[i].Error = r.Err.Error()
					continue
				}
				lines[i].Answer = r.Reply.Text
				lines[i].Intent = string(r.Reply.Intent)
				lines[i].Fallback = string(r.Reply.Fallback)
			}
			c.logger.Info("batch complete",
				zap.Int("queries", len(queries)),
				zap.Int("failed", failed),
				zap.Int("parallel", parallel),
			)

			return writeBatch(cmd.OutOrStdout(), lines, asJSON)
		},
	}

	cmd.Flags().IntVarP(&parallel, "parallel", "p", 4, "questions answered concurrently (0 for no limit)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as a JSON array")
	return cmd
}

func readQueries(path string, stdin io.Reader) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var queries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return queries, nil
}

func writeBatch(w io.Writer, lines []batchLine, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(lines)
	}

	for _, l := range lines {
		label := l.Intent
		if label == "" {
			label = l.Fallback
		}
		if l.Error != "" {
			label, l.Answer = "error", l.Error
		}
		if _, err := fmt.Fprintf(w, "> %s\n[%s] %s\n\n", l.Query, label, l.Answer); err != nil {
			return err
		}
	}
	return nil
}
