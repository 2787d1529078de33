package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sant0-9/concierge/internal/chat"
	"github.com/sant0-9/concierge/internal/config"
	"github.com/sant0-9/concierge/internal/content"
	"github.com/sant0-9/concierge/internal/logging"
	"github.com/sant0-9/concierge/internal/tui"
)

var version = "dev"

// cli carries the resolved config and logger from PersistentPreRunE to the
// subcommands.
type cli struct {
	// Global flags
	lang        string
	contentPath string
	logLevel    string
	logFormat   string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:     "concierge",
		Short:   "Support chatbot for the Vanguard Consulting website",
		Version: version,
		Long: `concierge answers visitor questions about Vanguard Consulting's services,
pricing, events and contact details in English and Spanish.

Run without arguments to start the interactive chat.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.service(nil)
			if err != nil {
				return err
			}
			return tui.Run(svc, c.cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.lang, "lang", "l", "", "answer language (en, es)")
	flags.StringVar(&c.contentPath, "content", "", "content YAML file replacing the built-in site content")
	flags.StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&c.logFormat, "log-format", "", "log format (console, json)")

	root.AddCommand(newAskCmd(c))
	root.AddCommand(newBatchCmd(c))
	root.AddCommand(newIntentsCmd(c))
	root.AddCommand(newServeCmd(c))
	return root
}

// setup resolves config (file, then env, then flags) and builds the logger
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve()
	if err != nil {
		return err
	}
	if c.lang != "" {
		cfg.Language = c.lang
	}
	if c.contentPath != "" {
		cfg.ContentPath = c.contentPath
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if c.logFormat != "" {
		cfg.Log.Format = c.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	// The TUI owns the terminal
	if cmd.Parent() == nil {
		c.logger = logging.Nop()
		return nil
	}

	c.logger, err = logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// service loads the content tables and builds the chat service. A nil reg
// leaves the metrics unregistered.
func (c *cli) service(reg prometheus.Registerer) (*chat.Service, error) {
	tables, err := c.cfg.Tables()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	c.logger.Debug("content loaded",
		zap.String("source", contentSource(c.cfg)),
		zap.Int("services", len(tables.ServicesFor(content.English).Services)),
	)

	return chat.New(tables, chat.Options{
		Locale:    c.cfg.Locale(),
		TopK:      c.cfg.TopK,
		ChunkSize: c.cfg.ChunkSize,
		Logger:    c.logger,
		Metrics:   chat.NewMetrics(reg),
	}), nil
}

func contentSource(cfg *config.Config) string {
	if cfg.ContentPath == "" {
		return "embedded"
	}
	return cfg.ContentPath
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
