// ABOUTME: Root Cobra command and global flags
// ABOUTME: Loads config, applies flag overrides, and builds the shared logger and parser

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harper/feedparse/internal/config"
	"github.com/harper/feedparse/internal/fetch"
	"github.com/harper/feedparse/internal/models"
	"github.com/harper/feedparse/internal/parse"
)

var (
	cfgPath     string
	langFlag    string
	dateFlag    string
	keepStyles  bool
	keepScripts bool
	workersFlag int
	levelFlag   string

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "feedparse",
	Short: "Normalize RSS, ATOM and RDF feeds into one JSON shape",
	Long: `
███████╗███████╗███████╗██████╗ ██████╗  █████╗ ██████╗ ███████╗███████╗
██╔════╝██╔════╝██╔════╝██╔══██╗██╔══██╗██╔══██╗██╔══██╗██╔════╝██╔════╝
█████╗  █████╗  █████╗  ██║  ██║██████╔╝███████║██████╔╝███████╗█████╗
██╔══╝  ██╔══╝  ██╔══╝  ██║  ██║██╔═══╝ ██╔══██║██╔══██╗╚════██║██╔══╝
██║     ███████╗███████╗██████╔╝██║     ██║  ██║██║  ██║███████║███████╗
╚═╝     ╚══════╝╚══════╝╚═════╝ ╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚══════╝

Syndication feed normalizer for humans and AI agents.

Reads RSS 2.0, ATOM and RDF documents from files, URLs or stdin and
emits a single normalized record, or serves the same over MCP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFlagOverrides(cmd, loaded)
		if err := loaded.Validate(); err != nil {
			return err
		}

		cfg = loaded
		logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			Level:  cfg.Level(),
			Prefix: "feedparse",
		})
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "config file path, .json or .yaml (default: ~/.config/feedparse/config.json)")
	flags.StringVar(&langFlag, "lang", config.DefaultLanguage, "language used when a feed declares none")
	flags.StringVar(&dateFlag, "date-format", config.DefaultDateTemplate, "Go time layout for normalized dates")
	flags.BoolVar(&keepStyles, "keep-styles", false, "keep style attributes and <style> elements in xhtml content")
	flags.BoolVar(&keepScripts, "keep-scripts", false, "keep on* handlers and <script> elements in xhtml content")
	flags.IntVar(&workersFlag, "workers", config.DefaultWorkers, "number of items to build concurrently")
	flags.StringVar(&levelFlag, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
}

// applyFlagOverrides copies explicitly set flags over the loaded config.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("lang") {
		c.DefaultLanguage = langFlag
	}
	if flags.Changed("date-format") {
		c.DateTemplate = dateFlag
	}
	if flags.Changed("keep-styles") {
		c.RemoveStyles = !keepStyles
	}
	if flags.Changed("keep-scripts") {
		c.RemoveScripts = !keepScripts
	}
	if flags.Changed("workers") {
		c.Workers = workersFlag
	}
	if flags.Changed("log-level") {
		c.LogLevel = levelFlag
	}
}

func newClient() *fetch.Client {
	return fetch.NewClient(config.DefaultHTTPTimeout)
}

func newParser() *parse.Parser {
	return parse.New(cfg.Options(logger)).WithClient(newClient())
}

// loadFeed parses src, which is a URL, a file path, or "-" for stdin.
func loadFeed(ctx context.Context, cmd *cobra.Command, p *parse.Parser, src string) (*models.Feed, error) {
	switch {
	case src == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return p.ParseBytes(data)
	case parse.IsURL(src):
		logger.Debug("fetching feed", "url", src)
		return p.ParseURL(ctx, src)
	default:
		return p.ParseFile(src)
	}
}
