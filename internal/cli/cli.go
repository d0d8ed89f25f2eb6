// Package cli implements the verbal command-line interface.
//
// The render command draws the demo scene headlessly to a PNG, optionally
// after replaying an input script. The view command opens it in a window.
// Every command accepts --config and --verbose; the logger is
// charmbracelet/log, also installed as the library's slog handler.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/verbal"
	"github.com/phanxgames/verbal/internal/config"
)

const appName = "verbal"

// Build information, set through ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// CLI holds state shared by every command.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a CLI logging to w.
func New(w io.Writer) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           log.InfoLevel,
		}),
		Config: config.Default(),
	}
}

// RootCommand creates the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "verbal draws and edits a retained-mode 2D scene",
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: func(*cobra.Command, []string) error { return c.setup() },
	}
	root.SetVersionTemplate(fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date))
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a TOML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.versionCommand())
	return root
}

// setup loads the configuration and configures logging for the run.
func (c *CLI) setup() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.verbose {
		level = log.DebugLevel
	}
	c.Logger.SetLevel(level)
	verbal.SetLogger(slog.New(c.Logger))
	verbal.SetDebugMode(level <= log.DebugLevel)
	c.Logger.Debug("configuration loaded", "path", c.configPath, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
	return nil
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "version: %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
			return err
		},
	}
}

// background parses the configured background color. An empty value keeps
// the canvas transparent.
func (c *CLI) background() []verbal.LayerOption {
	if c.Config.Background == "" {
		return nil
	}
	bg, err := verbal.ParseColor(c.Config.Background)
	if err != nil {
		c.Logger.Warn("ignoring background", "err", err)
		return nil
	}
	return []verbal.LayerOption{verbal.WithBackground(bg)}
}
