// Package cli implements the dbdplan command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dbdplan/pkg/buildinfo"
	"github.com/matzehuels/dbdplan/pkg/config"
	"github.com/matzehuels/dbdplan/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and completions.
	appName = "dbdplan"

	// defaultPeriodCount is how many periods "periods" lists.
	defaultPeriodCount = 6
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// InstallHooks routes plan and cache events to the debug log.
func (c *CLI) InstallHooks() {
	h := logHooks{logger: c.Logger}
	observability.SetPlanHooks(h)
	observability.SetCacheHooks(h)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "dbdplan draws the monthly grade plan as an image",
		Long: `dbdplan draws a calendar for one rank period (the 13th of a month to the
12th of the next) and marks every day with the grade to reach by then.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "settings file (default: ./settings.toml, then the user config dir)")

	root.AddCommand(c.planCommand())
	root.AddCommand(c.periodsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.assetsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Settings
// =============================================================================

// loadSettings loads the settings file picked by --config and the search path.
func (c *CLI) loadSettings() (config.Settings, error) {
	s, err := config.LoadOrDefault(c.configPath)
	if err != nil {
		return config.Settings{}, err
	}
	c.Logger.Debug("settings loaded", "source", settingsSource(s))
	return s, nil
}

func settingsSource(s config.Settings) string {
	if s.Source == "" {
		return "defaults"
	}
	return s.Source
}
