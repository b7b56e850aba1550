package cli

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dbdplan/pkg/config"
	perr "github.com/matzehuels/dbdplan/pkg/errors"
)

// configCommand creates the settings management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show, create and check the settings file",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configValidateCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print which settings file is used",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path := config.Find(c.configPath); path != "" {
				printFile(path)
				return nil
			}
			printInfo("No settings file found, using defaults")
			for _, p := range config.SearchPaths() {
				printDetail("searched %s", p)
			}
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSettings()
			if err != nil {
				return err
			}
			return s.Encode(stdout)
		},
	}
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Long: `Write the default settings to the --config path, or to ./settings.toml.

An existing file is left alone unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				path = config.FileName
			}
			if err := writeDefaultSettings(path, force); err != nil {
				return err
			}
			printSuccess("Settings written")
			printFile(path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func writeDefaultSettings(path string, force bool) error {
	if err := perr.ValidateSettingsPath(path); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return perr.New(perr.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", path)
	}

	var buf bytes.Buffer
	if err := config.Default().Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return perr.Wrap(perr.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

// configValidateCommand creates the "config validate" subcommand.
func (c *CLI) configValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the settings and the files they point to",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSettings()
			if err != nil {
				return err
			}
			if err := s.CheckPaths(); err != nil {
				printError("Settings from %s point to missing files", settingsSource(s))
				return err
			}
			printSuccess("Settings from %s are valid", settingsSource(s))
			printKeyValue("Fonts", s.Paths.Fonts)
			printKeyValue("Placeholders", s.Paths.Placeholders)
			printKeyValue("Plans", s.Paths.Plans)
			return nil
		},
	}
}
