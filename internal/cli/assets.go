package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/dbdplan/pkg/assets"
	"github.com/matzehuels/dbdplan/pkg/grade"
)

// assetsCommand creates the placeholder management command.
func (c *CLI) assetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Manage the placeholder images drawn in each cell",
	}

	cmd.AddCommand(c.assetsInitCommand())
	cmd.AddCommand(c.assetsListCommand())

	return cmd
}

// assetsInitCommand creates the "assets init" subcommand.
func (c *CLI) assetsInitCommand() *cobra.Command {
	opts := assets.GenerateOptions{Size: assets.DefaultSize}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default placeholder images in the placeholders directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSettings()
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(cmd.Context()))
			written, err := assets.Generate(s.Paths.Placeholders, opts)
			if err != nil {
				return err
			}
			prog.done("Placeholders generated")

			if len(written) == 0 {
				printInfo("All placeholders already exist in %s", s.Paths.Placeholders)
				printDetail("use --force to replace them")
				return nil
			}
			printSuccess("Created %d placeholder(s)", len(written))
			for _, path := range written {
				printFile(path)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Size, "size", opts.Size, "edge length in pixels")
	cmd.Flags().BoolVar(&opts.Overwrite, "force", false, "replace existing images")

	return cmd
}

// assetsListCommand creates the "assets list" subcommand.
func (c *CLI) assetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the placeholder file for each grade",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSettings()
			if err != nil {
				return err
			}
			loader := assets.Loader{Dir: s.Paths.Placeholders, Logger: c.Logger}

			missing := make(map[grade.Grade]bool)
			for _, g := range loader.Missing() {
				missing[g] = true
			}

			rows := make([][]string, 0, grade.Count)
			for _, g := range grade.All() {
				status := StyleSuccess.Render("found")
				if missing[g] {
					status = StyleWarning.Render("missing")
				}
				rows = append(rows, []string{g.String(), loader.Path(g), status})
			}
			printTable([]string{"Grade", "File", "Status"}, rows)

			if len(missing) > 0 {
				printNextStep("Create defaults", appName+" assets init")
			}
			return nil
		},
	}
}
