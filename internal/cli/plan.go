package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dbdplan/pkg/calendar"
	perr "github.com/matzehuels/dbdplan/pkg/errors"
	"github.com/matzehuels/dbdplan/pkg/planner"
)

// planOpts holds the command-line flags for the plan command.
type planOpts struct {
	output  string // explicit output file
	format  string // output format when no file is given
	pick    bool   // choose the period interactively
	noCache bool   // resize placeholders per cell
}

// planCommand creates the plan command that draws one period.
func (c *CLI) planCommand() *cobra.Command {
	var opts planOpts

	cmd := &cobra.Command{
		Use:   "plan [date]",
		Short: "Draw the plan for the period containing a date",
		Long: `Draw the plan image for the period containing date (YYYY-MM-DD, default today).

The image is written to the plans directory from the settings, named after
the period, e.g. "DBD plan September-October 2026.png".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: plans directory)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png, jpg, gif, tif, bmp (default from settings)")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose the period from a list")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "resize placeholders for every cell")

	return cmd
}

func (c *CLI) runPlan(ctx context.Context, args []string, opts planOpts) error {
	logger := loggerFromContext(ctx)

	date, err := dateArg(args)
	if err != nil {
		return err
	}
	settings, err := c.loadSettings()
	if err != nil {
		return err
	}

	if opts.pick {
		per, ok, err := pickPeriod(calendar.PeriodFor(date))
		if err != nil {
			return err
		}
		if !ok {
			printDetail("No selection made")
			return nil
		}
		date = per.Start
	}

	p := planner.New(settings, logger)
	if missing := p.Assets.Missing(); len(missing) > 0 {
		printWarning("%d placeholder(s) missing in %s", len(missing), settings.Paths.Placeholders)
		printNextStep("Create defaults", appName+" assets init")
		return perr.New(perr.ErrCodeFileNotFound, "no placeholder for %s", missing[0])
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Drawing %s...", calendar.PeriodFor(date)))
	spinner.Start()
	result, err := p.Run(ctx, date, planner.Options{
		Output:  opts.output,
		Format:  opts.format,
		NoCache: opts.noCache,
	})
	if err != nil {
		spinner.StopWithError("Plan failed")
		return err
	}
	spinner.StopWithSuccess("Plan for " + StyleHighlight.Render(result.Period.String()))

	logger.Debug("plan written",
		"layout", result.Stats.LayoutTime.Round(time.Microsecond),
		"render", result.Stats.RenderTime.Round(time.Millisecond))

	printFile(result.Path)
	printNewline()
	return printSchedule(result.Period)
}

// printSchedule prints which grade each run of days belongs to.
func printSchedule(p calendar.Period) error {
	spans, err := planner.Schedule(p)
	if err != nil {
		return err
	}
	rows := make([][]string, len(spans))
	for i, s := range spans {
		rows[i] = []string{
			s.Grade.String(),
			s.First.Format(dayFormat),
			s.Last.Format(dayFormat),
			fmt.Sprintf("%d", s.Days),
		}
	}
	printTable([]string{"Grade", "From", "To", "Days"}, rows)
	return nil
}

// dayFormat renders calendar days in tables, e.g. "Sun 13 Sep".
const dayFormat = "Mon 02 Jan"

// dateArg parses the optional date argument, defaulting to today.
func dateArg(args []string) (time.Time, error) {
	if len(args) == 0 || args[0] == "" {
		return calendar.Today(), nil
	}
	return calendar.ParseDate(args[0])
}
