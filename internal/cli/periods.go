package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dbdplan/pkg/calendar"
	perr "github.com/matzehuels/dbdplan/pkg/errors"
	"github.com/matzehuels/dbdplan/pkg/grade"
	"github.com/matzehuels/dbdplan/pkg/period"
)

// periodsCommand creates the periods command that lists upcoming periods.
func (c *CLI) periodsCommand() *cobra.Command {
	count := defaultPeriodCount
	var schedule bool

	cmd := &cobra.Command{
		Use:   "periods [date]",
		Short: "List periods starting with the one containing a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeriods(cmd.Context(), args, count, schedule)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", count, "number of periods to list")
	cmd.Flags().BoolVarP(&schedule, "schedule", "s", false, "also show the grade schedule of the first period")

	return cmd
}

func runPeriods(ctx context.Context, args []string, count int, schedule bool) error {
	if count < 1 {
		return perr.New(perr.ErrCodeInvalidInput, "count must be at least 1, got %d", count)
	}
	date, err := dateArg(args)
	if err != nil {
		return err
	}

	periods := periodsFrom(calendar.PeriodFor(date), count)
	rows := make([][]string, len(periods))
	for i, p := range periods {
		row, err := periodRow(p)
		if err != nil {
			return err
		}
		rows[i] = row
	}
	loggerFromContext(ctx).Debug("periods listed", "from", periods[0], "count", count)

	printTable([]string{"Period", "From", "To", "Days", "Split"}, rows)
	if schedule {
		printNewline()
		printInfo("Schedule for %s", StyleHighlight.Render(periods[0].String()))
		return printSchedule(periods[0])
	}
	return nil
}

// periodsFrom returns count consecutive periods starting with first.
func periodsFrom(first calendar.Period, count int) []calendar.Period {
	out := make([]calendar.Period, 0, count)
	for p := first; len(out) < count; p = p.Next() {
		out = append(out, p)
	}
	return out
}

func periodRow(p calendar.Period) ([]string, error) {
	allocation, err := period.Allocate(grade.Count, p.Days)
	if err != nil {
		return nil, err
	}
	split := make([]string, len(allocation))
	for i, n := range allocation {
		split[i] = fmt.Sprint(n)
	}
	return []string{
		p.String(),
		p.Start.Format(dayFormat),
		p.Last().Format(dayFormat),
		fmt.Sprint(p.Days),
		strings.Join(split, "/"),
	}, nil
}
