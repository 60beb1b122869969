package cmd

import (
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/cronozapp/cronoz/internal/output"
	"github.com/cronozapp/cronoz/internal/parser"
)

var todayFlagDate string

// todayCmd represents the today command.
var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t", "td"},
	Short:   "Show a daily summary",
	Long: `Display the total tracked time for one calendar date, broken down by
activity. Only closed records count; the session in progress is shown
separately by 'cronoz status'.

Examples:
  cronoz today
  cronoz today --date yesterday
  cronoz today --date 2024-05-15`,
	RunE: runToday,
}

func init() {
	todayCmd.Flags().StringVarP(&todayFlagDate, "date", "d", "", "Date to summarize (natural language accepted)")
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	date, err := parser.ParseDate(todayFlagDate, time.Now())
	if err != nil {
		return err
	}

	summary, err := ctx.Tracker.DailySummary(date)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(summary)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Summary for " + summary.Date)
	if summary.TotalTime == 0 {
		cli.Muted("No time tracked on this date.")
		return nil
	}
	cli.Printf("  Total: %s\n\n", cli.Duration(summary.TotalTime))

	activities, err := ctx.Tracker.Registry.List()
	if err != nil {
		return err
	}

	type row struct {
		name    string
		seconds float64
	}
	rows := make([]row, 0, len(summary.Activities))
	for activityID, seconds := range summary.Activities {
		rows = append(rows, row{activityName(activities, activityID), seconds})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seconds > rows[j].seconds })

	barWidth := ctx.Formatter.BarWidth()
	for _, r := range rows {
		cli.Printf("  %-20s %s  %s\n",
			r.name,
			output.Bar(r.seconds, summary.TotalTime, barWidth),
			output.FormatSecondsLong(r.seconds))
	}
	return nil
}
