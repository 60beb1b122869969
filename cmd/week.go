package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/cronozapp/cronoz/internal/model"
	"github.com/cronozapp/cronoz/internal/output"
)

// weekCmd represents the week command.
var weekCmd = &cobra.Command{
	Use:     "week",
	Aliases: []string{"wk"},
	Short:   "Show this week's summary",
	Long: `Display the tracked time for the Monday-to-Sunday week containing
today, with per-day and per-activity breakdowns.`,
	RunE: runWeek,
}

func init() {
	rootCmd.AddCommand(weekCmd)
}

func runWeek(cmd *cobra.Command, args []string) error {
	summary, err := ctx.Tracker.WeeklySummary()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(summary)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Week " + summary.StartDate + " to " + summary.EndDate)
	if summary.TotalTime == 0 {
		cli.Muted("No time tracked this week.")
		return nil
	}
	cli.Printf("  Total: %s\n\n", cli.Duration(summary.TotalTime))

	// Walk the seven days in order; absent days render as empty bars.
	start, err := time.Parse(model.DateLayout, summary.StartDate)
	if err != nil {
		return err
	}
	var maxDay float64
	for _, seconds := range summary.DailyTotals {
		if seconds > maxDay {
			maxDay = seconds
		}
	}
	barWidth := ctx.Formatter.BarWidth()
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		date := day.Format(model.DateLayout)
		seconds := summary.DailyTotals[date]
		cli.Printf("  %s %s  %s  %s\n",
			day.Format("Mon"),
			date,
			output.Bar(seconds, maxDay, barWidth),
			output.FormatSecondsLong(seconds))
	}

	activities, err := ctx.Tracker.Registry.List()
	if err != nil {
		return err
	}
	if len(summary.Activities) > 0 {
		cli.Println("")
		for activityID, seconds := range summary.Activities {
			cli.Printf("  %-20s %s\n",
				activityName(activities, activityID),
				output.FormatSecondsLong(seconds))
		}
	}
	return nil
}
