package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cronozapp/cronoz/internal/output"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"stat"},
	Short:   "Show streaks, averages and hourly distribution",
	Long: `Display statistics derived from the closed record log: each activity's
longest run of consecutive tracked days, its average session length, and
how record starts distribute over the hours of the day.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	streaks, err := ctx.Tracker.Streaks()
	if err != nil {
		return err
	}
	averages, err := ctx.Tracker.AverageDurations()
	if err != nil {
		return err
	}
	hourly, err := ctx.Tracker.HourlyDistribution()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"streaks":            streaks,
			"averageDurations":   averages,
			"hourlyDistribution": hourly,
		})
	}

	activities, err := ctx.Tracker.Registry.List()
	if err != nil {
		return err
	}

	cli := ctx.CLIFormatter()
	if len(streaks) == 0 {
		cli.Muted("No closed records yet. Track something first.")
		return nil
	}

	cli.Title("Streaks")
	for _, s := range streaks {
		unit := "days"
		if s.Length == 1 {
			unit = "day"
		}
		cli.Printf("  %-20s %d %s\n", activityName(activities, s.ActivityID), s.Length, unit)
	}

	cli.Println("")
	cli.Title("Average session")
	for _, a := range averages {
		cli.Printf("  %-20s %s\n",
			activityName(activities, a.ActivityID),
			output.FormatSecondsLong(a.AvgSeconds))
	}

	cli.Println("")
	cli.Title("Starts by hour")
	maxCount := 0
	for _, count := range hourly {
		if count > maxCount {
			maxCount = count
		}
	}
	barWidth := ctx.Formatter.BarWidth()
	for hour := 0; hour < 24; hour++ {
		count := hourly[hour]
		if count == 0 {
			continue
		}
		cli.Printf("  %02d:00  %s  %d\n",
			hour,
			output.Bar(float64(count), float64(maxCount), barWidth),
			count)
	}
	return nil
}
