package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/cronozapp/cronoz/internal/output"
	"github.com/cronozapp/cronoz/internal/tui"
)

// statusCmd represents the status command.
var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show the current tracking status",
	RunE:    runStatus,
}

// watchCmd shows a live timer that recomputes the elapsed time every second
// from the open record's start time.
var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"w"},
	Short:   "Watch the active timer live",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(ctx.Tracker)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(watchCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	active, err := ctx.Tracker.Active()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		resp := output.StatusResponse{Status: "idle"}
		if active != nil {
			resp.Status = "tracking"
			resp.ActiveRecord = active
			resp.ElapsedSeconds = active.Elapsed(time.Now()).Seconds()
		}
		return ctx.Formatter.JSON(resp)
	}

	cli := ctx.CLIFormatter()
	if active == nil {
		cli.PrintNoActiveTracking()
		return nil
	}

	activity, err := ctx.Tracker.Registry.Get(active.ActivityID)
	if err != nil {
		return err
	}

	cli.Printf("Currently tracking: %s\n", cli.ActivityName(activity))
	cli.Printf("  Started: %s\n", output.FormatTime(active.StartTime))
	cli.Printf("  Elapsed: %s\n", cli.Duration(active.Elapsed(time.Now()).Seconds()))
	return nil
}
