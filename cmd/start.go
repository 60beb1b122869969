package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cronozapp/cronoz/internal/output"
)

// startCmd represents the start command.
var startCmd = &cobra.Command{
	Use:     "start ACTIVITY",
	Aliases: []string{"s", "on"},
	Short:   "Start tracking time on an activity",
	Long: `Start tracking time on an activity, referenced by name or id.

Only one record can be active at a time: starting while another activity is
running stops that activity first, and starting the already-running activity
is a no-op.

Examples:
  cronoz start Focus
  cronoz start Reading`,
	Args: cobra.ExactArgs(1),
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	activity, err := resolveActivity(args[0])
	if err != nil {
		return err
	}

	active, err := ctx.Tracker.Active()
	if err != nil {
		return err
	}
	alreadyRunning := active != nil && active.ActivityID == activity.ID

	started, stopped, err := ctx.Tracker.StartTracking(activity.ID)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		status := "tracking"
		if alreadyRunning {
			status = "already_tracking"
		}
		return ctx.Formatter.JSON(output.StartResponse{
			Status:        status,
			Record:        started,
			StoppedRecord: stopped,
		})
	}

	cli := ctx.CLIFormatter()
	if alreadyRunning {
		cli.Muted("Already tracking " + activity.Name + " since " + output.FormatTimeShort(started.StartTime))
		return nil
	}
	if stopped != nil {
		prev, err := ctx.Tracker.Registry.Get(stopped.ActivityID)
		if err != nil {
			return err
		}
		name := stopped.ActivityID
		if prev != nil {
			name = prev.Name
		}
		cli.Muted("Stopped " + name + " after " + output.FormatSeconds(stopped.Seconds()))
	}
	cli.PrintTrackingStarted(activity, started)
	return nil
}
