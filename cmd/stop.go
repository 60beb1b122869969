package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cronozapp/cronoz/internal/output"
)

// stopCmd represents the stop command.
var stopCmd = &cobra.Command{
	Use:     "stop",
	Aliases: []string{"e", "end"},
	Short:   "Stop the current time tracking",
	RunE:    runStop,
}

// cancelCmd discards the open record instead of closing it.
var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the session in progress without recording it",
	RunE:  runCancel,
}

func init() {
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(cancelCmd)
}

func runStop(cmd *cobra.Command, args []string) error {
	record, err := ctx.Tracker.StopTracking()
	if err != nil {
		return err
	}

	if record == nil {
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(output.StopResponse{Status: "idle"})
		}
		ctx.CLIFormatter().PrintNoActiveTracking()
		return nil
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.StopResponse{Status: "stopped", Record: record})
	}

	activity, err := ctx.Tracker.Registry.Get(record.ActivityID)
	if err != nil {
		return err
	}
	ctx.CLIFormatter().PrintTrackingStopped(activity, record)
	return nil
}

func runCancel(cmd *cobra.Command, args []string) error {
	record, err := ctx.Tracker.CancelTracking()
	if err != nil {
		return err
	}

	if record == nil {
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(output.StopResponse{Status: "idle"})
		}
		ctx.CLIFormatter().PrintNoActiveTracking()
		return nil
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.StopResponse{Status: "cancelled", Record: record})
	}

	cli := ctx.CLIFormatter()
	cli.Success("Discarded session started at " + output.FormatTime(record.StartTime))
	return nil
}
