package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cronozapp/cronoz/internal/model"
	"github.com/cronozapp/cronoz/internal/output"
)

// Record command flags.
var (
	recordListFlagActivity string
	recordNotesFlagText    string
)

// recordCmd groups time record subcommands.
var recordCmd = &cobra.Command{
	Use:     "record",
	Aliases: []string{"rec", "r"},
	Short:   "Manage time records",
}

var recordListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List time records",
	RunE:    runRecordList,
}

var recordDeleteCmd = &cobra.Command{
	Use:     "delete RECORD_ID",
	Aliases: []string{"rm"},
	Short:   "Delete one time record",
	Long: `Delete a time record by id. Deleting the open record silently discards
the session in progress.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecordDelete,
}

var recordNotesCmd = &cobra.Command{
	Use:   "notes RECORD_ID",
	Short: "Set the notes on a time record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordNotes,
}

func init() {
	recordListCmd.Flags().StringVar(&recordListFlagActivity, "activity", "", "Filter by activity name or id")
	recordNotesCmd.Flags().StringVarP(&recordNotesFlagText, "text", "t", "", "Notes text")

	recordCmd.AddCommand(recordListCmd)
	recordCmd.AddCommand(recordDeleteCmd)
	recordCmd.AddCommand(recordNotesCmd)
	rootCmd.AddCommand(recordCmd)
}

func runRecordList(cmd *cobra.Command, args []string) error {
	var records []model.TimeRecord
	var err error

	if recordListFlagActivity != "" {
		activity, rerr := resolveActivity(recordListFlagActivity)
		if rerr != nil {
			return rerr
		}
		records, err = ctx.Tracker.Ledger.ListByActivity(activity.ID)
	} else {
		records, err = ctx.Tracker.Ledger.List()
	}
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(records)
	}

	cli := ctx.CLIFormatter()
	if len(records) == 0 {
		cli.Muted("No time records yet.")
		return nil
	}

	activities, err := ctx.Tracker.Registry.List()
	if err != nil {
		return err
	}
	for _, rec := range records {
		name := activityName(activities, rec.ActivityID)
		if rec.IsOpen() {
			cli.Printf("%s  %s  %s  (in progress)\n",
				rec.ID, name, output.FormatTimeShort(rec.StartTime))
			continue
		}
		cli.Printf("%s  %s  %s  %s\n",
			rec.ID, name,
			output.FormatTimeShort(rec.StartTime),
			output.FormatSeconds(rec.Seconds()))
	}
	return nil
}

func runRecordDelete(cmd *cobra.Command, args []string) error {
	record, err := ctx.Tracker.Ledger.Get(args[0])
	if err != nil {
		return err
	}

	if err := ctx.Tracker.Ledger.Delete(args[0]); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": args[0]})
	}

	cli := ctx.CLIFormatter()
	if record != nil && record.IsOpen() {
		cli.Warning("The deleted record was the session in progress")
	}
	cli.Success("Deleted record " + args[0])
	return nil
}

func runRecordNotes(cmd *cobra.Command, args []string) error {
	record, err := ctx.Tracker.Ledger.SetNotes(args[0], recordNotesFlagText)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(record)
	}

	ctx.CLIFormatter().Success("Updated notes on record " + record.ID)
	return nil
}
