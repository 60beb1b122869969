package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cronozapp/cronoz/internal/model"
	"github.com/cronozapp/cronoz/internal/output"
)

// Activity command flags.
var (
	activityAddFlagIcon  string
	activityAddFlagColor string
	activityListFlagAll  bool
	activitySetFlagName  string
	activitySetFlagIcon  string
	activitySetFlagColor string
)

// activityCmd groups activity management subcommands.
var activityCmd = &cobra.Command{
	Use:     "activity",
	Aliases: []string{"act", "a"},
	Short:   "Manage activities",
}

var activityAddCmd = &cobra.Command{
	Use:     "add NAME",
	Aliases: []string{"create", "new"},
	Short:   "Create a new activity",
	Args:    cobra.ExactArgs(1),
	RunE:    runActivityAdd,
}

var activityListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List activities",
	RunE:    runActivityList,
}

var activityRenameCmd = &cobra.Command{
	Use:   "rename ACTIVITY NEW_NAME",
	Short: "Rename an activity",
	Args:  cobra.ExactArgs(2),
	RunE:  runActivityRename,
}

var activitySetCmd = &cobra.Command{
	Use:   "set ACTIVITY",
	Short: "Update an activity's name, icon or color",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivitySet,
}

var activityDeleteCmd = &cobra.Command{
	Use:     "delete ACTIVITY",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete an activity and all its time records",
	Args:    cobra.ExactArgs(1),
	RunE:    runActivityDelete,
}

var activityShowCmd = &cobra.Command{
	Use:   "show ACTIVITY",
	Short: "Show an activity with its recent records and totals",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivityShow,
}

func init() {
	activityAddCmd.Flags().StringVar(&activityAddFlagIcon, "icon", "", "Icon key (resolved by the UI)")
	activityAddCmd.Flags().StringVar(&activityAddFlagColor, "color", "", "Hex color like '#8FD694'")

	activityListCmd.Flags().BoolVar(&activityListFlagAll, "records", false, "Include per-activity totals and last records")

	activitySetCmd.Flags().StringVar(&activitySetFlagName, "name", "", "New display name")
	activitySetCmd.Flags().StringVar(&activitySetFlagIcon, "icon", "", "New icon key")
	activitySetCmd.Flags().StringVar(&activitySetFlagColor, "color", "", "New hex color")

	activityCmd.AddCommand(activityAddCmd)
	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityRenameCmd)
	activityCmd.AddCommand(activitySetCmd)
	activityCmd.AddCommand(activityDeleteCmd)
	activityCmd.AddCommand(activityShowCmd)
	rootCmd.AddCommand(activityCmd)
}

func runActivityAdd(cmd *cobra.Command, args []string) error {
	activity, err := ctx.Tracker.Registry.Create(args[0], activityAddFlagIcon, activityAddFlagColor)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(activity)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Created activity " + cli.ActivityName(activity))
	cli.Muted("  id: " + activity.ID)
	return nil
}

func runActivityList(cmd *cobra.Command, args []string) error {
	if activityListFlagAll {
		return runActivityListWithRecords()
	}

	activities, err := ctx.Tracker.Registry.List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(activities)
	}

	cli := ctx.CLIFormatter()
	if len(activities) == 0 {
		cli.Muted("No activities yet. Use 'cronoz activity add NAME' to create one.")
		return nil
	}
	for _, a := range activities {
		cli.Printf("%s  %s\n", cli.ActivityName(&a), a.ID)
	}
	return nil
}

func runActivityListWithRecords() error {
	joined, err := ctx.Tracker.Registry.ListWithRecords()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(joined)
	}

	cli := ctx.CLIFormatter()
	if len(joined) == 0 {
		cli.Muted("No activities yet.")
		return nil
	}
	for _, entry := range joined {
		cli.Printf("%s  %s  %d records\n",
			cli.ActivityName(&entry.Activity),
			output.FormatSecondsLong(entry.TotalTime),
			len(entry.Records))
		if entry.LastRecord != nil {
			cli.Muted("  last: " + output.FormatTimeShort(entry.LastRecord.StartTime))
		}
	}
	return nil
}

func runActivityRename(cmd *cobra.Command, args []string) error {
	activity, err := resolveActivity(args[0])
	if err != nil {
		return err
	}

	renamed, err := ctx.Tracker.Registry.Rename(activity.ID, args[1])
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(renamed)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Renamed to " + cli.ActivityName(renamed))
	return nil
}

func runActivitySet(cmd *cobra.Command, args []string) error {
	activity, err := resolveActivity(args[0])
	if err != nil {
		return err
	}

	var update model.ActivityUpdate
	if cmd.Flags().Changed("name") {
		update.Name = &activitySetFlagName
	}
	if cmd.Flags().Changed("icon") {
		update.Icon = &activitySetFlagIcon
	}
	if cmd.Flags().Changed("color") {
		update.Color = &activitySetFlagColor
	}

	updated, err := ctx.Tracker.Registry.Update(activity.ID, update)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(updated)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Updated " + cli.ActivityName(updated))
	return nil
}

func runActivityDelete(cmd *cobra.Command, args []string) error {
	activity, err := resolveActivity(args[0])
	if err != nil {
		return err
	}

	if err := ctx.Tracker.Registry.Delete(activity.ID); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": activity.ID})
	}

	cli := ctx.CLIFormatter()
	cli.Success("Deleted " + activity.Name + " and its records")
	return nil
}

func runActivityShow(cmd *cobra.Command, args []string) error {
	activity, err := resolveActivity(args[0])
	if err != nil {
		return err
	}

	joined, err := ctx.Tracker.Registry.ListWithRecords()
	if err != nil {
		return err
	}

	for _, entry := range joined {
		if entry.ID != activity.ID {
			continue
		}
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(entry)
		}

		cli := ctx.CLIFormatter()
		cli.Title(entry.Name)
		cli.Printf("  Total: %s over %d records\n",
			output.FormatSecondsLong(entry.TotalTime), len(entry.Records))
		limit := 10
		if len(entry.Records) < limit {
			limit = len(entry.Records)
		}
		for _, rec := range entry.Records[:limit] {
			if rec.IsOpen() {
				cli.Printf("  %s  (in progress)\n", output.FormatTimeShort(rec.StartTime))
				continue
			}
			cli.Printf("  %s  %s\n",
				output.FormatTimeShort(rec.StartTime),
				output.FormatSeconds(rec.Seconds()))
		}
		return nil
	}
	return nil
}
