package cmd

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/cronozapp/cronoz/internal/errors"
	"github.com/cronozapp/cronoz/internal/model"
)

// Export command flags.
var (
	exportFlagFormat string
	exportFlagOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"dump"},
	Short:   "Export activities and time records",
	Long: `Export the full activity and record collections, as stored. JSON keeps
the persisted shape; CSV flattens records with their activity names.

Examples:
  cronoz export
  cronoz export --format csv -o records.csv`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagFormat, "format", "F", "json", "Export format: json, csv")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (stdout if omitted)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	activities, err := ctx.Tracker.Registry.List()
	if err != nil {
		return err
	}
	records, err := ctx.Tracker.Ledger.List()
	if err != nil {
		return err
	}

	var writer io.Writer = os.Stdout
	if exportFlagOutput != "" {
		f, err := os.Create(exportFlagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		writer = f
	}

	switch exportFlagFormat {
	case "json":
		return exportJSON(writer, activities, records)
	case "csv":
		return exportCSV(writer, activities, records)
	default:
		return errors.NewUserErrorWithField("format", exportFlagFormat,
			"Unknown export format",
			"Use 'json' or 'csv'")
	}
}

func exportJSON(w io.Writer, activities []model.Activity, records []model.TimeRecord) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]interface{}{
		"activities":   activities,
		"time-records": records,
	})
}

func exportCSV(w io.Writer, activities []model.Activity, records []model.TimeRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"record_id", "activity_id", "activity_name", "date", "start_time", "end_time", "duration_seconds", "notes"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rec := range records {
		endTime := ""
		duration := ""
		if rec.EndTime != nil {
			endTime = rec.EndTime.Format(time.RFC3339)
			duration = strconv.FormatFloat(rec.Seconds(), 'f', -1, 64)
		}
		row := []string{
			rec.ID,
			rec.ActivityID,
			activityName(activities, rec.ActivityID),
			rec.Date,
			rec.StartTime.Format(time.RFC3339),
			endTime,
			duration,
			rec.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
