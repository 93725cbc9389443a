package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/mindful/internal/model"
	"github.com/manav03panchal/mindful/internal/output"
)

// Export command flags.
var (
	exportFlagFormat string
	exportFlagBackup bool
	exportFlagOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export [FILTER]",
	Aliases: []string{"ex", "x", "dump"},
	Short:   "Export practice data",
	Long: `Export sessions in various formats, or create a full backup including
the profile and milestone catalog.

Examples:
  mindful export
  mindful export month
  mindful export --format csv -o report.csv
  mindful export --backup -o backup.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagFormat, "format", "F", "json", "Output format: json, csv")
	exportCmd.Flags().BoolVarP(&exportFlagBackup, "backup", "b", false, "Full backup including profile and milestones")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (stdout if omitted)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	// Handle backup mode
	if exportFlagBackup {
		return runBackup()
	}

	filter := model.FilterAll
	var sessionType model.SessionType
	if len(args) > 0 {
		f, t, ok := model.ParseSessionFilter(args[0])
		if !ok {
			return fmt.Errorf("invalid filter: %s (use today, week, month, or a session type)", args[0])
		}
		filter, sessionType = f, t
	}

	sessions := ctx.Coordinator.FilteredSessions(filter, sessionType, "")

	writer, closeFn, err := exportWriter()
	if err != nil {
		return err
	}
	defer closeFn()

	switch strings.ToLower(exportFlagFormat) {
	case "csv":
		return exportCSV(writer, sessions)
	default:
		return exportJSON(writer, sessions)
	}
}

// exportWriter opens the destination file, or stdout when none was given.
func exportWriter() (*os.File, func(), error) {
	if exportFlagOutput == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(exportFlagOutput)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func exportJSON(w *os.File, sessions []*model.Session) error {
	export := struct {
		Version    string                  `json:"version"`
		ExportedAt string                  `json:"exported_at"`
		Sessions   []*output.SessionOutput `json:"sessions"`
		Count      int                     `json:"count"`
	}{
		Version:    "1",
		ExportedAt: time.Now().Format(time.RFC3339),
		Sessions:   make([]*output.SessionOutput, len(sessions)),
		Count:      len(sessions),
	}

	for i, s := range sessions {
		export.Sessions[i] = output.NewSessionOutput(s)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}

func exportCSV(w *os.File, sessions []*model.Session) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{
		"key", "date", "type", "duration_seconds", "notes", "tags", "completed",
	}); err != nil {
		return err
	}

	// Write rows
	for _, s := range sessions {
		if err := writer.Write([]string{
			s.Key,
			s.Date.Format(time.RFC3339),
			string(s.Type),
			strconv.Itoa(s.DurationSeconds),
			s.Notes,
			strings.Join(s.Tags, ";"),
			strconv.FormatBool(s.Completed),
		}); err != nil {
			return err
		}
	}

	return nil
}

func runBackup() error {
	c := ctx.Coordinator

	sessions := c.Sessions()
	profile := c.Profile()
	milestones := append(c.ActiveMilestones(), c.CompletedMilestones()...)

	// Build backup
	backup := struct {
		Version    string             `json:"version"`
		ExportedAt string             `json:"exported_at"`
		Profile    model.UserProfile  `json:"profile"`
		Sessions   []*model.Session   `json:"sessions"`
		Milestones []*model.Milestone `json:"milestones"`
	}{
		Version:    "1",
		ExportedAt: time.Now().Format(time.RFC3339),
		Profile:    profile,
		Sessions:   sessions,
		Milestones: milestones,
	}

	writer, closeFn, err := exportWriter()
	if err != nil {
		return err
	}
	defer closeFn()

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return err
	}

	// Print summary if writing to file
	if exportFlagOutput != "" && !ctx.IsJSON() {
		cli := ctx.CLIFormatter()
		cli.Success("Backup created: " + exportFlagOutput)
		cli.Printf("  Sessions: %d\n", len(sessions))
		cli.Printf("  Milestones: %d\n", len(milestones))
	}

	return nil
}
