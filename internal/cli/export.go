package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/focusboard/internal/app"
	"github.com/runoshun/focusboard/internal/domain"
	"github.com/runoshun/focusboard/internal/usecase"
)

// Export formats.
const (
	formatTSV  = "tsv"
	formatJSON = "json"
	formatYAML = "yaml"
)

// exportHeader is the header row of the TSV export.
var exportHeader = []string{"Title", "Column", "Column ID", "Due Date", "Time Estimate", "Complexity", "Tags", "Jira Link", "Notes"}

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks",
		Long: `Export every task as one row in display order.

Formats:
  tsv   tab separated with a header row (default)
  json  array of objects
  yaml  sequence of mappings`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ExportTasksUseCase().Execute(cmd.Context(), usecase.ExportTasksInput{})
			if err != nil {
				return err
			}
			return writeExport(cmd.OutOrStdout(), out.Rows, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTSV, "Output format (tsv, json, yaml)")
	return cmd
}

// writeExport encodes rows in the given format.
func writeExport(w io.Writer, rows []domain.ExportRow, format string) error {
	switch format {
	case formatTSV:
		return writeTSV(w, rows)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q (expected tsv, json or yaml)", domain.ErrUnknownExportFormat, format)
	}
}

func writeTSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Title,
			r.ColumnTitle,
			string(r.ColumnID),
			r.DueDate,
			strconv.FormatFloat(r.TimeEstimate, 'f', -1, 64),
			r.Complexity,
			r.Tags,
			r.JiraLink,
			r.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
