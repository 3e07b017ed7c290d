package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/focusboard/internal/app"
	"github.com/runoshun/focusboard/internal/domain"
	"github.com/runoshun/focusboard/internal/usecase"
)

// newListCommand creates the list command for showing the board.
func newListCommand(c *app.Container) *cobra.Command {
	var column string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the board",
		Long: `Show all columns and their tasks in display order.

The INDEX column is the position used by 'focusboard move'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{Column: column})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, summary := range out.Columns {
				if i > 0 {
					_, _ = fmt.Fprintln(w)
				}
				printColumn(w, summary)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&column, "column", "c", "", "Only show this column")
	return cmd
}

// printColumn prints a column header followed by its tasks in TSV format.
func printColumn(w io.Writer, summary usecase.ColumnSummary) {
	column := summary.Column
	header := fmt.Sprintf("%s (%s) - %s, %sh", column.Title, column.ID, pluralTasks(len(column.Tasks)), formatHours(summary.TotalHours))
	if column.ID == domain.ColumnDone && summary.ArchivedCount > 0 {
		header += fmt.Sprintf(", %d archived", summary.ArchivedCount)
	}
	_, _ = fmt.Fprintln(w, header)

	if len(column.Tasks) == 0 {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "INDEX\tID\tDUE\tEST\tTAGS\tTITLE")
	for i, t := range column.Tasks {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%sh\t%s\t%s\n",
			i, t.ID, orDash(t.DueDate), formatHours(t.TimeEstimate), orDash(strings.Join(t.Tags, ",")), t.Title)
	}
}

// newArchiveCommand creates the archive command listing old done tasks.
func newArchiveCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "List archived done tasks",
		Long: `List done tasks completed at least the archive threshold ago.
Archived tasks stay on the board; they are only sorted below the recent ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListArchivedUseCase().Execute(cmd.Context(), usecase.ListArchivedInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintf(w, "No tasks completed more than %dh ago\n", out.Hours)
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
			defer func() { _ = tw.Flush() }()

			_, _ = fmt.Fprintln(tw, "ID\tCOMPLETED\tTITLE")
			for _, t := range out.Tasks {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.CompletedAt.Local().Format("2006-01-02 15:04"), t.Title)
			}
			return nil
		},
	}
	return cmd
}

// newArchiveHoursCommand creates the archive-hours command.
func newArchiveHoursCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive-hours [hours]",
		Short: "Show or set the archive threshold",
		Long: `Show or set how many hours a done task stays recent.
Values are rounded to whole hours with a minimum of 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				b, err := c.Board.Snapshot()
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(w, "Archive threshold: %dh\n", b.DoneArchiveHours)
				return nil
			}

			hours, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid hours %q: %w", args[0], err)
			}
			out, err := c.SetArchiveHoursUseCase().Execute(cmd.Context(), usecase.SetArchiveHoursInput{Hours: hours})
			if err != nil {
				return err
			}

			if !out.Changed {
				_, _ = fmt.Fprintf(w, "Archive threshold unchanged: %dh\n", out.Hours)
				return nil
			}
			_, _ = fmt.Fprintf(w, "Archive threshold set to %dh\n", out.Hours)
			return nil
		},
	}
	return cmd
}

// newResetCommand creates the reset command.
func newResetCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default board",
		Long: `Replace every column with the default starter content.
All tasks are discarded; the archive threshold is kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ResetBoardUseCase().Execute(cmd.Context(), usecase.ResetBoardInput{Confirmed: yes})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Board reset (%s)\n", pluralTasks(len(out.Board.AllTasks())))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm discarding all tasks")
	return cmd
}

func pluralTasks(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

// formatHours formats hours without trailing zeros.
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
