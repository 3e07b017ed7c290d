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

// taskFieldOptions holds the values of the task field flags.
// Fields are ordered to minimize memory padding.
type taskFieldOptions struct {
	Title      string
	Due        string
	Complexity string
	Tags       string
	Jira       string
	Notes      string
	Estimate   float64
}

// addTaskFieldFlags registers the task field flags on cmd.
func addTaskFieldFlags(cmd *cobra.Command, opts *taskFieldOptions) {
	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (yyyy-MM-dd, empty clears)")
	cmd.Flags().Float64Var(&opts.Estimate, "estimate", 0, "Time estimate in hours")
	cmd.Flags().StringVar(&opts.Complexity, "complexity", "", "Complexity label")
	cmd.Flags().StringVar(&opts.Tags, "tags", "", "Comma separated tags")
	cmd.Flags().StringVar(&opts.Jira, "jira", "", "Jira link")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "Notes")
}

// taskFields converts the explicitly provided flags into task fields.
// Flags that were not given stay nil so they do not form part of the patch.
func taskFields(cmd *cobra.Command, opts *taskFieldOptions) usecase.TaskFields {
	var fields usecase.TaskFields
	changed := cmd.Flags().Changed
	if changed("title") {
		fields.Title = &opts.Title
	}
	if changed("due") {
		fields.DueDate = &opts.Due
	}
	if changed("estimate") {
		fields.TimeEstimate = &opts.Estimate
	}
	if changed("complexity") {
		fields.Complexity = &opts.Complexity
	}
	if changed("tags") {
		fields.Tags = &opts.Tags
	}
	if changed("jira") {
		fields.JiraLink = &opts.Jira
	}
	if changed("notes") {
		fields.Notes = &opts.Notes
	}
	return fields
}

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts taskFieldOptions

	cmd := &cobra.Command{
		Use:   "add <column>",
		Short: "Add a task to a column",
		Long: `Add a task to a column (todo, in-progress, done or backlog).

The task starts with the title "New task", a due date two days from now
and a one hour estimate. Field flags replace those defaults.

Examples:
  # Add a default task to To Do
  focusboard add todo

  # Add a task with details
  focusboard add backlog --title "Write report" --estimate 3 --tags docs,q2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Column: args[0],
				Fields: taskFields(cmd, &opts),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s: %s\n", out.Task.ID, out.Task.ColumnID, out.Task.Title)
			return nil
		},
	}

	addTaskFieldFlags(cmd, &opts)
	return cmd
}

// newEditCommand creates the edit command for updating task fields.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts taskFieldOptions
	var useEditor bool

	cmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Edit task fields",
		Long: `Edit fields of an existing task. Only the given flags are changed;
the task keeps its column and position.

Examples:
  focusboard edit 3f2a... --title "Ship release" --due 2025-04-01
  focusboard edit 3f2a... --due ""

  # Write the notes in $EDITOR
  focusboard edit 3f2a... --editor`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := taskFields(cmd, &opts)
			if useEditor {
				b, err := c.Board.Snapshot()
				if err != nil {
					return err
				}
				task, ok := b.FindTask(args[0])
				if !ok {
					return domain.ErrTaskNotFound
				}
				notes, err := editText(task.Notes)
				if err != nil {
					return err
				}
				fields.Notes = &notes
			}

			out, err := c.EditTaskUseCase().Execute(cmd.Context(), usecase.EditTaskInput{
				TaskID: args[0],
				Fields: fields,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	addTaskFieldFlags(cmd, &opts)
	cmd.Flags().BoolVar(&useEditor, "editor", false, "Edit notes in $EDITOR")
	cmd.MarkFlagsMutuallyExclusive("notes", "editor")
	return cmd
}

// newMoveCommand creates the move command for drag-and-drop style moves.
func newMoveCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <source> <source-index> <dest> <dest-index>",
		Short: "Move a task between or within columns",
		Long: `Move the task at source-index of the source column to dest-index of the
destination column. Indices are zero-based as shown by 'focusboard list';
the destination index is clamped to the end of the column.

Moving into done stamps the completion time; moving out of done clears it.

Examples:
  # Finish the first in-progress task
  focusboard move in-progress 0 done 0

  # Reorder within To Do
  focusboard move todo 2 todo 0`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourceIndex, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid source index %q: %w", args[1], err)
			}
			destIndex, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("invalid destination index %q: %w", args[3], err)
			}

			dest := args[2]
			out, err := c.MoveTaskUseCase().Execute(cmd.Context(), usecase.MoveTaskInput{
				Drag: domain.DragEnd{
					SourceColumnID: args[0],
					SourceIndex:    sourceIndex,
					DestColumnID:   &dest,
					DestIndex:      destIndex,
				},
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !out.Moved {
				_, _ = fmt.Fprintln(w, "Nothing to move")
				return nil
			}
			_, _ = fmt.Fprintf(w, "Moved %s to %s\n", out.Task.ID, out.Task.ColumnID)
			return nil
		},
	}
	return cmd
}

// newFindCommand creates the find command for fuzzy searching task titles.
func newFindCommand(c *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy search task titles",
		Long: `Fuzzy search task titles across all columns, best matches first.

Examples:
  focusboard find roadmap
  focusboard find "dbg lag" --limit 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.FindTasksUseCase().Execute(cmd.Context(), usecase.FindTasksInput{
				Query: strings.Join(args, " "),
				Limit: limit,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Matches) == 0 {
				_, _ = fmt.Fprintln(w, "No matching tasks")
				return nil
			}
			printMatches(w, out.Matches)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of matches (0 = all)")
	return cmd
}

// printMatches prints search results in TSV format.
func printMatches(w io.Writer, matches []usecase.TaskMatch) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tCOLUMN\tSCORE\tTITLE")
	for _, m := range matches {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", m.Task.ID, m.Task.ColumnID, m.Score, m.Task.Title)
	}
}
