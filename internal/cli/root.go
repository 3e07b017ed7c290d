// Package cli provides the command-line interface for focusboard.
package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/focusboard/internal/app"
	"github.com/runoshun/focusboard/internal/tui"
	"github.com/runoshun/focusboard/internal/usecase"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupBoard = "board"
	groupFocus = "focus"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for focusboard.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "focusboard",
		Short: "Kanban board with a focus timer",
		Long: `focusboard is a kanban-style task board with four fixed columns
(To Do, In Progress, Done, Backlog) and a focus-session countdown timer.

Done tasks older than the archive threshold sink below the recent ones
and are listed by 'focusboard archive'.

Run without arguments to open the interactive board.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}

			// Config commands work without loading the board
			if isConfigCommand(cmd) {
				return nil
			}
			return c.Board.Hydrate(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchTUIFunc(cmd.Context(), c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupBoard, Title: "Board Commands:"},
		&cobra.Group{ID: groupFocus, Title: "Focus Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Board commands
	boardCmds := []*cobra.Command{
		newListCommand(c),
		newAddCommand(c),
		newEditCommand(c),
		newMoveCommand(c),
		newFindCommand(c),
		newArchiveCommand(c),
		newArchiveHoursCommand(c),
		newResetCommand(c),
		newExportCommand(c),
	}
	for _, cmd := range boardCmds {
		cmd.GroupID = groupBoard
	}

	// Focus commands
	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupFocus

	timerCmd := newTimerCommand(c)
	timerCmd.GroupID = groupFocus

	watchCmd := newWatchCommand(c)
	watchCmd.GroupID = groupFocus

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(boardCmds...)
	root.AddCommand(tuiCmd, timerCmd, watchCmd, configCmd)

	return root
}

// isConfigCommand returns true if cmd is the config command or one of its subcommands.
func isConfigCommand(cmd *cobra.Command) bool {
	for p := cmd; p != nil; p = p.Parent() {
		if p.Name() == "config" {
			return true
		}
	}
	return false
}

// launchTUI runs the interactive board until the user quits.
func launchTUI(ctx context.Context, c *app.Container) error {
	out, err := c.ShowTimerSettingsUseCase().Execute(ctx, usecase.ShowTimerSettingsInput{})
	if err != nil {
		return err
	}

	model := tui.New(c, out.Settings)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
