package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/focusboard/internal/app"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running focusboard without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive board",
		Long:  `Launch the interactive terminal board with the focus timer.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchTUIFunc(cmd.Context(), c)
		},
	}
	return cmd
}
