package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/runoshun/focusboard/internal/app"
	"github.com/runoshun/focusboard/internal/domain"
	"github.com/runoshun/focusboard/internal/usecase"
)

// newTimerCommand creates the timer command.
func newTimerCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Show focus timer settings",
		Long: `Show the focus timer settings used by the interactive board.
Use 'focusboard timer set' to change them and 'focusboard timer reset'
to return to the configured defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowTimerSettingsUseCase().Execute(cmd.Context(), usecase.ShowTimerSettingsInput{})
			if err != nil {
				return err
			}
			printTimerSettings(cmd.OutOrStdout(), out.Settings)
			return nil
		},
	}

	cmd.AddCommand(newTimerSetCommand(c))
	cmd.AddCommand(newTimerResetCommand(c))
	return cmd
}

// newTimerResetCommand creates the timer reset subcommand.
func newTimerResetCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard stored timer settings",
		Long: `Delete the stored focus timer settings. The [timer] section of the
config (or the built-in defaults) applies again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ResetTimerSettingsUseCase().Execute(cmd.Context(), usecase.ResetTimerSettingsInput{})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "Timer settings reset")
			printTimerSettings(w, out.Settings)
			return nil
		},
	}
}

// newTimerSetCommand creates the timer set subcommand.
func newTimerSetCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Focus     float64
		Break     float64
		LongBreak float64
		Every     float64
	}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change focus timer settings",
		Long: fmt.Sprintf(`Change focus timer settings. Only the given flags are changed.

Minutes are clamped to %d..%d and the long break interval to %d..%d sessions.

Examples:
  focusboard timer set --focus 50 --break 10
  focusboard timer set --every 3`, domain.MinTimerMinutes, domain.MaxTimerMinutes, domain.MinLongBreakEvery, domain.MaxLongBreakEvery),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in usecase.UpdateTimerSettingsInput
			if cmd.Flags().Changed("focus") {
				in.FocusMinutes = &opts.Focus
			}
			if cmd.Flags().Changed("break") {
				in.BreakMinutes = &opts.Break
			}
			if cmd.Flags().Changed("long-break") {
				in.LongBreakMinutes = &opts.LongBreak
			}
			if cmd.Flags().Changed("every") {
				in.LongBreakEvery = &opts.Every
			}

			out, err := c.UpdateTimerSettingsUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !out.Changed {
				_, _ = fmt.Fprintln(w, "Timer settings unchanged")
			}
			printTimerSettings(w, out.Settings)
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.Focus, "focus", 0, "Focus session length in minutes")
	cmd.Flags().Float64Var(&opts.Break, "break", 0, "Short break length in minutes")
	cmd.Flags().Float64Var(&opts.LongBreak, "long-break", 0, "Long break length in minutes")
	cmd.Flags().Float64Var(&opts.Every, "every", 0, "Focus sessions between long breaks")
	return cmd
}

func printTimerSettings(w io.Writer, s domain.TimerSettings) {
	_, _ = fmt.Fprintf(w, "Focus:       %d min\n", s.FocusMinutes)
	_, _ = fmt.Fprintf(w, "Break:       %d min\n", s.BreakMinutes)
	_, _ = fmt.Fprintf(w, "Long break:  %d min\n", s.LongBreakMinutes)
	_, _ = fmt.Fprintf(w, "Long every:  %d sessions\n", s.LongBreakEvery)
}
