package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/runoshun/focusboard/internal/app"
	"github.com/runoshun/focusboard/internal/domain"
)

// newWatchCommand creates the watch command running the refresher headless.
func newWatchCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the done column ordering current",
		Long: `Periodically re-sort the done column so tasks crossing the archive
threshold sink below the recent ones, until interrupted. Each refresh
starts from the stored board, so changes made meanwhile by other
focusboard commands are kept.

The interval is [board] refresh_interval (default 1m). Log entries are
mirrored to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r, err := c.NewRefresher()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			c.MirrorLog(cmd.ErrOrStderr())
			r.OnChange(func() {
				b, err := c.Board.Snapshot()
				if err != nil {
					return
				}
				done := b.Columns[domain.ColumnDone].Tasks
				archived := len(b.ArchivedTasks(c.Clock.Now()))
				_, _ = fmt.Fprintf(w, "Done column reordered: %d recent, %d archived\n", len(done)-archived, archived)
			})

			if err := r.Start(ctx); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(w, "Refreshing every %s (Ctrl+C to stop)\n", r.Interval())

			<-ctx.Done()
			r.Stop()
			return nil
		},
	}
	return cmd
}
