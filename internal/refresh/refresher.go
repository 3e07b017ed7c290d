// Package refresh periodically re-sorts the done column so tasks crossing the
// archive threshold sink below the recent ones without user interaction.
package refresh

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/runoshun/focusboard/internal/domain"
)

// Target is the part of the board store the refresher drives.
type Target interface {
	RefreshDoneOrdering(ctx context.Context) (bool, error)
}

// Refresher runs RefreshDoneOrdering on a cron schedule.
// Fields are ordered to minimize memory padding.
type Refresher struct {
	target   Target
	logger   domain.Logger
	onChange func()
	cron     *cron.Cron
	cancel   context.CancelFunc
	ctx      context.Context //nolint:containedctx // lifetime of scheduled jobs
	interval time.Duration
	mu       sync.Mutex
	running  bool
}

// New creates a Refresher. Intervals are rounded down to whole seconds
// with a minimum of one second.
func New(target Target, interval time.Duration, logger domain.Logger) (*Refresher, error) {
	if interval <= 0 {
		return nil, domain.ErrInvalidRefreshPeriod
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Refresher{
		target:   target,
		interval: max(interval.Truncate(time.Second), time.Second),
		logger:   logger,
	}, nil
}

// OnChange registers fn to run after each refresh that reordered the board.
func (r *Refresher) OnChange(fn func()) *Refresher {
	r.onChange = fn
	return r
}

// Interval returns the effective schedule interval.
func (r *Refresher) Interval() time.Duration {
	return r.interval
}

// Start runs one refresh immediately and then schedules the rest.
// Calling Start on a running refresher is a no-op.
func (r *Refresher) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return nil
	}

	r.ctx, r.cancel = context.WithCancel(ctx)
	r.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	spec := fmt.Sprintf("@every %ds", int(r.interval.Seconds()))
	if _, err := r.cron.AddFunc(spec, r.runOnce); err != nil {
		r.cancel()
		return fmt.Errorf("schedule refresh: %w", err)
	}

	r.runOnce()
	r.cron.Start()
	r.running = true
	r.logger.Debug("refresh", "scheduled "+spec)
	return nil
}

// Stop cancels the schedule and waits for a running refresh to finish.
func (r *Refresher) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	c, cancel := r.cron, r.cancel
	r.mu.Unlock()

	done := c.Stop()
	<-done.Done()
	cancel()
}

func (r *Refresher) runOnce() {
	ctx := r.ctx
	if ctx.Err() != nil {
		return
	}
	changed, err := r.target.RefreshDoneOrdering(ctx)
	if err != nil {
		r.logger.Error("refresh", err.Error())
		return
	}
	if changed {
		r.logger.Info("refresh", "done column reordered")
		if r.onChange != nil {
			r.onChange()
		}
	}
}
