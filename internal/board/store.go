// Package board provides the board state store: the single, persisted source
// of truth for columns and tasks.
package board

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/focusboard/internal/domain"
)

// Ensure Store implements domain.BoardStore.
var _ domain.BoardStore = (*Store)(nil)

// Listener is called with a copy of the board after every effective mutation.
type Listener func(domain.Board)

// Store holds the board behind a mutex. Callers read deep copies and write
// only through the operations; every effective mutation is saved through the
// Persister before it becomes visible.
// Fields are ordered to minimize memory padding.
type Store struct {
	persister           Persister
	clock               domain.Clock
	ids                 domain.IDGenerator
	logger              domain.Logger
	listeners           map[int]Listener
	board               domain.Board
	nextListener        int
	defaultArchiveHours int
	mu                  sync.Mutex
	hydrated            bool
}

// New creates a Store. The store is unusable until Hydrate succeeds.
func New(persister Persister, clock domain.Clock, ids domain.IDGenerator, logger domain.Logger) *Store {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Store{
		persister:           persister,
		clock:               clock,
		ids:                 ids,
		logger:              logger,
		listeners:           make(map[int]Listener),
		defaultArchiveHours: domain.DefaultDoneArchiveHours,
	}
}

// WithDefaultArchiveHours sets the archive threshold of the board created
// when nothing is persisted yet. A discarded snapshot always falls back to
// domain.DefaultDoneArchiveHours, and reset keeps the current threshold.
func (s *Store) WithDefaultArchiveHours(hours int) *Store {
	if hours >= 1 {
		s.defaultArchiveHours = hours
	}
	return s
}

// Hydrate loads the persisted board. It runs once; later calls are no-ops.
// When nothing usable is persisted a default board is created and saved.
func (s *Store) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return nil
	}

	hours := s.defaultArchiveHours
	loaded, err := s.persister.Load(ctx)
	if errors.Is(err, domain.ErrSnapshotDiscarded) {
		hours = domain.DefaultDoneArchiveHours
	} else if err != nil {
		return fmt.Errorf("load board: %w", err)
	}

	now := s.clock.Now()
	if loaded == nil {
		fresh := domain.DefaultBoard(now, s.ids, hours)
		if err := s.persister.Save(ctx, fresh); err != nil {
			return fmt.Errorf("save default board: %w", err)
		}
		s.board = fresh
		s.logger.Info("store", "created default board")
	} else {
		s.board = loaded.Normalize(now)
		s.logger.Debug("store", fmt.Sprintf("loaded board with %d tasks", len(s.board.AllTasks())))
	}
	s.hydrated = true
	return nil
}

// Hydrated reports whether Hydrate has completed.
func (s *Store) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// Snapshot returns a deep copy of the current board.
func (s *Store) Snapshot() (domain.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hydrated {
		return domain.Board{}, domain.ErrNotHydrated
	}
	return s.board.Clone(), nil
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.clock.Now()
}

// AddTask appends a task with default values to the column.
// Returns nil, nil when the column is unknown.
func (s *Store) AddTask(ctx context.Context, columnID domain.ColumnID) (*domain.Task, error) {
	var added domain.Task
	changed, err := s.mutate(ctx, "add", func(b domain.Board, now time.Time) (domain.Board, bool) {
		next, task, ok := b.AddTask(columnID, s.ids.NewID(), now)
		added = task
		return next, ok
	})
	if err != nil || !changed {
		return nil, err
	}
	s.logger.Info("task", fmt.Sprintf("added %s to %s", added.ID, columnID))
	return &added, nil
}

// UpdateTask applies patch to the first task with the given id.
// An invalid patch is rejected before the board is touched.
func (s *Store) UpdateTask(ctx context.Context, taskID string, patch domain.TaskPatch) (bool, error) {
	if err := patch.Validate(); err != nil {
		return false, err
	}
	return s.mutate(ctx, "update", func(b domain.Board, _ time.Time) (domain.Board, bool) {
		return b.UpdateTask(taskID, patch)
	})
}

// MoveTask moves the task at sourceIndex of source to destIndex of dest.
func (s *Store) MoveTask(ctx context.Context, source, dest domain.ColumnID, sourceIndex, destIndex int) (bool, error) {
	changed, err := s.mutate(ctx, "move", func(b domain.Board, now time.Time) (domain.Board, bool) {
		return b.MoveTask(source, dest, sourceIndex, destIndex, now)
	})
	if changed {
		s.logger.Info("task", fmt.Sprintf("moved %s[%d] -> %s[%d]", source, sourceIndex, dest, destIndex))
	}
	return changed, err
}

// Reload replaces the board with the persisted snapshot so writes made by
// other processes sharing the storage become visible. Listeners are notified
// only when the reloaded board differs. A missing or discarded snapshot keeps
// the current board.
func (s *Store) Reload(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return false, domain.ErrNotHydrated
	}

	loaded, err := s.persister.Load(ctx)
	if errors.Is(err, domain.ErrSnapshotDiscarded) || (err == nil && loaded == nil) {
		s.mu.Unlock()
		return false, nil
	}
	if err != nil {
		s.mu.Unlock()
		return false, fmt.Errorf("reload board: %w", err)
	}

	next := loaded.Normalize(s.clock.Now())
	if sameSnapshot(s.board, next) {
		s.mu.Unlock()
		return false, nil
	}
	s.board = next
	listeners := s.listenersLocked()
	s.mu.Unlock()

	s.logger.Debug("store", "reloaded board changed by another writer")
	publish(listeners, next)
	return true, nil
}

// RefreshDoneOrdering reloads the persisted board and reapplies the done
// ordering rule at the current time, so the rewrite starts from the latest
// stored state. Nothing is saved when the order did not change.
func (s *Store) RefreshDoneOrdering(ctx context.Context) (bool, error) {
	if _, err := s.Reload(ctx); err != nil {
		return false, err
	}
	return s.mutate(ctx, "refresh", func(b domain.Board, now time.Time) (domain.Board, bool) {
		return b.RefreshDoneOrdering(now)
	})
}

// SetDoneArchiveHours updates the archive threshold and reorders the done column.
func (s *Store) SetDoneArchiveHours(ctx context.Context, hours float64) (bool, error) {
	return s.mutate(ctx, "archive-hours", func(b domain.Board, now time.Time) (domain.Board, bool) {
		return b.SetDoneArchiveHours(hours, now)
	})
}

// ResetBoard replaces every column with default content. The archive
// threshold is kept.
func (s *Store) ResetBoard(ctx context.Context) error {
	_, err := s.mutate(ctx, "reset", func(b domain.Board, now time.Time) (domain.Board, bool) {
		fresh := domain.DefaultBoard(now, s.ids, b.DoneArchiveHours)
		return fresh, true
	})
	if err == nil {
		s.logger.Info("store", "board reset")
	}
	return err
}

// Subscribe registers fn to be called after every effective mutation.
// The returned function removes the listener; calling it twice is safe.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// mutate runs fn against the current board under the lock. A changed board
// is saved, swapped in and then published to listeners outside the lock.
// When saving fails the previous board stays current.
func (s *Store) mutate(ctx context.Context, op string, fn func(domain.Board, time.Time) (domain.Board, bool)) (bool, error) {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return false, domain.ErrNotHydrated
	}

	next, changed := fn(s.board, s.clock.Now())
	if !changed {
		s.mu.Unlock()
		s.logger.Debug("store", op+": no change")
		return false, nil
	}

	if err := s.persister.Save(ctx, next); err != nil {
		s.mu.Unlock()
		s.logger.Error("store", fmt.Sprintf("%s: save failed: %v", op, err))
		return false, fmt.Errorf("save board: %w", err)
	}
	s.board = next
	listeners := s.listenersLocked()
	s.mu.Unlock()

	publish(listeners, next)
	return true, nil
}

func (s *Store) listenersLocked() []Listener {
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	return listeners
}

func publish(listeners []Listener, b domain.Board) {
	for _, l := range listeners {
		l(b.Clone())
	}
}

// sameSnapshot compares boards by their persisted form, which ignores
// monotonic clock readings.
func sameSnapshot(a, b domain.Board) bool {
	ea, errA := encodeSnapshot(a)
	eb, errB := encodeSnapshot(b)
	return errA == nil && errB == nil && bytes.Equal(ea, eb)
}
