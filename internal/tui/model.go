package tui

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/focusboard/internal/app"
	"github.com/runoshun/focusboard/internal/domain"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	timer     *domain.FocusTimer
	err       error

	// Store subscription
	boards      chan domain.Board
	done        chan struct{}
	unsubscribe func()
	closeOnce   *sync.Once

	// State
	board   domain.Board
	cursors map[domain.ColumnID]int
	follow  string // Task id to select once it appears in a snapshot
	editing string // Task id being renamed
	notice  string

	// Components
	keys       KeyMap
	styles     Styles
	help       help.Model
	titleInput textinput.Model

	// Numeric state (smaller types last)
	refreshEvery time.Duration
	mode         Mode
	focus        int // Index into board.ColumnOrder
	width        int
	height       int
	loaded       bool
}

// New creates a new TUI Model with the given container.
// The container's board must already be hydrated.
func New(c *app.Container, settings domain.TimerSettings) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	refreshEvery, err := c.AppConfig.Board.RefreshEvery()
	if err != nil {
		refreshEvery = domain.DefaultRefreshInterval
	}

	m := &Model{
		container:    c,
		timer:        domain.NewFocusTimer(settings),
		boards:       make(chan domain.Board, 1),
		done:         make(chan struct{}),
		closeOnce:    &sync.Once{},
		cursors:      make(map[domain.ColumnID]int),
		keys:         DefaultKeyMap(),
		styles:       DefaultStyles(),
		help:         help.New(),
		titleInput:   ti,
		refreshEvery: refreshEvery,
		mode:         ModeNormal,
	}
	m.unsubscribe = c.Board.Subscribe(m.publish)
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadBoard(),
		m.waitForBoard(),
		timerTick(),
		m.refreshTick(),
	)
}

// Close stops listening to the store. It is safe to call more than once.
func (m *Model) Close() {
	m.closeOnce.Do(func() {
		m.unsubscribe()
		close(m.done)
	})
}

// publish hands a snapshot to the UI loop, replacing one not yet consumed.
// It never blocks the store.
func (m *Model) publish(b domain.Board) {
	for {
		select {
		case <-m.done:
			return
		case m.boards <- b:
			return
		default:
		}
		select {
		case <-m.boards:
		default:
		}
	}
}

// waitForBoard returns a command that delivers the next published snapshot.
func (m *Model) waitForBoard() tea.Cmd {
	return func() tea.Msg {
		select {
		case b := <-m.boards:
			return MsgBoardChanged{Board: b}
		case <-m.done:
			return nil
		}
	}
}

// loadBoard returns a command that reads the current snapshot.
func (m *Model) loadBoard() tea.Cmd {
	return func() tea.Msg {
		b, err := m.container.Board.Snapshot()
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgBoardChanged{Board: b}
	}
}

// timerTick schedules the next focus timer update.
func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return MsgTimerTick{Time: t}
	})
}

// refreshTick schedules the next done column refresh.
func (m *Model) refreshTick() tea.Cmd {
	return tea.Tick(m.refreshEvery, func(time.Time) tea.Msg {
		return MsgRefreshTick{}
	})
}

// refreshDone re-sorts the done column. Changes arrive through the subscription.
func (m *Model) refreshDone() tea.Cmd {
	return func() tea.Msg {
		if _, err := m.container.Board.RefreshDoneOrdering(context.Background()); err != nil {
			return MsgError{Err: err}
		}
		return nil
	}
}

// FocusedColumn returns the id of the focused column.
func (m *Model) FocusedColumn() domain.ColumnID {
	if len(m.board.ColumnOrder) == 0 {
		return domain.ColumnTodo
	}
	return m.board.ColumnOrder[m.focus]
}

// SelectedTask returns the selected task of the focused column, or nil if the column is empty.
func (m *Model) SelectedTask() *domain.Task {
	tasks := m.board.Columns[m.FocusedColumn()].Tasks
	i := m.cursors[m.FocusedColumn()]
	if i < 0 || i >= len(tasks) {
		return nil
	}
	t := tasks[i]
	return &t
}

// setBoard installs a snapshot, keeping cursors inside their columns and
// selecting the followed task when it is present.
func (m *Model) setBoard(b domain.Board) {
	m.board = b
	m.loaded = true
	if m.focus >= len(b.ColumnOrder) {
		m.focus = 0
	}

	if m.follow != "" {
		for ci, id := range b.ColumnOrder {
			if i := b.Columns[id].IndexOf(m.follow); i >= 0 {
				m.focus = ci
				m.cursors[id] = i
				m.follow = ""
				break
			}
		}
	}

	for _, id := range b.ColumnOrder {
		n := len(b.Columns[id].Tasks)
		switch {
		case n == 0:
			m.cursors[id] = 0
		case m.cursors[id] >= n:
			m.cursors[id] = n - 1
		}
	}
}
