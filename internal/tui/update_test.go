package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focusboard/internal/domain"
)

func TestUpdate_Navigation(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		wantColumn domain.ColumnID
	}{
		{name: "right moves focus", keys: []string{"l"}, wantColumn: domain.ColumnInProgress},
		{name: "left stops at first column", keys: []string{"h", "h"}, wantColumn: domain.ColumnTodo},
		{name: "right stops at last column", keys: []string{"l", "l", "l", "l", "l"}, wantColumn: domain.ColumnBacklog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)

			for _, k := range tt.keys {
				press(t, m, k)
			}

			assert.Equal(t, tt.wantColumn, m.FocusedColumn())
		})
	}
}

func TestUpdate_MoveRight(t *testing.T) {
	// Setup
	m, _ := newTestModel(t)

	// Execute
	msg := press(t, m, "L")
	syncBoard(m)

	// Assert
	assert.Equal(t, MsgTaskMoved{TaskID: "task-1"}, msg)
	assert.Empty(t, m.board.Columns[domain.ColumnTodo].Tasks)
	inProgress := m.board.Columns[domain.ColumnInProgress].Tasks
	require.Len(t, inProgress, 2)
	assert.Equal(t, "task-1", inProgress[1].ID)
	assert.Equal(t, domain.ColumnInProgress, m.FocusedColumn(), "focus follows the moved task")
	assert.Equal(t, "task-1", m.SelectedTask().ID)
}

func TestUpdate_MoveLeftAtEdge_Noop(t *testing.T) {
	m, _ := newTestModel(t)

	msg := press(t, m, "H")

	assert.Nil(t, msg)
	assert.Len(t, m.board.Columns[domain.ColumnTodo].Tasks, 1)
}

func TestUpdate_MoveDone(t *testing.T) {
	// Setup
	m, _ := newTestModel(t)

	// Execute
	press(t, m, "D")
	syncBoard(m)

	// Assert
	done := m.board.Columns[domain.ColumnDone].Tasks
	require.Len(t, done, 1)
	assert.Equal(t, "task-1", done[0].ID)
	require.NotNil(t, done[0].CompletedAt)
	assert.True(t, done[0].CompletedAt.Equal(testNow))
	assert.Equal(t, domain.ColumnDone, m.FocusedColumn())

	// Dropping a done task on done does nothing
	assert.Nil(t, press(t, m, "D"))
}

func TestUpdate_ReorderWithinColumn(t *testing.T) {
	// Setup: two tasks in todo
	m, _ := newTestModel(t)
	press(t, m, "n")
	press(t, m, "esc")
	syncBoard(m)
	require.Len(t, m.board.Columns[domain.ColumnTodo].Tasks, 2)
	assert.Equal(t, 1, m.cursors[domain.ColumnTodo])

	// Execute
	press(t, m, "K")
	syncBoard(m)

	// Assert
	tasks := m.board.Columns[domain.ColumnTodo].Tasks
	assert.Equal(t, "task-4", tasks[0].ID)
	assert.Equal(t, "task-1", tasks[1].ID)
	assert.Equal(t, 0, m.cursors[domain.ColumnTodo])
}

func TestUpdate_NewTaskThenRename(t *testing.T) {
	// Setup
	m, _ := newTestModel(t)

	// Execute
	msg := press(t, m, "n")
	require.Equal(t, MsgTaskAdded{TaskID: "task-4"}, msg)
	assert.Equal(t, ModeEditTitle, m.mode)

	m.titleInput.SetValue("Write release notes")
	press(t, m, "enter")
	syncBoard(m)

	// Assert
	assert.Equal(t, ModeNormal, m.mode)
	task, ok := m.board.FindTask("task-4")
	require.True(t, ok)
	assert.Equal(t, "Write release notes", task.Title)
	assert.Equal(t, "task-4", m.SelectedTask().ID)
}

func TestUpdate_RenameCancelled(t *testing.T) {
	m, _ := newTestModel(t)

	press(t, m, "e")
	assert.Equal(t, "Plan daily priorities", m.titleInput.Value())
	m.titleInput.SetValue("Something else")
	press(t, m, "esc")
	syncBoard(m)

	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, "Plan daily priorities", m.SelectedTask().Title)
}

func TestUpdate_ArchiveHours(t *testing.T) {
	m, _ := newTestModel(t)

	msg := press(t, m, "+")
	syncBoard(m)
	assert.Equal(t, MsgNotice{Text: "Archive after 25h"}, msg)
	assert.Equal(t, 25, m.board.DoneArchiveHours)

	press(t, m, "-")
	syncBoard(m)
	press(t, m, "-")
	syncBoard(m)
	assert.Equal(t, 23, m.board.DoneArchiveHours)
}

func TestUpdate_Timer(t *testing.T) {
	// Setup
	m, clock := newTestModel(t)

	// Start
	press(t, m, " ")
	require.True(t, m.timer.Running())

	// Tick halfway through the focus session
	clock.Advance(10 * time.Minute)
	m.Update(MsgTimerTick{Time: clock.Now()})
	assert.Equal(t, 15*time.Minute, m.timer.Remaining())

	// Finish the phase
	clock.Advance(15 * time.Minute)
	m.Update(MsgTimerTick{Time: clock.Now()})
	assert.Equal(t, domain.TimerBreak, m.timer.Mode())
	assert.Equal(t, "Time for: Break", m.notice)

	// Skip back to focus and reset
	press(t, m, "S")
	assert.Equal(t, domain.TimerFocus, m.timer.Mode())
	press(t, m, "R")
	assert.False(t, m.timer.Running())
	assert.Equal(t, 25*time.Minute, m.timer.Remaining())
}

func TestUpdate_Overlays(t *testing.T) {
	tests := []struct {
		name  string
		open  string
		close string
		want  Mode
	}{
		{name: "help closes with esc", open: "?", close: "esc", want: ModeHelp},
		{name: "help closes with ?", open: "?", close: "?", want: ModeHelp},
		{name: "archive closes with a", open: "a", close: "a", want: ModeArchive},
		{name: "archive closes with q", open: "a", close: "q", want: ModeArchive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)

			press(t, m, tt.open)
			assert.Equal(t, tt.want, m.mode)

			press(t, m, tt.close)
			assert.Equal(t, ModeNormal, m.mode)
		})
	}
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(keyPress("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Nil(t, m.waitForBoard()(), "subscription is closed")
}

func TestUpdate_ErrorLeavesEditMode(t *testing.T) {
	m, _ := newTestModel(t)
	press(t, m, "e")

	m.Update(MsgError{Err: errors.New("disk full")})

	assert.Equal(t, ModeNormal, m.mode)
	require.Error(t, m.err)

	press(t, m, "j")
	assert.NoError(t, m.err, "errors clear on the next key")
}
