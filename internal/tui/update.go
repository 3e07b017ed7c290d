package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/focusboard/internal/domain"
	"github.com/runoshun/focusboard/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgBoardChanged:
		m.setBoard(msg.Board)
		return m, m.waitForBoard()

	case MsgTaskAdded:
		m.follow = msg.TaskID
		m.setBoard(m.board)
		m.startEditTitle(msg.TaskID, "")
		return m, nil

	case MsgTaskMoved:
		m.follow = msg.TaskID
		m.setBoard(m.board)
		return m, nil

	case MsgTimerTick:
		if m.timer.Tick(msg.Time) {
			m.notice = fmt.Sprintf("Time for: %s", m.timer.Mode().Display())
		}
		return m, timerTick()

	case MsgRefreshTick:
		return m, tea.Batch(m.refreshDone(), m.refreshTick())

	case MsgNotice:
		m.notice = msg.Text
		return m, nil

	case MsgError:
		m.err = msg.Err
		if m.mode == ModeEditTitle {
			m.mode = ModeNormal
			m.titleInput.Blur()
		}
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear transient messages on any key press
	m.err = nil
	m.notice = ""

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeEditTitle:
		return m.handleEditTitleMode(msg)
	case ModeArchive, ModeHelp:
		return m.handleOverlayMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.loaded {
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Archive):
		m.mode = ModeArchive
		return m, nil

	// Moves are matched before plain navigation since shift+arrow
	// bindings share letters with it.
	case key.Matches(msg, m.keys.MoveUp):
		return m, m.moveSelected(0, -1)
	case key.Matches(msg, m.keys.MoveDown):
		return m, m.moveSelected(0, 1)
	case key.Matches(msg, m.keys.MoveLeft):
		return m, m.moveSelected(-1, 0)
	case key.Matches(msg, m.keys.MoveRight):
		return m, m.moveSelected(1, 0)
	case key.Matches(msg, m.keys.MoveDone):
		return m, m.moveSelectedToDone()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.focusColumn(-1)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.focusColumn(1)
		return m, nil

	case key.Matches(msg, m.keys.New):
		return m, m.addTask(m.FocusedColumn())

	case key.Matches(msg, m.keys.EditTitle):
		if task := m.SelectedTask(); task != nil {
			m.startEditTitle(task.ID, task.Title)
		}
		return m, nil

	case key.Matches(msg, m.keys.ArchiveMore):
		return m, m.setArchiveHours(m.board.DoneArchiveHours + 1)
	case key.Matches(msg, m.keys.ArchiveLess):
		return m, m.setArchiveHours(m.board.DoneArchiveHours - 1)
	case key.Matches(msg, m.keys.RefreshOrder):
		return m, m.refreshDone()

	case key.Matches(msg, m.keys.TimerToggle):
		now := m.container.Clock.Now()
		if m.timer.Running() {
			m.timer.Pause(now)
		} else {
			m.timer.Start(now)
		}
		return m, nil
	case key.Matches(msg, m.keys.TimerReset):
		m.timer.Reset()
		return m, nil
	case key.Matches(msg, m.keys.TimerSkip):
		m.timer.Skip()
		m.notice = fmt.Sprintf("Skipped to: %s", m.timer.Mode().Display())
		return m, nil
	}

	return m, nil
}

// handleEditTitleMode handles keys while renaming a task.
func (m *Model) handleEditTitleMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.mode = ModeNormal
		m.titleInput.Blur()
		title := strings.TrimSpace(m.titleInput.Value())
		task, ok := m.board.FindTask(m.editing)
		if title == "" || (ok && title == task.Title) {
			return m, nil
		}
		return m, m.renameTask(m.editing, title)
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// handleOverlayMode closes the help or archive overlay.
func (m *Model) handleOverlayMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c":
		return m.quit()
	case key.Matches(msg, m.keys.Escape),
		key.Matches(msg, m.keys.Quit),
		m.mode == ModeHelp && key.Matches(msg, m.keys.Help),
		m.mode == ModeArchive && key.Matches(msg, m.keys.Archive):
		m.mode = ModeNormal
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}

func (m *Model) startEditTitle(taskID, value string) {
	m.mode = ModeEditTitle
	m.editing = taskID
	m.titleInput.SetValue(value)
	m.titleInput.CursorEnd()
	m.titleInput.Focus()
}

func (m *Model) moveCursor(delta int) {
	id := m.FocusedColumn()
	n := len(m.board.Columns[id].Tasks)
	if n == 0 {
		return
	}
	m.cursors[id] = max(0, min(n-1, m.cursors[id]+delta))
}

func (m *Model) focusColumn(delta int) {
	n := len(m.board.ColumnOrder)
	if n == 0 {
		return
	}
	m.focus = max(0, min(n-1, m.focus+delta))
}

// moveSelected turns a key press into a drag-end of the selected task:
// a column delta drops it at the end of the neighbouring column, an index
// delta reorders it within its column.
func (m *Model) moveSelected(columnDelta, indexDelta int) tea.Cmd {
	task := m.SelectedTask()
	if task == nil {
		return nil
	}

	source := m.FocusedColumn()
	sourceIndex := m.cursors[source]
	drag := domain.DragEnd{SourceColumnID: string(source), SourceIndex: sourceIndex}

	if columnDelta != 0 {
		target := m.focus + columnDelta
		if target < 0 || target >= len(m.board.ColumnOrder) {
			return nil
		}
		dest := string(m.board.ColumnOrder[target])
		drag.DestColumnID = &dest
		drag.DestIndex = len(m.board.Columns[m.board.ColumnOrder[target]].Tasks)
	} else {
		destIndex := sourceIndex + indexDelta
		if destIndex < 0 || destIndex >= len(m.board.Columns[source].Tasks) {
			return nil
		}
		dest := string(source)
		drag.DestColumnID = &dest
		drag.DestIndex = destIndex
	}

	return m.move(drag)
}

// moveSelectedToDone drops the selected task on top of the done column.
func (m *Model) moveSelectedToDone() tea.Cmd {
	task := m.SelectedTask()
	source := m.FocusedColumn()
	if task == nil || source == domain.ColumnDone {
		return nil
	}
	dest := string(domain.ColumnDone)
	return m.move(domain.DragEnd{
		SourceColumnID: string(source),
		SourceIndex:    m.cursors[source],
		DestColumnID:   &dest,
	})
}

func (m *Model) move(drag domain.DragEnd) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.MoveTaskUseCase().Execute(context.Background(), usecase.MoveTaskInput{Drag: drag})
		if err != nil {
			return MsgError{Err: err}
		}
		if !out.Moved {
			return nil
		}
		return MsgTaskMoved{TaskID: out.Task.ID}
	}
}

func (m *Model) addTask(column domain.ColumnID) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{Column: string(column)})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskAdded{TaskID: out.Task.ID}
	}
}

func (m *Model) renameTask(taskID, title string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.EditTaskUseCase().Execute(context.Background(), usecase.EditTaskInput{
			TaskID: taskID,
			Fields: usecase.TaskFields{Title: &title},
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return nil
	}
}

func (m *Model) setArchiveHours(hours int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.SetArchiveHoursUseCase().Execute(context.Background(), usecase.SetArchiveHoursInput{Hours: float64(hours)})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgNotice{Text: fmt.Sprintf("Archive after %dh", out.Hours)}
	}
}
