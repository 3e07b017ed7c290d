package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focusboard/internal/domain"
)

func TestAddCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantOut   string
		wantTitle string
		wantDue   string
		wantTags  []string
		wantEst   float64
	}{
		{
			name:      "defaults",
			args:      []string{"add", "todo"},
			wantOut:   "Added task-4 to todo: New task\n",
			wantTitle: "New task",
			wantDue:   "2025-03-12",
			wantTags:  []string{},
			wantEst:   1,
		},
		{
			name:      "with fields",
			args:      []string{"add", "backlog", "--title", "Write report", "--estimate", "3", "--tags", "docs, q2", "--due", ""},
			wantOut:   "Added task-4 to backlog: Write report\n",
			wantTitle: "Write report",
			wantDue:   "",
			wantTags:  []string{"docs", "q2"},
			wantEst:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContainer(t)

			out, _, err := run(t, c, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out)

			b, err := c.Board.Snapshot()
			require.NoError(t, err)
			task, ok := b.FindTask("task-4")
			require.True(t, ok)
			assert.Equal(t, tt.wantTitle, task.Title)
			assert.Equal(t, tt.wantDue, task.DueDate)
			assert.Equal(t, tt.wantTags, task.Tags)
			assert.InDelta(t, tt.wantEst, task.TimeEstimate, 0.001)
		})
	}
}

func TestAddCommand_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		args    []string
	}{
		{name: "unknown column", args: []string{"add", "later"}, wantErr: domain.ErrUnknownColumn},
		{name: "bad due date", args: []string{"add", "todo", "--due", "tomorrow"}, wantErr: domain.ErrInvalidDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContainer(t)

			_, _, err := run(t, c, tt.args...)

			assert.ErrorIs(t, err, tt.wantErr)
			b, snapErr := c.Board.Snapshot()
			require.NoError(t, snapErr)
			assert.Len(t, b.AllTasks(), 3, "no task is left behind")
		})
	}
}

func TestEditCommand(t *testing.T) {
	c, _ := newTestContainer(t)

	out, _, err := run(t, c, "edit", "task-2", "--title", "Fix churn lag", "--notes", "see profiler")

	require.NoError(t, err)
	assert.Equal(t, "Updated task-2: Fix churn lag\n", out)

	b, err := c.Board.Snapshot()
	require.NoError(t, err)
	task, ok := b.FindTask("task-2")
	require.True(t, ok)
	assert.Equal(t, "see profiler", task.Notes)
	assert.Equal(t, domain.ColumnInProgress, task.ColumnID)
	assert.Equal(t, "2025-03-11", task.DueDate, "untouched fields are kept")
}

func TestEditCommand_Errors(t *testing.T) {
	c, _ := newTestContainer(t)

	_, _, err := run(t, c, "edit", "task-2")
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)

	_, _, err = run(t, c, "edit", "missing", "--title", "x")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestMoveCommand(t *testing.T) {
	c, _ := newTestContainer(t)

	out, _, err := run(t, c, "move", "in-progress", "0", "done", "0")
	require.NoError(t, err)
	assert.Equal(t, "Moved task-2 to done\n", out)

	b, err := c.Board.Snapshot()
	require.NoError(t, err)
	done := b.Columns[domain.ColumnDone].Tasks
	require.Len(t, done, 1)
	require.NotNil(t, done[0].CompletedAt)
	assert.True(t, done[0].CompletedAt.Equal(testNow))

	// Moving back out of done clears the completion time
	_, _, err = run(t, c, "move", "done", "0", "todo", "9")
	require.NoError(t, err)
	b, err = c.Board.Snapshot()
	require.NoError(t, err)
	todo := b.Columns[domain.ColumnTodo].Tasks
	require.Len(t, todo, 2)
	assert.Equal(t, "task-2", todo[1].ID)
	assert.Nil(t, todo[1].CompletedAt)
}

func TestMoveCommand_InPlace(t *testing.T) {
	c, _ := newTestContainer(t)

	out, _, err := run(t, c, "move", "todo", "0", "todo", "0")

	require.NoError(t, err)
	assert.Equal(t, "Nothing to move\n", out)
}

func TestMoveCommand_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		args    []string
		wantMsg string
	}{
		{name: "bad source index", args: []string{"move", "todo", "x", "done", "0"}, wantMsg: `invalid source index "x"`},
		{name: "bad dest index", args: []string{"move", "todo", "0", "done", "y"}, wantMsg: `invalid destination index "y"`},
		{name: "source out of range", args: []string{"move", "todo", "3", "done", "0"}, wantErr: domain.ErrIndexOutOfRange},
		{name: "unknown column", args: []string{"move", "todo", "0", "later", "0"}, wantErr: domain.ErrUnknownColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContainer(t)

			_, _, err := run(t, c, tt.args...)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}

func TestFindCommand(t *testing.T) {
	c, _ := newTestContainer(t)

	out, _, err := run(t, c, "find", "roadmap")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "task-3")
	assert.Contains(t, out, "Refine model monitoring roadmap")
	assert.NotContains(t, out, "task-1")

	out, _, err = run(t, c, "find", "zzzz")
	require.NoError(t, err)
	assert.Equal(t, "No matching tasks\n", out)
}
