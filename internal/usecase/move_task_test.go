package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focusboard/internal/domain"
	"github.com/runoshun/focusboard/internal/usecase"
)

func drag(src string, srcIndex int, dst string, dstIndex int) domain.DragEnd {
	return domain.DragEnd{SourceColumnID: src, SourceIndex: srcIndex, DestColumnID: &dst, DestIndex: dstIndex}
}

func TestMoveTask_IntoDone(t *testing.T) {
	// Setup
	store, _, _ := newStore(t)
	uc := usecase.NewMoveTask(store)

	// Execute
	out, err := uc.Execute(context.Background(), usecase.MoveTaskInput{Drag: drag("todo", 0, "done", 0)})

	// Assert
	require.NoError(t, err)
	assert.True(t, out.Moved)
	require.NotNil(t, out.Task)
	assert.Equal(t, "task-1", out.Task.ID)
	assert.Equal(t, domain.ColumnDone, out.Task.ColumnID)
	require.NotNil(t, out.Task.CompletedAt)
	assert.Equal(t, testNow, *out.Task.CompletedAt)
}

func TestMoveTask_OutOfDoneClearsCompletion(t *testing.T) {
	store, _, clock := newStore(t)
	uc := usecase.NewMoveTask(store)
	_, err := uc.Execute(context.Background(), usecase.MoveTaskInput{Drag: drag("todo", 0, "done", 0)})
	require.NoError(t, err)
	clock.Advance(time.Hour)

	out, err := uc.Execute(context.Background(), usecase.MoveTaskInput{Drag: drag("done", 0, "backlog", 99)})

	require.NoError(t, err)
	assert.Nil(t, out.Task.CompletedAt)
	b, err := store.Snapshot()
	require.NoError(t, err)
	backlog := b.Columns[domain.ColumnBacklog].Tasks
	assert.Equal(t, "task-1", backlog[len(backlog)-1].ID, "destination index clamps to the end")
}

func TestMoveTask_Noop(t *testing.T) {
	tests := []struct {
		name string
		drag domain.DragEnd
	}{
		{name: "cancelled", drag: domain.DragEnd{SourceColumnID: "todo"}},
		{name: "same place", drag: drag("todo", 0, "todo", 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, kv, _ := newStore(t)
			saves := kv.SetCount

			out, err := usecase.NewMoveTask(store).Execute(context.Background(), usecase.MoveTaskInput{Drag: tt.drag})

			require.NoError(t, err)
			assert.False(t, out.Moved)
			assert.Nil(t, out.Task)
			assert.Equal(t, saves, kv.SetCount)
		})
	}
}

func TestMoveTask_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		drag    domain.DragEnd
	}{
		{name: "unknown source", drag: drag("later", 0, "todo", 0), wantErr: domain.ErrUnknownColumn},
		{name: "unknown destination", drag: drag("todo", 0, "trash", 0), wantErr: domain.ErrUnknownColumn},
		{name: "source index past end", drag: drag("todo", 5, "done", 0), wantErr: domain.ErrIndexOutOfRange},
		{name: "negative source index", drag: drag("todo", -1, "done", 0), wantErr: domain.ErrIndexOutOfRange},
		{name: "empty source column", drag: drag("done", 0, "todo", 0), wantErr: domain.ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _, _ := newStore(t)

			_, err := usecase.NewMoveTask(store).Execute(context.Background(), usecase.MoveTaskInput{Drag: tt.drag})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
