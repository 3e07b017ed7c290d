package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/focusboard/internal/domain"
)

// MoveTaskInput contains the result of a drag gesture.
type MoveTaskInput struct {
	Drag domain.DragEnd
}

// MoveTaskOutput contains the result of moving a task.
type MoveTaskOutput struct {
	Task  *domain.Task // The moved task; nil for a no-op drop
	Moved bool         // False when the drop was cancelled or in place
}

// MoveTask is the use case for applying a drag-end to the board.
type MoveTask struct {
	store domain.BoardStore
}

// NewMoveTask creates a new MoveTask use case.
func NewMoveTask(store domain.BoardStore) *MoveTask {
	return &MoveTask{store: store}
}

// Execute moves the dragged task. Cancelled and in-place drops do nothing.
// Unknown columns and source indices outside the column are reported as errors.
func (uc *MoveTask) Execute(ctx context.Context, in MoveTaskInput) (*MoveTaskOutput, error) {
	drag := in.Drag
	if drag.IsNoop() {
		return &MoveTaskOutput{}, nil
	}

	source, err := domain.ParseColumnID(drag.SourceColumnID)
	if err != nil {
		return nil, err
	}
	dest, err := domain.ParseColumnID(*drag.DestColumnID)
	if err != nil {
		return nil, err
	}

	board, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	tasks := board.Columns[source].Tasks
	if drag.SourceIndex < 0 || drag.SourceIndex >= len(tasks) {
		return nil, fmt.Errorf("%w: %s has %d tasks", domain.ErrIndexOutOfRange, source, len(tasks))
	}
	taskID := tasks[drag.SourceIndex].ID

	moved, err := uc.store.MoveTask(ctx, source, dest, drag.SourceIndex, drag.DestIndex)
	if err != nil {
		return nil, fmt.Errorf("move task: %w", err)
	}
	if !moved {
		return &MoveTaskOutput{}, nil
	}

	board, err = uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	task, ok := board.FindTask(taskID)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &MoveTaskOutput{Task: &task, Moved: true}, nil
}
