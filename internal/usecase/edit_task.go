package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/focusboard/internal/domain"
)

// EditTaskInput contains the parameters for editing a task.
// Only non-nil fields are updated.
type EditTaskInput struct {
	TaskID string     // Task ID to edit (required)
	Fields TaskFields // Fields to change
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task domain.Task // The updated task
}

// EditTask is the use case for editing an existing task.
type EditTask struct {
	store domain.BoardStore
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(store domain.BoardStore) *EditTask {
	return &EditTask{store: store}
}

// Execute applies the given fields to the task.
func (uc *EditTask) Execute(ctx context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	patch := in.Fields.Patch()
	if len(patch) == 0 {
		return nil, domain.ErrNoFieldsToUpdate
	}

	changed, err := uc.store.UpdateTask(ctx, in.TaskID, patch)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if !changed {
		return nil, domain.ErrTaskNotFound
	}

	board, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	task, ok := board.FindTask(in.TaskID)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &EditTaskOutput{Task: task}, nil
}
