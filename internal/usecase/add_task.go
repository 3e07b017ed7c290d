package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/focusboard/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Fields TaskFields // Optional values replacing the defaults
	Column string     // Column id (required)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task domain.Task // The created task
}

// AddTask is the use case for adding a task to a column.
type AddTask struct {
	store domain.BoardStore
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.BoardStore) *AddTask {
	return &AddTask{store: store}
}

// Execute appends a task with default values and applies the given fields.
func (uc *AddTask) Execute(ctx context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	columnID, err := domain.ParseColumnID(in.Column)
	if err != nil {
		return nil, err
	}

	// Validate before adding so a bad field does not leave a default task behind
	patch := in.Fields.Patch()
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	task, err := uc.store.AddTask(ctx, columnID)
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrUnknownColumn
	}

	if len(patch) == 0 {
		return &AddTaskOutput{Task: *task}, nil
	}

	if _, err := uc.store.UpdateTask(ctx, task.ID, patch); err != nil {
		return nil, fmt.Errorf("update new task: %w", err)
	}
	board, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	updated, ok := board.FindTask(task.ID)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &AddTaskOutput{Task: updated}, nil
}
