package usecase

import (
	"context"

	"github.com/runoshun/focusboard/internal/domain"
)

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct{}

// ExportTasksOutput contains one row per task in display order.
type ExportTasksOutput struct {
	Rows []domain.ExportRow
}

// ExportTasks is the use case for the flattened export projection.
type ExportTasks struct {
	store domain.BoardStore
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(store domain.BoardStore) *ExportTasks {
	return &ExportTasks{store: store}
}

// Execute flattens the board.
func (uc *ExportTasks) Execute(_ context.Context, _ ExportTasksInput) (*ExportTasksOutput, error) {
	board, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return &ExportTasksOutput{Rows: domain.ExportRows(board)}, nil
}
