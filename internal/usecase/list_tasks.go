package usecase

import (
	"context"

	"github.com/runoshun/focusboard/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Column string // Optional column filter
}

// ColumnSummary describes one column of the board.
// Fields are ordered to minimize memory padding.
type ColumnSummary struct {
	Column        domain.Column
	TotalHours    float64 // Sum of all estimates in the column
	ArchivedCount int     // Done tasks older than the threshold
}

// ListTasksOutput contains the board grouped by column in display order.
type ListTasksOutput struct {
	Columns          []ColumnSummary
	DoneArchiveHours int
}

// ListTasks is the use case for showing the board.
type ListTasks struct {
	store domain.BoardStore
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.BoardStore, clock domain.Clock) *ListTasks {
	return &ListTasks{store: store, clock: clock}
}

// Execute returns the columns and their tasks.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	var only domain.ColumnID
	if in.Column != "" {
		id, err := domain.ParseColumnID(in.Column)
		if err != nil {
			return nil, err
		}
		only = id
	}

	board, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}

	archived := len(board.ArchivedTasks(uc.clock.Now()))
	out := &ListTasksOutput{DoneArchiveHours: board.DoneArchiveHours}
	for _, id := range board.ColumnOrder {
		if only != "" && id != only {
			continue
		}
		column := board.Columns[id]
		summary := ColumnSummary{Column: column, TotalHours: column.TotalHours()}
		if id == domain.ColumnDone {
			summary.ArchivedCount = archived
		}
		out.Columns = append(out.Columns, summary)
	}
	return out, nil
}
