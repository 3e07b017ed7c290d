package usecase

import (
	"context"

	"github.com/runoshun/focusboard/internal/domain"
)

// ListArchivedInput contains the parameters for listing archived tasks.
type ListArchivedInput struct{}

// ListArchivedOutput contains done tasks past the archive threshold.
type ListArchivedOutput struct {
	Tasks []domain.Task
	Hours int // Threshold the tasks were selected with
}

// ListArchived is the use case for the archive view.
type ListArchived struct {
	store domain.BoardStore
	clock domain.Clock
}

// NewListArchived creates a new ListArchived use case.
func NewListArchived(store domain.BoardStore, clock domain.Clock) *ListArchived {
	return &ListArchived{store: store, clock: clock}
}

// Execute returns the done tasks completed at least the threshold ago.
// The selection does not depend on the order of the done column.
func (uc *ListArchived) Execute(_ context.Context, _ ListArchivedInput) (*ListArchivedOutput, error) {
	board, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return &ListArchivedOutput{
		Tasks: board.ArchivedTasks(uc.clock.Now()),
		Hours: board.DoneArchiveHours,
	}, nil
}
