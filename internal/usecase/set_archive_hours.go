package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/focusboard/internal/domain"
)

// SetArchiveHoursInput contains the new archive threshold.
type SetArchiveHoursInput struct {
	Hours float64 // Rounded and clamped to at least 1
}

// SetArchiveHoursOutput contains the effective threshold.
type SetArchiveHoursOutput struct {
	Hours   int  // Threshold after clamping
	Changed bool // False when the threshold was already Hours
}

// SetArchiveHours is the use case for changing how long done tasks stay recent.
type SetArchiveHours struct {
	store domain.BoardStore
}

// NewSetArchiveHours creates a new SetArchiveHours use case.
func NewSetArchiveHours(store domain.BoardStore) *SetArchiveHours {
	return &SetArchiveHours{store: store}
}

// Execute updates the threshold and reorders the done column.
func (uc *SetArchiveHours) Execute(ctx context.Context, in SetArchiveHoursInput) (*SetArchiveHoursOutput, error) {
	changed, err := uc.store.SetDoneArchiveHours(ctx, in.Hours)
	if err != nil {
		return nil, fmt.Errorf("set archive hours: %w", err)
	}
	board, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return &SetArchiveHoursOutput{Hours: board.DoneArchiveHours, Changed: changed}, nil
}
