package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/focusboard/internal/domain"
)

// ResetBoardInput contains the parameters for resetting the board.
type ResetBoardInput struct {
	Confirmed bool // Must be true; resetting discards every task
}

// ResetBoardOutput contains the result of resetting the board.
type ResetBoardOutput struct {
	Board domain.Board // The fresh board
}

// ResetBoard is the use case for restoring the default board content.
type ResetBoard struct {
	store domain.BoardStore
}

// NewResetBoard creates a new ResetBoard use case.
func NewResetBoard(store domain.BoardStore) *ResetBoard {
	return &ResetBoard{store: store}
}

// Execute replaces all columns with defaults. The archive threshold is kept.
func (uc *ResetBoard) Execute(ctx context.Context, in ResetBoardInput) (*ResetBoardOutput, error) {
	if !in.Confirmed {
		return nil, domain.ErrResetNotConfirmed
	}
	if err := uc.store.ResetBoard(ctx); err != nil {
		return nil, fmt.Errorf("reset board: %w", err)
	}
	board, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return &ResetBoardOutput{Board: board}, nil
}
