package domain

import "errors"

// Domain errors.
var (
	ErrNotHydrated          = errors.New("board not loaded yet")
	ErrUnknownColumn        = errors.New("unknown column (expected todo, in-progress, done or backlog)")
	ErrTaskNotFound         = errors.New("task not found")
	ErrIndexOutOfRange      = errors.New("task index out of range")
	ErrInvalidDueDate       = errors.New("invalid due date (expected yyyy-MM-dd)")
	ErrNoFieldsToUpdate     = errors.New("no fields to update")
	ErrUnknownBackend       = errors.New("unknown storage backend")
	ErrUnknownExportFormat  = errors.New("unknown export format")
	ErrResetNotConfirmed    = errors.New("reset discards every task; pass --yes to confirm")
	ErrInvalidRefreshPeriod = errors.New("refresh interval must be a positive duration")
	ErrConfigExists         = errors.New("config file already exists")
	ErrSnapshotDiscarded    = errors.New("stored snapshot is unusable")
)
