package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// KVStore is a key-value byte store holding persisted snapshots.
type KVStore interface {
	// Get returns the value stored under key. Returns nil, nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// BoardStore is the single source of truth for board state.
// Operations that reference unknown columns, tasks or indices leave the
// state unchanged and report changed=false instead of failing.
type BoardStore interface {
	// Hydrated reports whether the persisted state has been loaded.
	Hydrated() bool

	// Snapshot returns a deep copy of the current board.
	Snapshot() (Board, error)

	// AddTask appends a default task. Returns nil if the column is unknown.
	AddTask(ctx context.Context, columnID ColumnID) (*Task, error)

	// UpdateTask applies patch to the task with the given id.
	UpdateTask(ctx context.Context, taskID string, patch TaskPatch) (bool, error)

	// MoveTask moves a task between (or within) columns.
	MoveTask(ctx context.Context, source, dest ColumnID, sourceIndex, destIndex int) (bool, error)

	// RefreshDoneOrdering reapplies the done ordering rule at the current time.
	RefreshDoneOrdering(ctx context.Context) (bool, error)

	// SetDoneArchiveHours updates the archive threshold.
	SetDoneArchiveHours(ctx context.Context, hours float64) (bool, error)

	// ResetBoard replaces all columns with default content.
	ResetBoard(ctx context.Context) error
}

// TimerSettingsRepository persists focus timer settings.
type TimerSettingsRepository interface {
	// Load returns the stored settings, or defaults if none are stored.
	Load(ctx context.Context) (TimerSettings, error)

	// Save stores the settings.
	Save(ctx context.Context, s TimerSettings) error

	// Clear removes the stored settings so Load returns defaults again.
	Clear(ctx context.Context) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global + defaults).
	Load() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetLocalConfigInfo returns information about the local config file.
	GetLocalConfigInfo() ConfigInfo

	// InitGlobalConfig creates the global config file from the template.
	InitGlobalConfig(cfg *Config) error

	// InitLocalConfig creates the local config file from the template.
	InitLocalConfig(cfg *Config) error
}

// Logger writes diagnostic messages grouped by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// IDGenerator creates opaque unique task identifiers.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator implements IDGenerator with random (version 4) UUIDs.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
