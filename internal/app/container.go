// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/focusboard/internal/board"
	"github.com/runoshun/focusboard/internal/domain"
	"github.com/runoshun/focusboard/internal/infra/config"
	"github.com/runoshun/focusboard/internal/infra/logging"
	"github.com/runoshun/focusboard/internal/refresh"
	"github.com/runoshun/focusboard/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir string // Directory the local config and relative storage paths are resolved from
	DataDir string // Directory for board data and logs
}

// newConfig creates a new Config for the given working directory.
func newConfig(dir string) Config {
	return Config{
		WorkDir: dir,
		DataDir: defaultDataDir(),
	}
}

// defaultDataDir returns $XDG_DATA_HOME/focusboard or ~/.local/share/focusboard.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DataDir(dataHome)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	KV            domain.KVStore
	TimerSettings domain.TimerSettingsRepository
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Log           domain.Logger

	// Pointer fields
	Board     *board.Store
	AppConfig *domain.Config
	Logger    *slog.Logger
	fileLog   *logging.Logger
	closers   []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// The board is not hydrated; callers run Board.Hydrate before using it.
func New(ctx context.Context, dir string) (*Container, error) {
	cfg := newConfig(dir)

	configLoader := config.NewLoader(cfg.WorkDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(appConfig.Log.Level),
	}))
	fileLog := logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level))

	kv, closer, err := openKVStore(ctx, appConfig.Storage, cfg, fileLog)
	if err != nil {
		_ = fileLog.Close()
		return nil, err
	}
	logger.Debug("storage opened", "backend", appConfig.Storage.Backend, "key", appConfig.Storage.Key)

	c := NewWithDeps(cfg, appConfig, kv, domain.RealClock{}, domain.UUIDGenerator{}, fileLog, logger)
	c.ConfigLoader = configLoader
	c.ConfigManager = config.NewManager(cfg.WorkDir)
	c.fileLog = fileLog
	if closer != nil {
		c.closers = append(c.closers, closer)
	}
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, kv domain.KVStore, clock domain.Clock, ids domain.IDGenerator, log domain.Logger, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if log == nil {
		log = domain.NopLogger{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	persister := board.NewSnapshotPersister(kv, appConfig.Storage.Key, log)
	store := board.New(persister, clock, ids, log).
		WithDefaultArchiveHours(appConfig.Board.DoneArchiveHours)
	timerSettings := board.NewTimerSettingsStore(kv, appConfig.Storage.TimerSettingsKey(), appConfig.Timer, log)

	return &Container{
		KV:            kv,
		TimerSettings: timerSettings,
		Clock:         clock,
		Log:           log,
		Board:         store,
		AppConfig:     appConfig,
		Logger:        logger,
		Config:        cfg,
	}
}

// LogPath returns the path of the file log, or "" when file logging is disabled.
func (c *Container) LogPath() string {
	if c.fileLog == nil {
		return ""
	}
	return c.fileLog.Path()
}

// MirrorLog copies file log entries to w.
func (c *Container) MirrorLog(w io.Writer) {
	if c.fileLog != nil {
		c.fileLog.WithMirror(w)
	}
}

// Close releases backend connections and the log file.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i].Close())
	}
	c.closers = nil
	if c.fileLog != nil {
		errs = append(errs, c.fileLog.Close())
	}
	return errors.Join(errs...)
}

// NewRefresher returns a refresher re-sorting the done column at the configured interval.
func (c *Container) NewRefresher() (*refresh.Refresher, error) {
	interval, err := c.AppConfig.Board.RefreshEvery()
	if err != nil {
		return nil, err
	}
	return refresh.New(c.Board, interval, c.Log)
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Board)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Board)
}

// MoveTaskUseCase returns a new MoveTask use case.
func (c *Container) MoveTaskUseCase() *usecase.MoveTask {
	return usecase.NewMoveTask(c.Board)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Board, c.Clock)
}

// ListArchivedUseCase returns a new ListArchived use case.
func (c *Container) ListArchivedUseCase() *usecase.ListArchived {
	return usecase.NewListArchived(c.Board, c.Clock)
}

// SetArchiveHoursUseCase returns a new SetArchiveHours use case.
func (c *Container) SetArchiveHoursUseCase() *usecase.SetArchiveHours {
	return usecase.NewSetArchiveHours(c.Board)
}

// ResetBoardUseCase returns a new ResetBoard use case.
func (c *Container) ResetBoardUseCase() *usecase.ResetBoard {
	return usecase.NewResetBoard(c.Board)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Board)
}

// FindTasksUseCase returns a new FindTasks use case.
func (c *Container) FindTasksUseCase() *usecase.FindTasks {
	return usecase.NewFindTasks(c.Board)
}

// ShowTimerSettingsUseCase returns a new ShowTimerSettings use case.
func (c *Container) ShowTimerSettingsUseCase() *usecase.ShowTimerSettings {
	return usecase.NewShowTimerSettings(c.TimerSettings)
}

// UpdateTimerSettingsUseCase returns a new UpdateTimerSettings use case.
func (c *Container) UpdateTimerSettingsUseCase() *usecase.UpdateTimerSettings {
	return usecase.NewUpdateTimerSettings(c.TimerSettings)
}

// ResetTimerSettingsUseCase returns a new ResetTimerSettings use case.
func (c *Container) ResetTimerSettingsUseCase() *usecase.ResetTimerSettings {
	return usecase.NewResetTimerSettings(c.TimerSettings)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}
