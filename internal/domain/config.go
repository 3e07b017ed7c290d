package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// AppName is used for config and data directory names.
const AppName = "focusboard"

// ConfigFileName is the name of the global configuration file.
const ConfigFileName = "config.toml"

// LocalConfigFileName is the name of the per-directory configuration file.
const LocalConfigFileName = ".focusboard.toml"

// DefaultStorageKey is the key the board snapshot is stored under.
const DefaultStorageKey = "focusboard"

// DefaultRefreshInterval is how often the done column ordering is refreshed.
const DefaultRefreshInterval = time.Minute

// Storage backends.
const (
	BackendFile   = "file"
	BackendGit    = "git"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Storage  StorageConfig `toml:"storage"`
	Board    BoardConfig   `toml:"board"`
	Log      LogConfig     `toml:"log"`
	Timer    TimerSettings `toml:"timer"`
}

// StorageConfig holds snapshot storage settings from [storage] section.
type StorageConfig struct {
	Backend       string `toml:"backend,omitempty"`        // file (default), git, redis, sqlite
	Key           string `toml:"key,omitempty"`            // Snapshot key (default: focusboard)
	Path          string `toml:"path,omitempty"`           // Directory (file), repository (git) or DSN (sqlite)
	Namespace     string `toml:"namespace,omitempty"`      // Ref namespace for the git backend
	RedisAddr     string `toml:"redis_addr,omitempty"`     // host:port for the redis backend
	EncryptionKey string `toml:"encryption_key,omitempty"` // 64 hex characters enables AES-256-GCM at rest
	RedisDB       int    `toml:"redis_db,omitempty"`
}

// BoardConfig holds board settings from [board] section.
type BoardConfig struct {
	RefreshInterval  string `toml:"refresh_interval,omitempty"`   // Go duration, e.g. "1m"
	DoneArchiveHours int    `toml:"done_archive_hours,omitempty"` // Threshold for fresh boards
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when no file is present.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:   BackendFile,
			Key:       DefaultStorageKey,
			Namespace: AppName,
			RedisAddr: "localhost:6379",
		},
		Board: BoardConfig{
			RefreshInterval:  DefaultRefreshInterval.String(),
			DoneArchiveHours: DefaultDoneArchiveHours,
		},
		Log:   LogConfig{Level: "info"},
		Timer: DefaultTimerSettings(),
	}
}

// RefreshEvery parses the refresh interval.
func (b BoardConfig) RefreshEvery() (time.Duration, error) {
	if b.RefreshInterval == "" {
		return DefaultRefreshInterval, nil
	}
	d, err := time.ParseDuration(b.RefreshInterval)
	if err != nil || d <= 0 {
		return 0, ErrInvalidRefreshPeriod
	}
	return d, nil
}

// TimerSettingsKey returns the key timer settings are stored under.
func (s StorageConfig) TimerSettingsKey() string {
	return s.Key + ":timer"
}

// GlobalConfigDir returns the global configuration directory.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// DataDir returns the directory for board data and logs.
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppName)
}

// LocalConfigPath returns the path of the local config file in dir.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// ConfigInfo holds information about a config file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// templateData holds data for rendering the config template.
type templateData struct {
	Backend          string
	Key              string
	Namespace        string
	RedisAddr        string
	RefreshInterval  string
	LogLevel         string
	Timer            TimerSettings
	DoneArchiveHours int
}

// RenderConfigTemplate renders a commented config file from cfg.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		Backend:          cfg.Storage.Backend,
		Key:              cfg.Storage.Key,
		Namespace:        cfg.Storage.Namespace,
		RedisAddr:        cfg.Storage.RedisAddr,
		RefreshInterval:  cfg.Board.RefreshInterval,
		LogLevel:         cfg.Log.Level,
		Timer:            cfg.Timer,
		DoneArchiveHours: cfg.Board.DoneArchiveHours,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
