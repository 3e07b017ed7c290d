// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/focusboard/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	localDir      string // Directory holding .focusboard.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/focusboard)
}

// NewLoader creates a new Loader reading the local config from localDir.
func NewLoader(localDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (local + global + defaults).
// Local config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	local, err := l.LoadLocal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()

	// Merge: default <- global <- local (later takes precedence)
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadLocal returns only the local configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	return l.loadFile(domain.LocalConfigPath(l.localDir))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	// section walks the keys of a table, reporting unknown keys and bad types.
	section := func(name string, value any, fields map[string]func(any) bool) {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("[%s] must be a table", name))
			return
		}
		for k, v := range m {
			set, known := fields[k]
			if !known {
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", name, k))
				continue
			}
			if !set(v) {
				warnings = append(warnings, fmt.Sprintf("invalid value for [%s].%s: %v", name, k, v))
			}
		}
	}

	for name, value := range raw {
		switch name {
		case "storage":
			s := &res.Storage
			section(name, value, map[string]func(any) bool{
				"backend":        setString(&s.Backend),
				"key":            setString(&s.Key),
				"path":           setString(&s.Path),
				"namespace":      setString(&s.Namespace),
				"redis_addr":     setString(&s.RedisAddr),
				"redis_db":       setInt(&s.RedisDB),
				"encryption_key": setString(&s.EncryptionKey),
			})
		case "board":
			b := &res.Board
			section(name, value, map[string]func(any) bool{
				"refresh_interval":   setString(&b.RefreshInterval),
				"done_archive_hours": setInt(&b.DoneArchiveHours),
			})
		case "timer":
			t := &res.Timer
			section(name, value, map[string]func(any) bool{
				"focus_minutes":      setInt(&t.FocusMinutes),
				"break_minutes":      setInt(&t.BreakMinutes),
				"long_break_minutes": setInt(&t.LongBreakMinutes),
				"long_break_every":   setInt(&t.LongBreakEvery),
			})
		case "log":
			section(name, value, map[string]func(any) bool{
				"level": setString(&res.Log.Level),
			})
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", name))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

func setString(dst *string) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		if ok {
			*dst = s
		}
		return ok
	}
}

// setInt accepts TOML integers and integral floats.
func setInt(dst *int) func(any) bool {
	return func(v any) bool {
		switch n := v.(type) {
		case int64:
			*dst = int(n)
			return true
		case float64:
			if n != float64(int64(n)) {
				return false
			}
			*dst = int(n)
			return true
		default:
			return false
		}
	}
}

// mergeConfigs merges two configs, with override taking precedence.
// Zero values in override mean "not set".
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)

	overrideString(&result.Storage.Backend, override.Storage.Backend)
	overrideString(&result.Storage.Key, override.Storage.Key)
	overrideString(&result.Storage.Path, override.Storage.Path)
	overrideString(&result.Storage.Namespace, override.Storage.Namespace)
	overrideString(&result.Storage.RedisAddr, override.Storage.RedisAddr)
	overrideString(&result.Storage.EncryptionKey, override.Storage.EncryptionKey)
	overrideInt(&result.Storage.RedisDB, override.Storage.RedisDB)

	overrideString(&result.Board.RefreshInterval, override.Board.RefreshInterval)
	overrideInt(&result.Board.DoneArchiveHours, override.Board.DoneArchiveHours)

	overrideInt(&result.Timer.FocusMinutes, override.Timer.FocusMinutes)
	overrideInt(&result.Timer.BreakMinutes, override.Timer.BreakMinutes)
	overrideInt(&result.Timer.LongBreakMinutes, override.Timer.LongBreakMinutes)
	overrideInt(&result.Timer.LongBreakEvery, override.Timer.LongBreakEvery)

	overrideString(&result.Log.Level, override.Log.Level)

	return &result
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
