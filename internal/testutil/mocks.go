// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/runoshun/focusboard/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// SeqIDGenerator is a test double for domain.IDGenerator returning task-1, task-2, ...
type SeqIDGenerator struct {
	Prefix string
	n      int
}

// NewID returns the next sequential id.
func (g *SeqIDGenerator) NewID() string {
	g.n++
	prefix := g.Prefix
	if prefix == "" {
		prefix = "task"
	}
	return fmt.Sprintf("%s-%d", prefix, g.n)
}

// MockKVStore is an in-memory domain.KVStore.
// Fields are ordered to minimize memory padding.
type MockKVStore struct {
	Data      map[string][]byte
	GetErr    error
	SetErr    error
	DeleteErr error
	SetCount  int
	mu        sync.Mutex
}

// Ensure MockKVStore implements domain.KVStore.
var _ domain.KVStore = (*MockKVStore)(nil)

// NewMockKVStore creates an empty MockKVStore.
func NewMockKVStore() *MockKVStore {
	return &MockKVStore{Data: make(map[string][]byte)}
}

// Get returns a copy of the stored value or nil if absent.
func (m *MockKVStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	v, ok := m.Data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value.
func (m *MockKVStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.SetCount++
	m.Data[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key.
func (m *MockKVStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Data, key)
	return nil
}

// Keys returns a snapshot of the stored data.
func (m *MockKVStore) Keys() map[string][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.Data)
}

// LogEntry is a single record captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) add(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

// HasLevel reports whether any entry was recorded at level.
func (m *MockLogger) HasLevel(level string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Entries {
		if e.Level == level {
			return true
		}
	}
	return false
}

// MockTimerSettingsRepository is a test double for domain.TimerSettingsRepository.
type MockTimerSettingsRepository struct {
	LoadErr  error
	SaveErr  error
	ClearErr error
	Settings domain.TimerSettings
	Saved    bool
	Cleared  bool
}

// Ensure MockTimerSettingsRepository implements domain.TimerSettingsRepository.
var _ domain.TimerSettingsRepository = (*MockTimerSettingsRepository)(nil)

// Load returns the configured settings.
func (m *MockTimerSettingsRepository) Load(_ context.Context) (domain.TimerSettings, error) {
	if m.LoadErr != nil {
		return domain.TimerSettings{}, m.LoadErr
	}
	return m.Settings, nil
}

// Save records the settings.
func (m *MockTimerSettingsRepository) Save(_ context.Context, s domain.TimerSettings) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Settings = s
	m.Saved = true
	return nil
}

// Clear restores the default settings.
func (m *MockTimerSettingsRepository) Clear(_ context.Context) error {
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.Settings = domain.DefaultTimerSettings()
	m.Cleared = true
	return nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitLocalErr     error
	InitGlobalErr    error
	InitConfig       *domain.Config
	LocalConfigInfo  domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitLocalCalled  bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		LocalConfigInfo: domain.ConfigInfo{
			Path: "/work/.focusboard.toml",
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path: "/home/test/.config/focusboard/config.toml",
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetLocalConfigInfo returns the configured local config info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitLocalConfig records the call and returns configured error.
func (m *MockConfigManager) InitLocalConfig(cfg *domain.Config) error {
	m.InitLocalCalled = true
	m.InitConfig = cfg
	return m.InitLocalErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitGlobalCalled = true
	m.InitConfig = cfg
	return m.InitGlobalErr
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Err    error
	Config *domain.Config
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config, or defaults when none is set.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}
