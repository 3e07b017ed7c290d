package board

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/runoshun/focusboard/internal/domain"
)

// TimerSettingsStore persists focus timer settings as JSON under one key.
type TimerSettingsStore struct {
	kv       domain.KVStore
	logger   domain.Logger
	key      string
	defaults domain.TimerSettings
}

// Ensure TimerSettingsStore implements domain.TimerSettingsRepository.
var _ domain.TimerSettingsRepository = (*TimerSettingsStore)(nil)

// storedTimerSettings accepts partial documents; missing fields use defaults.
type storedTimerSettings struct {
	FocusMinutes     *float64 `json:"focusMinutes"`
	BreakMinutes     *float64 `json:"breakMinutes"`
	LongBreakMinutes *float64 `json:"longBreakMinutes"`
	LongBreakEvery   *float64 `json:"longBreakEvery"`
}

// NewTimerSettingsStore creates a store. defaults fill in absent or invalid values.
func NewTimerSettingsStore(kv domain.KVStore, key string, defaults domain.TimerSettings, logger domain.Logger) *TimerSettingsStore {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &TimerSettingsStore{
		kv:       kv,
		key:      key,
		defaults: defaults.Normalize(domain.DefaultTimerSettings()),
		logger:   logger,
	}
}

// Load returns the stored settings clamped to their valid ranges.
func (s *TimerSettingsStore) Load(ctx context.Context) (domain.TimerSettings, error) {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return domain.TimerSettings{}, fmt.Errorf("read timer settings: %w", err)
	}
	if data == nil {
		return s.defaults, nil
	}

	var stored storedTimerSettings
	if err := json.Unmarshal(data, &stored); err != nil {
		s.logger.Warn("timer", "ignoring unreadable timer settings: "+err.Error())
		return s.defaults, nil
	}

	d := s.defaults
	return domain.TimerSettings{
		FocusMinutes:     domain.ClampMinutes(valueOr(stored.FocusMinutes, d.FocusMinutes), d.FocusMinutes),
		BreakMinutes:     domain.ClampMinutes(valueOr(stored.BreakMinutes, d.BreakMinutes), d.BreakMinutes),
		LongBreakMinutes: domain.ClampMinutes(valueOr(stored.LongBreakMinutes, d.LongBreakMinutes), d.LongBreakMinutes),
		LongBreakEvery:   domain.ClampEvery(valueOr(stored.LongBreakEvery, d.LongBreakEvery), d.LongBreakEvery),
	}, nil
}

// Save stores the settings after clamping them.
func (s *TimerSettingsStore) Save(ctx context.Context, settings domain.TimerSettings) error {
	settings = settings.Normalize(s.defaults)
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode timer settings: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("write timer settings: %w", err)
	}
	return nil
}

// Clear deletes the stored settings.
func (s *TimerSettingsStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("delete timer settings: %w", err)
	}
	return nil
}

func valueOr(v *float64, fallback int) float64 {
	if v == nil {
		return float64(fallback)
	}
	return *v
}
