package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/focusboard/internal/domain"
)

// ShowTimerSettingsInput contains the parameters for reading timer settings.
type ShowTimerSettingsInput struct{}

// ShowTimerSettingsOutput contains the stored timer settings.
type ShowTimerSettingsOutput struct {
	Settings domain.TimerSettings
}

// ShowTimerSettings is the use case for reading the focus timer settings.
type ShowTimerSettings struct {
	repo domain.TimerSettingsRepository
}

// NewShowTimerSettings creates a new ShowTimerSettings use case.
func NewShowTimerSettings(repo domain.TimerSettingsRepository) *ShowTimerSettings {
	return &ShowTimerSettings{repo: repo}
}

// Execute loads the settings.
func (uc *ShowTimerSettings) Execute(ctx context.Context, _ ShowTimerSettingsInput) (*ShowTimerSettingsOutput, error) {
	s, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load timer settings: %w", err)
	}
	return &ShowTimerSettingsOutput{Settings: s}, nil
}

// UpdateTimerSettingsInput contains the settings to change.
// Only non-nil fields are updated; values are clamped.
type UpdateTimerSettingsInput struct {
	FocusMinutes     *float64
	BreakMinutes     *float64
	LongBreakMinutes *float64
	LongBreakEvery   *float64
}

// UpdateTimerSettingsOutput contains the effective settings.
type UpdateTimerSettingsOutput struct {
	Settings domain.TimerSettings
	Changed  bool
}

// UpdateTimerSettings is the use case for changing the focus timer settings.
type UpdateTimerSettings struct {
	repo domain.TimerSettingsRepository
}

// NewUpdateTimerSettings creates a new UpdateTimerSettings use case.
func NewUpdateTimerSettings(repo domain.TimerSettingsRepository) *UpdateTimerSettings {
	return &UpdateTimerSettings{repo: repo}
}

// Execute merges the given fields into the stored settings and saves them.
func (uc *UpdateTimerSettings) Execute(ctx context.Context, in UpdateTimerSettingsInput) (*UpdateTimerSettingsOutput, error) {
	if in.FocusMinutes == nil && in.BreakMinutes == nil && in.LongBreakMinutes == nil && in.LongBreakEvery == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}

	current, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load timer settings: %w", err)
	}

	next := current
	if in.FocusMinutes != nil {
		next.FocusMinutes = domain.ClampMinutes(*in.FocusMinutes, current.FocusMinutes)
	}
	if in.BreakMinutes != nil {
		next.BreakMinutes = domain.ClampMinutes(*in.BreakMinutes, current.BreakMinutes)
	}
	if in.LongBreakMinutes != nil {
		next.LongBreakMinutes = domain.ClampMinutes(*in.LongBreakMinutes, current.LongBreakMinutes)
	}
	if in.LongBreakEvery != nil {
		next.LongBreakEvery = domain.ClampEvery(*in.LongBreakEvery, current.LongBreakEvery)
	}

	if next == current {
		return &UpdateTimerSettingsOutput{Settings: current}, nil
	}
	if err := uc.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("save timer settings: %w", err)
	}
	return &UpdateTimerSettingsOutput{Settings: next, Changed: true}, nil
}

// ResetTimerSettingsInput contains the parameters for discarding timer settings.
type ResetTimerSettingsInput struct{}

// ResetTimerSettingsOutput contains the settings in effect after the reset.
type ResetTimerSettingsOutput struct {
	Settings domain.TimerSettings
}

// ResetTimerSettings is the use case for discarding stored timer settings.
type ResetTimerSettings struct {
	repo domain.TimerSettingsRepository
}

// NewResetTimerSettings creates a new ResetTimerSettings use case.
func NewResetTimerSettings(repo domain.TimerSettingsRepository) *ResetTimerSettings {
	return &ResetTimerSettings{repo: repo}
}

// Execute clears the stored settings and returns the configured defaults.
func (uc *ResetTimerSettings) Execute(ctx context.Context, _ ResetTimerSettingsInput) (*ResetTimerSettingsOutput, error) {
	if err := uc.repo.Clear(ctx); err != nil {
		return nil, fmt.Errorf("reset timer settings: %w", err)
	}
	s, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load timer settings: %w", err)
	}
	return &ResetTimerSettingsOutput{Settings: s}, nil
}
