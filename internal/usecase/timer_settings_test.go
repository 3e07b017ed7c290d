package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focusboard/internal/domain"
	"github.com/runoshun/focusboard/internal/testutil"
	"github.com/runoshun/focusboard/internal/usecase"
)

func TestShowTimerSettings_Execute(t *testing.T) {
	repo := &testutil.MockTimerSettingsRepository{Settings: domain.DefaultTimerSettings()}

	out, err := usecase.NewShowTimerSettings(repo).Execute(context.Background(), usecase.ShowTimerSettingsInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTimerSettings(), out.Settings)
}

func TestShowTimerSettings_LoadError(t *testing.T) {
	repo := &testutil.MockTimerSettingsRepository{LoadErr: errors.New("offline")}

	_, err := usecase.NewShowTimerSettings(repo).Execute(context.Background(), usecase.ShowTimerSettingsInput{})

	assert.ErrorContains(t, err, "offline")
}

func TestUpdateTimerSettings_Execute(t *testing.T) {
	tests := []struct {
		name        string
		in          usecase.UpdateTimerSettingsInput
		want        domain.TimerSettings
		wantChanged bool
	}{
		{
			name:        "focus minutes",
			in:          usecase.UpdateTimerSettingsInput{FocusMinutes: floatPtr(50)},
			want:        domain.TimerSettings{FocusMinutes: 50, BreakMinutes: 5, LongBreakMinutes: 15, LongBreakEvery: 4},
			wantChanged: true,
		},
		{
			name:        "clamps to limits",
			in:          usecase.UpdateTimerSettingsInput{BreakMinutes: floatPtr(500), LongBreakEvery: floatPtr(1)},
			want:        domain.TimerSettings{FocusMinutes: 25, BreakMinutes: 90, LongBreakMinutes: 15, LongBreakEvery: 2},
			wantChanged: true,
		},
		{
			name: "unchanged",
			in:   usecase.UpdateTimerSettingsInput{LongBreakMinutes: floatPtr(15)},
			want: domain.DefaultTimerSettings(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			repo := &testutil.MockTimerSettingsRepository{Settings: domain.DefaultTimerSettings()}

			// Execute
			out, err := usecase.NewUpdateTimerSettings(repo).Execute(context.Background(), tt.in)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Settings)
			assert.Equal(t, tt.wantChanged, out.Changed)
			assert.Equal(t, tt.wantChanged, repo.Saved)
		})
	}
}

func TestUpdateTimerSettings_NoFields(t *testing.T) {
	repo := &testutil.MockTimerSettingsRepository{Settings: domain.DefaultTimerSettings()}

	_, err := usecase.NewUpdateTimerSettings(repo).Execute(context.Background(), usecase.UpdateTimerSettingsInput{})

	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
}

func TestResetTimerSettings(t *testing.T) {
	repo := &testutil.MockTimerSettingsRepository{Settings: domain.TimerSettings{FocusMinutes: 60, BreakMinutes: 10, LongBreakMinutes: 20, LongBreakEvery: 3}}

	out, err := usecase.NewResetTimerSettings(repo).Execute(context.Background(), usecase.ResetTimerSettingsInput{})

	require.NoError(t, err)
	assert.True(t, repo.Cleared)
	assert.Equal(t, domain.DefaultTimerSettings(), out.Settings)
}

func TestResetTimerSettings_ClearError(t *testing.T) {
	repo := &testutil.MockTimerSettingsRepository{ClearErr: errors.New("offline")}

	_, err := usecase.NewResetTimerSettings(repo).Execute(context.Background(), usecase.ResetTimerSettingsInput{})

	assert.ErrorContains(t, err, "offline")
}
