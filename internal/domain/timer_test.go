package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClampMinutes(t *testing.T) {
	assert.Equal(t, 1, ClampMinutes(0, 25))
	assert.Equal(t, 90, ClampMinutes(500, 25))
	assert.Equal(t, 13, ClampMinutes(12.5, 25))
	assert.Equal(t, 25, ClampMinutes(math.NaN(), 25))
	assert.Equal(t, 2, ClampEvery(1, 4))
	assert.Equal(t, 8, ClampEvery(20, 4))
	assert.Equal(t, 4, ClampEvery(math.Inf(-1), 4))
}

func TestTimerSettings_Normalize(t *testing.T) {
	got := TimerSettings{FocusMinutes: 200, LongBreakEvery: 1}.Normalize(DefaultTimerSettings())

	assert.Equal(t, TimerSettings{FocusMinutes: 90, BreakMinutes: 5, LongBreakMinutes: 15, LongBreakEvery: 2}, got)
}

func TestFocusTimer_CountdownAndPause(t *testing.T) {
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	timer := NewFocusTimer(TimerSettings{FocusMinutes: 1, BreakMinutes: 1, LongBreakMinutes: 2, LongBreakEvery: 2})

	assert.Equal(t, TimerFocus, timer.Mode())
	assert.Equal(t, time.Minute, timer.Remaining())
	assert.False(t, timer.Tick(start), "stopped timer ignores ticks")

	timer.Start(start)
	assert.True(t, timer.Running())
	assert.False(t, timer.Tick(start.Add(20*time.Second+300*time.Millisecond)))
	assert.Equal(t, 40*time.Second, timer.Remaining(), "rounded up to whole seconds")
	assert.Equal(t, "00:40", FormatClock(timer.Remaining()))

	timer.Pause(start.Add(30 * time.Second))
	assert.False(t, timer.Running())
	assert.Equal(t, 30*time.Second, timer.Remaining())
	assert.InDelta(t, 0.5, timer.Progress(), 1e-9)

	// Paused time does not count.
	later := start.Add(10 * time.Minute)
	timer.Start(later)
	assert.False(t, timer.Tick(later.Add(29*time.Second)))
	assert.True(t, timer.Tick(later.Add(30*time.Second)))

	assert.False(t, timer.Running())
	assert.Equal(t, TimerBreak, timer.Mode())
	assert.Equal(t, 1, timer.Sessions())
	assert.Equal(t, time.Minute, timer.Remaining())
}

func TestFocusTimer_SkipCycle(t *testing.T) {
	timer := NewFocusTimer(TimerSettings{FocusMinutes: 25, BreakMinutes: 5, LongBreakMinutes: 15, LongBreakEvery: 2})

	timer.Skip()
	assert.Equal(t, TimerBreak, timer.Mode())
	timer.Skip()
	assert.Equal(t, TimerFocus, timer.Mode())
	timer.Skip()
	assert.Equal(t, TimerLongBreak, timer.Mode(), "every second session earns a long break")
	assert.Equal(t, 15*time.Minute, timer.Remaining())
	assert.Equal(t, 2, timer.Sessions())
}

func TestFocusTimer_ResetAndSettings(t *testing.T) {
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	timer := NewFocusTimer(DefaultTimerSettings())

	timer.Start(start)
	timer.Tick(start.Add(time.Minute))
	timer.UpdateSettings(TimerSettings{FocusMinutes: 50})
	assert.Equal(t, 24*time.Minute, timer.Remaining(), "running timer keeps its countdown")
	assert.Equal(t, 50, timer.Settings().FocusMinutes)
	assert.Equal(t, 5, timer.Settings().BreakMinutes)

	timer.Reset()
	assert.False(t, timer.Running())
	assert.Equal(t, 50*time.Minute, timer.Remaining())

	timer.UpdateSettings(TimerSettings{FocusMinutes: 10})
	assert.Equal(t, 10*time.Minute, timer.Remaining(), "stopped timer restarts the phase")

	timer.UpdateSettings(TimerSettings{LongBreakEvery: 6})
	assert.Equal(t, 6, timer.Settings().LongBreakEvery)
	assert.Equal(t, 10*time.Minute, timer.Remaining())
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "25:00", FormatClock(25*time.Minute))
	assert.Equal(t, "00:00", FormatClock(-time.Second))
	assert.Equal(t, "90:05", FormatClock(90*time.Minute+5*time.Second))
}
