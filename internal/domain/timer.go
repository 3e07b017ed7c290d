package domain

import (
	"fmt"
	"math"
	"time"
)

// TimerMode is the phase of the focus timer.
type TimerMode string

const (
	TimerFocus     TimerMode = "focus"
	TimerBreak     TimerMode = "break"
	TimerLongBreak TimerMode = "longBreak"
)

// Display returns a human-readable representation of the mode.
func (m TimerMode) Display() string {
	switch m {
	case TimerFocus:
		return "Focus"
	case TimerBreak:
		return "Break"
	case TimerLongBreak:
		return "Long break"
	default:
		return string(m)
	}
}

// Limits of the timer settings.
const (
	MinTimerMinutes   = 1
	MaxTimerMinutes   = 90
	MinLongBreakEvery = 2
	MaxLongBreakEvery = 8
)

// TimerSettings configures the durations of the focus timer.
type TimerSettings struct {
	FocusMinutes     int `json:"focusMinutes" toml:"focus_minutes,omitempty"`
	BreakMinutes     int `json:"breakMinutes" toml:"break_minutes,omitempty"`
	LongBreakMinutes int `json:"longBreakMinutes" toml:"long_break_minutes,omitempty"`
	LongBreakEvery   int `json:"longBreakEvery" toml:"long_break_every,omitempty"`
}

// DefaultTimerSettings returns the classic 25/5/15 cycle with a long break every 4 sessions.
func DefaultTimerSettings() TimerSettings {
	return TimerSettings{
		FocusMinutes:     25,
		BreakMinutes:     5,
		LongBreakMinutes: 15,
		LongBreakEvery:   4,
	}
}

// ClampMinutes rounds v into [MinTimerMinutes, MaxTimerMinutes].
// Non-finite input returns fallback.
func ClampMinutes(v float64, fallback int) int {
	return clampInt(v, fallback, MinTimerMinutes, MaxTimerMinutes)
}

// ClampEvery rounds v into [MinLongBreakEvery, MaxLongBreakEvery].
// Non-finite input returns fallback.
func ClampEvery(v float64, fallback int) int {
	return clampInt(v, fallback, MinLongBreakEvery, MaxLongBreakEvery)
}

func clampInt(v float64, fallback, lo, hi int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return int(math.Min(float64(hi), math.Max(float64(lo), math.Round(v))))
}

// Normalize clamps every field, using fallback for the fields that cannot be clamped.
// Zero values are treated as unset and take the fallback.
func (s TimerSettings) Normalize(fallback TimerSettings) TimerSettings {
	pick := func(v, fb int, clamp func(float64, int) int) int {
		if v == 0 {
			return fb
		}
		return clamp(float64(v), fb)
	}
	return TimerSettings{
		FocusMinutes:     pick(s.FocusMinutes, fallback.FocusMinutes, ClampMinutes),
		BreakMinutes:     pick(s.BreakMinutes, fallback.BreakMinutes, ClampMinutes),
		LongBreakMinutes: pick(s.LongBreakMinutes, fallback.LongBreakMinutes, ClampMinutes),
		LongBreakEvery:   pick(s.LongBreakEvery, fallback.LongBreakEvery, ClampEvery),
	}
}

// Duration returns the length of a phase.
func (s TimerSettings) Duration(mode TimerMode) time.Duration {
	switch mode {
	case TimerBreak:
		return time.Duration(s.BreakMinutes) * time.Minute
	case TimerLongBreak:
		return time.Duration(s.LongBreakMinutes) * time.Minute
	default:
		return time.Duration(s.FocusMinutes) * time.Minute
	}
}

// FocusTimer is a countdown cycling between focus sessions and breaks.
// It holds no goroutines; callers drive it with Tick.
// Fields are ordered to minimize memory padding.
type FocusTimer struct {
	endAt     time.Time
	mode      TimerMode
	settings  TimerSettings
	remaining time.Duration
	sessions  int
	running   bool
}

// NewFocusTimer creates a stopped timer at the start of a focus session.
func NewFocusTimer(settings TimerSettings) *FocusTimer {
	settings = settings.Normalize(DefaultTimerSettings())
	return &FocusTimer{
		mode:      TimerFocus,
		settings:  settings,
		remaining: settings.Duration(TimerFocus),
	}
}

// Mode returns the current phase.
func (t *FocusTimer) Mode() TimerMode { return t.mode }

// Settings returns the active settings.
func (t *FocusTimer) Settings() TimerSettings { return t.settings }

// Sessions returns the number of finished focus sessions.
func (t *FocusTimer) Sessions() int { return t.sessions }

// Running reports whether the countdown is active.
func (t *FocusTimer) Running() bool { return t.running }

// Remaining returns the time left in the current phase, in whole seconds.
func (t *FocusTimer) Remaining() time.Duration { return t.remaining }

// Start resumes the countdown from the remaining time.
func (t *FocusTimer) Start(now time.Time) {
	if t.running {
		return
	}
	t.endAt = now.Add(t.remaining)
	t.running = true
}

// Pause stops the countdown, keeping the remaining time.
func (t *FocusTimer) Pause(now time.Time) {
	if !t.running {
		return
	}
	t.remaining = t.secondsLeft(now)
	t.running = false
}

// Reset stops the countdown and restores the full length of the current phase.
func (t *FocusTimer) Reset() {
	t.running = false
	t.remaining = t.settings.Duration(t.mode)
}

// Skip stops the countdown and jumps to the next phase.
// Skipping a focus phase counts as a finished session.
func (t *FocusTimer) Skip() {
	t.running = false
	t.advance()
}

// Tick updates the remaining time. When the countdown reaches zero the timer
// stops, moves to the next phase and Tick returns true.
func (t *FocusTimer) Tick(now time.Time) bool {
	if !t.running {
		return false
	}
	t.remaining = t.secondsLeft(now)
	if t.remaining > 0 {
		return false
	}
	t.running = false
	t.advance()
	return true
}

// UpdateSettings replaces the settings, clamping each field against the
// current values. A stopped timer restarts the current phase when a
// duration changed.
func (t *FocusTimer) UpdateSettings(s TimerSettings) {
	next := s.Normalize(t.settings)
	durationsChanged := next.FocusMinutes != t.settings.FocusMinutes ||
		next.BreakMinutes != t.settings.BreakMinutes ||
		next.LongBreakMinutes != t.settings.LongBreakMinutes
	t.settings = next
	if !t.running && durationsChanged {
		t.remaining = t.settings.Duration(t.mode)
	}
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
func (t *FocusTimer) Progress() float64 {
	total := t.settings.Duration(t.mode)
	if total == 0 {
		return 0
	}
	p := float64(total-t.remaining) / float64(total)
	return math.Min(1, math.Max(0, p))
}

func (t *FocusTimer) advance() {
	if t.mode == TimerFocus {
		t.sessions++
		if t.sessions%t.settings.LongBreakEvery == 0 {
			t.mode = TimerLongBreak
		} else {
			t.mode = TimerBreak
		}
	} else {
		t.mode = TimerFocus
	}
	t.remaining = t.settings.Duration(t.mode)
}

// secondsLeft rounds the time until endAt up to whole seconds.
func (t *FocusTimer) secondsLeft(now time.Time) time.Duration {
	left := t.endAt.Sub(now)
	if left <= 0 {
		return 0
	}
	secs := math.Ceil(left.Seconds())
	return time.Duration(secs) * time.Second
}

// FormatClock formats a duration as MM:SS.
func FormatClock(d time.Duration) string {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
