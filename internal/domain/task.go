// Package domain contains core business entities and interfaces.
package domain

import (
	"math"
	"slices"
	"strings"
	"time"
)

// DateLayout is the format of task due dates (calendar date, no time).
const DateLayout = "2006-01-02"

// DefaultTaskTitle is the title given to tasks created without a dialog.
const DefaultTaskTitle = "New task"

// Task represents a single card on the board.
// Fields are ordered to minimize memory padding.
type Task struct {
	CompletedAt  *time.Time `json:"completedAt,omitempty"` // Set iff the task is in the done column
	ID           string     `json:"id"`                    // Opaque, immutable
	Title        string     `json:"title"`
	DueDate      string     `json:"dueDate,omitempty"` // yyyy-MM-dd, empty when unset
	Complexity   string     `json:"complexity,omitempty"`
	JiraLink     string     `json:"jiraLink,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	ColumnID     ColumnID   `json:"columnId"` // Mirrors the key of the column holding the task
	Tags         []string   `json:"tags"`     // Insertion order preserved, duplicates allowed
	TimeEstimate float64    `json:"timeEstimate"`
}

// NewTask builds a task with default field values for the given column.
// Tasks created directly in the done column are stamped as completed.
func NewTask(id string, columnID ColumnID, now time.Time) Task {
	t := Task{
		ID:           id,
		Title:        DefaultTaskTitle,
		DueDate:      FormatDate(now.AddDate(0, 0, 2)),
		TimeEstimate: 1,
		Tags:         []string{},
		ColumnID:     columnID,
	}
	if columnID == ColumnDone {
		t.CompletedAt = timePtr(now)
	}
	return t
}

// IsCompleted returns true if the task carries a completion time.
func (t *Task) IsCompleted() bool {
	return t.CompletedAt != nil
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	out := t
	if t.Tags != nil {
		out.Tags = slices.Clone(t.Tags)
	}
	if t.CompletedAt != nil {
		out.CompletedAt = timePtr(*t.CompletedAt)
	}
	return out
}

// IsTaskOlderThan reports whether the task was completed at least hours ago.
// Tasks without a completion time are never old.
func IsTaskOlderThan(t Task, now time.Time, hours int) bool {
	if t.CompletedAt == nil {
		return false
	}
	return now.Sub(*t.CompletedAt).Hours() >= float64(hours)
}

// FormatDate formats a time as a calendar date in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a yyyy-MM-dd calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDueDate
	}
	return d, nil
}

// ParseTags splits comma separated input into trimmed, non-empty tags.
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ClampEstimate normalizes a time estimate in hours.
// Negative values clamp to zero; non-finite values return the fallback.
func ClampEstimate(hours, fallback float64) float64 {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return fallback
	}
	return math.Max(0, hours)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
