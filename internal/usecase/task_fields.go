// Package usecase contains application use cases.
package usecase

import "github.com/runoshun/focusboard/internal/domain"

// TaskFields holds optional task field values. A nil field is left unchanged.
// Fields are ordered to minimize memory padding.
type TaskFields struct {
	Title        *string
	DueDate      *string  // yyyy-MM-dd, empty clears
	TimeEstimate *float64 // Hours
	Complexity   *string
	Tags         *string // Comma separated
	JiraLink     *string
	Notes        *string
}

// IsEmpty returns true if no field is set.
func (f TaskFields) IsEmpty() bool {
	return len(f.Patch()) == 0
}

// Patch converts the set fields into a task patch.
func (f TaskFields) Patch() domain.TaskPatch {
	var patch domain.TaskPatch
	if f.Title != nil {
		patch = append(patch, domain.TitleUpdate{Title: *f.Title})
	}
	if f.DueDate != nil {
		patch = append(patch, domain.DueDateUpdate{Date: *f.DueDate})
	}
	if f.TimeEstimate != nil {
		patch = append(patch, domain.TimeEstimateUpdate{Hours: *f.TimeEstimate})
	}
	if f.Complexity != nil {
		patch = append(patch, domain.ComplexityUpdate{Complexity: *f.Complexity})
	}
	if f.Tags != nil {
		patch = append(patch, domain.TagsUpdate{Tags: domain.ParseTags(*f.Tags)})
	}
	if f.JiraLink != nil {
		patch = append(patch, domain.JiraLinkUpdate{Link: *f.JiraLink})
	}
	if f.Notes != nil {
		patch = append(patch, domain.NotesUpdate{Notes: *f.Notes})
	}
	return patch
}
