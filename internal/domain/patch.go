package domain

import "slices"

// TaskUpdate is the sealed interface for a single field update of a task.
// Only user-editable fields have an update type; id, column and completion
// time are owned by the board operations.
//
// go-sumtype:decl TaskUpdate
type TaskUpdate interface {
	apply(t *Task)
	validate() error
}

// TitleUpdate replaces the task title.
type TitleUpdate struct {
	Title string
}

func (u TitleUpdate) apply(t *Task) { t.Title = u.Title }
func (TitleUpdate) validate() error { return nil }

// DueDateUpdate replaces the due date. An empty date clears it.
type DueDateUpdate struct {
	Date string
}

func (u DueDateUpdate) apply(t *Task) { t.DueDate = u.Date }

func (u DueDateUpdate) validate() error {
	if u.Date == "" {
		return nil
	}
	_, err := ParseDate(u.Date)
	return err
}

// TimeEstimateUpdate replaces the estimate in hours.
// Negative values clamp to zero and non-finite values leave the estimate unchanged.
type TimeEstimateUpdate struct {
	Hours float64
}

func (u TimeEstimateUpdate) apply(t *Task) {
	t.TimeEstimate = ClampEstimate(u.Hours, t.TimeEstimate)
}
func (TimeEstimateUpdate) validate() error { return nil }

// ComplexityUpdate replaces the complexity label.
type ComplexityUpdate struct {
	Complexity string
}

func (u ComplexityUpdate) apply(t *Task) { t.Complexity = u.Complexity }
func (ComplexityUpdate) validate() error { return nil }

// TagsUpdate replaces the whole tag list.
type TagsUpdate struct {
	Tags []string
}

func (u TagsUpdate) apply(t *Task) {
	t.Tags = slices.Clone(u.Tags)
	if t.Tags == nil {
		t.Tags = []string{}
	}
}
func (TagsUpdate) validate() error { return nil }

// JiraLinkUpdate replaces the tracker link.
type JiraLinkUpdate struct {
	Link string
}

func (u JiraLinkUpdate) apply(t *Task) { t.JiraLink = u.Link }
func (JiraLinkUpdate) validate() error { return nil }

// NotesUpdate replaces the free text notes.
type NotesUpdate struct {
	Notes string
}

func (u NotesUpdate) apply(t *Task) { t.Notes = u.Notes }
func (NotesUpdate) validate() error { return nil }

// TaskPatch is an ordered list of field updates. Later updates of the same
// field win.
type TaskPatch []TaskUpdate

// Validate checks every update of the patch.
func (p TaskPatch) Validate() error {
	for _, u := range p {
		if err := u.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Apply returns a copy of t with the patch applied.
func (p TaskPatch) Apply(t Task) Task {
	out := t.Clone()
	for _, u := range p {
		u.apply(&out)
	}
	return out
}
