package domain

// ColumnID identifies one of the fixed board columns.
type ColumnID string

const (
	ColumnTodo       ColumnID = "todo"        // Queued work
	ColumnInProgress ColumnID = "in-progress" // Currently being worked
	ColumnDone       ColumnID = "done"        // Completed, ordered by archive age
	ColumnBacklog    ColumnID = "backlog"     // Parking lot
)

// DefaultColumnOrder returns the canonical display order of the columns.
// A fresh slice is returned on every call.
func DefaultColumnOrder() []ColumnID {
	return []ColumnID{ColumnTodo, ColumnInProgress, ColumnDone, ColumnBacklog}
}

// IsValid returns true if the id names one of the four canonical columns.
func (c ColumnID) IsValid() bool {
	switch c {
	case ColumnTodo, ColumnInProgress, ColumnDone, ColumnBacklog:
		return true
	default:
		return false
	}
}

// ParseColumnID converts user input into a ColumnID.
// Both "in-progress" and "in_progress" are accepted.
func ParseColumnID(s string) (ColumnID, error) {
	if s == "in_progress" {
		s = string(ColumnInProgress)
	}
	id := ColumnID(s)
	if !id.IsValid() {
		return "", ErrUnknownColumn
	}
	return id, nil
}

// Column is an ordered bucket of tasks representing a workflow stage.
// Fields are ordered to minimize memory padding.
type Column struct {
	ID          ColumnID `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tasks       []Task   `json:"tasks"`
}

// TotalHours sums the time estimates of all tasks in the column.
func (c Column) TotalHours() float64 {
	var total float64
	for i := range c.Tasks {
		total += c.Tasks[i].TimeEstimate
	}
	return total
}

// IndexOf returns the position of the task with the given id, or -1.
func (c Column) IndexOf(taskID string) int {
	for i := range c.Tasks {
		if c.Tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

// clone returns a deep copy of the column.
func (c Column) clone() Column {
	out := c
	if c.Tasks != nil {
		out.Tasks = make([]Task, len(c.Tasks))
		for i := range c.Tasks {
			out.Tasks[i] = c.Tasks[i].Clone()
		}
	}
	return out
}
