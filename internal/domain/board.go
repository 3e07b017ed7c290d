package domain

import (
	"math"
	"slices"
	"time"
)

// DefaultDoneArchiveHours is the archive threshold used for fresh boards.
const DefaultDoneArchiveHours = 24

// MaxDoneArchiveHours is the largest archive threshold that still fits a
// time.Duration.
const MaxDoneArchiveHours = int(math.MaxInt64 / int64(time.Hour))

// Board is the whole state of the task board.
// All operations are pure: they return a new Board and never modify the receiver.
type Board struct {
	Columns          map[ColumnID]Column // Always the four canonical keys
	ColumnOrder      []ColumnID          // Display order, canonical
	DoneArchiveHours int                 // Age in hours after which a done task is old
}

// DefaultColumns builds the starter content of a fresh board.
func DefaultColumns(now time.Time, ids IDGenerator) map[ColumnID]Column {
	seed := func(columnID ColumnID, title string, dueInDays int, estimate float64, tag string) []Task {
		return []Task{{
			ID:           ids.NewID(),
			Title:        title,
			DueDate:      FormatDate(now.AddDate(0, 0, dueInDays)),
			TimeEstimate: estimate,
			Tags:         []string{tag},
			ColumnID:     columnID,
		}}
	}

	return map[ColumnID]Column{
		ColumnTodo: {
			ID:          ColumnTodo,
			Title:       "To Do",
			Description: "Queued for today",
			Tasks:       seed(ColumnTodo, "Plan daily priorities", 0, 0.25, "planning"),
		},
		ColumnInProgress: {
			ID:          ColumnInProgress,
			Title:       "In Progress",
			Description: "Currently being worked",
			Tasks:       seed(ColumnInProgress, "Debug churn feature lag", 1, 1.5, "bug"),
		},
		ColumnDone: {
			ID:          ColumnDone,
			Title:       "Done",
			Description: "Completed today",
			Tasks:       []Task{},
		},
		ColumnBacklog: {
			ID:          ColumnBacklog,
			Title:       "Backlog",
			Description: "Parking lot for later",
			Tasks:       seed(ColumnBacklog, "Refine model monitoring roadmap", 7, 2, "strategy"),
		},
	}
}

// DefaultBoard builds a fresh board with starter content.
func DefaultBoard(now time.Time, ids IDGenerator, doneArchiveHours int) Board {
	if doneArchiveHours < 1 {
		doneArchiveHours = DefaultDoneArchiveHours
	}
	return Board{
		Columns:          DefaultColumns(now, ids),
		ColumnOrder:      DefaultColumnOrder(),
		DoneArchiveHours: doneArchiveHours,
	}
}

// HasAllColumns returns true if every canonical column is present.
func HasAllColumns[V any](columns map[ColumnID]V) bool {
	if columns == nil {
		return false
	}
	for _, id := range DefaultColumnOrder() {
		if _, ok := columns[id]; !ok {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := Board{
		ColumnOrder:      slices.Clone(b.ColumnOrder),
		DoneArchiveHours: b.DoneArchiveHours,
	}
	if b.Columns != nil {
		out.Columns = make(map[ColumnID]Column, len(b.Columns))
		for id, c := range b.Columns {
			out.Columns[id] = c.clone()
		}
	}
	return out
}

// FindTask locates a task by id, scanning columns in display order.
func (b Board) FindTask(taskID string) (Task, bool) {
	for _, columnID := range b.ColumnOrder {
		column := b.Columns[columnID]
		if i := column.IndexOf(taskID); i >= 0 {
			return column.Tasks[i], true
		}
	}
	return Task{}, false
}

// AllTasks returns every task on the board in display order.
func (b Board) AllTasks() []Task {
	var tasks []Task
	for _, columnID := range b.ColumnOrder {
		tasks = append(tasks, b.Columns[columnID].Tasks...)
	}
	return tasks
}

// ArchivedTasks returns the done tasks completed at least DoneArchiveHours ago,
// independent of their position in the done column.
func (b Board) ArchivedTasks(now time.Time) []Task {
	var old []Task
	for _, t := range b.Columns[ColumnDone].Tasks {
		if IsTaskOlderThan(t, now, b.DoneArchiveHours) {
			old = append(old, t.Clone())
		}
	}
	return old
}

// AddTask appends a new default task to the column.
// The boolean is false when the column is unknown.
func (b Board) AddTask(columnID ColumnID, taskID string, now time.Time) (Board, Task, bool) {
	column, ok := b.Columns[columnID]
	if !ok {
		return b, Task{}, false
	}

	task := NewTask(taskID, columnID, now)
	next := b.Clone()
	column = next.Columns[columnID]
	column.Tasks = append(column.Tasks, task)
	if columnID == ColumnDone {
		column.Tasks = ReorderDoneTasks(column.Tasks, now, b.DoneArchiveHours)
	}
	next.Columns[columnID] = column
	return next, task.Clone(), true
}

// UpdateTask applies patch to the first task with the given id.
// The task keeps its column and position. The boolean is false when no task matches.
func (b Board) UpdateTask(taskID string, patch TaskPatch) (Board, bool) {
	for _, columnID := range b.ColumnOrder {
		i := b.Columns[columnID].IndexOf(taskID)
		if i < 0 {
			continue
		}
		next := b.Clone()
		column := next.Columns[columnID]
		column.Tasks[i] = patch.Apply(column.Tasks[i])
		next.Columns[columnID] = column
		return next, true
	}
	return b, false
}

// MoveTask removes the task at sourceIndex of the source column and inserts
// it at destIndex of the destination column. destIndex is clamped into the
// valid insertion range. The boolean is false when a column is unknown or
// sourceIndex is out of range.
func (b Board) MoveTask(source, dest ColumnID, sourceIndex, destIndex int, now time.Time) (Board, bool) {
	sourceColumn, ok := b.Columns[source]
	if !ok {
		return b, false
	}
	if _, ok := b.Columns[dest]; !ok {
		return b, false
	}
	if sourceIndex < 0 || sourceIndex >= len(sourceColumn.Tasks) {
		return b, false
	}

	next := b.Clone()
	hours := b.DoneArchiveHours
	src := next.Columns[source]
	moved := src.Tasks[sourceIndex]
	src.Tasks = slices.Delete(src.Tasks, sourceIndex, sourceIndex+1)

	if source == dest {
		src.Tasks = insertAt(src.Tasks, destIndex, moved)
		if source == ColumnDone {
			src.Tasks = ReorderDoneTasks(src.Tasks, now, hours)
		}
		next.Columns[source] = src
		return next, true
	}

	moved.ColumnID = dest
	if dest == ColumnDone {
		if moved.CompletedAt == nil {
			moved.CompletedAt = timePtr(now)
		}
	} else {
		moved.CompletedAt = nil
	}

	dst := next.Columns[dest]
	dst.Tasks = insertAt(dst.Tasks, destIndex, moved)

	if source == ColumnDone {
		src.Tasks = ReorderDoneTasks(src.Tasks, now, hours)
	}
	if dest == ColumnDone {
		dst.Tasks = ReorderDoneTasks(dst.Tasks, now, hours)
	}
	next.Columns[source] = src
	next.Columns[dest] = dst
	return next, true
}

// RefreshDoneOrdering reapplies the done ordering rule at now.
// The boolean is false when the sequence of task ids did not change.
func (b Board) RefreshDoneOrdering(now time.Time) (Board, bool) {
	done, ok := b.Columns[ColumnDone]
	if !ok || len(done.Tasks) == 0 {
		return b, false
	}
	reordered := ReorderDoneTasks(done.Tasks, now, b.DoneArchiveHours)
	if sameTaskIDs(done.Tasks, reordered) {
		return b, false
	}
	next := b.Clone()
	done = next.Columns[ColumnDone]
	done.Tasks = reordered
	next.Columns[ColumnDone] = done
	return next, true
}

// SetDoneArchiveHours updates the archive threshold and reorders the done column.
// Non-finite input keeps the current threshold; other values are rounded and
// clamped to at least one hour. The boolean is false when the threshold is unchanged.
func (b Board) SetDoneArchiveHours(hours float64, now time.Time) (Board, bool) {
	nextHours := ClampArchiveHours(hours, b.DoneArchiveHours)
	if nextHours == b.DoneArchiveHours {
		return b, false
	}
	next := b.Clone()
	next.DoneArchiveHours = nextHours
	if done, ok := next.Columns[ColumnDone]; ok && len(done.Tasks) > 0 {
		done.Tasks = ReorderDoneTasks(done.Tasks, now, nextHours)
		next.Columns[ColumnDone] = done
	}
	return next, true
}

// Normalize enforces the membership invariants on a board read from storage:
// canonical column order, column ids matching their keys, task column ids
// matching their container, and completion times present exactly in done.
func (b Board) Normalize(now time.Time) Board {
	next := b.Clone()
	next.ColumnOrder = DefaultColumnOrder()
	for id, column := range next.Columns {
		column.ID = id
		if column.Tasks == nil {
			column.Tasks = []Task{}
		}
		for i := range column.Tasks {
			t := &column.Tasks[i]
			t.ColumnID = id
			if t.Tags == nil {
				t.Tags = []string{}
			}
			if id == ColumnDone {
				if t.CompletedAt == nil {
					t.CompletedAt = timePtr(now)
				}
			} else {
				t.CompletedAt = nil
			}
		}
		next.Columns[id] = column
	}
	return next
}

// ReorderDoneTasks stamps tasks lacking a completion time with now and moves
// tasks past the archive threshold behind the recent ones. The relative
// order inside each group is preserved. The input slice is not modified.
func ReorderDoneTasks(tasks []Task, now time.Time, hours int) []Task {
	recent := make([]Task, 0, len(tasks))
	var old []Task
	for _, t := range tasks {
		t = t.Clone()
		if t.CompletedAt == nil {
			t.CompletedAt = timePtr(now)
		}
		if IsTaskOlderThan(t, now, hours) {
			old = append(old, t)
		} else {
			recent = append(recent, t)
		}
	}
	return append(recent, old...)
}

// ClampArchiveHours rounds hours and clamps it to [1, MaxDoneArchiveHours].
// Non-finite input returns fallback, clamped to the same range.
func ClampArchiveHours(hours float64, fallback int) int {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return min(max(fallback, 1), MaxDoneArchiveHours)
	}
	return int(math.Min(float64(MaxDoneArchiveHours), math.Max(1, math.Round(hours))))
}

func insertAt(tasks []Task, index int, t Task) []Task {
	index = max(0, min(index, len(tasks)))
	return slices.Insert(tasks, index, t)
}

func sameTaskIDs(a, b []Task) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
