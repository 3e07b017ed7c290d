package domain

// DragEnd is the result of a completed drag gesture.
// Indices refer to the lists as they were before the drop.
// Fields are ordered to minimize memory padding.
type DragEnd struct {
	DestColumnID   *string // nil when the drag was cancelled
	SourceColumnID string
	SourceIndex    int
	DestIndex      int
}

// IsNoop returns true when the drop must not change the board:
// the drag was cancelled or the task was dropped where it started.
func (e DragEnd) IsNoop() bool {
	if e.DestColumnID == nil {
		return true
	}
	return *e.DestColumnID == e.SourceColumnID && e.DestIndex == e.SourceIndex
}
