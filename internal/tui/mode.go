// Package tui provides the terminal user interface for focusboard.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal    Mode = iota // Board navigation
	ModeEditTitle             // Title input for the selected task
	ModeArchive               // Archived done tasks
	ModeHelp                  // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEditTitle:
		return "edit_title"
	case ModeArchive:
		return "archive"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeEditTitle
}
