package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/focusboard/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	// Column accents
	Todo       lipgloss.Color
	InProgress lipgloss.Color
	Done       lipgloss.Color
	Backlog    lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray

	Todo:       lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Done:       lipgloss.Color("#00B894"), // Green
	Backlog:    lipgloss.Color("#A29BFE"), // Lavender
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Columns
	Column        lipgloss.Style
	ColumnFocused lipgloss.Style
	ColumnTitle   lipgloss.Style
	ColumnDesc    lipgloss.Style

	// Tasks
	TaskNormal   lipgloss.Style
	TaskSelected lipgloss.Style
	TaskMeta     lipgloss.Style
	TaskArchived lipgloss.Style
	Cursor       lipgloss.Style

	// Timer
	TimerFocus lipgloss.Style
	TimerBreak lipgloss.Style
	TimerBar   lipgloss.Style
	TimerTrack lipgloss.Style

	// Help
	Help lipgloss.Style

	// Footer
	Footer lipgloss.Style
	Notice lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		Column: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		ColumnFocused: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		ColumnTitle: lipgloss.NewStyle().
			Bold(true),

		ColumnDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal).
			Italic(true),

		TaskNormal: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TaskMeta: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskArchived: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		Cursor: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TimerFocus: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Warning),

		TimerBreak: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Success),

		TimerBar: lipgloss.NewStyle().
			Foreground(Colors.Primary),

		TimerTrack: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			MarginTop(1).
			Foreground(Colors.Muted),

		Notice: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		Input: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// ColumnAccent returns the accent color of a column.
func ColumnAccent(id domain.ColumnID) lipgloss.Color {
	switch id {
	case domain.ColumnTodo:
		return Colors.Todo
	case domain.ColumnInProgress:
		return Colors.InProgress
	case domain.ColumnDone:
		return Colors.Done
	case domain.ColumnBacklog:
		return Colors.Backlog
	default:
		return Colors.Muted
	}
}

// TimerStyle returns the clock style for a timer phase.
func (s Styles) TimerStyle(mode domain.TimerMode) lipgloss.Style {
	if mode == domain.TimerFocus {
		return s.TimerFocus
	}
	return s.TimerBreak
}
