package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding // Focus previous column
	Right key.Binding // Focus next column

	// Moving tasks (drag-and-drop)
	MoveUp    key.Binding
	MoveDown  key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	MoveDone  key.Binding // Drop on top of the done column

	// Task management
	New       key.Binding // Add a task to the focused column
	EditTitle key.Binding // Rename the selected task

	// Archive
	Archive      key.Binding // Toggle the archive view
	ArchiveMore  key.Binding // Raise the archive threshold
	ArchiveLess  key.Binding // Lower the archive threshold
	RefreshOrder key.Binding // Re-sort the done column now

	// Focus timer
	TimerToggle key.Binding // Start or pause
	TimerReset  key.Binding
	TimerSkip   key.Binding

	// General
	Help   key.Binding
	Quit   key.Binding
	Escape key.Binding
	Enter  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next column"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("J", "move down"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("H", "move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("L", "move right"),
		),
		MoveDone: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "mark done"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		EditTitle: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "rename"),
		),
		Archive: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "archive"),
		),
		ArchiveMore: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "archive later"),
		),
		ArchiveLess: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "archive sooner"),
		),
		RefreshOrder: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "re-sort done"),
		),
		TimerToggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		TimerReset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset timer"),
		),
		TimerSkip: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "skip phase"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.MoveLeft, k.MoveRight, k.New, k.TimerToggle, k.Archive, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},                             // Navigation
		{k.MoveUp, k.MoveDown, k.MoveLeft, k.MoveRight, k.MoveDone}, // Moving
		{k.New, k.EditTitle},                                        // Task management
		{k.Archive, k.ArchiveMore, k.ArchiveLess, k.RefreshOrder},   // Archive
		{k.TimerToggle, k.TimerReset, k.TimerSkip},                  // Timer
		{k.Help, k.Quit},                                            // General
	}
}
