package tui

import (
	"time"

	"github.com/runoshun/focusboard/internal/domain"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgBoardChanged carries a new board snapshot from the store.
type MsgBoardChanged struct {
	Board domain.Board
}

func (MsgBoardChanged) sealed() {}

// MsgTaskAdded is sent when a task was added from the board.
type MsgTaskAdded struct {
	TaskID string
}

func (MsgTaskAdded) sealed() {}

// MsgTaskMoved is sent when a move changed the board.
type MsgTaskMoved struct {
	TaskID string
}

func (MsgTaskMoved) sealed() {}

// MsgTimerTick is sent every second to drive the focus timer.
type MsgTimerTick struct {
	Time time.Time
}

func (MsgTimerTick) sealed() {}

// MsgRefreshTick is sent periodically to re-sort the done column.
type MsgRefreshTick struct{}

func (MsgRefreshTick) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgNotice shows a transient status message.
type MsgNotice struct {
	Text string
}

func (MsgNotice) sealed() {}
