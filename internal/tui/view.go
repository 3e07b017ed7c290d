package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/focusboard/internal/domain"
)

const (
	minColumnWidth = 18
	timerBarWidth  = 20
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 || !m.loaded {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeArchive:
		content = m.viewArchive()
	case ModeNormal, ModeEditTitle:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the board.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.viewColumns())

	if m.mode == ModeEditTitle {
		b.WriteString("\n")
		b.WriteString(m.viewTitleInput())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the app title and the focus timer.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Focusboard")

	mode := m.timer.Mode()
	clock := m.styles.TimerStyle(mode).Render(fmt.Sprintf("%s %s", mode.Display(), domain.FormatClock(m.timer.Remaining())))
	state := "paused"
	if m.timer.Running() {
		state = "running"
	}
	sessions := fmt.Sprintf("%d/%d", m.timer.Sessions()%m.timer.Settings().LongBreakEvery, m.timer.Settings().LongBreakEvery)

	timer := fmt.Sprintf("%s %s %s %s",
		clock,
		m.viewTimerBar(),
		m.styles.TaskMeta.Render(state),
		m.styles.TaskMeta.Render(sessions),
	)

	gap := m.contentWidth() - lipgloss.Width(title) - lipgloss.Width(timer)
	if gap < 2 {
		gap = 2
	}
	return m.styles.Header.Render(title + strings.Repeat(" ", gap) + timer)
}

// viewTimerBar renders the elapsed fraction of the current phase.
func (m *Model) viewTimerBar() string {
	filled := int(m.timer.Progress() * timerBarWidth)
	return m.styles.TimerBar.Render(strings.Repeat("█", filled)) +
		m.styles.TimerTrack.Render(strings.Repeat("░", timerBarWidth-filled))
}

// viewColumns renders the four columns side by side.
func (m *Model) viewColumns() string {
	order := m.board.ColumnOrder
	if len(order) == 0 {
		return ""
	}

	// Each column has a border and horizontal padding of one on both sides.
	width := max(minColumnWidth, m.contentWidth()/len(order)-4)

	now := m.container.Clock.Now()
	rendered := make([]string, 0, len(order))
	for i, id := range order {
		rendered = append(rendered, m.renderColumn(m.board.Columns[id], i == m.focus, width, now))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) renderColumn(col domain.Column, focused bool, width int, now time.Time) string {
	var b strings.Builder

	b.WriteString(m.styles.ColumnTitle.Foreground(ColumnAccent(col.ID)).Render(col.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.ColumnDesc.Render(truncate(col.Description, width)))
	b.WriteString("\n")
	b.WriteString(m.styles.TaskMeta.Render(fmt.Sprintf("%d %s · %sh", len(col.Tasks), pluralTasks(len(col.Tasks)), formatHours(col.TotalHours()))))
	b.WriteString("\n\n")

	if len(col.Tasks) == 0 {
		b.WriteString(m.styles.TaskMeta.Render("(empty)"))
	}
	for i, task := range col.Tasks {
		selected := focused && i == m.cursors[col.ID]
		archived := col.ID == domain.ColumnDone && domain.IsTaskOlderThan(task, now, m.board.DoneArchiveHours)
		b.WriteString(m.renderTask(task, selected, archived, width))
		b.WriteString("\n")
	}

	style := m.styles.Column
	if focused {
		style = m.styles.ColumnFocused
	}
	return style.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

// renderTask renders a task card as a title line and a meta line.
func (m *Model) renderTask(task domain.Task, selected, archived bool, width int) string {
	cursor := "  "
	titleStyle := m.styles.TaskNormal
	switch {
	case selected:
		cursor = m.styles.Cursor.Render("> ")
		titleStyle = m.styles.TaskSelected
	case archived:
		titleStyle = m.styles.TaskArchived
	}

	title := cursor + titleStyle.Render(truncate(task.Title, width-2))

	meta := []string{formatHours(task.TimeEstimate) + "h"}
	if task.DueDate != "" {
		meta = append(meta, "due "+task.DueDate)
	}
	if len(task.Tags) > 0 {
		meta = append(meta, "#"+strings.Join(task.Tags, " #"))
	}
	return title + "\n  " + m.styles.TaskMeta.Render(truncate(strings.Join(meta, " · "), width-2))
}

// viewTitleInput renders the rename dialog.
func (m *Model) viewTitleInput() string {
	return m.styles.Input.Render(m.styles.InputPrompt.Render("Title: ") + m.titleInput.View())
}

// viewArchive renders the done tasks past the archive threshold.
func (m *Model) viewArchive() string {
	var b strings.Builder

	b.WriteString(m.styles.HeaderText.Render("Archive"))
	b.WriteString("\n")
	b.WriteString(m.styles.TaskMeta.Render(fmt.Sprintf("Done tasks completed more than %dh ago", m.board.DoneArchiveHours)))
	b.WriteString("\n\n")

	archived := m.board.ArchivedTasks(m.container.Clock.Now())
	if len(archived) == 0 {
		b.WriteString(m.styles.TaskMeta.Render("No archived tasks"))
	}
	for _, task := range archived {
		completed := ""
		if task.CompletedAt != nil {
			completed = task.CompletedAt.Local().Format("2006-01-02 15:04")
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", m.styles.TaskMeta.Render(completed), m.styles.TaskNormal.Render(task.Title)))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("esc/a back"))
	return b.String()
}

// viewFooter renders notices and the short help.
func (m *Model) viewFooter() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(m.styles.Notice.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.TaskMeta.Render(fmt.Sprintf("archive after %dh", m.board.DoneArchiveHours)))
	b.WriteString("  ")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return m.styles.Footer.Render(b.String())
}

// viewHelp renders the full keybinding list.
func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.HeaderText.Render("Keybindings"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("esc/? back"))
	return m.styles.Help.Render(b.String())
}

func (m *Model) contentWidth() int {
	return max(0, m.width-m.styles.App.GetHorizontalFrameSize())
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

func pluralTasks(n int) string {
	if n == 1 {
		return "task"
	}
	return "tasks"
}

func formatHours(h float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", h), "0"), ".")
}
