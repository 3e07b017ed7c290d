package domain

import "strings"

// ExportRow is a flattened, read-only projection of a task for export.
// Fields are ordered to minimize memory padding.
type ExportRow struct {
	Title        string   `json:"title" yaml:"title"`
	ColumnTitle  string   `json:"columnTitle" yaml:"columnTitle"`
	ColumnID     ColumnID `json:"columnId" yaml:"columnId"`
	DueDate      string   `json:"dueDate" yaml:"dueDate"`
	Complexity   string   `json:"complexity" yaml:"complexity"`
	Tags         string   `json:"tags" yaml:"tags"`
	JiraLink     string   `json:"jiraLink" yaml:"jiraLink"`
	Notes        string   `json:"notes" yaml:"notes"`
	TimeEstimate float64  `json:"timeEstimate" yaml:"timeEstimate"`
}

// ExportRows flattens all tasks of the board in display order.
func ExportRows(b Board) []ExportRow {
	rows := []ExportRow{}
	for _, columnID := range b.ColumnOrder {
		column := b.Columns[columnID]
		for _, t := range column.Tasks {
			rows = append(rows, ExportRow{
				Title:        t.Title,
				ColumnTitle:  column.Title,
				ColumnID:     column.ID,
				DueDate:      t.DueDate,
				TimeEstimate: t.TimeEstimate,
				Complexity:   t.Complexity,
				Tags:         strings.Join(t.Tags, ", "),
				JiraLink:     t.JiraLink,
				Notes:        t.Notes,
			})
		}
	}
	return rows
}
