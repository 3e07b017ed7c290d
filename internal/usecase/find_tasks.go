package usecase

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/runoshun/focusboard/internal/domain"
)

// FindTasksInput contains the parameters for searching tasks.
type FindTasksInput struct {
	Query string // Fuzzy pattern matched against titles (required)
	Limit int    // Maximum number of matches; 0 means all
}

// TaskMatch is a task whose title matched the query.
// Fields are ordered to minimize memory padding.
type TaskMatch struct {
	Task           domain.Task
	MatchedIndexes []int // Byte offsets of the matched title characters
	Score          int
}

// FindTasksOutput contains the matches, best first.
type FindTasksOutput struct {
	Matches []TaskMatch
}

// FindTasks is the use case for fuzzy searching task titles.
type FindTasks struct {
	store domain.BoardStore
}

// NewFindTasks creates a new FindTasks use case.
func NewFindTasks(store domain.BoardStore) *FindTasks {
	return &FindTasks{store: store}
}

// titleSource adapts a task list to fuzzy.Source.
type titleSource []domain.Task

func (s titleSource) String(i int) string { return s[i].Title }
func (s titleSource) Len() int            { return len(s) }

// Execute returns the tasks whose titles match the query.
func (uc *FindTasks) Execute(_ context.Context, in FindTasksInput) (*FindTasksOutput, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return &FindTasksOutput{Matches: []TaskMatch{}}, nil
	}

	board, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}

	tasks := titleSource(board.AllTasks())
	results := fuzzy.FindFrom(query, tasks)

	matches := make([]TaskMatch, 0, len(results))
	for _, r := range results {
		if in.Limit > 0 && len(matches) == in.Limit {
			break
		}
		matches = append(matches, TaskMatch{
			Task:           tasks[r.Index],
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		})
	}
	return &FindTasksOutput{Matches: matches}, nil
}
