package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focusboard/internal/usecase"
)

func TestFindTasks_Execute(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []string
		limit   int
	}{
		{name: "exact word", query: "roadmap", wantIDs: []string{"task-3"}},
		{name: "subsequence", query: "dbg", wantIDs: []string{"task-2"}},
		{name: "empty query", query: "  ", wantIDs: []string{}},
		{name: "no match", query: "zzz", wantIDs: []string{}},
		{name: "limit", query: "i", limit: 1, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _, _ := newStore(t)

			out, err := usecase.NewFindTasks(store).Execute(context.Background(), usecase.FindTasksInput{Query: tt.query, Limit: tt.limit})

			require.NoError(t, err)
			if tt.limit > 0 {
				assert.Len(t, out.Matches, tt.limit)
				return
			}
			ids := []string{}
			for _, m := range out.Matches {
				ids = append(ids, m.Task.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFindTasks_MatchedIndexes(t *testing.T) {
	store, _, _ := newStore(t)

	out, err := usecase.NewFindTasks(store).Execute(context.Background(), usecase.FindTasksInput{Query: "Plan"})

	require.NoError(t, err)
	require.NotEmpty(t, out.Matches)
	assert.Equal(t, "task-1", out.Matches[0].Task.ID)
	assert.Equal(t, []int{0, 1, 2, 3}, out.Matches[0].MatchedIndexes)
}
