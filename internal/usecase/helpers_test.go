package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/focusboard/internal/board"
	"github.com/runoshun/focusboard/internal/testutil"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// newStore returns a hydrated store holding the default board:
// task-1 in todo, task-2 in in-progress and task-3 in backlog.
func newStore(t *testing.T) (*board.Store, *testutil.MockKVStore, *testutil.MockClock) {
	t.Helper()
	kv := testutil.NewMockKVStore()
	clock := &testutil.MockClock{NowTime: testNow}
	s := board.New(board.NewSnapshotPersister(kv, "board", nil), clock, &testutil.SeqIDGenerator{}, nil)
	require.NoError(t, s.Hydrate(context.Background()))
	return s, kv, clock
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
