package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focusboard/internal/domain"
	"github.com/runoshun/focusboard/internal/testutil"
)

func TestWatchCommand_RefreshesUntilCancelled(t *testing.T) {
	// Setup: task-1 crosses the threshold while task-2 stays recent below it
	c, clock := newTestContainer(t)
	_, _, err := run(t, c, "move", "todo", "0", "done", "0")
	require.NoError(t, err)
	clock.Advance(20 * time.Hour)
	_, _, err = run(t, c, "move", "in-progress", "0", "done", "1")
	require.NoError(t, err)
	clock.Advance(5 * time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(200*time.Millisecond, cancel)

	// Execute
	out, _, err := runContext(ctx, c, "watch")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Done column reordered: 1 recent, 1 archived")
	assert.Contains(t, out, "Refreshing every 1m0s")

	b, err := c.Board.Snapshot()
	require.NoError(t, err)
	done := b.Columns[domain.ColumnDone].Tasks
	require.Len(t, done, 2)
	assert.Equal(t, "task-2", done[0].ID)
	assert.Equal(t, "task-1", done[1].ID)
}

func TestWatchCommand_KeepsChangesFromOtherCommands(t *testing.T) {
	// Setup: watch and a second process share one KV
	kv := testutil.NewMockKVStore()
	clock := &testutil.MockClock{NowTime: testNow}
	watcher := newSharedContainer(t, kv, clock, &testutil.SeqIDGenerator{})
	_, _, err := run(t, watcher, "move", "todo", "0", "done", "0")
	require.NoError(t, err)
	clock.Advance(time.Hour)
	_, _, err = run(t, watcher, "move", "in-progress", "0", "done", "1")
	require.NoError(t, err)

	other := newSharedContainer(t, kv, clock, &testutil.SeqIDGenerator{Prefix: "other"})
	_, _, err = run(t, other, "add", "todo", "--title", "Added elsewhere")
	require.NoError(t, err)
	clock.Advance(23 * time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(200*time.Millisecond, cancel)

	// Execute
	out, _, err := runContext(ctx, watcher, "watch")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Done column reordered: 1 recent, 1 archived")

	reader := newSharedContainer(t, kv, clock, &testutil.SeqIDGenerator{Prefix: "reader"})
	listed, _, err := run(t, reader, "list")
	require.NoError(t, err)
	assert.Contains(t, listed, "Added elsewhere")

	b, err := reader.Board.Snapshot()
	require.NoError(t, err)
	done := b.Columns[domain.ColumnDone].Tasks
	require.Len(t, done, 2)
	assert.Equal(t, "task-2", done[0].ID)
	assert.Equal(t, "task-1", done[1].ID)
}
