package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/runoshun/focusboard/internal/app"
	"github.com/runoshun/focusboard/internal/domain"
	"github.com/runoshun/focusboard/internal/testutil"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// newTestContainer returns a container over an in-memory store.
func newTestContainer(t *testing.T) (*app.Container, *testutil.MockClock) {
	t.Helper()

	clock := &testutil.MockClock{NowTime: testNow}
	return newSharedContainer(t, testutil.NewMockKVStore(), clock, &testutil.SeqIDGenerator{}), clock
}

// newSharedContainer returns a container over kv, standing in for another
// focusboard process using the same storage.
func newSharedContainer(t *testing.T, kv domain.KVStore, clock *testutil.MockClock, ids domain.IDGenerator) *app.Container {
	t.Helper()

	c := app.NewWithDeps(app.Config{WorkDir: t.TempDir()}, nil, kv, clock, ids, nil, nil)
	c.ConfigLoader = &testutil.MockConfigLoader{}
	c.ConfigManager = testutil.NewMockConfigManager()
	return c
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	return runContext(context.Background(), c, args...)
}

func runContext(ctx context.Context, c *app.Container, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	root := NewRootCommand(c, "test-version")
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
