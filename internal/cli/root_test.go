package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focusboard/internal/app"
)

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	// Save original function and restore after test
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	// Mock launchTUIFunc to track if it was called
	called := false
	launchTUIFunc = func(_ context.Context, _ *app.Container) error {
		called = true
		return nil
	}

	// Create root command with nil container (not used in this test)
	root := NewRootCommand(nil, "test-version")

	root.SetArgs([]string{})
	err := root.Execute()

	assert.NoError(t, err)
	assert.True(t, called, "launchTUIFunc should be called when no arguments are provided")
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(_ context.Context, _ *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{"--help"})
	err := root.Execute()

	assert.NoError(t, err)
	assert.False(t, called, "launchTUIFunc should NOT be called when --help is provided")
}

func TestNewRootCommand_TUICommand_HydratesBoard(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	var hydrated bool
	launchTUIFunc = func(_ context.Context, c *app.Container) error {
		hydrated = c.Board.Hydrated()
		return nil
	}

	c, _ := newTestContainer(t)
	_, _, err := run(t, c, "tui")

	require.NoError(t, err)
	assert.True(t, hydrated)
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	c, _ := newTestContainer(t)
	c.AppConfig.Warnings = []string{"unknown key board.colour"}

	_, stderr, err := run(t, c, "list")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: unknown key board.colour")
}

func TestNewRootCommand_ConfigSkipsHydration(t *testing.T) {
	c, _ := newTestContainer(t)

	_, _, err := run(t, c, "config", "template")

	require.NoError(t, err)
	assert.False(t, c.Board.Hydrated())
}

func TestNewRootCommand_Groups(t *testing.T) {
	root := NewRootCommand(nil, "test-version")

	groups := map[string]string{}
	for _, cmd := range root.Commands() {
		groups[cmd.Name()] = cmd.GroupID
	}

	assert.Equal(t, groupBoard, groups["list"])
	assert.Equal(t, groupBoard, groups["move"])
	assert.Equal(t, groupFocus, groups["timer"])
	assert.Equal(t, groupFocus, groups["watch"])
	assert.Equal(t, groupSetup, groups["config"])
}
