package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanRunWithoutContainer(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "no args", args: nil, want: false},
		{name: "help flag", args: []string{"--help"}, want: true},
		{name: "help shorthand on subcommand", args: []string{"move", "-h"}, want: true},
		{name: "help subcommand", args: []string{"help", "move"}, want: true},
		{name: "version flag", args: []string{"--version"}, want: true},
		{name: "config template", args: []string{"config", "template"}, want: true},
		{name: "config show", args: []string{"config", "show"}, want: false},
		{name: "board command", args: []string{"list"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canRunWithoutContainer(tt.args))
		})
	}
}

func TestRun_WithLocalConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	assert.NoError(t, run(t.Context(), []string{"archive-hours", "12"}))
}

func TestRun_BrokenConfigAllowsTemplate(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeFile(t, ".focusboard.toml", "[storage\nbackend = ")

	assert.NoError(t, run(t.Context(), []string{"config", "template"}))
	assert.Error(t, run(t.Context(), []string{"list"}))
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
