package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focusboard/internal/domain"
	"github.com/runoshun/focusboard/internal/testutil"
)

func TestConfigShowCommand(t *testing.T) {
	// Setup
	c, _ := newTestContainer(t)
	cfg := domain.NewDefaultConfig()
	cfg.Storage.Backend = "sqlite"
	cfg.Storage.EncryptionKey = "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"
	c.ConfigLoader = &testutil.MockConfigLoader{Config: cfg}
	manager := testutil.NewMockConfigManager()
	manager.LocalConfigInfo.Exists = true
	c.ConfigManager = manager

	// Execute
	out, _, err := run(t, c, "config", "show")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "[Loaded from]")
	assert.Contains(t, out, "- /home/test/.config/focusboard/config.toml (not found)\n")
	assert.Contains(t, out, "- /work/.focusboard.toml\n")
	assert.Contains(t, out, "[Effective Config]")
	assert.Contains(t, out, "backend = 'sqlite'")
	assert.Contains(t, out, "encryption_key = '********'")
	assert.NotContains(t, out, "00112233")
	assert.Equal(t, "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff", cfg.Storage.EncryptionKey, "the loaded config is not modified")
}

func TestConfigShowCommand_LoadError(t *testing.T) {
	c, _ := newTestContainer(t)
	c.ConfigLoader = &testutil.MockConfigLoader{Err: errors.New("broken toml")}

	_, _, err := run(t, c, "config", "show")

	assert.ErrorContains(t, err, "broken toml")
}

func TestConfigTemplateCommand(t *testing.T) {
	c, _ := newTestContainer(t)

	out, _, err := run(t, c, "config", "template")

	require.NoError(t, err)
	assert.Contains(t, out, "[storage]")
	assert.Contains(t, out, "[timer]")
}

func TestConfigInitCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantPath   string
		wantGlobal bool
	}{
		{name: "local", args: []string{"config", "init"}, wantPath: "/work/.focusboard.toml"},
		{name: "global", args: []string{"config", "init", "--global"}, wantPath: "/home/test/.config/focusboard/config.toml", wantGlobal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContainer(t)
			manager := testutil.NewMockConfigManager()
			c.ConfigManager = manager

			out, _, err := run(t, c, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, "Created config file: "+tt.wantPath+"\n", out)
			assert.Equal(t, tt.wantGlobal, manager.InitGlobalCalled)
			assert.Equal(t, !tt.wantGlobal, manager.InitLocalCalled)
			assert.Same(t, c.AppConfig, manager.InitConfig)
		})
	}
}

func TestConfigInitCommand_Exists(t *testing.T) {
	c, _ := newTestContainer(t)
	manager := testutil.NewMockConfigManager()
	manager.InitLocalErr = domain.ErrConfigExists
	c.ConfigManager = manager

	_, _, err := run(t, c, "config", "init")

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
