package gamelang

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gamelang.toml")
	content := `
log_level = "debug"
log_format = "text"
seed = [3, 4]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := &Config{LogLevel: "debug", LogFormat: "text", Seed: []uint64{3, 4}}
	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreFields(Config{}, "Output")); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}

	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
	assert.NotNil(t, cfg.Rand())
}

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty uses defaults", input: ``},
		{name: "level only", input: `log_level = "INFO"`},
		{name: "unknown key", input: `colour = "red"`, wantErr: "unknown keys: colour"},
		{name: "bad level", input: `log_level = "loud"`, wantErr: "log_level"},
		{name: "bad format", input: `log_format = "xml"`, wantErr: "log_format"},
		{name: "short seed", input: `seed = [1]`, wantErr: "seed needs 2 words"},
		{name: "not toml", input: `log_level = `, wantErr: "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig(strings.NewReader(tt.input))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Nil(t, cfg.Rand())

	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelError))
}
