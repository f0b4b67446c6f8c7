package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLogLevel, EnvLogFormat, EnvFontDirs, "DEBUG"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, float32(500), cfg.Window.Width)
	assert.Equal(t, float32(420), cfg.Window.Height)
	assert.Equal(t, "Courier", cfg.Text.FontStyle)
	assert.Equal(t, 10, cfg.Text.FontSize)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "textplay.toml")
	data := []byte(`
[log]
level = "debug"

[window]
width = 640

[text]
font_style = "Times Roman"
font_size = 18
font_dirs = ["/usr/share/fonts"]
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, float32(640), cfg.Window.Width)
	assert.Equal(t, float32(420), cfg.Window.Height)
	assert.Equal(t, "Times Roman", cfg.Text.FontStyle)
	assert.Equal(t, 18, cfg.Text.FontSize)
	assert.Equal(t, []string{"/usr/share/fonts"}, cfg.Text.FontDirs)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvFontDirs, "/a"+string(os.PathListSeparator)+" "+string(os.PathListSeparator)+"/b")
	t.Setenv("DEBUG", "1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"/a", "/b"}, cfg.Text.FontDirs)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearEnv(t)

	tests := map[string]string{
		"style":  "[text]\nfont_style = \"Wingdings\"\n",
		"size":   "[text]\nfont_size = 72\n",
		"window": "[window]\nheight = 0\n",
		"format": "[log]\nformat = \"xml\"\n",
		"syntax": "[text\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
