package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"textplay/internal/models"

	"github.com/BurntSushi/toml"
)

const (
	EnvConfigPath = "TEXTPLAY_CONFIG"
	EnvLogLevel   = "TEXTPLAY_LOG_LEVEL"
	EnvLogFormat  = "TEXTPLAY_LOG_FORMAT"
	EnvFontDirs   = "TEXTPLAY_FONT_DIRS"
)

// Config holds everything the application reads at startup
type Config struct {
	Log    LogConfig    `toml:"log"`
	Window WindowConfig `toml:"window"`
	Text   TextConfig   `toml:"text"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

type WindowConfig struct {
	Title  string  `toml:"title"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type TextConfig struct {
	FontStyle string   `toml:"font_style"`
	FontSize  int      `toml:"font_size"`
	FontDirs  []string `toml:"font_dirs"`
}

func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "console"},
		Window: WindowConfig{
			Title:  "TextPlay",
			Width:  500,
			Height: 420,
		},
		Text: TextConfig{
			FontStyle: string(models.DefaultFontStyle),
			FontSize:  models.DefaultFontSize,
		},
	}
}

// Load starts from Default, decodes the TOML file at path if present and
// then applies environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := Parse(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes TOML bytes over the values already in cfg
func Parse(data []byte, cfg *Config) error {
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if os.Getenv("DEBUG") == "1" {
		cfg.Log.Level = "debug"
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvFontDirs); v != "" {
		var dirs []string
		for _, dir := range filepath.SplitList(v) {
			if dir = strings.TrimSpace(dir); dir != "" {
				dirs = append(dirs, dir)
			}
		}
		cfg.Text.FontDirs = dirs
	}
}

func (c Config) Validate() error {
	if _, err := models.ParseFontStyle(c.Text.FontStyle); err != nil {
		return fmt.Errorf("text.font_style: %w", err)
	}
	if c.Text.FontSize < models.MinFontSize || c.Text.FontSize > models.MaxFontSize {
		return fmt.Errorf("text.font_size %d outside [%d, %d]", c.Text.FontSize, models.MinFontSize, models.MaxFontSize)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %.0fx%.0f must be positive", c.Window.Width, c.Window.Height)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format %q must be console or json", c.Log.Format)
	}
	return nil
}
