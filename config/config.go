package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pivolan/barplot/plot"
	"github.com/pivolan/go_utils"
)

type Config struct {
	Backend    string
	Format     string
	OutputDir  string
	OpenViewer bool
	TgToken    string
	TgChatID   int64
}

// Load reads the configuration and validates it.
func Load(filenames ...string) (*Config, error) {
	cfg, err := Read(filenames...)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read loads .env files (when present) and the environment without
// validating, so callers can apply overrides first.
func Read(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading env file: %w", err)
	}
	return readEnv()
}

// FromEnv reads and validates the process environment only.
func FromEnv() (*Config, error) {
	cfg, err := readEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readEnv() (*Config, error) {
	cfg := &Config{
		Backend:    getenv("CHART_BACKEND", plot.BackendGoChart),
		Format:     os.Getenv("CHART_FORMAT"),
		OutputDir:  getenv("CHART_OUTPUT_DIR", filepath.Join(os.TempDir(), "barplot")),
		OpenViewer: true,
		TgToken:    os.Getenv("TG_TOKEN"),
	}
	if v := os.Getenv("CHART_OPEN"); v != "" {
		open, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("CHART_OPEN: %w", err)
		}
		cfg.OpenViewer = open
	}
	if v := os.Getenv("TG_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TG_CHAT_ID: %w", err)
		}
		cfg.TgChatID = id
	}
	return cfg, nil
}

// Validate checks the backend and fills in its default format.
func (c *Config) Validate() error {
	if !go_utils.InArray(c.Backend, plot.Backends()) {
		return fmt.Errorf("%w: %q", plot.ErrUnknownBackend, c.Backend)
	}
	renderer, err := plot.NewRenderer(c.Backend)
	if err != nil {
		return err
	}
	if c.Format == "" {
		c.Format = plot.DefaultFormat(renderer)
	}
	if !go_utils.InArray(c.Format, renderer.Formats()) {
		return fmt.Errorf("%w: %q for backend %s", plot.ErrUnsupportedFormat, c.Format, c.Backend)
	}
	return nil
}

// Telegram reports whether charts go to a Telegram chat.
func (c *Config) Telegram() bool {
	return c.TgToken != "" && c.TgChatID != 0
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
