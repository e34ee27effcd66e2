package testsupport

import (
	"path/filepath"
	"testing"

	"atelier/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.InputDir = filepath.Join(base, "input")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure test directories: %v", err)
	}
	return &cfg
}

// WithBounds overrides the variant size bounds on the test config.
func WithBounds(crop, thumbnail int) ConfigOption {
	return func(c *config.Config) {
		c.Ingest.CropBound = crop
		c.Ingest.ThumbnailBound = thumbnail
	}
}
