package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"atelier/internal/config"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Ingest.CropBound != 600 || cfg.Ingest.ThumbnailBound != 150 {
		t.Fatalf("unexpected default bounds: %+v", cfg.Ingest)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.Paths.DBFile != "data.db" {
		t.Fatalf("expected default db file, got %q", cfg.Paths.DBFile)
	}
	if !filepath.IsAbs(cfg.Paths.DataDir) {
		t.Fatalf("data dir should be absolute after normalization: %q", cfg.Paths.DataDir)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[paths]
data_dir = "` + filepath.Join(dir, "out") + `"
input_dir = "` + filepath.Join(dir, "in") + `"
db_file = "  artists.db  "

[ingest]
crop_bound = 800
thumbnail_bound = 100

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: exists=%v path=%q", exists, resolved)
	}
	if cfg.Paths.DBFile != "artists.db" {
		t.Fatalf("db file not trimmed: %q", cfg.Paths.DBFile)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
	if cfg.Ingest.CropBound != 800 || cfg.Ingest.ThumbnailBound != 100 {
		t.Fatalf("ingest bounds not applied: %+v", cfg.Ingest)
	}
	if got, want := cfg.DatabasePath(), filepath.Join(dir, "out", "artists.db"); got != want {
		t.Fatalf("DatabasePath = %q, want %q", got, want)
	}
	if got, want := cfg.ImageDir(), filepath.Join(dir, "out", "img"); got != want {
		t.Fatalf("ImageDir = %q, want %q", got, want)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{
			name:   "db file with path",
			mutate: func(c *config.Config) { c.Paths.DBFile = "../evil.db" },
			want:   "db_file",
		},
		{
			name:   "thumbnail larger than crop",
			mutate: func(c *config.Config) { c.Ingest.ThumbnailBound = 700 },
			want:   "thumbnail_bound",
		},
		{
			name:   "quality out of range",
			mutate: func(c *config.Config) { c.Ingest.JPEGQuality = 150 },
			want:   "jpeg_quality",
		},
		{
			name:   "bad format",
			mutate: func(c *config.Config) { c.Logging.Format = "yaml" },
			want:   "logging.format",
		},
		{
			name:   "bad level",
			mutate: func(c *config.Config) { c.Logging.Level = "loud" },
			want:   "logging.level",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation failure")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q should mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestEnsureDirectories(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(t.TempDir(), "data")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.ImageDir()); err != nil || !info.IsDir() {
		t.Fatalf("image dir missing: %v", err)
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("WriteSample failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[paths]") {
		t.Fatalf("sample config missing [paths] section")
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected second WriteSample to fail")
	}
}
