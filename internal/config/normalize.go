package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeIngest()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.InputDir) == "" {
		c.Paths.InputDir = defaultInputDir
	}
	if c.Paths.InputDir, err = expandPath(c.Paths.InputDir); err != nil {
		return fmt.Errorf("paths.input_dir: %w", err)
	}
	c.Paths.DBFile = strings.TrimSpace(c.Paths.DBFile)
	if c.Paths.DBFile == "" {
		c.Paths.DBFile = defaultDBFile
	}
	c.Paths.CatalogFile = strings.TrimSpace(c.Paths.CatalogFile)
	if c.Paths.CatalogFile == "" {
		c.Paths.CatalogFile = defaultCatalogFile
	}
	return nil
}

func (c *Config) normalizeIngest() {
	if c.Ingest.CropBound <= 0 {
		c.Ingest.CropBound = defaultCropBound
	}
	if c.Ingest.ThumbnailBound <= 0 {
		c.Ingest.ThumbnailBound = defaultThumbnailBound
	}
	if c.Ingest.JPEGQuality <= 0 {
		c.Ingest.JPEGQuality = defaultJPEGQuality
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// filepathIsLocal reports whether name is a bare file name rather than a path.
func filepathIsLocal(name string) bool {
	return name != "" && filepath.Base(name) == name
}
