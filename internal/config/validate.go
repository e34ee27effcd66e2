package config

import (
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateIngest(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if !filepathIsLocal(c.Paths.DBFile) {
		return fmt.Errorf("paths.db_file must be a bare file name, got %q", c.Paths.DBFile)
	}
	if !filepathIsLocal(c.Paths.CatalogFile) {
		return fmt.Errorf("paths.catalog_file must be a bare file name, got %q", c.Paths.CatalogFile)
	}
	return nil
}

func (c *Config) validateIngest() error {
	if c.Ingest.ThumbnailBound >= c.Ingest.CropBound {
		return fmt.Errorf("ingest.thumbnail_bound (%d) must be smaller than ingest.crop_bound (%d)",
			c.Ingest.ThumbnailBound, c.Ingest.CropBound)
	}
	if c.Ingest.JPEGQuality > 100 {
		return fmt.Errorf("ingest.jpeg_quality must be between 1 and 100, got %d", c.Ingest.JPEGQuality)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
