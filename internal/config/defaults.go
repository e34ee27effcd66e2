package config

const (
	defaultDataDir        = "./data"
	defaultInputDir       = "./input"
	defaultDBFile         = "data.db"
	defaultCatalogFile    = "data.csv"
	defaultCropBound      = 600
	defaultThumbnailBound = 150
	defaultJPEGQuality    = 90
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:     defaultDataDir,
			InputDir:    defaultInputDir,
			DBFile:      defaultDBFile,
			CatalogFile: defaultCatalogFile,
		},
		Ingest: Ingest{
			CropBound:      defaultCropBound,
			ThumbnailBound: defaultThumbnailBound,
			JPEGQuality:    defaultJPEGQuality,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
