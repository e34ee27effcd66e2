// Package logging assembles structured slog loggers and attribute helpers
// used across the ingestion pipeline.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// defines the standardized field keys (component, artist, path, group_id)
// so every package tags log lines the same way. A no-op logger is provided
// for tests and wiring code that cannot fail.
package logging
