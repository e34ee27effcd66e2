// Command atelier ingests a tabular artist catalog plus a directory of
// artwork images into an embedded store of artist aggregates.
//
// Subcommands: parse-csv runs the ingestion pipeline, all scans every
// persisted artist, find-by-id looks one artist up by its identifier, and
// config inspects or creates the TOML configuration. Errors print to
// stderr and exit with status 1; nothing is partially persisted after a
// failed run.
package main
