// Package store persists artist aggregates in SQLite and serves the two
// read paths the CLI needs: full scan and primary-key lookup.
//
// Each aggregate is written as one row with its painting groups JSON-encoded
// alongside the descriptive fields, so inserts are atomic per artist and a
// batch insert is a single transaction with all-or-nothing semantics. The
// schema carries a version marker; mismatches are an error rather than a
// silent migration, since a re-ingest is always cheaper than reconciling a
// drifted image tree.
package store
