// Package ingest orchestrates an ingestion run from catalog records to
// committed artist aggregates.
//
// The Builder handles one record: year-range derivation, painting assembly,
// identifier allocation. The Runner fans builders out over the whole catalog
// in parallel with fail-fast cancellation, takes a file lock so runs never
// overlap on the same data directory, and commits every aggregate in a
// single store transaction. A run either persists the entire batch or
// leaves the store untouched; there are no retries at any step.
package ingest
