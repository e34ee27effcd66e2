// Package pipeline defines the shared error taxonomy for the ingestion
// pipeline.
//
// Failures are tagged with sentinel markers (input, lookup, decode,
// filesystem, parse, persistence, not-found) so the CLI and tests can
// classify an error without inspecting its text. The Wrap helper attaches
// the owning artist and operation to the message; errors are propagated
// upward without local recovery because every failure class here needs
// human or operator correction, not a retry.
package pipeline
