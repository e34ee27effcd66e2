// Package artist defines the persisted domain model: the Artist aggregate,
// its Paintings (one per source artwork file), and the derived Image
// variants each painting owns.
//
// Aggregates are immutable once constructed. Identifiers are UUIDv7 values
// allocated through NewID; their uniqueness is intrinsic (timestamp plus
// randomness), so concurrent builders need no coordination. Rendering
// helpers live here as pure functions so display formatting never leaks
// into the persisted shape.
package artist
