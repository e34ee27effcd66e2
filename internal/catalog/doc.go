// Package catalog reads the delimited artist catalog into validated records.
//
// The reader is strict: the header must match the expected column set
// exactly, every row must carry the full field count, and numeric columns
// must parse. A single bad row fails the whole file with its line number,
// because a partially read catalog would silently drop artists.
package catalog
