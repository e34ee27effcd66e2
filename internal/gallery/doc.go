// Package gallery discovers an artist's source images and assembles painting
// groups from them.
//
// The artist's image directory is derived by joining the catalog name with
// underscores; a missing directory is a hard lookup error, never a silent
// empty result. Directory entries are processed in parallel with fail-fast
// cancellation, and each entry yields one group of three variants tagged
// with a fresh time-ordered identifier.
package gallery
