// Package variant turns one source artwork file into its derived raster
// variants: a verbatim full-size copy, a bounded cropped rendition, and a
// thumbnail.
//
// Resizing uses Lanczos resampling with the aspect ratio preserved and the
// longest side held to the configured bound; exact pixel values are not a
// contract, the bound is. Variants are written under a directory named by
// the owning group's identifier, and creating that directory twice is a
// hard error so identifier collisions or duplicate processing cannot
// silently overwrite files.
package variant
