package artist

import (
	"github.com/google/uuid"
)

// Role identifies which derived variant an Image represents.
type Role string

const (
	RoleFull      Role = "full"
	RoleCropped   Role = "cropped"
	RoleThumbnail Role = "thumbnail"
)

// Image is one derived raster file. Path is relative to the image directory
// root and always uses forward slashes. Width and height are the dimensions
// of the written file, not the source.
type Image struct {
	Path   string `json:"path"`
	Role   Role   `json:"role"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Painting groups the variants derived from a single source artwork file.
// The ID namespaces all three variant paths under a common directory
// segment, so path uniqueness follows from ID uniqueness.
type Painting struct {
	ID        uuid.UUID `json:"id"`
	Full      Image     `json:"full"`
	Cropped   Image     `json:"cropped"`
	Thumbnail Image     `json:"thumbnail"`
}

// Artist is the aggregate root persisted by the store. It is constructed
// once per successful ingestion of a catalog record and never mutated
// afterwards. Born and died are opaque text: the source data is too
// inconsistent to parse into calendar dates.
type Artist struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Born        string     `json:"born"`
	Died        string     `json:"died"`
	Genre       string     `json:"genre"`
	Nationality string     `json:"nationality"`
	Bio         string     `json:"bio"`
	Wikipedia   string     `json:"wikipedia"`
	Paintings   []Painting `json:"paintings"`
}

// NewID allocates a time-ordered unique identifier. UUIDv7 combines a
// millisecond timestamp prefix with random bits, so identifiers generated
// concurrently never collide and sort roughly chronologically.
func NewID() (uuid.UUID, error) {
	return uuid.NewV7()
}
