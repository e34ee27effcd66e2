package variant

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"atelier/internal/artist"
	"atelier/internal/fileutil"
	"atelier/internal/pipeline"
)

// outputExt is the fixed extension for every written variant. The full
// variant keeps the source bytes regardless of their codec; resized
// variants are re-encoded as JPEG.
const outputExt = ".jpg"

// Generator derives image variants under a destination root. Each painting
// group owns the subdirectory named after its identifier, so concurrent
// generators never write to the same path.
type Generator struct {
	root           string
	cropBound      int
	thumbnailBound int
	jpegQuality    int
}

// New returns a Generator writing below root with the given longest-side
// bounds for the cropped and thumbnail variants.
func New(root string, cropBound, thumbnailBound, jpegQuality int) *Generator {
	return &Generator{
		root:           root,
		cropBound:      cropBound,
		thumbnailBound: thumbnailBound,
		jpegQuality:    jpegQuality,
	}
}

// PrepareGroupDir creates the directory namespace for a painting group.
// An already existing directory means either an identifier collision or a
// duplicate processing of the same image, both of which must halt the run.
func (g *Generator) PrepareGroupDir(artistName string, groupID uuid.UUID) error {
	dir := filepath.Join(g.root, groupID.String())
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return pipeline.Wrap(pipeline.ErrFilesystem, artistName, "prepare group dir",
			fmt.Sprintf("%s already exists", dir), nil)
	}
	if err := os.Mkdir(dir, 0o755); err != nil {
		return pipeline.Wrap(pipeline.ErrFilesystem, artistName, "prepare group dir", dir, err)
	}
	return nil
}

// Generate decodes the source file and writes the variant for role into the
// group's directory, returning the written image with its authoritative
// post-resize dimensions.
func (g *Generator) Generate(artistName, sourcePath string, groupID uuid.UUID, role artist.Role) (artist.Image, error) {
	decoded, err := imaging.Open(sourcePath)
	if err != nil {
		return artist.Image{}, pipeline.Wrap(pipeline.ErrDecode, artistName,
			fmt.Sprintf("decode %s variant source", role), sourcePath, err)
	}

	relPath := path.Join(groupID.String(), string(role)+outputExt)
	destPath := filepath.Join(g.root, groupID.String(), string(role)+outputExt)

	switch role {
	case artist.RoleFull:
		// Full keeps the source bytes verbatim; dimensions come from the
		// decode, not the file header.
		if err := fileutil.CopyFileVerified(sourcePath, destPath); err != nil {
			return artist.Image{}, pipeline.Wrap(pipeline.ErrFilesystem, artistName,
				"copy full variant", fmt.Sprintf("%s -> %s", sourcePath, destPath), err)
		}
	case artist.RoleCropped, artist.RoleThumbnail:
		bound := g.cropBound
		if role == artist.RoleThumbnail {
			bound = g.thumbnailBound
		}
		resized := imaging.Fit(decoded, bound, bound, imaging.Lanczos)
		decoded = resized
		if err := imaging.Save(resized, destPath, imaging.JPEGQuality(g.jpegQuality)); err != nil {
			return artist.Image{}, pipeline.Wrap(pipeline.ErrFilesystem, artistName,
				fmt.Sprintf("save %s variant", role), destPath, err)
		}
	default:
		return artist.Image{}, pipeline.Wrap(pipeline.ErrInput, artistName, "generate variant",
			fmt.Sprintf("unknown role %q", role), nil)
	}

	bounds := decoded.Bounds()
	return artist.Image{
		Path:   relPath,
		Role:   role,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
