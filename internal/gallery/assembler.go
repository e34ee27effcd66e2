package gallery

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"atelier/internal/artist"
	"atelier/internal/logging"
	"atelier/internal/pipeline"
	"atelier/internal/variant"
)

// imagesSubdir is the directory under the input root that holds one
// subdirectory per artist.
const imagesSubdir = "images"

// Assembler discovers an artist's source images and fans variant generation
// out over them.
type Assembler struct {
	inputRoot string
	gen       *variant.Generator
	logger    *slog.Logger
}

// New returns an Assembler reading source images below inputRoot and
// writing variants through gen.
func New(inputRoot string, gen *variant.Generator, logger *slog.Logger) *Assembler {
	return &Assembler{
		inputRoot: inputRoot,
		gen:       gen,
		logger:    logging.NewComponentLogger(logger, "gallery"),
	}
}

// SourceDir derives the artist's image directory from its name: the catalog
// name with spaces replaced by underscores. The catalog and the image corpus
// must agree on this convention.
func (a *Assembler) SourceDir(artistName string) string {
	return filepath.Join(a.inputRoot, imagesSubdir, strings.ReplaceAll(artistName, " ", "_"))
}

// Assemble builds one painting group per regular file in the artist's image
// directory. Entries are processed in parallel; the first failure cancels
// the remaining work and fails the whole artist. The returned order follows
// the directory listing, but callers must not rely on it for correctness.
func (a *Assembler) Assemble(ctx context.Context, artistName string) ([]artist.Painting, error) {
	dir := a.SourceDir(artistName)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, pipeline.Wrap(pipeline.ErrLookup, artistName, "locate image directory", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFilesystem, artistName, "list image directory", dir, err)
	}

	sources := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			sources = append(sources, filepath.Join(dir, entry.Name()))
		}
	}

	a.logger.Debug("assembling painting groups",
		logging.Args(
			logging.String(logging.FieldArtist, artistName),
			logging.String(logging.FieldPath, dir),
			logging.Int(logging.FieldCount, len(sources)),
		)...)

	paintings := make([]artist.Painting, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, source := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			painting, err := a.buildGroup(artistName, source)
			if err != nil {
				return err
			}
			paintings[i] = painting
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paintings, nil
}

// buildGroup allocates a fresh group identifier and derives all three
// variants. Any single failure fails the group; already written sibling
// variants are left behind for the operator, never half-registered.
func (a *Assembler) buildGroup(artistName, source string) (artist.Painting, error) {
	groupID, err := artist.NewID()
	if err != nil {
		return artist.Painting{}, pipeline.Wrap(pipeline.ErrInput, artistName, "allocate group id", source, err)
	}
	if err := a.gen.PrepareGroupDir(artistName, groupID); err != nil {
		return artist.Painting{}, err
	}

	painting := artist.Painting{ID: groupID}
	for _, role := range []artist.Role{artist.RoleFull, artist.RoleCropped, artist.RoleThumbnail} {
		img, err := a.gen.Generate(artistName, source, groupID, role)
		if err != nil {
			return artist.Painting{}, err
		}
		switch role {
		case artist.RoleFull:
			painting.Full = img
		case artist.RoleCropped:
			painting.Cropped = img
		case artist.RoleThumbnail:
			painting.Thumbnail = img
		}
	}

	a.logger.Debug("painting group built",
		logging.Args(
			logging.String(logging.FieldArtist, artistName),
			logging.String(logging.FieldGroupID, groupID.String()),
			logging.String(logging.FieldPath, source),
		)...)
	return painting, nil
}
