package ingest

import (
	"context"
	"log/slog"

	"atelier/internal/artist"
	"atelier/internal/catalog"
	"atelier/internal/gallery"
	"atelier/internal/logging"
	"atelier/internal/pipeline"
)

// Builder turns a validated catalog record into a persistable artist
// aggregate: it derives the born/died fields, assembles the painting groups,
// and allocates the aggregate's identifier.
type Builder struct {
	assembler *gallery.Assembler
	logger    *slog.Logger
}

// NewBuilder returns a Builder assembling paintings through asm.
func NewBuilder(asm *gallery.Assembler, logger *slog.Logger) *Builder {
	return &Builder{
		assembler: asm,
		logger:    logging.NewComponentLogger(logger, "builder"),
	}
}

// Build constructs the aggregate for one catalog record. Any failure —
// malformed year range, missing image directory, unprocessable image —
// fails the whole artist; there are no partial aggregates.
func (b *Builder) Build(ctx context.Context, rec catalog.Record) (*artist.Artist, error) {
	born, died, err := artist.SplitYears(rec.Years)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrParse, rec.Name, "split year range", rec.Years, err)
	}

	paintings, err := b.assembler.Assemble(ctx, rec.Name)
	if err != nil {
		return nil, err
	}

	id, err := artist.NewID()
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrInput, rec.Name, "allocate artist id", "", err)
	}

	b.logger.Debug("artist aggregate built",
		logging.Args(
			logging.String(logging.FieldArtist, rec.Name),
			logging.Int(logging.FieldCount, len(paintings)),
		)...)

	return &artist.Artist{
		ID:          id,
		Name:        rec.Name,
		Born:        born,
		Died:        died,
		Genre:       rec.Genre,
		Nationality: rec.Nationality,
		Bio:         rec.Bio,
		Wikipedia:   rec.Wikipedia,
		Paintings:   paintings,
	}, nil
}
