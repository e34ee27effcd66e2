package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"atelier/internal/artist"
	"atelier/internal/catalog"
	"atelier/internal/config"
	"atelier/internal/gallery"
	"atelier/internal/logging"
	"atelier/internal/pipeline"
	"atelier/internal/store"
	"atelier/internal/variant"
)

// Runner drives one ingestion run: fan the builder out over all catalog
// records, then commit every aggregate in a single store transaction.
type Runner struct {
	cfg     *config.Config
	store   *store.Store
	builder *Builder
	lock    *flock.Flock
	logger  *slog.Logger
}

// NewRunner wires a Runner for the given config and store.
func NewRunner(cfg *config.Config, st *store.Store, logger *slog.Logger) *Runner {
	gen := variant.New(cfg.ImageDir(), cfg.Ingest.CropBound, cfg.Ingest.ThumbnailBound, cfg.Ingest.JPEGQuality)
	asm := gallery.New(cfg.Paths.InputDir, gen, logger)
	return &Runner{
		cfg:     cfg,
		store:   st,
		builder: NewBuilder(asm, logger),
		lock:    flock.New(cfg.LockPath()),
		logger:  logging.NewComponentLogger(logger, "ingest"),
	}
}

// Ingest builds aggregates for all records in parallel and persists them
// atomically. The first build failure cancels the remaining work and aborts
// the run before any store write, so a failing record never produces a
// partially persisted batch.
func (r *Runner) Ingest(ctx context.Context, records []catalog.Record) ([]*artist.Artist, error) {
	if err := r.cfg.EnsureDirectories(); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFilesystem, "", "ensure directories", r.cfg.Paths.DataDir, err)
	}

	if err := r.acquireLock(); err != nil {
		return nil, err
	}
	defer func() { _ = r.lock.Unlock() }()

	start := time.Now()
	r.logger.Info("building artist aggregates",
		logging.Args(logging.Int(logging.FieldCount, len(records)))...)

	artists := make([]*artist.Artist, len(records))
	g, gctx := errgroup.WithContext(ctx)
	for i, rec := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			built, err := r.builder.Build(gctx, rec)
			if err != nil {
				return err
			}
			artists[i] = built
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.logger.Error("ingestion aborted before commit", logging.Args(logging.Error(err))...)
		return nil, err
	}

	if err := r.store.InsertArtists(ctx, artists); err != nil {
		r.logger.Error("commit failed, store unchanged", logging.Args(logging.Error(err))...)
		return nil, err
	}

	r.logger.Info("ingestion committed",
		logging.Args(
			logging.Int(logging.FieldCount, len(artists)),
			logging.Duration("elapsed", time.Since(start)),
		)...)
	return artists, nil
}

// acquireLock takes the per-data-dir run lock so two concurrent ingestions
// cannot interleave writes under the image tree.
func (r *Runner) acquireLock() error {
	ok, err := r.lock.TryLock()
	if err != nil {
		return pipeline.Wrap(pipeline.ErrFilesystem, "", "acquire ingest lock", r.cfg.LockPath(), err)
	}
	if !ok {
		return pipeline.Wrap(pipeline.ErrFilesystem, "", "acquire ingest lock",
			"another ingestion is already running", nil)
	}
	return nil
}
