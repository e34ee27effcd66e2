package store_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"atelier/internal/artist"
	"atelier/internal/pipeline"
	"atelier/internal/testsupport"
)

func makeArtist(t *testing.T, name string) *artist.Artist {
	t.Helper()
	id, err := artist.NewID()
	if err != nil {
		t.Fatal(err)
	}
	gid, err := artist.NewID()
	if err != nil {
		t.Fatal(err)
	}
	return &artist.Artist{
		ID:          id,
		Name:        name,
		Born:        "1853",
		Died:        "1890",
		Genre:       "Post-Impressionism",
		Nationality: "Dutch",
		Bio:         "Painter.",
		Wikipedia:   "http://example.org/" + name,
		Paintings: []artist.Painting{
			{
				ID:        gid,
				Full:      artist.Image{Path: gid.String() + "/full.jpg", Role: artist.RoleFull, Width: 800, Height: 600},
				Cropped:   artist.Image{Path: gid.String() + "/cropped.jpg", Role: artist.RoleCropped, Width: 600, Height: 450},
				Thumbnail: artist.Image{Path: gid.String() + "/thumbnail.jpg", Role: artist.RoleThumbnail, Width: 150, Height: 113},
			},
		},
	}
}

func TestInsertAndGetByIDRoundTrip(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := t.Context()

	want := makeArtist(t, "Vincent Van Gogh")
	if err := st.InsertArtists(ctx, []*artist.Artist{want}); err != nil {
		t.Fatalf("InsertArtists failed: %v", err)
	}

	got, err := st.GetByID(ctx, want.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != want.Name || got.Born != want.Born || got.Died != want.Died {
		t.Fatalf("fields did not round trip: %+v", got)
	}
	if len(got.Paintings) != 1 || got.Paintings[0].ID != want.Paintings[0].ID {
		t.Fatalf("paintings did not round trip: %+v", got.Paintings)
	}
	if got.Paintings[0].Thumbnail.Width != 150 {
		t.Fatalf("variant dimensions lost: %+v", got.Paintings[0].Thumbnail)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	random, err := uuid.NewV7()
	if err != nil {
		t.Fatal(err)
	}
	_, err = st.GetByID(t.Context(), random)
	if !errors.Is(err, pipeline.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestDuplicateInsertRollsBackWholeBatch(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := t.Context()

	existing := makeArtist(t, "Claude Monet")
	if err := st.InsertArtists(ctx, []*artist.Artist{existing}); err != nil {
		t.Fatalf("seed insert failed: %v", err)
	}

	fresh := makeArtist(t, "Edgar Degas")
	duplicate := makeArtist(t, "Impostor")
	duplicate.ID = existing.ID

	err := st.InsertArtists(ctx, []*artist.Artist{fresh, duplicate})
	if !errors.Is(err, pipeline.ErrPersistence) {
		t.Fatalf("expected persistence error on duplicate key, got %v", err)
	}

	// The fresh artist must not have been committed either.
	count, err := st.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("store should hold only the seed artist, got %d rows", count)
	}
	if _, err := st.GetByID(ctx, fresh.ID); !errors.Is(err, pipeline.ErrNotFound) {
		t.Fatalf("partial batch leaked into store: %v", err)
	}
}

func TestAllOrdersByIdentifier(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := t.Context()

	first := makeArtist(t, "First")
	second := makeArtist(t, "Second")
	// Insert out of order; the scan order follows identifiers, which are
	// time-ordered.
	if err := st.InsertArtists(ctx, []*artist.Artist{second, first}); err != nil {
		t.Fatalf("InsertArtists failed: %v", err)
	}

	all, err := st.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 artists, got %d", len(all))
	}
	if all[0].ID.String() > all[1].ID.String() {
		t.Fatalf("scan not ordered by identifier: %s before %s", all[0].ID, all[1].ID)
	}
}

func TestAllEmptyStore(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	all, err := st.All(t.Context())
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty scan, got %d", len(all))
	}
}

func TestReopenKeepsData(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	want := makeArtist(t, "Persistent")
	if err := st.InsertArtists(t.Context(), []*artist.Artist{want}); err != nil {
		t.Fatalf("InsertArtists failed: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	got, err := reopened.GetByID(t.Context(), want.ID)
	if err != nil {
		t.Fatalf("GetByID after reopen failed: %v", err)
	}
	if got.Name != "Persistent" {
		t.Fatalf("unexpected artist after reopen: %+v", got)
	}
}
