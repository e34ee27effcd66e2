package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"atelier/internal/artist"
	"atelier/internal/pipeline"
)

// Store persists artist aggregates in SQLite, indexed by their identifier.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the artist database and ensures the schema.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// InsertArtists writes every aggregate in a single transaction. A duplicate
// primary key, or any other insert failure, rolls the whole batch back so
// the store is either fully updated or untouched.
func (s *Store) InsertArtists(ctx context.Context, artists []*artist.Artist) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrPersistence, "", "begin transaction", s.path, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO artists (
            id, name, born, died, genre, nationality, bio, wikipedia, paintings
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrPersistence, "", "prepare insert", s.path, err)
	}
	defer stmt.Close()

	for _, a := range artists {
		paintings, err := json.Marshal(a.Paintings)
		if err != nil {
			return pipeline.Wrap(pipeline.ErrPersistence, a.Name, "encode paintings", a.ID.String(), err)
		}
		if _, err := stmt.ExecContext(ctx,
			a.ID.String(), a.Name, a.Born, a.Died, a.Genre, a.Nationality,
			a.Bio, a.Wikipedia, string(paintings),
		); err != nil {
			return pipeline.Wrap(pipeline.ErrPersistence, a.Name, "insert artist", a.ID.String(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return pipeline.Wrap(pipeline.ErrPersistence, "", "commit transaction", s.path, err)
	}
	return nil
}

// All scans every persisted artist ordered by identifier. UUIDv7 text sorts
// roughly chronologically, so the scan order mirrors insertion time.
func (s *Store) All(ctx context.Context) ([]*artist.Artist, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+" FROM artists ORDER BY id")
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrPersistence, "", "scan artists", s.path, err)
	}
	defer rows.Close()

	var artists []*artist.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrPersistence, "", "scan artists", s.path, err)
	}
	return artists, nil
}

// GetByID looks one artist up by primary key. A missing row surfaces as
// pipeline.ErrNotFound, distinct from store failures.
func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*artist.Artist, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+" FROM artists WHERE id = ?", id.String())
	a, err := scanArtist(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pipeline.Wrap(pipeline.ErrNotFound, "", "find artist", id.String(), nil)
		}
		return nil, err
	}
	return a, nil
}

// Count returns the number of persisted artists.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM artists").Scan(&count); err != nil {
		return 0, pipeline.Wrap(pipeline.ErrPersistence, "", "count artists", s.path, err)
	}
	return count, nil
}

const selectColumns = "SELECT id, name, born, died, genre, nationality, bio, wikipedia, paintings"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtist(row rowScanner) (*artist.Artist, error) {
	var (
		rawID     string
		a         artist.Artist
		paintings string
	)
	if err := row.Scan(&rawID, &a.Name, &a.Born, &a.Died, &a.Genre, &a.Nationality, &a.Bio, &a.Wikipedia, &paintings); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, pipeline.Wrap(pipeline.ErrPersistence, "", "scan artist row", "", err)
	}

	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrPersistence, a.Name, "parse stored id", rawID, err)
	}
	a.ID = id

	if err := json.Unmarshal([]byte(paintings), &a.Paintings); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrPersistence, a.Name, "decode paintings", rawID, err)
	}
	return &a, nil
}
