// Package palette provides a SQLite-backed store for named color
// palettes and nearest-color lookup over them.
package palette

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	colorlab "github.com/MeKo-Tech/colorlab"
	"github.com/MeKo-Tech/colorlab/eval"
)

const (
	// DefaultBatchSize is the number of colors to buffer before flushing
	// to the database.
	DefaultBatchSize = 100
)

// ErrNotFound is returned when a palette or color does not exist.
var ErrNotFound = errors.New("palette: not found")

// Color is one entry of a palette: a label plus an sRGB triple with
// channels in [0, 255], the scale the conversion engine's rgb space
// uses.
type Color struct {
	Label string
	RGB   [3]float64
}

// Palette is a named, ordered list of colors.
type Palette struct {
	Name        string
	Description string
	CreatedAt   time.Time
	Colors      []Color
}

// pendingColor is a buffered insert waiting for the next flush.
type pendingColor struct {
	palette string
	color   Color
}

// Store persists palettes in a SQLite database.
type Store struct {
	db        *sql.DB
	path      string
	batch     []pendingColor
	batchSize int
	mu        sync.Mutex
}

// Open opens (creating if necessary) a palette database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set performance pragmas
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA cache_size = 50000",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{
		db:        db,
		path:      path,
		batch:     make([]pendingColor, 0, DefaultBatchSize),
		batchSize: DefaultBatchSize,
	}, nil
}

// createSchema creates the palette database schema.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS palettes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS colors (
			palette_id INTEGER NOT NULL REFERENCES palettes(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			label TEXT NOT NULL DEFAULT '',
			r REAL NOT NULL,
			g REAL NOT NULL,
			b REAL NOT NULL
		);

		CREATE UNIQUE INDEX IF NOT EXISTS color_index ON colors (palette_id, position);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// Create inserts a new, empty palette.
func (s *Store) Create(name, description string) error {
	_, err := s.db.Exec(
		"INSERT INTO palettes (name, description, created_at) VALUES (?, ?, ?)",
		name, description, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to create palette %q: %w", name, err)
	}
	return nil
}

// Add buffers a color for the named palette. When the batch is full it
// is automatically flushed.
func (s *Store) Add(palette string, c Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.batch = append(s.batch, pendingColor{palette: palette, color: c})

	if len(s.batch) >= s.batchSize {
		return s.flushLocked()
	}

	return nil
}

// Flush writes any buffered colors to the database.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

// flushLocked writes buffered colors. Must be called with lock held.
func (s *Store) flushLocked() error {
	if len(s.batch) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck

	stmt, err := tx.Prepare(`
		INSERT INTO colors (palette_id, position, label, r, g, b)
		SELECT id,
		       (SELECT COALESCE(MAX(position), -1) + 1 FROM colors WHERE palette_id = palettes.id),
		       ?, ?, ?, ?
		FROM palettes WHERE name = ?`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range s.batch {
		res, err := stmt.Exec(p.color.Label, p.color.RGB[0], p.color.RGB[1], p.color.RGB[2], p.palette)
		if err != nil {
			return fmt.Errorf("failed to insert color into %q: %w", p.palette, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read insert result: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: palette %q", ErrNotFound, p.palette)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.batch = s.batch[:0]
	return nil
}

// Get loads a palette and its colors.
func (s *Store) Get(name string) (Palette, error) {
	if err := s.Flush(); err != nil {
		return Palette{}, err
	}

	var (
		id        int64
		pal       Palette
		createdAt int64
	)
	err := s.db.QueryRow(
		"SELECT id, name, description, created_at FROM palettes WHERE name = ?", name,
	).Scan(&id, &pal.Name, &pal.Description, &createdAt)
	if err == sql.ErrNoRows {
		return Palette{}, fmt.Errorf("%w: palette %q", ErrNotFound, name)
	}
	if err != nil {
		return Palette{}, fmt.Errorf("failed to query palette: %w", err)
	}
	pal.CreatedAt = time.Unix(createdAt, 0)

	rows, err := s.db.Query(
		"SELECT label, r, g, b FROM colors WHERE palette_id = ? ORDER BY position", id,
	)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to query colors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c Color
		if err := rows.Scan(&c.Label, &c.RGB[0], &c.RGB[1], &c.RGB[2]); err != nil {
			return Palette{}, fmt.Errorf("failed to scan color row: %w", err)
		}
		pal.Colors = append(pal.Colors, c)
	}
	if err := rows.Err(); err != nil {
		return Palette{}, fmt.Errorf("error iterating colors: %w", err)
	}

	return pal, nil
}

// List returns the names of all palettes in creation order.
func (s *Store) List() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM palettes ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query palettes: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan palette row: %w", err)
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating palettes: %w", err)
	}
	return names, nil
}

// Remove deletes a palette and its colors.
func (s *Store) Remove(name string) error {
	if err := s.Flush(); err != nil {
		return err
	}

	res, err := s.db.Exec("DELETE FROM palettes WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete palette %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: palette %q", ErrNotFound, name)
	}
	return nil
}

// Nearest returns the color of the named palette closest to rgb under
// CIEDE2000, together with its difference.
func (s *Store) Nearest(palette string, rgb [3]float64) (Color, float64, error) {
	pal, err := s.Get(palette)
	if err != nil {
		return Color{}, 0, err
	}
	if len(pal.Colors) == 0 {
		return Color{}, 0, fmt.Errorf("%w: palette %q has no colors", ErrNotFound, palette)
	}

	target, _, err := colorlab.Convert(rgb, colorlab.RGB, colorlab.Lab)
	if err != nil {
		return Color{}, 0, err
	}

	best := pal.Colors[0]
	bestD := 0.0
	for i, c := range pal.Colors {
		lab, _, err := colorlab.Convert(c.RGB, colorlab.RGB, colorlab.Lab)
		if err != nil {
			return Color{}, 0, err
		}
		d := eval.DistanceCIEDE2000(target, lab)
		if i == 0 || d < bestD {
			best = c
			bestD = d
		}
	}
	return best, bestD, nil
}

// Close flushes any buffered colors and closes the database.
func (s *Store) Close() error {
	if err := s.Flush(); err != nil {
		s.db.Close()
		return err
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
