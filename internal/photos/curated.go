package photos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pastlens/photoguessr/internal/photoguessr"
)

// ErrNotFound is returned when a curated photo does not exist.
var ErrNotFound = errors.New("not found")

// CuratedStore is the SQLite-backed curated photo catalog.
type CuratedStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewCuratedStore wraps an open database.
func NewCuratedStore(db *sql.DB) *CuratedStore {
	return &CuratedStore{db: db, now: time.Now}
}

// Deck draws a random deck for a category. CategoryAll draws across all
// categories.
func (s *CuratedStore) Deck(ctx context.Context, category photoguessr.Category) ([]photoguessr.Photo, error) {
	query := `
		SELECT id, url, title, year, latitude, longitude, source,
		       license, original_source, date_created, photographer, description
		FROM photos
	`
	args := []any{}
	if category != "" && category != photoguessr.CategoryAll {
		query += ` WHERE category = ?`
		args = append(args, string(category))
	}
	query += ` ORDER BY RANDOM() LIMIT ?`
	args = append(args, photoguessr.DeckSize)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying curated photos: %w", err)
	}
	defer rows.Close()

	var deck []photoguessr.Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		deck = append(deck, p)
	}
	return deck, rows.Err()
}

// List returns the whole catalog, optionally filtered by category, for the
// admin screens.
func (s *CuratedStore) List(ctx context.Context, category photoguessr.Category) ([]CuratedPhoto, error) {
	query := `
		SELECT id, url, title, year, latitude, longitude, source, category,
		       license, original_source, date_created, photographer, description
		FROM photos
	`
	args := []any{}
	if category != "" && category != photoguessr.CategoryAll {
		query += ` WHERE category = ?`
		args = append(args, string(category))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing curated photos: %w", err)
	}
	defer rows.Close()

	var out []CuratedPhoto
	for rows.Next() {
		var cp CuratedPhoto
		var photographer, description sql.NullString
		err := rows.Scan(&cp.ID, &cp.URL, &cp.Title, &cp.Year,
			&cp.Coordinates.Latitude, &cp.Coordinates.Longitude,
			&cp.Source, &cp.Category,
			&cp.Metadata.License, &cp.Metadata.OriginalSource, &cp.Metadata.DateCreated,
			&photographer, &description)
		if err != nil {
			return nil, fmt.Errorf("scanning curated photo: %w", err)
		}
		cp.Metadata.Photographer = photographer.String
		cp.Metadata.Description = description.String
		out = append(out, cp)
	}
	return out, rows.Err()
}

// CuratedPhoto is a catalog entry: a Photo plus its category bucket.
type CuratedPhoto struct {
	photoguessr.Photo
	Category photoguessr.Category `json:"category"`
}

// Upsert inserts or replaces a curated photo. The photo must pass domain
// validation and carry a known category.
func (s *CuratedStore) Upsert(ctx context.Context, cp CuratedPhoto) error {
	if err := cp.Validate(s.now()); err != nil {
		return err
	}
	if !photoguessr.ValidCategory(cp.Category) || cp.Category == photoguessr.CategoryAll {
		return fmt.Errorf("photo %s: invalid category %q", cp.ID, cp.Category)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO photos (id, url, title, year, latitude, longitude, source, category,
		                    license, original_source, date_created, photographer, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			url = excluded.url, title = excluded.title, year = excluded.year,
			latitude = excluded.latitude, longitude = excluded.longitude,
			source = excluded.source, category = excluded.category,
			license = excluded.license, original_source = excluded.original_source,
			date_created = excluded.date_created, photographer = excluded.photographer,
			description = excluded.description
	`, cp.ID, cp.URL, cp.Title, cp.Year,
		cp.Coordinates.Latitude, cp.Coordinates.Longitude, cp.Source, string(cp.Category),
		cp.Metadata.License, cp.Metadata.OriginalSource, cp.Metadata.DateCreated,
		nullable(cp.Metadata.Photographer), nullable(cp.Metadata.Description))
	if err != nil {
		return fmt.Errorf("upserting photo %s: %w", cp.ID, err)
	}
	return nil
}

// Delete removes a curated photo.
func (s *CuratedStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting photo %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the catalog size.
func (s *CuratedStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM photos`).Scan(&n)
	return n, err
}

func scanPhoto(rows *sql.Rows) (photoguessr.Photo, error) {
	var p photoguessr.Photo
	var photographer, description sql.NullString
	err := rows.Scan(&p.ID, &p.URL, &p.Title, &p.Year,
		&p.Coordinates.Latitude, &p.Coordinates.Longitude, &p.Source,
		&p.Metadata.License, &p.Metadata.OriginalSource, &p.Metadata.DateCreated,
		&photographer, &description)
	if err != nil {
		return p, fmt.Errorf("scanning photo: %w", err)
	}
	p.Metadata.Photographer = photographer.String
	p.Metadata.Description = description.String
	return p, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
