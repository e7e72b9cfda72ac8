// This file defines the Artist model and repository methods. Artists mirror
// venues structurally except they have no street address and seek venues
// rather than talent.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Artist represents an artist row persisted in the database. Genres holds
// the comma-joined textual encoding of the genre list.
type Artist struct {
	ID                 uint64 // artists.id
	Name               string // artists.name
	City               string // artists.city
	State              string // artists.state
	Phone              string // artists.phone
	ImageLink          string // artists.image_link
	FacebookLink       string // artists.facebook_link
	Website            string // artists.website
	Genres             string // artists.genres (comma-joined tags)
	SeekingVenue       bool   // artists.seeking_venue (DB default TRUE)
	SeekingDescription string // artists.seeking_description
	CreatedAt          string // artists.created_at
	UpdatedAt          string // artists.updated_at
}

// ArtistListRow is the slim projection used by the flat artist listing.
type ArtistListRow struct {
	ID   uint64
	Name string
}

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

const artistColumns = `id, name, city, state, phone, image_link, facebook_link,
       website, genres, seeking_venue, seeking_description, created_at, updated_at`

// Create inserts a new artist into the database. On success the artist's
// ID is populated with the auto-generated value and a follow-up SELECT
// fills the timestamp fields.
func (r *ArtistRepo) Create(ctx context.Context, a *Artist) error {
	const qInsert = `INSERT INTO artists
		(name, city, state, phone, image_link, facebook_link, website, genres, seeking_venue, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		a.Name, a.City, a.State, a.Phone, a.ImageLink,
		a.FacebookLink, a.Website, a.Genres, a.SeekingVenue, a.SeekingDescription)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM artists WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, a.ID).Scan(&a.CreatedAt, &a.UpdatedAt)
}

// GetByID fetches an artist by its ID. It returns ErrArtistNotFound if no
// row is found.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists WHERE id = ?`
	var a Artist
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.ImageLink,
		&a.FacebookLink, &a.Website, &a.Genres, &a.SeekingVenue,
		&a.SeekingDescription, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListAll returns id and name for every artist. The listing page shows
// nothing else, so the projection stays slim.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]ArtistListRow, error) {
	const q = `SELECT id, name FROM artists ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []ArtistListRow
	for rows.Next() {
		var row ArtistListRow
		if err := rows.Scan(&row.ID, &row.Name); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchByName returns every artist whose name contains the term as a
// case-insensitive substring. An empty term matches all artists.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]SearchRow, error) {
	const q = `SELECT a.id, a.name,
	              (SELECT COUNT(*) FROM shows s WHERE s.artist_id = a.id AND s.start_time > NOW()) AS num_upcoming
	           FROM artists a
	           WHERE LOWER(a.name) LIKE ? ESCAPE '\\'`
	rows, err := r.db.QueryContext(ctx, q, likePattern(term))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []SearchRow
	for rows.Next() {
		var row SearchRow
		if err := rows.Scan(&row.ID, &row.Name, &row.NumUpcomingShows); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update overwrites all editable fields of the artist identified by a.ID.
// It returns ErrArtistNotFound when the id does not exist; submitting
// values identical to the stored row is not an error.
func (r *ArtistRepo) Update(ctx context.Context, a *Artist) error {
	const q = `UPDATE artists
	           SET name = ?, city = ?, state = ?, phone = ?, image_link = ?,
	               facebook_link = ?, website = ?, genres = ?, seeking_venue = ?, seeking_description = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, a.ImageLink,
		a.FacebookLink, a.Website, a.Genres, a.SeekingVenue, a.SeekingDescription, a.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	const qExists = `SELECT 1 FROM artists WHERE id = ? LIMIT 1`
	var one int
	if err := r.db.QueryRowContext(ctx, qExists, a.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrArtistNotFound
		}
		return err
	}
	return nil
}
