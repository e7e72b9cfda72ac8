// Package repository contains data access logic separated from HTTP handlers.
// This file defines the Venue model and repository methods for CRUD, listing
// and search operations. A Venue represents a place that hosts shows; its
// genres column stores a comma-joined list of genre tags.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used for sentinel comparisons
)

// Venue represents a venue row persisted in the database. Genres holds the
// comma-joined textual encoding of the genre list; the view layer splits it
// back into a slice for display. The ID field is the primary key and is
// auto-incremented by the DB.
type Venue struct {
	ID                 uint64 // venues.id
	Name               string // venues.name
	City               string // venues.city
	State              string // venues.state
	Address            string // venues.address
	Phone              string // venues.phone
	ImageLink          string // venues.image_link
	FacebookLink       string // venues.facebook_link
	Website            string // venues.website
	Genres             string // venues.genres (comma-joined tags)
	SeekingTalent      bool   // venues.seeking_talent (DB default TRUE)
	SeekingDescription string // venues.seeking_description
	CreatedAt          string // venues.created_at
	UpdatedAt          string // venues.updated_at
}

// VenueListRow is the slim projection used by the area-grouped board.
// Rows arrive ordered by (city, state) so the view layer can group them
// by the exact pair in a single pass.
type VenueListRow struct {
	ID               uint64
	Name             string
	City             string
	State            string
	NumUpcomingShows int64
}

// VenueRepo encapsulates all database queries related to venues. It
// depends on a sql.DB connection which should be configured elsewhere.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle. This
// function allows dependency injection of the database in tests and at
// startup. There is no initialization logic beyond assigning the field.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link,
       website, genres, seeking_talent, seeking_description, created_at, updated_at`

// Create inserts a new venue into the database. On success the venue's
// ID field will be populated with the auto-generated value. After the
// insert, a SELECT is executed to populate the CreatedAt and UpdatedAt
// fields so that callers receive a fully populated record.
func (r *VenueRepo) Create(ctx context.Context, v *Venue) error {
	const qInsert = `INSERT INTO venues
		(name, city, state, address, phone, image_link, facebook_link, website, genres, seeking_talent, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, v.Website, v.Genres, v.SeekingTalent, v.SeekingDescription)
	if err != nil {
		return err // propagate DB errors to the caller
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)

	// Follow-up SELECT to populate default timestamp fields.
	const qSelect = `SELECT created_at, updated_at FROM venues WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, v.ID).Scan(&v.CreatedAt, &v.UpdatedAt)
}

// GetByID fetches a venue by its ID. It returns ErrVenueNotFound if no
// row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`
	var v Venue
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
		&v.FacebookLink, &v.Website, &v.Genres, &v.SeekingTalent,
		&v.SeekingDescription, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// ListForBoard returns every venue ordered by (city, state) together with
// its count of upcoming shows. The upcoming count is computed in SQL so
// the listing, search and detail pages all agree on what "upcoming" means:
// start_time strictly after the current instant.
func (r *VenueRepo) ListForBoard(ctx context.Context) ([]VenueListRow, error) {
	const q = `SELECT v.id, v.name, v.city, v.state,
	              (SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > NOW()) AS num_upcoming
	           FROM venues v
	           ORDER BY v.city ASC, v.state ASC, v.id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []VenueListRow
	for rows.Next() {
		var row VenueListRow
		if err := rows.Scan(&row.ID, &row.Name, &row.City, &row.State, &row.NumUpcomingShows); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchByName returns every venue whose name contains the term as a
// case-insensitive substring. An empty term matches all venues. Results
// follow the store's natural return order; no ranking is applied.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]SearchRow, error) {
	const q = `SELECT v.id, v.name,
	              (SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > NOW()) AS num_upcoming
	           FROM venues v
	           WHERE LOWER(v.name) LIKE ? ESCAPE '\\'`
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

// Update overwrites all editable fields of the venue identified by v.ID.
// Edit submissions are full-field overwrites, not partial patches. It
// returns ErrVenueNotFound when the id does not exist; submitting values
// identical to the stored row is not an error.
func (r *VenueRepo) Update(ctx context.Context, v *Venue) error {
	const q = `UPDATE venues
	           SET name = ?, city = ?, state = ?, address = ?, phone = ?, image_link = ?,
	               facebook_link = ?, website = ?, genres = ?, seeking_talent = ?, seeking_description = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, v.Website, v.Genres, v.SeekingTalent, v.SeekingDescription, v.ID)
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

	// Zero rows affected is either "no such venue" or "nothing changed".
	const qExists = `SELECT 1 FROM venues WHERE id = ? LIMIT 1`
	var one int
	if err := r.db.QueryRowContext(ctx, qExists, v.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		return err
	}
	return nil
}

// Delete removes a venue and its dependent shows inside a single
// transaction so no orphaned show rows can remain. The shows FK restricts
// venue deletion, so dependents must go first. ErrVenueNotFound is
// returned when the id does not exist; the transaction is rolled back on
// every failure path.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	// Ensure rollback or commit at the end. The named return lets a
	// failed commit reach the caller; nothing was deleted in that case.
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ? LIMIT 1`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}
