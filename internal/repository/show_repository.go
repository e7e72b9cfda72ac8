// This file defines the Show model and repository methods. A Show is a join
// entity linking one venue and one artist at a start time; it must always
// reference existing rows on both sides, which the shows foreign keys
// enforce at insert time.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// fkViolation is the MySQL error number for a failed foreign key check on
// insert or update (ER_NO_REFERENCED_ROW_2).
const fkViolation = 1452

// missingReferenceError resolves a FK rejection to the side that failed.
// The server names the violated constraint in the error message, so the
// dangling reference can be attributed to the venue or the artist; an
// unrecognized message falls back to the generic sentinel.
func missingReferenceError(msg string) error {
	switch {
	case strings.Contains(msg, "fk_shows_venue"):
		return ErrVenueNotFound
	case strings.Contains(msg, "fk_shows_artist"):
		return ErrArtistNotFound
	default:
		return ErrMissingReference
	}
}

// Show represents a show row persisted in the database.
type Show struct {
	ID        uint64    // shows.id
	VenueID   uint64    // shows.venue_id
	ArtistID  uint64    // shows.artist_id
	StartTime time.Time // shows.start_time (UTC)
	CreatedAt string    // shows.created_at
}

// ShowListRow is one row of the flat /shows listing with the joined venue
// and artist display fields.
type ShowListRow struct {
	VenueID         uint64
	VenueName       string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// VenueShowRow is a show on a venue's detail page: the counterpart artist
// fields plus the start time.
type VenueShowRow struct {
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ArtistShowRow is a show on an artist's detail page: the counterpart
// venue fields plus the start time.
type ArtistShowRow struct {
	VenueID        uint64
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID back to the show
// struct. When the submitted venue or artist id does not exist the FK
// check fails; the rejection is mapped to ErrVenueNotFound or
// ErrArtistNotFound by the failing constraint, or to ErrMissingReference
// when the constraint cannot be identified. No orphan row is ever written.
func (r *ShowRepo) Create(ctx context.Context, s *Show) error {
	const q = `INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.VenueID, s.ArtistID, s.StartTime)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == fkViolation {
			return missingReferenceError(mysqlErr.Message)
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	const sel = `SELECT created_at FROM shows WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, s.ID).Scan(&s.CreatedAt)
}

// ListAll returns every show joined with its venue and artist display
// fields, ordered by start time ascending.
func (r *ShowRepo) ListAll(ctx context.Context) ([]ShowListRow, error) {
	const q = `SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN venues v  ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []ShowListRow
	for rows.Next() {
		var row ShowListRow
		if err := rows.Scan(&row.VenueID, &row.VenueName, &row.ArtistID,
			&row.ArtistName, &row.ArtistImageLink, &row.StartTime); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByVenue returns all shows hosted at a venue together with the
// counterpart artist fields, ordered by start time ascending. When no
// shows exist it returns an empty slice and nil error.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]VenueShowRow, error) {
	const q = `SELECT s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN artists a ON a.id = s.artist_id
	           WHERE s.venue_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []VenueShowRow
	for rows.Next() {
		var row VenueShowRow
		if err := rows.Scan(&row.ArtistID, &row.ArtistName, &row.ArtistImageLink, &row.StartTime); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByArtist returns all shows played by an artist together with the
// counterpart venue fields, ordered by start time ascending.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]ArtistShowRow, error) {
	const q = `SELECT s.venue_id, v.name, v.image_link, s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           WHERE s.artist_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []ArtistShowRow
	for rows.Next() {
		var row ArtistShowRow
		if err := rows.Scan(&row.VenueID, &row.VenueName, &row.VenueImageLink, &row.StartTime); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
