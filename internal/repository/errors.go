// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrMissingReference indicates that a show submission named
// a venue or artist that does not exist, while the not-found values
// signal that a lookup by id produced no row.
package repository

import "errors"

// ErrVenueNotFound is returned when a venue cannot be found in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist cannot be found in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// ErrShowNotFound is returned when a show cannot be found in the DB.
var ErrShowNotFound = errors.New("show not found")

// ErrMissingReference is returned when an insert names a venue or artist
// id that does not exist. The foreign keys on the shows table reject the
// row, so no orphan record is ever written. Handlers should translate
// this into a validation message rather than a server error.
var ErrMissingReference = errors.New("referenced record does not exist")
