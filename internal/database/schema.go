package database

import (
	"context"
	"database/sql"
)

// schema contains the idempotent table definitions for the booking board.
// Genres are stored as comma-joined text on purpose; the form layer only
// accepts genres from a fixed list, so the encoding round-trips safely.
// Shows restrict deletion of their venue and artist at the FK level; the
// venue delete path removes dependent shows inside its own transaction.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name                VARCHAR(255) NOT NULL,
		city                VARCHAR(120) NOT NULL,
		state               VARCHAR(120) NOT NULL,
		address             VARCHAR(120) NOT NULL DEFAULT '',
		phone               VARCHAR(120) NOT NULL DEFAULT '',
		image_link          VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link       VARCHAR(120) NOT NULL DEFAULT '',
		website             VARCHAR(120) NOT NULL DEFAULT '',
		genres              VARCHAR(255) NOT NULL DEFAULT '',
		seeking_talent      BOOLEAN NOT NULL DEFAULT TRUE,
		seeking_description VARCHAR(500) NOT NULL DEFAULT '',
		created_at          TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at          TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_venues_city_state (city, state)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS artists (
		id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name                VARCHAR(255) NOT NULL,
		city                VARCHAR(120) NOT NULL,
		state               VARCHAR(120) NOT NULL,
		phone               VARCHAR(120) NOT NULL DEFAULT '',
		image_link          VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link       VARCHAR(120) NOT NULL DEFAULT '',
		website             VARCHAR(120) NOT NULL DEFAULT '',
		genres              VARCHAR(255) NOT NULL DEFAULT '',
		seeking_venue       BOOLEAN NOT NULL DEFAULT TRUE,
		seeking_description VARCHAR(500) NOT NULL DEFAULT '',
		created_at          TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at          TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS shows (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		venue_id   BIGINT UNSIGNED NOT NULL,
		artist_id  BIGINT UNSIGNED NOT NULL,
		start_time DATETIME NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_shows_venue  FOREIGN KEY (venue_id)  REFERENCES venues (id)  ON DELETE RESTRICT,
		CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists (id) ON DELETE RESTRICT,
		INDEX idx_shows_venue (venue_id),
		INDEX idx_shows_artist (artist_id),
		INDEX idx_shows_start_time (start_time)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the application tables when they do not exist yet.
// It runs at startup so a fresh database is usable without external
// migration tooling.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
