package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowRepoCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewShowRepo(db)

	start := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO shows").
		WithArgs(uint64(1), uint64(2), start).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery("SELECT created_at FROM shows").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow("2026-01-01 00:00:00"))

	s := &Show{VenueID: 1, ArtistID: 2, StartTime: start}
	require.NoError(t, repo.Create(context.Background(), s))
	assert.Equal(t, uint64(3), s.ID)
}

func TestShowRepoCreateMissingReference(t *testing.T) {
	// ER_NO_REFERENCED_ROW_2: the submitted venue or artist id does not
	// exist, so the insert is rejected and no orphan row is written. The
	// violated constraint named in the message attributes the failure.
	testCases := []struct {
		name    string
		message string
		want    error
	}{
		{
			name:    "dangling venue",
			message: "Cannot add or update a child row: a foreign key constraint fails (`booking`.`shows`, CONSTRAINT `fk_shows_venue` FOREIGN KEY (`venue_id`) REFERENCES `venues` (`id`))",
			want:    ErrVenueNotFound,
		},
		{
			name:    "dangling artist",
			message: "Cannot add or update a child row: a foreign key constraint fails (`booking`.`shows`, CONSTRAINT `fk_shows_artist` FOREIGN KEY (`artist_id`) REFERENCES `artists` (`id`))",
			want:    ErrArtistNotFound,
		},
		{
			name:    "unrecognized constraint",
			message: "a foreign key constraint fails",
			want:    ErrMissingReference,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMock(t)
			repo := NewShowRepo(db)

			mock.ExpectExec("INSERT INTO shows").
				WillReturnError(&mysql.MySQLError{Number: 1452, Message: tc.message})

			s := &Show{VenueID: 12345, ArtistID: 2, StartTime: time.Now()}
			err := repo.Create(context.Background(), s)
			assert.ErrorIs(t, err, tc.want)
			assert.Zero(t, s.ID)
		})
	}
}

func TestShowRepoListByVenue(t *testing.T) {
	db, mock := newMock(t)
	repo := NewShowRepo(db)

	start := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM shows s").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"artist_id", "name", "image_link", "start_time"}).
			AddRow(2, "Miles", "https://img/m.png", start))

	rows, err := repo.ListByVenue(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, VenueShowRow{
		ArtistID:        2,
		ArtistName:      "Miles",
		ArtistImageLink: "https://img/m.png",
		StartTime:       start,
	}, rows[0])
}

func TestShowRepoListAll(t *testing.T) {
	db, mock := newMock(t)
	repo := NewShowRepo(db)

	start := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM shows s").
		WillReturnRows(sqlmock.NewRows([]string{"venue_id", "venue_name", "artist_id", "artist_name", "image_link", "start_time"}).
			AddRow(1, "The Fillmore", 2, "Miles", "", start).
			AddRow(1, "The Fillmore", 3, "Trane", "", start.Add(time.Hour)))

	rows, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Trane", rows[1].ArtistName)
}
