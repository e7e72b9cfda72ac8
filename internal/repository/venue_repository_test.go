package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func TestVenueRepoCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectExec("INSERT INTO venues").
		WithArgs("The Fillmore", "San Francisco", "CA", "1805 Geary St", "415-346-6000",
			"", "https://fb.com/fillmore", "", "Rock n Roll,Jazz", true, "").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("SELECT created_at, updated_at FROM venues").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).
			AddRow("2026-01-01 00:00:00", "2026-01-01 00:00:00"))

	v := &Venue{
		Name:          "The Fillmore",
		City:          "San Francisco",
		State:         "CA",
		Address:       "1805 Geary St",
		Phone:         "415-346-6000",
		FacebookLink:  "https://fb.com/fillmore",
		Genres:        "Rock n Roll,Jazz",
		SeekingTalent: true,
	}
	require.NoError(t, repo.Create(context.Background(), v))
	assert.Equal(t, uint64(7), v.ID)
	assert.Equal(t, "2026-01-01 00:00:00", v.CreatedAt)
}

func TestVenueRepoGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectQuery("FROM venues WHERE id").
		WithArgs(uint64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueRepoSearchByName(t *testing.T) {
	testCases := []struct {
		name    string
		term    string
		pattern string
	}{
		{name: "empty term matches all", term: "", pattern: "%%"},
		{name: "term is lower-cased", term: "FiLL", pattern: "%fill%"},
		{name: "wildcards are escaped", term: "50%", pattern: `%50\%%`},
		{name: "underscore is escaped", term: "a_b", pattern: `%a\_b%`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMock(t)
			repo := NewVenueRepo(db)

			mock.ExpectQuery("FROM venues v").
				WithArgs(tc.pattern).
				WillReturnRows(sqlmock.NewRows([]string{"id", "name", "num_upcoming"}).
					AddRow(1, "The Fillmore", 3))

			rows, err := repo.SearchByName(context.Background(), tc.term)
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, SearchRow{ID: 1, Name: "The Fillmore", NumUpcomingShows: 3}, rows[0])
		})
	}
}

func TestVenueRepoSearchByNameNoMatch(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectQuery("FROM venues v").
		WithArgs("%xyzzy%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "num_upcoming"}))

	rows, err := repo.SearchByName(context.Background(), "xyzzy")
	require.NoError(t, err)
	assert.Len(t, rows, 0)
}

func TestVenueRepoListForBoard(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectQuery("FROM venues v").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "num_upcoming"}).
			AddRow(1, "A", "Austin", "TX", 0).
			AddRow(2, "B", "Austin", "TX", 2))

	rows, err := repo.ListForBoard(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, VenueListRow{ID: 2, Name: "B", City: "Austin", State: "TX", NumUpcomingShows: 2}, rows[1])
}

func TestVenueRepoUpdateNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectExec("UPDATE venues").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM venues").
		WithArgs(uint64(9)).
		WillReturnError(sql.ErrNoRows)

	err := repo.Update(context.Background(), &Venue{ID: 9, Name: "X"})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueRepoUpdateNoChange(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectExec("UPDATE venues").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM venues").
		WithArgs(uint64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	// the row exists but nothing differed; that is not an error
	assert.NoError(t, repo.Update(context.Background(), &Venue{ID: 9, Name: "X"}))
}

func TestVenueRepoDelete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM venues").
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec("DELETE FROM shows WHERE venue_id").
		WithArgs(uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM venues WHERE id").
		WithArgs(uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), 5))
}

func TestVenueRepoDeleteCommitFailure(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM venues").
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec("DELETE FROM shows WHERE venue_id").
		WithArgs(uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM venues WHERE id").
		WithArgs(uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed: disk full"))

	// nothing was deleted, so the caller must see the failure
	err := repo.Delete(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit failed")
}

func TestVenueRepoUpdateRowsAffectedError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectExec("UPDATE venues").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("rows affected unavailable")))

	err := repo.Update(context.Background(), &Venue{ID: 9, Name: "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rows affected unavailable")
}

func TestVenueRepoDeleteNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM venues").
		WithArgs(uint64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.Delete(context.Background(), 99), ErrVenueNotFound)
}
