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

func TestArtistRepoCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	mock.ExpectExec("INSERT INTO artists").
		WithArgs("Miles", "New York", "NY", "", "", "", "", "Jazz", true, "").
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectQuery("SELECT created_at, updated_at FROM artists").
		WithArgs(uint64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).
			AddRow("2026-01-01 00:00:00", "2026-01-01 00:00:00"))

	a := &Artist{Name: "Miles", City: "New York", State: "NY", Genres: "Jazz", SeekingVenue: true}
	require.NoError(t, repo.Create(context.Background(), a))
	assert.Equal(t, uint64(4), a.ID)
}

func TestArtistRepoListAll(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	mock.ExpectQuery("SELECT id, name FROM artists").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Miles").
			AddRow(2, "Trane"))

	rows, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ArtistListRow{ID: 1, Name: "Miles"}, rows[0])
}

func TestArtistRepoGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	mock.ExpectQuery("FROM artists WHERE id").
		WithArgs(uint64(8)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 8)
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestArtistRepoSearchByName(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	mock.ExpectQuery("FROM artists a").
		WithArgs("%mil%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "num_upcoming"}).
			AddRow(1, "Miles", 1))

	rows, err := repo.SearchByName(context.Background(), "Mil")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].NumUpcomingShows)
}

func TestArtistRepoUpdateNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	mock.ExpectExec("UPDATE artists").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM artists").
		WithArgs(uint64(77)).
		WillReturnError(sql.ErrNoRows)

	err := repo.Update(context.Background(), &Artist{ID: 77, Name: "X"})
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestArtistRepoUpdateRowsAffectedError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	mock.ExpectExec("UPDATE artists").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("rows affected unavailable")))

	err := repo.Update(context.Background(), &Artist{ID: 77, Name: "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rows affected unavailable")
}
