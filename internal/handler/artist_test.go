package handler

import (
	"database/sql"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistList(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectQuery("SELECT id, name FROM artists").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Miles").
			AddRow(2, "Trane"))

	rec := get(e, "/artists")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Miles")
	assert.Contains(t, body, "Trane")
}

func TestArtistSearch(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectQuery("FROM artists a").
		WithArgs("%mil%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "num_upcoming"}).
			AddRow(1, "Miles", 1))

	rec := postForm(e, "/artists/search", url.Values{"search_term": {"Mil"}})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "1 result(s)")
	assert.Contains(t, body, "Miles")
}

func TestArtistDetailPartitionsShows(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectQuery("FROM artists WHERE id").
		WithArgs(uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "city", "state", "phone", "image_link", "facebook_link",
			"website", "genres", "seeking_venue", "seeking_description", "created_at", "updated_at",
		}).AddRow(2, "Miles", "New York", "NY", "", "", "",
			"", "Jazz", true, "", "2026-01-01 00:00:00", "2026-01-01 00:00:00"))
	mock.ExpectQuery("FROM shows s").
		WithArgs(uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"venue_id", "name", "image_link", "start_time"}).
			AddRow(1, "The Fillmore", "", testNow.Add(-time.Hour)).
			AddRow(3, "The Chapel", "", testNow.Add(2*time.Hour)))

	rec := get(e, "/artists/2")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "1 upcoming show(s)")
	assert.Contains(t, body, "1 past show(s)")
	assert.Contains(t, body, "The Chapel")
}

func TestArtistDetailNotFound(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectQuery("FROM artists WHERE id").
		WithArgs(uint64(77)).
		WillReturnError(sql.ErrNoRows)

	rec := get(e, "/artists/77")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404 Not Found")
}
