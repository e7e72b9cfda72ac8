package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/form"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/repository"
	"github.com/iliyamo/venue-booking/internal/view"
)

// ArtistHandler bundles the repositories needed by the artist pages.
type ArtistHandler struct {
	Artists *repository.ArtistRepo
	Shows   *repository.ShowRepo
	now     func() time.Time
}

// NewArtistHandler constructs an ArtistHandler and panics if any dependency is nil.
func NewArtistHandler(artists *repository.ArtistRepo, shows *repository.ShowRepo) *ArtistHandler {
	if artists == nil || shows == nil {
		panic("nil repository passed to NewArtistHandler")
	}
	return &ArtistHandler{Artists: artists, Shows: shows, now: time.Now}
}

// List handles GET /artists and renders the flat artist listing.
func (h *ArtistHandler) List(c echo.Context) error {
	rows, err := h.Artists.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "artists.html", echo.Map{
		"Artists": rows,
		"Flashes": takeFlashes(c),
	})
}

// Search handles POST /artists/search, mirroring the venue search.
func (h *ArtistHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	rows, err := h.Artists.SearchByName(c.Request().Context(), term)
	if err != nil {
		c.Logger().Errorf("artist search failed: %v", err)
		rows = nil
	}
	if rows == nil {
		rows = []repository.SearchRow{}
	}
	return c.Render(http.StatusOK, "search_artists.html", echo.Map{
		"Count":      len(rows),
		"Data":       rows,
		"SearchTerm": term,
		"Flashes":    takeFlashes(c),
	})
}

// Detail handles GET /artists/:id and renders the artist page with its
// shows partitioned into past and upcoming.
func (h *ArtistHandler) Detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	a, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	shows, err := h.Shows.ListByArtist(ctx, id)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "artist_detail.html", echo.Map{
		"Artist":  view.ArtistPage(a, shows, h.now()),
		"Flashes": takeFlashes(c),
	})
}

// CreateForm handles GET /artists/create.
func (h *ArtistHandler) CreateForm(c echo.Context) error {
	return h.renderArtistForm(c, http.StatusOK, "New Artist", "/artists/create", &form.ArtistForm{SeekingVenue: true}, nil)
}

// Create handles POST /artists/create.
func (h *ArtistHandler) Create(c echo.Context) error {
	vals, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	f, verr := form.ParseArtistForm(vals)
	if verr != nil {
		return h.renderArtistForm(c, http.StatusUnprocessableEntity, "New Artist", "/artists/create", f, verr.Fields)
	}

	a := &repository.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		Genres:             view.JoinGenres(f.Genres),
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
	if err := h.Artists.Create(c.Request().Context(), a); err != nil {
		c.Logger().Errorf("artist create failed: %v", err)
		addFlash(c, "An error occurred. Artist "+f.Name+" could not be listed.")
		return c.Redirect(http.StatusFound, "/")
	}

	addFlash(c, "Artist "+a.Name+" was successfully listed!")
	publishListing(queue.ListingCreatedEvent{
		Kind:     "artist",
		RecordID: a.ID,
		Name:     a.Name,
		City:     a.City,
		State:    a.State,
		ListedAt: view.FormatTime(h.now().UTC()),
	})
	return c.Redirect(http.StatusFound, "/")
}

// EditForm handles GET /artists/:id/edit with the form pre-populated from
// the stored record.
func (h *ArtistHandler) EditForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	a, err := h.Artists.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	f := &form.ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		Genres:             view.SplitGenres(a.Genres),
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
	return h.renderArtistForm(c, http.StatusOK, "Edit Artist", artistEditAction(c), f, nil)
}

// Edit handles POST /artists/:id/edit. The submission overwrites every
// editable field of the record.
func (h *ArtistHandler) Edit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	vals, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	f, verr := form.ParseArtistForm(vals)
	if verr != nil {
		return h.renderArtistForm(c, http.StatusUnprocessableEntity, "Edit Artist", artistEditAction(c), f, verr.Fields)
	}

	a := &repository.Artist{
		ID:                 id,
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		Genres:             view.JoinGenres(f.Genres),
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
	detail := "/artists/" + c.Param("id")
	if err := h.Artists.Update(c.Request().Context(), a); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		c.Logger().Errorf("artist update failed: %v", err)
		addFlash(c, "An error occurred while updating Artist "+f.Name+".")
		return c.Redirect(http.StatusFound, detail)
	}
	addFlash(c, "Successfully updated Artist "+f.Name+".")
	return c.Redirect(http.StatusFound, detail)
}

func (h *ArtistHandler) renderArtistForm(c echo.Context, status int, title, action string, f *form.ArtistForm, fieldErrs map[string]string) error {
	return c.Render(status, "artist_form.html", echo.Map{
		"Title":   title,
		"Action":  action,
		"Form":    f,
		"Errors":  fieldErrs,
		"Genres":  form.Genres,
		"States":  form.States,
		"Flashes": takeFlashes(c),
	})
}

func artistEditAction(c echo.Context) string {
	return "/artists/" + c.Param("id") + "/edit"
}
