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

// ShowHandler bundles the repository needed by the show pages.
type ShowHandler struct {
	Shows *repository.ShowRepo
	now   func() time.Time
}

// NewShowHandler constructs a ShowHandler and panics if the repository is nil.
func NewShowHandler(shows *repository.ShowRepo) *ShowHandler {
	if shows == nil {
		panic("nil repository passed to NewShowHandler")
	}
	return &ShowHandler{Shows: shows, now: time.Now}
}

// List handles GET /shows and renders the flat show listing with the
// joined venue and artist display fields.
func (h *ShowHandler) List(c echo.Context) error {
	rows, err := h.Shows.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "shows.html", echo.Map{
		"Shows":   view.ShowList(rows),
		"Flashes": takeFlashes(c),
	})
}

// CreateForm handles GET /shows/create.
func (h *ShowHandler) CreateForm(c echo.Context) error {
	return h.renderShowForm(c, http.StatusOK, &form.ShowForm{}, nil)
}

// Create handles POST /shows/create. A submission naming a venue or
// artist that does not exist is a validation failure, not a server
// error: the FK rejection surfaces as field messages on the re-rendered
// form and no orphan row is written.
func (h *ShowHandler) Create(c echo.Context) error {
	vals, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	f, verr := form.ParseShowForm(vals)
	if verr != nil {
		return h.renderShowForm(c, http.StatusUnprocessableEntity, f, verr.Fields)
	}

	s := &repository.Show{
		VenueID:   f.VenueID,
		ArtistID:  f.ArtistID,
		StartTime: f.StartTime,
	}
	if err := h.Shows.Create(c.Request().Context(), s); err != nil {
		if fieldErrs := missingShowReference(err); fieldErrs != nil {
			return h.renderShowForm(c, http.StatusUnprocessableEntity, f, fieldErrs)
		}
		c.Logger().Errorf("show create failed: %v", err)
		addFlash(c, "An error occurred. Show could not be listed.")
		return c.Redirect(http.StatusFound, "/")
	}

	addFlash(c, "Show was successfully listed!")
	publishListing(queue.ListingCreatedEvent{
		Kind:      "show",
		RecordID:  s.ID,
		VenueID:   s.VenueID,
		ArtistID:  s.ArtistID,
		StartTime: view.FormatTime(s.StartTime),
		ListedAt:  view.FormatTime(h.now().UTC()),
	})
	return c.Redirect(http.StatusFound, "/")
}

// missingShowReference maps a rejected show insert to field errors on the
// side that failed. When the store could not tell which reference was
// dangling, both fields are flagged.
func missingShowReference(err error) map[string]string {
	switch {
	case errors.Is(err, repository.ErrVenueNotFound):
		return map[string]string{"venue_id": "no venue with this id"}
	case errors.Is(err, repository.ErrArtistNotFound):
		return map[string]string{"artist_id": "no artist with this id"}
	case errors.Is(err, repository.ErrMissingReference):
		return map[string]string{
			"venue_id":  "no venue with this id",
			"artist_id": "no artist with this id",
		}
	default:
		return nil
	}
}

func (h *ShowHandler) renderShowForm(c echo.Context, status int, f *form.ShowForm, fieldErrs map[string]string) error {
	return c.Render(status, "show_form.html", echo.Map{
		"Title":   "New Show",
		"Action":  "/shows/create",
		"Form":    f,
		"Errors":  fieldErrs,
		"Flashes": takeFlashes(c),
	})
}
