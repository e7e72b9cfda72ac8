package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/form"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/repository"
	queue_publisher "github.com/iliyamo/venue-booking/internal/service"
	"github.com/iliyamo/venue-booking/internal/view"
)

// VenueHandler bundles the repositories needed by the venue pages.
type VenueHandler struct {
	Venues *repository.VenueRepo
	Shows  *repository.ShowRepo
	now    func() time.Time
}

// NewVenueHandler constructs a VenueHandler and panics if any dependency is nil.
func NewVenueHandler(venues *repository.VenueRepo, shows *repository.ShowRepo) *VenueHandler {
	if venues == nil || shows == nil {
		panic("nil repository passed to NewVenueHandler")
	}
	return &VenueHandler{Venues: venues, Shows: shows, now: time.Now}
}

// Board handles GET /venues and renders the venue listing grouped by
// (city, state) area.
func (h *VenueHandler) Board(c echo.Context) error {
	rows, err := h.Venues.ListForBoard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "venues.html", echo.Map{
		"Areas":   view.GroupVenuesByArea(rows),
		"Flashes": takeFlashes(c),
	})
}

// Search handles POST /venues/search. A failing search renders an empty
// result page rather than an error: the read path must never take the
// process down over malformed input.
func (h *VenueHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	rows, err := h.Venues.SearchByName(c.Request().Context(), term)
	if err != nil {
		c.Logger().Errorf("venue search failed: %v", err)
		rows = nil
	}
	if rows == nil {
		rows = []repository.SearchRow{}
	}
	return c.Render(http.StatusOK, "search_venues.html", echo.Map{
		"Count":      len(rows),
		"Data":       rows,
		"SearchTerm": term,
		"Flashes":    takeFlashes(c),
	})
}

// Detail handles GET /venues/:id and renders the venue page with its
// shows partitioned into past and upcoming.
func (h *VenueHandler) Detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	v, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	shows, err := h.Shows.ListByVenue(ctx, id)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "venue_detail.html", echo.Map{
		"Venue":   view.VenuePage(v, shows, h.now()),
		"Flashes": takeFlashes(c),
	})
}

// CreateForm handles GET /venues/create.
func (h *VenueHandler) CreateForm(c echo.Context) error {
	return h.renderVenueForm(c, http.StatusOK, "New Venue", "/venues/create", &form.VenueForm{SeekingTalent: true}, nil)
}

// Create handles POST /venues/create. Validation failures re-render the
// form with field messages; persistence failures roll back, flash a
// message naming the venue, and land the user back home.
func (h *VenueHandler) Create(c echo.Context) error {
	vals, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	f, verr := form.ParseVenueForm(vals)
	if verr != nil {
		return h.renderVenueForm(c, http.StatusUnprocessableEntity, "New Venue", "/venues/create", f, verr.Fields)
	}

	v := &repository.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		Genres:             view.JoinGenres(f.Genres),
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
	if err := h.Venues.Create(c.Request().Context(), v); err != nil {
		c.Logger().Errorf("venue create failed: %v", err)
		addFlash(c, "An error occurred. Venue "+f.Name+" could not be listed.")
		return c.Redirect(http.StatusFound, "/")
	}

	addFlash(c, "Venue "+v.Name+" was successfully listed!")
	publishListing(queue.ListingCreatedEvent{
		Kind:     "venue",
		RecordID: v.ID,
		Name:     v.Name,
		City:     v.City,
		State:    v.State,
		ListedAt: view.FormatTime(h.now().UTC()),
	})
	return c.Redirect(http.StatusFound, "/")
}

// Delete handles DELETE /venues/:id. Dependent shows are removed in the
// same transaction, so a venue can always be deleted without leaving
// orphaned rows behind.
func (h *VenueHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.Venues.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		c.Logger().Errorf("venue delete failed: %v", err)
		addFlash(c, "An error occurred. Venue could not be deleted.")
		return c.Redirect(http.StatusFound, "/")
	}
	addFlash(c, "Venue deleted.")
	return c.Redirect(http.StatusFound, "/")
}

// EditForm handles GET /venues/:id/edit with the form pre-populated from
// the stored record.
func (h *VenueHandler) EditForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	v, err := h.Venues.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	f := &form.VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		Genres:             view.SplitGenres(v.Genres),
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
	return h.renderVenueForm(c, http.StatusOK, "Edit Venue", venueEditAction(c), f, nil)
}

// Edit handles POST /venues/:id/edit. The submission overwrites every
// editable field of the record.
func (h *VenueHandler) Edit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	vals, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	f, verr := form.ParseVenueForm(vals)
	if verr != nil {
		return h.renderVenueForm(c, http.StatusUnprocessableEntity, "Edit Venue", venueEditAction(c), f, verr.Fields)
	}

	v := &repository.Venue{
		ID:                 id,
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		Genres:             view.JoinGenres(f.Genres),
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
	detail := "/venues/" + c.Param("id")
	if err := h.Venues.Update(c.Request().Context(), v); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		c.Logger().Errorf("venue update failed: %v", err)
		addFlash(c, "An error occurred while updating Venue "+f.Name+".")
		return c.Redirect(http.StatusFound, detail)
	}
	addFlash(c, "Successfully updated Venue "+f.Name+".")
	return c.Redirect(http.StatusFound, detail)
}

func (h *VenueHandler) renderVenueForm(c echo.Context, status int, title, action string, f *form.VenueForm, fieldErrs map[string]string) error {
	return c.Render(status, "venue_form.html", echo.Map{
		"Title":   title,
		"Action":  action,
		"Form":    f,
		"Errors":  fieldErrs,
		"Genres":  form.Genres,
		"States":  form.States,
		"Flashes": takeFlashes(c),
	})
}

func venueEditAction(c echo.Context) string {
	return "/venues/" + c.Param("id") + "/edit"
}

// publishListing fires a best-effort listing.created event. The publisher
// logs its own failures; a broker outage must never surface to the user.
func publishListing(ev queue.ListingCreatedEvent) {
	go func() {
		_ = queue_publisher.PublishListingCreated(context.Background(), ev)
	}()
}
