package view

import (
	"time"

	"github.com/iliyamo/venue-booking/internal/repository"
)

// VenuePageView is the flat view-model for a venue detail page: the
// persisted fields with genres decoded, plus the partitioned show lists
// and their counts.
type VenuePageView struct {
	ID                 uint64
	Name               string
	Genres             []string
	Address            string
	City               string
	State              string
	Phone              string
	Website            string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
	ImageLink          string
	PastShows          []VenueShowView
	UpcomingShows      []VenueShowView
	PastShowsCount     int
	UpcomingShowsCount int
}

// ArtistPageView is the flat view-model for an artist detail page.
type ArtistPageView struct {
	ID                 uint64
	Name               string
	Genres             []string
	City               string
	State              string
	Phone              string
	Website            string
	FacebookLink       string
	SeekingVenue       bool
	SeekingDescription string
	ImageLink          string
	PastShows          []ArtistShowView
	UpcomingShows      []ArtistShowView
	PastShowsCount     int
	UpcomingShowsCount int
}

// VenuePage assembles the detail view-model for a venue and its shows.
func VenuePage(v *repository.Venue, shows []repository.VenueShowRow, now time.Time) VenuePageView {
	past, upcoming := PartitionVenueShows(shows, now)
	return VenuePageView{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             SplitGenres(v.Genres),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

// ArtistPage assembles the detail view-model for an artist and its shows.
func ArtistPage(a *repository.Artist, shows []repository.ArtistShowRow, now time.Time) ArtistPageView {
	past, upcoming := PartitionArtistShows(shows, now)
	return ArtistPageView{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             SplitGenres(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}
