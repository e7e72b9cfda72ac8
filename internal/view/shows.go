package view

import (
	"time"

	"github.com/iliyamo/venue-booking/internal/repository"
)

// VenueShowView is a show rendered on a venue page: the counterpart
// artist fields plus a display-ready start time.
type VenueShowView struct {
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

// ArtistShowView is a show rendered on an artist page: the counterpart
// venue fields plus a display-ready start time.
type ArtistShowView struct {
	VenueID        uint64
	VenueName      string
	VenueImageLink string
	StartTime      string
}

// ShowRowView is one row of the flat /shows listing.
type ShowRowView struct {
	VenueID         uint64
	VenueName       string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

// PartitionVenueShows splits a venue's shows into past and upcoming
// relative to now: start_time strictly after now is upcoming, everything
// else is past. The partition is total and disjoint, so
// len(past)+len(upcoming) always equals len(rows).
func PartitionVenueShows(rows []repository.VenueShowRow, now time.Time) (past, upcoming []VenueShowView) {
	past = make([]VenueShowView, 0, len(rows))
	upcoming = make([]VenueShowView, 0, len(rows))
	for _, row := range rows {
		v := VenueShowView{
			ArtistID:        row.ArtistID,
			ArtistName:      row.ArtistName,
			ArtistImageLink: row.ArtistImageLink,
			StartTime:       FormatTime(row.StartTime),
		}
		if row.StartTime.After(now) {
			upcoming = append(upcoming, v)
		} else {
			past = append(past, v)
		}
	}
	return past, upcoming
}

// PartitionArtistShows is the artist-page counterpart of
// PartitionVenueShows.
func PartitionArtistShows(rows []repository.ArtistShowRow, now time.Time) (past, upcoming []ArtistShowView) {
	past = make([]ArtistShowView, 0, len(rows))
	upcoming = make([]ArtistShowView, 0, len(rows))
	for _, row := range rows {
		v := ArtistShowView{
			VenueID:        row.VenueID,
			VenueName:      row.VenueName,
			VenueImageLink: row.VenueImageLink,
			StartTime:      FormatTime(row.StartTime),
		}
		if row.StartTime.After(now) {
			upcoming = append(upcoming, v)
		} else {
			past = append(past, v)
		}
	}
	return past, upcoming
}

// ShowList maps joined show rows to the flat listing view.
func ShowList(rows []repository.ShowListRow) []ShowRowView {
	out := make([]ShowRowView, 0, len(rows))
	for _, row := range rows {
		out = append(out, ShowRowView{
			VenueID:         row.VenueID,
			VenueName:       row.VenueName,
			ArtistID:        row.ArtistID,
			ArtistName:      row.ArtistName,
			ArtistImageLink: row.ArtistImageLink,
			StartTime:       FormatTime(row.StartTime),
		})
	}
	return out
}
