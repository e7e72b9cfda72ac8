package view

import "github.com/iliyamo/venue-booking/internal/repository"

// AreaVenue is one venue entry inside an area group.
type AreaVenue struct {
	ID               uint64
	Name             string
	NumUpcomingShows int64
}

// Area groups the venues of one (city, state) pair for the board page.
type Area struct {
	City   string
	State  string
	Venues []AreaVenue
}

// areaKey identifies an area by the exact (city, state) pair. Tracking
// the pair as one composite key is what keeps two venues that share only
// a city or only a state in separate groups.
type areaKey struct {
	city  string
	state string
}

// GroupVenuesByArea folds venue rows into area groups. Rows are expected
// in (city, state) sorted order from the repository; group order follows
// the first occurrence of each pair under that sort. Every venue lands in
// exactly one group.
func GroupVenuesByArea(rows []repository.VenueListRow) []Area {
	areas := make([]Area, 0)
	index := make(map[areaKey]int)
	for _, row := range rows {
		key := areaKey{city: row.City, state: row.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: row.City, State: row.State})
		}
		areas[i].Venues = append(areas[i].Venues, AreaVenue{
			ID:               row.ID,
			Name:             row.Name,
			NumUpcomingShows: row.NumUpcomingShows,
		})
	}
	return areas
}
