// Package form decodes submitted form values into typed structures and
// validates them. Raw map access never reaches the handlers: a submission
// either decodes into a fully typed form or fails with a ValidationError
// listing every offending field.
package form

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ValidationError reports the fields that failed validation and why.
// Handlers re-render the submitted form with these messages instead of
// treating the request as a server error.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = msg
}

func (e *ValidationError) orNil() *ValidationError {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Genres is the fixed list of accepted genre tags. Persisted genres are
// comma-joined, so restricting values to this list is what guarantees the
// encoding splits back into the original list.
var Genres = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

// States is the list of accepted US state and territory codes.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
	"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN",
	"MS", "MO", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA",
	"WV", "WI", "WY",
}

var genreSet = toSet(Genres)
var stateSet = toSet(States)

func toSet(values []string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// VenueForm is the typed decode of a venue create/edit submission.
type VenueForm struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	Genres             []string
	SeekingTalent      bool
	SeekingDescription string
}

// ArtistForm is the typed decode of an artist create/edit submission.
type ArtistForm struct {
	Name               string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	Genres             []string
	SeekingVenue       bool
	SeekingDescription string
}

// ShowForm is the typed decode of a show create submission.
type ShowForm struct {
	VenueID   uint64
	ArtistID  uint64
	StartTime time.Time
}

// ParseVenueForm validates and coerces a venue submission. A nil
// ValidationError means the form is usable as-is.
func ParseVenueForm(vals url.Values) (*VenueForm, *ValidationError) {
	var verr ValidationError
	f := &VenueForm{
		Name:               strings.TrimSpace(vals.Get("name")),
		City:               strings.TrimSpace(vals.Get("city")),
		State:              strings.ToUpper(strings.TrimSpace(vals.Get("state"))),
		Address:            strings.TrimSpace(vals.Get("address")),
		Phone:              strings.TrimSpace(vals.Get("phone")),
		ImageLink:          strings.TrimSpace(vals.Get("image_link")),
		FacebookLink:       strings.TrimSpace(vals.Get("facebook_link")),
		Website:            strings.TrimSpace(vals.Get("website")),
		SeekingDescription: strings.TrimSpace(vals.Get("seeking_description")),
	}
	requireField(&verr, "name", f.Name)
	requireField(&verr, "city", f.City)
	checkState(&verr, f.State)
	f.Genres = checkGenres(&verr, vals["genres"])
	f.SeekingTalent = boolField(vals, "seeking_talent", true)
	return f, verr.orNil()
}

// ParseArtistForm validates and coerces an artist submission.
func ParseArtistForm(vals url.Values) (*ArtistForm, *ValidationError) {
	var verr ValidationError
	f := &ArtistForm{
		Name:               strings.TrimSpace(vals.Get("name")),
		City:               strings.TrimSpace(vals.Get("city")),
		State:              strings.ToUpper(strings.TrimSpace(vals.Get("state"))),
		Phone:              strings.TrimSpace(vals.Get("phone")),
		ImageLink:          strings.TrimSpace(vals.Get("image_link")),
		FacebookLink:       strings.TrimSpace(vals.Get("facebook_link")),
		Website:            strings.TrimSpace(vals.Get("website")),
		SeekingDescription: strings.TrimSpace(vals.Get("seeking_description")),
	}
	requireField(&verr, "name", f.Name)
	requireField(&verr, "city", f.City)
	checkState(&verr, f.State)
	f.Genres = checkGenres(&verr, vals["genres"])
	f.SeekingVenue = boolField(vals, "seeking_venue", true)
	return f, verr.orNil()
}

// startTimeLayouts are the accepted submission formats for show start
// times: the display format, the HTML datetime-local format, and RFC3339.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ParseShowForm validates and coerces a show submission.
func ParseShowForm(vals url.Values) (*ShowForm, *ValidationError) {
	var verr ValidationError
	f := &ShowForm{}
	f.VenueID = idField(&verr, vals, "venue_id")
	f.ArtistID = idField(&verr, vals, "artist_id")

	raw := strings.TrimSpace(vals.Get("start_time"))
	if raw == "" {
		verr.add("start_time", "start time is required")
	} else {
		parsed := false
		for _, layout := range startTimeLayouts {
			if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
				f.StartTime = t.UTC()
				parsed = true
				break
			}
		}
		if !parsed {
			verr.add("start_time", fmt.Sprintf("unrecognized start time %q", raw))
		}
	}
	return f, verr.orNil()
}

func requireField(verr *ValidationError, field, value string) {
	if value == "" {
		verr.add(field, field+" is required")
	}
}

func checkState(verr *ValidationError, state string) {
	if state == "" {
		verr.add("state", "state is required")
		return
	}
	if !stateSet[state] {
		verr.add("state", fmt.Sprintf("unknown state %q", state))
	}
}

// checkGenres keeps only trimmed, non-empty values and rejects anything
// outside the fixed genre list.
func checkGenres(verr *ValidationError, raw []string) []string {
	genres := make([]string, 0, len(raw))
	for _, g := range raw {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if !genreSet[g] {
			verr.add("genres", fmt.Sprintf("unknown genre %q", g))
			continue
		}
		genres = append(genres, g)
	}
	return genres
}

// boolField reads a checkbox-style field. A missing key falls back to the
// default (seeking flags default to true when unspecified); a present key
// is interpreted as a boolean.
func boolField(vals url.Values, key string, def bool) bool {
	if !vals.Has(key) {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(vals.Get(key))) {
	case "1", "true", "on", "y", "yes":
		return true
	default:
		return false
	}
}

func idField(verr *ValidationError, vals url.Values, key string) uint64 {
	raw := strings.TrimSpace(vals.Get(key))
	if raw == "" {
		verr.add(key, key+" is required")
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		verr.add(key, fmt.Sprintf("invalid %s %q", key, raw))
		return 0
	}
	return id
}
