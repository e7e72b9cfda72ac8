// Package view shapes repository rows into template-ready structures. All
// functions here are pure: they never touch the database and never mutate
// their inputs.
package view

import (
	"strings"
	"time"
)

// DisplayTime is the single format used for timestamps shown to users.
const DisplayTime = "2006-01-02 15:04:05"

// SplitGenres decodes the comma-joined genres column back into the
// original list, order preserved. An empty column decodes to an empty
// list, not [""].
func SplitGenres(genres string) []string {
	if genres == "" {
		return []string{}
	}
	return strings.Split(genres, ",")
}

// JoinGenres encodes a genre list as the comma-joined column value.
// Genre names are validated against a fixed list by the form layer, so
// none of them can contain a comma and the encoding round-trips.
func JoinGenres(genres []string) string {
	return strings.Join(genres, ",")
}

// FormatTime renders a timestamp in the display format.
func FormatTime(t time.Time) string {
	return t.Format(DisplayTime)
}
