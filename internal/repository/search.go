package repository

import "strings"

// SearchRow is a single name-search hit for a venue or artist listing.
// NumUpcomingShows counts only shows whose start_time lies in the future.
type SearchRow struct {
	ID               uint64
	Name             string
	NumUpcomingShows int64
}

// escapeLike neutralises LIKE wildcards in a user-supplied search term so
// the term is always matched as a literal substring. The backslash is the
// escape character declared in the queries using the result.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

// likePattern builds the case-insensitive substring pattern for a term.
// An empty term yields "%%" which matches every row.
func likePattern(term string) string {
	return "%" + escapeLike(strings.ToLower(term)) + "%"
}
