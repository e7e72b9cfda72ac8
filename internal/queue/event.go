// Package queue defines message payloads exchanged over the message broker.
package queue

// ListingCreatedEvent is published when a venue, artist or show record is
// successfully listed. It contains enough information for downstream
// consumers to log, notify, or trigger analytics without querying the
// primary database.
type ListingCreatedEvent struct {
	Kind      string `json:"kind"` // "venue", "artist" or "show"
	RecordID  uint64 `json:"record_id"`
	Name      string `json:"name,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	VenueID   uint64 `json:"venue_id,omitempty"`
	ArtistID  uint64 `json:"artist_id,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	ListedAt  string `json:"listed_at"`
}
