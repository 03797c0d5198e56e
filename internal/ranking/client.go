// Package ranking is the boundary to the external candidate-ranking
// collaborator. The matcher's internals (feature extraction, similarity
// scoring) are its business; this package only defines the request/response
// contract and keeps the returned list well-formed.
package ranking

import (
	"context"

	id "pawtrol/pkg/domain"
)

// Request carries the scan inputs the matcher needs.
type Request struct {
	Photo     []byte
	MimeType  string
	Latitude  float64
	Longitude float64
	Address   string
}

// Candidate is one probable match returned by the collaborator.
// Confidence is an opaque 0-100 score; this service never recomputes or
// adjusts it.
type Candidate struct {
	PetID        id.PetID `json:"pet_id"`
	Confidence   int      `json:"confidence"`
	Name         string   `json:"name"`
	Species      string   `json:"species"`
	Breed        string   `json:"breed"`
	Color        string   `json:"color"`
	LastSeenLat  float64  `json:"last_seen_lat"`
	LastSeenLon  float64  `json:"last_seen_lon"`
	LastSeenArea string   `json:"last_seen_area"`
	DaysLost     int      `json:"days_lost"`
	PhotoRef     string   `json:"photo_ref"`
}

// Client invokes the ranking collaborator. Implementations must treat the
// result as possibly empty and return it normalized (see Normalize).
type Client interface {
	Rank(ctx context.Context, req Request) ([]Candidate, error)
}
