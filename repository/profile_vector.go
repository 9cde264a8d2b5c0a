package repository

import (
	"context"
	"errors"
)

// ErrMissingProfileID rejects payloads that would orphan a stored point.
var ErrMissingProfileID = errors.New("payload requires a profile id")

// ProfilePayload is the metadata stored alongside each vector. Every stored
// point must trace back to an ingested profile via ProfileID; multiple points
// share a ProfileID when the profile text spans several chunks.
type ProfilePayload struct {
	ProfileID           string   `json:"profile_id"`
	CurrentCompany      string   `json:"current_company"`
	ExperienceCompanies []string `json:"experience_companies"`
	Text                string   `json:"text"`
	URL                 string   `json:"url"`
}

func NewProfilePayload(profileID, currentCompany string, experienceCompanies []string, text, url string) (ProfilePayload, error) {
	if profileID == "" {
		return ProfilePayload{}, ErrMissingProfileID
	}
	return ProfilePayload{
		ProfileID:           profileID,
		CurrentCompany:      currentCompany,
		ExperienceCompanies: experienceCompanies,
		Text:                text,
		URL:                 url,
	}, nil
}

// ProfilePoint is one stored unit: an integer id unique across the whole
// ingestion run, the chunk's embedding, and its payload.
type ProfilePoint struct {
	ID      uint64
	Vector  []float32
	Payload ProfilePayload
}

// ScoredPayload is a search hit: stored payload plus cosine similarity.
type ScoredPayload struct {
	Payload ProfilePayload
	Score   float32
}

// ProfileVectorRepo owns the vector collection lifecycle.
type ProfileVectorRepo interface {
	// Recreate destructively replaces the collection. Searches racing a
	// recreation observe an empty or partially populated collection.
	Recreate(ctx context.Context) error
	// Upsert writes one batch of points keyed by point id.
	Upsert(ctx context.Context, points []ProfilePoint) error
	// Search returns up to limit hits ordered by descending similarity.
	Search(ctx context.Context, vector []float32, limit int) ([]ScoredPayload, error)
	// Scroll returns up to limit payloads in storage order, for diagnostics.
	Scroll(ctx context.Context, limit int) ([]ProfilePayload, error)
}
