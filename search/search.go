package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bearlink/pkg/embedding"
	"bearlink/profile"
	"bearlink/repository"
)

// Result is one profile in a search response. Name and title are recovered
// from the stored chunk's header line; Bio carries the full chunk text.
type Result struct {
	Name                string   `json:"name"`
	Title               string   `json:"title"`
	Bio                 string   `json:"bio"`
	ProfileID           string   `json:"profile_id"`
	CurrentCompany      string   `json:"current_company"`
	ExperienceCompanies []string `json:"experience_companies"`
	URL                 string   `json:"url"`
}

// Service answers free-text queries against the profile collection.
type Service struct {
	logger   *zap.Logger
	embedder embedding.Client
	repo     repository.ProfileVectorRepo
	topK     int
}

func NewService(logger *zap.Logger, embedder embedding.Client,
	repo repository.ProfileVectorRepo, topK int) *Service {
	if topK <= 0 {
		topK = 10
	}
	return &Service{
		logger:   logger,
		embedder: embedder,
		repo:     repo,
		topK:     topK,
	}
}

// Search embeds the query, fetches the top-k nearest chunks and reduces them
// to one result per profile: the first hit for a profile in similarity order
// wins, later chunks of the same profile are dropped. Result order is the
// similarity order of each profile's first occurrence.
func (s *Service) Search(ctx context.Context, query string) ([]Result, error) {
	vectors, err := s.embedder.GetEmbeddings(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	hits, err := s.repo.Search(ctx, vectors[0], s.topK)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	s.logger.Info("search returned hits", zap.Int("count", len(hits)))

	seen := make(map[string]bool, len(hits))
	results := make([]Result, 0, len(hits))
	for _, h := range hits {
		p := h.Payload
		if seen[p.ProfileID] {
			continue
		}
		seen[p.ProfileID] = true

		name, title := profile.ParseHeader(p.Text)
		results = append(results, Result{
			Name:                name,
			Title:               title,
			Bio:                 p.Text,
			ProfileID:           p.ProfileID,
			CurrentCompany:      p.CurrentCompany,
			ExperienceCompanies: p.ExperienceCompanies,
			URL:                 p.URL,
		})
	}
	return results, nil
}
