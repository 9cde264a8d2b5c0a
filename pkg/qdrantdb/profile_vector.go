package qdrantdb

import (
	"context"
	"fmt"
	"sort"

	"github.com/qdrant/go-client/qdrant"

	"bearlink/repository"
)

// Recreate drops any existing collection of the configured name and creates
// a fresh one. Destructive: readers racing this call see an empty or partial
// collection.
func (c *ProfileClient) Recreate(ctx context.Context) error {
	exists, err := c.Client.CollectionExists(ctx, c.collection)
	if err != nil {
		return fmt.Errorf("err check collection %s: %w", c.collection, err)
	}
	if exists {
		if err := c.Client.DeleteCollection(ctx, c.collection); err != nil {
			return fmt.Errorf("err delete collection %s: %w", c.collection, err)
		}
	}

	err = c.Client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: c.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     c.dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("err create collection %s: %w", c.collection, err)
	}
	return nil
}

func (c *ProfileClient) Upsert(ctx context.Context, points []repository.ProfilePoint) error {
	if len(points) == 0 {
		return nil
	}

	qp := make([]*qdrant.PointStruct, len(points))
	for i, p := range points {
		qp[i] = &qdrant.PointStruct{
			Id:      qdrant.NewIDNum(p.ID),
			Vectors: qdrant.NewVectorsDense(p.Vector),
			Payload: qdrant.NewValueMap(payloadMap(p.Payload)),
		}
	}

	_, err := c.Client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: c.collection,
		Points:         qp,
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fmt.Errorf("err upsert %d points: %w", len(points), err)
	}
	return nil
}

func (c *ProfileClient) Search(ctx context.Context, vector []float32, limit int) ([]repository.ScoredPayload, error) {
	hits, err := c.Client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: c.collection,
		Query:          qdrant.NewQueryDense(vector),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("err query collection %s: %w", c.collection, err)
	}

	results := make([]repository.ScoredPayload, 0, len(hits))
	for _, h := range hits {
		results = append(results, repository.ScoredPayload{
			Payload: payloadFromMap(h.Payload),
			Score:   h.Score,
		})
	}

	// The reducer depends on descending-similarity order; enforce it here
	// rather than leaning on the server's ordering.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

func (c *ProfileClient) Scroll(ctx context.Context, limit int) ([]repository.ProfilePayload, error) {
	points, err := c.Client.Scroll(ctx, &qdrant.ScrollPoints{
		CollectionName: c.collection,
		Limit:          qdrant.PtrOf(uint32(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("err scroll collection %s: %w", c.collection, err)
	}

	payloads := make([]repository.ProfilePayload, 0, len(points))
	for _, p := range points {
		payloads = append(payloads, payloadFromMap(p.Payload))
	}
	return payloads, nil
}

func payloadMap(p repository.ProfilePayload) map[string]any {
	companies := make([]any, len(p.ExperienceCompanies))
	for i, c := range p.ExperienceCompanies {
		companies[i] = c
	}
	return map[string]any{
		"profile_id":           p.ProfileID,
		"current_company":      p.CurrentCompany,
		"experience_companies": companies,
		"text":                 p.Text,
		"url":                  p.URL,
	}
}

func payloadFromMap(m map[string]*qdrant.Value) repository.ProfilePayload {
	p := repository.ProfilePayload{
		ProfileID:      m["profile_id"].GetStringValue(),
		CurrentCompany: m["current_company"].GetStringValue(),
		Text:           m["text"].GetStringValue(),
		URL:            m["url"].GetStringValue(),
	}
	for _, v := range m["experience_companies"].GetListValue().GetValues() {
		p.ExperienceCompanies = append(p.ExperienceCompanies, v.GetStringValue())
	}
	return p
}
