package ingest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bearlink/pkg/chunking"
	"bearlink/pkg/embedding"
	"bearlink/repository"
)

// Ingestor rebuilds the vector collection from the raw profile exports.
// Each run recreates the collection from scratch; there is no incremental
// update. A failure mid-run leaves a partial collection behind and the
// recovery path is simply another full run.
type Ingestor struct {
	logger    *zap.Logger
	repo      repository.ProfileVectorRepo
	embedder  embedding.Client
	chunker   chunking.Client
	dataDir   string
	pattern   string
	flushSize int
}

func NewIngestor(logger *zap.Logger, repo repository.ProfileVectorRepo,
	embedder embedding.Client, chunker chunking.Client,
	dataDir, pattern string, flushSize int) *Ingestor {
	if flushSize <= 0 {
		flushSize = 100
	}
	return &Ingestor{
		logger:    logger,
		repo:      repo,
		embedder:  embedder,
		chunker:   chunker,
		dataDir:   dataDir,
		pattern:   pattern,
		flushSize: flushSize,
	}
}

// Run executes one full ingestion: load every export file, recreate the
// collection, then normalize, chunk, embed and upsert every profile that
// carries an id. Point ids come from a single per-run counter that is never
// rewound, also not across skipped profiles or failed flushes. Returns the
// number of chunks stored.
func (ing *Ingestor) Run(ctx context.Context) (int, error) {
	profiles, err := LoadProfiles(ing.dataDir, ing.pattern)
	if err != nil {
		return 0, err
	}
	ing.logger.Info("loaded profiles", zap.Int("count", len(profiles)))

	if err := ing.repo.Recreate(ctx); err != nil {
		return 0, fmt.Errorf("failed to recreate collection: %w", err)
	}

	nextID := uint64(0)
	var buffer []repository.ProfilePoint

	for i := range profiles {
		p := &profiles[i]
		if p.ID == "" {
			ing.logger.Warn("skipping profile without id", zap.String("name", p.Name))
			continue
		}

		chunks := ing.chunker.Chunk(p.CanonicalText())
		if len(chunks) == 0 {
			continue
		}

		vectors, err := ing.embedder.GetEmbeddings(ctx, chunks)
		if err != nil {
			return int(nextID), fmt.Errorf("failed to embed profile %s: %w", p.ID, err)
		}

		for j, chunk := range chunks {
			payload, err := repository.NewProfilePayload(
				p.ID, p.CurrentCompanyName(), p.ExperienceCompanies(), chunk, p.URL)
			if err != nil {
				return int(nextID), fmt.Errorf("bad payload for profile %s: %w", p.ID, err)
			}
			buffer = append(buffer, repository.ProfilePoint{
				ID:      nextID,
				Vector:  vectors[j],
				Payload: payload,
			})
			nextID++

			if len(buffer) >= ing.flushSize {
				if err := ing.repo.Upsert(ctx, buffer); err != nil {
					return int(nextID), fmt.Errorf("failed to flush batch: %w", err)
				}
				buffer = nil
				ing.logger.Info("flushed batch", zap.Uint64("chunks_so_far", nextID))
			}
		}
	}

	if len(buffer) > 0 {
		if err := ing.repo.Upsert(ctx, buffer); err != nil {
			return int(nextID), fmt.Errorf("failed to flush final batch: %w", err)
		}
	}

	ing.logger.Info("ingestion complete", zap.Uint64("total_chunks", nextID))
	return int(nextID), nil
}
