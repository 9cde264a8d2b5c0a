package embedding

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAI embeds text with a pinned OpenAI embedding model. The model must be
// identical between ingestion and query time or the vectors live in
// incompatible spaces.
type OpenAI struct {
	llm        *openai.LLM
	model      string
	dimension  int
	batchSize  int
	maxRetries int
	baseDelay  time.Duration
}

func NewOpenAI(apiKey, model string, dimension int) (*OpenAI, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithEmbeddingModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	return &OpenAI{
		llm:        llm,
		model:      model,
		dimension:  dimension,
		batchSize:  32,
		maxRetries: 5,
		baseDelay:  100 * time.Millisecond,
	}, nil
}

func (c *OpenAI) Dimension() int {
	return c.dimension
}

func (c *OpenAI) GetEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += c.batchSize {
		end := start + c.batchSize
		if end > len(texts) {
			end = len(texts)
		}

		batch, err := c.embedWithRetry(ctx, texts[start:end])
		if err != nil {
			return nil, fmt.Errorf("embed failed after retries: %w", err)
		}
		vectors = append(vectors, batch...)
	}

	for i, vec := range vectors {
		if len(vec) != c.dimension {
			return nil, fmt.Errorf("model %s returned %d-dimension vector for input %d, want %d",
				c.model, len(vec), i, c.dimension)
		}
	}
	return vectors, nil
}

func (c *OpenAI) embedWithRetry(ctx context.Context, texts []string) ([][]float32, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		vecs, err := c.llm.CreateEmbedding(ctx, texts)
		if err == nil {
			if len(vecs) != len(texts) {
				return nil, fmt.Errorf("got %d embeddings for %d inputs", len(vecs), len(texts))
			}
			return vecs, nil
		}

		lastErr = err

		// Don't wait after the last attempt
		if attempt < c.maxRetries {
			delay := c.calculateBackoffDelay(attempt)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return nil, lastErr
}

func (c *OpenAI) calculateBackoffDelay(attempt int) time.Duration {
	// Exponential backoff: baseDelay * 2^attempt with some jitter
	delay := float64(c.baseDelay) * math.Pow(2, float64(attempt))

	jitter := delay * 0.25 * (0.5 - (float64(time.Now().UnixNano()%1000) / 1000))

	return time.Duration(delay + jitter)
}
