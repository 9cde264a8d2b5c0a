package chunking

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TokenChunker splits text on token boundaries of the embedding model's
// own BPE vocabulary. Chunk sizes measured in any other unit can overshoot
// the model's context window, so the tokenizer must match the model pinned
// for ingestion and query.
type TokenChunker struct {
	encoding  *tiktoken.Tiktoken
	maxTokens int
}

func NewTokenChunker(model string, maxTokens int) (*TokenChunker, error) {
	if maxTokens <= 0 {
		return nil, fmt.Errorf("max tokens must be positive, got %d", maxTokens)
	}
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("failed to load encoding for model %s: %w", model, err)
	}
	return &TokenChunker{
		encoding:  encoding,
		maxTokens: maxTokens,
	}, nil
}

// Chunk partitions text into consecutive runs of at most maxTokens tokens.
// The concatenation of all chunks' token sequences equals the token sequence
// of the input: nothing dropped, nothing repeated. Empty input yields no
// chunks.
func (c *TokenChunker) Chunk(text string) []string {
	ids := c.encoding.Encode(text, nil, nil)
	if len(ids) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(ids)+c.maxTokens-1)/c.maxTokens)
	for start := 0; start < len(ids); start += c.maxTokens {
		end := start + c.maxTokens
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, c.encoding.Decode(ids[start:end]))
	}
	return chunks
}
