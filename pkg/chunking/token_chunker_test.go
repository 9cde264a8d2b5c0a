package chunking

import (
	"strings"
	"testing"

	"github.com/pkoukk/tiktoken-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = "text-embedding-ada-002"

func TestTokenChunkerRoundTrip(t *testing.T) {
	encoding, err := tiktoken.EncodingForModel(testModel)
	require.NoError(t, err)

	texts := []string{
		"Ada Lovelace — Engineer",
		"Ada Lovelace — Engineer\n\nPioneer of computing and the first programmer.",
		strings.Repeat("Profiles hold experience entries, biographies and employer names. ", 40),
		"short",
	}
	maxTokens := []int{1, 3, 16, 2048}

	for _, text := range texts {
		for _, max := range maxTokens {
			chunker, err := NewTokenChunker(testModel, max)
			require.NoError(t, err)

			chunks := chunker.Chunk(text)

			// Concatenating all chunks reconstructs the input exactly.
			assert.Equal(t, text, strings.Join(chunks, ""))

			// Chunk count matches ceil(tokens/max).
			total := len(encoding.Encode(text, nil, nil))
			wantChunks := (total + max - 1) / max
			assert.Len(t, chunks, wantChunks)

			// No chunk re-encodes past the budget.
			for _, chunk := range chunks {
				assert.LessOrEqual(t, len(encoding.Encode(chunk, nil, nil)), max)
			}
		}
	}
}

func TestTokenChunkerEmptyInput(t *testing.T) {
	chunker, err := NewTokenChunker(testModel, 2048)
	require.NoError(t, err)

	assert.Empty(t, chunker.Chunk(""))
}

func TestTokenChunkerRejectsBadMax(t *testing.T) {
	_, err := NewTokenChunker(testModel, 0)
	assert.Error(t, err)

	_, err = NewTokenChunker(testModel, -5)
	assert.Error(t, err)
}
