package embedding

import "context"

// Client converts text into fixed-dimension embedding vectors.
//
// Input: ["this is a text"] → list of strings
// Output: [ [0.12, -0.33, 0.57, ...] ]
// If you send 3 texts, you get 3 vectors, in the same order.
type Client interface {
	GetEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
}
