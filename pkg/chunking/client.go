package chunking

// Client splits text into pieces small enough for the embedding model.
type Client interface {
	Chunk(text string) []string
}
