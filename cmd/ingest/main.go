package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bearlink/config"
	"bearlink/ingest"
	"bearlink/pkg/chunking"
	"bearlink/pkg/embedding"
	qdrantClient "bearlink/pkg/qdrantdb"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// =========
	// Config
	// =========
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	openAIKey := config.MustEnv("OPENAI_API_KEY")

	// =========
	// Logging
	// =========
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// =========
	// Qdrant vector
	// =========
	qdb, err := qdrantClient.NewClient(cfg.Qdrant.Host, cfg.Qdrant.Port,
		cfg.Qdrant.Collection, cfg.Embedding.Dimension)
	if err != nil {
		log.Fatalf("Failed to initialize Qdrant: %v", err)
	}

	// =========
	// Embedding Client
	// =========
	embeddingClient, err := embedding.NewOpenAI(openAIKey, cfg.Embedding.Model, cfg.Embedding.Dimension)
	if err != nil {
		log.Fatalf("Failed to initialize embedding client: %v", err)
	}

	// =========
	// Chunking Client
	// =========
	chunker, err := chunking.NewTokenChunker(cfg.Embedding.Model, cfg.Embedding.MaxTokens)
	if err != nil {
		log.Fatalf("Failed to initialize chunker: %v", err)
	}

	// =========
	// Ingestion
	// =========
	ingestor := ingest.NewIngestor(logger, qdb, embeddingClient, chunker,
		cfg.Ingest.DataDir, cfg.Ingest.FilePattern, cfg.Ingest.FlushSize)

	total, err := ingestor.Run(context.Background())
	if err != nil {
		logger.Fatal("ingestion failed", zap.Int("chunks_written", total), zap.Error(err))
	}
	logger.Info("ingestion finished", zap.Int("total_chunks", total))
}
