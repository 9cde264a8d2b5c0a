package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bearlink/api"
	"bearlink/config"
	"bearlink/file"
	"bearlink/message"
	"bearlink/pkg/embedding"
	qdrantClient "bearlink/pkg/qdrantdb"
	"bearlink/search"
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
	// Search Service
	// =========
	searcher := search.NewService(logger, embeddingClient, qdb, cfg.Search.TopK)

	// =========
	// Message Generator
	// =========
	generator, err := message.NewGenerator(openAIKey, cfg.Chat.Model)
	if err != nil {
		log.Fatalf("Failed to initialize message generator: %v", err)
	}

	// =========
	// API server
	// =========
	server := api.NewServer(logger, searcher, generator, file.NewCore(), qdb, cfg.Server.Port)
	log.Fatal(server.Start())
}
