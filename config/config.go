package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Qdrant    QdrantConfig    `yaml:"qdrant"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Chat      ChatConfig      `yaml:"chat"`
	Search    SearchConfig    `yaml:"search"`
	Ingest    IngestConfig    `yaml:"ingest"`
	Collector CollectorConfig `yaml:"collector"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type QdrantConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Collection string `yaml:"collection"`
}

type EmbeddingConfig struct {
	Model     string `yaml:"model"`
	Dimension int    `yaml:"dimension"`
	MaxTokens int    `yaml:"max_tokens"`
}

type ChatConfig struct {
	Model string `yaml:"model"`
}

type SearchConfig struct {
	TopK int `yaml:"top_k"`
}

type IngestConfig struct {
	DataDir     string `yaml:"data_dir"`
	FilePattern string `yaml:"file_pattern"`
	FlushSize   int    `yaml:"flush_size"`
}

type CollectorConfig struct {
	DatasetID string `yaml:"dataset_id"`
	OutputDir string `yaml:"output_dir"`
	StatePath string `yaml:"state_path"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Qdrant: QdrantConfig{
			Host:       "localhost",
			Port:       6334,
			Collection: "linkedin_profiles",
		},
		Embedding: EmbeddingConfig{
			Model:     "text-embedding-ada-002",
			Dimension: 1536,
			MaxTokens: 2048,
		},
		Chat:   ChatConfig{Model: "gpt-4"},
		Search: SearchConfig{TopK: 10},
		Ingest: IngestConfig{
			DataDir:     "./data",
			FilePattern: "linkedin_profiles_raw_*.json",
			FlushSize:   100,
		},
		Collector: CollectorConfig{
			OutputDir: "./data",
			StatePath: "./data/collector.db",
		},
	}
}

// MustEnv reads a required secret from the environment.
func MustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Environment variable %s is required but not set", key)
	}
	return value
}
