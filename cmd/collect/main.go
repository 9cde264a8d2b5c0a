package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bearlink/collector"
	"bearlink/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	snapshots := flag.String("snapshots", "", "comma-separated snapshot ids to download")
	trigger := flag.String("trigger", "", "file with profile URLs (one per line) to trigger a new scrape")
	flag.Parse()

	// =========
	// Config
	// =========
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	apiKey := config.MustEnv("BRIGHTDATA_API_KEY")

	// =========
	// Logging
	// =========
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	client := collector.NewClient(apiKey)
	ctx := context.Background()

	if *trigger != "" {
		inputs, err := collector.ReadTriggerFile(*trigger)
		if err != nil {
			log.Fatalf("Failed to read trigger file: %v", err)
		}
		snapshotID, err := client.Trigger(ctx, cfg.Collector.DatasetID, inputs)
		if err != nil {
			log.Fatalf("Failed to trigger scrape: %v", err)
		}
		logger.Info("scrape triggered", zap.String("snapshot_id", snapshotID))
		return
	}

	if *snapshots == "" {
		log.Fatal("either -snapshots or -trigger is required")
	}

	tracker := &collector.Tracker{DBPath: cfg.Collector.StatePath}
	if err := tracker.Init(); err != nil {
		log.Fatalf("Failed to open tracker: %v", err)
	}
	defer tracker.Close()

	c := collector.NewCollector(logger, client, tracker, cfg.Collector.OutputDir)
	if err := c.Run(ctx, strings.Split(*snapshots, ",")); err != nil {
		logger.Fatal("collection failed", zap.Error(err))
	}
}
