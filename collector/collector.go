package collector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Collector downloads finished snapshots into the ingestion data directory,
// one numbered export file per snapshot.
type Collector struct {
	logger    *zap.Logger
	client    *Client
	tracker   *Tracker
	outputDir string
}

func NewCollector(logger *zap.Logger, client *Client, tracker *Tracker, outputDir string) *Collector {
	return &Collector{
		logger:    logger,
		client:    client,
		tracker:   tracker,
		outputDir: outputDir,
	}
}

// Run downloads each requested snapshot unless the tracker says it was
// already saved. Files land as linkedin_profiles_raw_<n>.json next to any
// existing exports.
func (c *Collector) Run(ctx context.Context, snapshotIDs []string) error {
	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	for _, id := range snapshotIDs {
		done, err := c.tracker.IsDownloaded(id)
		if err != nil {
			return fmt.Errorf("failed to check snapshot %s: %w", id, err)
		}
		if done {
			c.logger.Info("snapshot already downloaded", zap.String("snapshot_id", id))
			continue
		}

		data, err := c.client.Snapshot(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to download snapshot %s: %w", id, err)
		}

		path, err := c.nextOutputPath()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := c.tracker.MarkDownloaded(id, path); err != nil {
			return fmt.Errorf("failed to record snapshot %s: %w", id, err)
		}

		c.logger.Info("snapshot saved",
			zap.String("snapshot_id", id),
			zap.String("path", path))
	}
	return nil
}

// nextOutputPath picks the first unused export file number.
func (c *Collector) nextOutputPath() (string, error) {
	for n := 1; ; n++ {
		path := filepath.Join(c.outputDir, fmt.Sprintf("linkedin_profiles_raw_%d.json", n))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		} else if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}
}
