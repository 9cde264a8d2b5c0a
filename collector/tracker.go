package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("snapshots")

// Tracker remembers which snapshots were already downloaded so repeated
// collector runs don't re-fetch or overwrite existing export files.
type Tracker struct {
	DBPath string
	db     *bolt.DB
	mu     sync.RWMutex
}

// Init opens (or creates) the tracking database.
func (t *Tracker) Init() error {
	dbDir := filepath.Dir(t.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for tracker db: %w", err)
	}

	db, err := bolt.Open(t.DBPath, 0600, nil)
	if err != nil {
		return fmt.Errorf("failed to open tracker db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	t.db = db
	return nil
}

// MarkDownloaded records the export file a snapshot was saved to.
func (t *Tracker) MarkDownloaded(snapshotID, outputPath string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		return b.Put([]byte(snapshotID), []byte(outputPath))
	})
}

// IsDownloaded reports whether a snapshot was already saved.
func (t *Tracker) IsDownloaded(snapshotID string) (bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var downloaded bool
	err := t.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		downloaded = b.Get([]byte(snapshotID)) != nil
		return nil
	})
	return downloaded, err
}

// Close closes the tracking database.
func (t *Tracker) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.db != nil {
		return t.db.Close()
	}
	return nil
}
