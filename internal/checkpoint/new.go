package checkpoint

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketRuns    = []byte("runs")
	bucketScripts = []byte("scripts")
)

type implStore struct {
	db  *bolt.DB
	now func() time.Time
}

// New opens (or creates) the bolt file at path.
func New(path string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create checkpoint dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open checkpoint db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketRuns); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketScripts)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init checkpoint buckets: %w", err)
	}

	return &implStore{db: db, now: time.Now}, nil
}
