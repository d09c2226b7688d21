package checkpoint

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
	bolt "go.etcd.io/bbolt"
)

var ErrNotFound = errors.New("checkpoint not found")

// Begin stores the run header and returns its id. A blank run.ID gets a new uuid.
func (s *implStore) Begin(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now()
	}

	enc, err := json.Marshal(run)
	if err != nil {
		return "", err
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketRuns).Put([]byte(run.ID), enc); err != nil {
			return err
		}
		_, err := tx.Bucket(bucketScripts).CreateBucketIfNotExists([]byte(run.ID))
		return err
	})
	if err != nil {
		return "", fmt.Errorf("begin checkpoint: %w", err)
	}
	return run.ID, nil
}

// Append records one finished slide.
func (s *implStore) Append(id string, slide int, text string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketRuns).Get([]byte(id)) == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		b, err := tx.Bucket(bucketScripts).CreateBucketIfNotExists([]byte(id))
		if err != nil {
			return err
		}
		return b.Put(slideKey(slide), []byte(text))
	})
}

func (s *implStore) Load(id string) (Run, error) {
	var run Run
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketRuns).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if err := json.Unmarshal(v, &run); err != nil {
			return fmt.Errorf("%w: checkpoint %s: %w", models.ErrParse, id, err)
		}

		b := tx.Bucket(bucketScripts).Bucket([]byte(id))
		if b == nil {
			return nil
		}
		// keys are big-endian so ForEach walks slides in ascending order
		return b.ForEach(func(k, v []byte) error {
			run.Scripts = append(run.Scripts, models.Script{
				Slide: int(binary.BigEndian.Uint64(k)),
				Text:  string(v),
			})
			return nil
		})
	})
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

// List returns run headers, oldest first. Malformed entries are skipped.
func (s *implStore) List() ([]Run, error) {
	var runs []Run
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRuns).ForEach(func(k, v []byte) error {
			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				return nil
			}
			if b := tx.Bucket(bucketScripts).Bucket(k); b != nil {
				_ = b.ForEach(func(k, v []byte) error {
					run.Scripts = append(run.Scripts, models.Script{Slide: int(binary.BigEndian.Uint64(k))})
					return nil
				})
			}
			runs = append(runs, run)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].CreatedAt.Before(runs[j].CreatedAt) })
	return runs, nil
}

func (s *implStore) Delete(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketRuns).Delete([]byte(id)); err != nil {
			return err
		}
		scripts := tx.Bucket(bucketScripts)
		if scripts.Bucket([]byte(id)) == nil {
			return nil
		}
		return scripts.DeleteBucket([]byte(id))
	})
}

func (s *implStore) Close() error {
	return s.db.Close()
}

func slideKey(slide int) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(slide))
	return k
}
