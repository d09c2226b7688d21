package session

import (
	"time"
)

type implStore struct {
	dir string
	now func() time.Time
}

// New creates a Store rooted at dir. The directory is created on first save.
func New(dir string) Store {
	return &implStore{
		dir: dir,
		now: time.Now,
	}
}
