package session

import (
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

// Store persists run records as JSON files named by their creation time.
type Store interface {
	// Save writes a new run file and returns its path.
	Save(meta models.RunMeta, scripts models.Scripts, texts []string, start int) (string, error)
	// List returns run file names, newest first.
	List() ([]string, error)
	// Open reads a run file by name.
	Open(name string) (models.RunRecord, error)
	Dir() string
}
