package checkpoint

import (
	"time"

	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

// Run is everything needed to resume an interrupted generation.
type Run struct {
	ID        string          `json:"id"`
	Source    string          `json:"source"`
	Meta      models.RunMeta  `json:"meta"`
	Plan      models.TimePlan `json:"plan"`
	Pages     []string        `json:"pages"`
	CreatedAt time.Time       `json:"created_at"`

	// Scripts holds the slides finished so far, in slide order. Only filled by Load.
	Scripts models.Scripts `json:"-"`
}

// Store keeps per-slide progress so a failed run can be resumed.
type Store interface {
	Begin(run Run) (string, error)
	Append(id string, slide int, text string) error
	Load(id string) (Run, error)
	List() ([]Run, error)
	Delete(id string) error
	Close() error
}
