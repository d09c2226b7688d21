package pipeline

import (
	"context"
	"io"

	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

// Request describes one generation run. The deck is read from Path, or from
// Reader (Size bytes) when it is set.
type Request struct {
	Path       string
	Reader     io.ReaderAt
	Size       int64
	SourceName string
	Start      int `validate:"min=1"`
	End        int `validate:"gtefield=Start"`
	Minutes    int `validate:"min=1,max=10000"`
}

// Result is a finished run.
type Result struct {
	RunID      string
	RecordPath string
	Record     *models.RunRecord
	Plan       models.TimePlan
	Scripts    models.Scripts
}

// Pipeline runs extraction, time planning and ordered script generation.
type Pipeline interface {
	Generate(ctx context.Context, req Request) (Result, error)
	// Resume continues a run that stopped after its checkpoint was created.
	Resume(ctx context.Context, runID string) (Result, error)
	// Process handles a PDF dropped into the inbox: all pages, default
	// duration, PDF export, then the source is archived.
	Process(ctx context.Context, path string) error
}
