package extractor

import (
	"context"
	"io"

	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

// Extractor turns an inclusive, 1-indexed page range of a PDF into per-page text.
type Extractor interface {
	Extract(ctx context.Context, path string, start, end int) (models.SourceDocument, error)
	// ExtractReader reads an in-memory or uploaded PDF of size bytes. name
	// becomes the document's FileName.
	ExtractReader(ctx context.Context, name string, r io.ReaderAt, size int64, start, end int) (models.SourceDocument, error)
}
