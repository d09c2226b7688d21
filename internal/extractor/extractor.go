package extractor

import (
	"fmt"
	"path/filepath"

	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

// clampRange clamps end to total and validates the resulting range.
func clampRange(start, end, total int) (int, int, error) {
	if total <= 0 {
		return 0, 0, fmt.Errorf("%w: document has no pages", models.ErrDocumentRead)
	}
	if end > total {
		end = total
	}
	if start < 1 || start > end {
		return 0, 0, fmt.Errorf("%w: page range %d-%d outside 1-%d", models.ErrInvalidInput, start, end, total)
	}
	return start, end, nil
}

func newDocument(path string, total, start, end int) models.SourceDocument {
	return models.SourceDocument{
		FileName:   filepath.Base(path),
		TotalPages: total,
		Start:      start,
		End:        end,
		Pages:      make([]string, 0, end-start+1),
	}
}
