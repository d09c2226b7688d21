package extractor

import (
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

// nativeExtractor reads PDFs in-process.
type nativeExtractor struct{}

func (e *nativeExtractor) Extract(ctx context.Context, path string, start, end int) (doc models.SourceDocument, err error) {
	// the parser panics on some malformed files
	defer recoverRead(path, &err)

	f, r, err := pdf.Open(path)
	if err != nil {
		return models.SourceDocument{}, fmt.Errorf("%w: open %s: %w", models.ErrDocumentRead, path, err)
	}
	defer f.Close()

	return readPages(ctx, path, r, start, end)
}

func (e *nativeExtractor) ExtractReader(ctx context.Context, name string, ra io.ReaderAt, size int64, start, end int) (doc models.SourceDocument, err error) {
	defer recoverRead(name, &err)

	r, err := pdf.NewReader(ra, size)
	if err != nil {
		return models.SourceDocument{}, fmt.Errorf("%w: open %s: %w", models.ErrDocumentRead, name, err)
	}

	return readPages(ctx, name, r, start, end)
}

func recoverRead(name string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %s: %v", models.ErrDocumentRead, name, r)
	}
}

func readPages(ctx context.Context, name string, r *pdf.Reader, start, end int) (models.SourceDocument, error) {
	total := r.NumPage()
	start, end, err := clampRange(start, end, total)
	if err != nil {
		return models.SourceDocument{}, err
	}

	doc := newDocument(name, total, start, end)
	for i := start; i <= end; i++ {
		if err := ctx.Err(); err != nil {
			return models.SourceDocument{}, err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return models.SourceDocument{}, fmt.Errorf("%w: page %d: %w", models.ErrDocumentRead, i, err)
		}
		doc.Pages = append(doc.Pages, text)
	}

	return doc, nil
}
