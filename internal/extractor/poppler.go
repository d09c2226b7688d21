package extractor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/nguyentantai21042004/slide-narrator/internal/models"
	"github.com/nguyentantai21042004/slide-narrator/pkg/executor"
)

var rePages = regexp.MustCompile(`(?m)^Pages:\s+(\d+)`)

// popplerExtractor shells out to pdfinfo / pdftotext. Layout mode keeps
// columns in reading order, which suits slides better than the raw stream.
type popplerExtractor struct {
	executor  executor.Executor
	pdftotext string
	pdfinfo   string
}

func (e *popplerExtractor) Extract(ctx context.Context, path string, start, end int) (models.SourceDocument, error) {
	total, err := e.pageCount(ctx, path)
	if err != nil {
		return models.SourceDocument{}, err
	}

	start, end, err = clampRange(start, end, total)
	if err != nil {
		return models.SourceDocument{}, err
	}

	doc := newDocument(path, total, start, end)
	for i := start; i <= end; i++ {
		n := strconv.Itoa(i)
		// -f/-l: first and last page; "-" writes to stdout
		text, err := e.executor.Execute(ctx, e.pdftotext, "-layout", "-f", n, "-l", n, path, "-")
		if err != nil {
			return models.SourceDocument{}, fmt.Errorf("%w: pdftotext page %d: %w", models.ErrDocumentRead, i, err)
		}
		doc.Pages = append(doc.Pages, text)
	}

	return doc, nil
}

// ExtractReader spools r to a temp file since the poppler tools only read paths.
func (e *popplerExtractor) ExtractReader(ctx context.Context, name string, r io.ReaderAt, size int64, start, end int) (models.SourceDocument, error) {
	tmp, err := os.CreateTemp("", "narrator-*.pdf")
	if err != nil {
		return models.SourceDocument{}, fmt.Errorf("spool %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	_, err = io.Copy(tmp, io.NewSectionReader(r, 0, size))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return models.SourceDocument{}, fmt.Errorf("spool %s: %w", name, err)
	}

	doc, err := e.Extract(ctx, tmp.Name(), start, end)
	if err != nil {
		return models.SourceDocument{}, err
	}
	doc.FileName = filepath.Base(name)
	return doc, nil
}

func (e *popplerExtractor) pageCount(ctx context.Context, path string) (int, error) {
	out, err := e.executor.Execute(ctx, e.pdfinfo, path)
	if err != nil {
		return 0, fmt.Errorf("%w: pdfinfo: %w", models.ErrDocumentRead, err)
	}

	m := rePages.FindStringSubmatch(out)
	if m == nil {
		return 0, fmt.Errorf("%w: pdfinfo reported no page count", models.ErrDocumentRead)
	}
	return strconv.Atoi(m[1])
}
