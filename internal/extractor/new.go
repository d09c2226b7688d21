package extractor

import (
	"fmt"

	"github.com/nguyentantai21042004/slide-narrator/internal/config"
	"github.com/nguyentantai21042004/slide-narrator/pkg/executor"
)

// New returns the backend selected by cfg.Backend.
func New(cfg config.ExtractorConfig, exec executor.Executor) (Extractor, error) {
	switch cfg.Backend {
	case "", "native":
		return &nativeExtractor{}, nil
	case "pdftotext":
		return &popplerExtractor{
			executor:  exec,
			pdftotext: cfg.PdftotextPath,
			pdfinfo:   cfg.PdfinfoPath,
		}, nil
	default:
		return nil, fmt.Errorf("unknown extractor backend %q", cfg.Backend)
	}
}
