package exporter

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/slide-narrator/internal/config"
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

type implExporter struct {
	title    string
	regular  []byte
	bold     []byte
	compress bool
}

// New loads the configured fonts. A configured font that cannot be read is
// an ErrRender: export is unusable and the caller should stop.
func New(cfg config.ExportConfig) (Exporter, error) {
	e := &implExporter{
		title:    cfg.Title,
		compress: true,
	}

	if cfg.FontPath == "" {
		if cfg.BoldFontPath != "" {
			return nil, fmt.Errorf("%w: bold_font_path set without font_path", models.ErrRender)
		}
		return e, nil
	}

	var err error
	if e.regular, err = os.ReadFile(cfg.FontPath); err != nil {
		return nil, fmt.Errorf("%w: font %s: %w", models.ErrRender, cfg.FontPath, err)
	}
	if cfg.BoldFontPath == "" {
		e.bold = e.regular
		return e, nil
	}
	if e.bold, err = os.ReadFile(cfg.BoldFontPath); err != nil {
		return nil, fmt.Errorf("%w: font %s: %w", models.ErrRender, cfg.BoldFontPath, err)
	}

	return e, nil
}
