package exporter

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

const (
	ttfFamily  = "Body"
	coreFamily = "Helvetica"

	lineHeight   = 10.0
	bottomMargin = 15.0
)

// PDF renders one A4 page per script with a "Slide n" heading.
func (e *implExporter) PDF(scripts models.Scripts) ([]byte, error) {
	if len(scripts) == 0 {
		return nil, fmt.Errorf("%w: nothing to export", models.ErrInvalidInput)
	}

	pdf := e.render(scripts)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrRender, err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrRender, err)
	}
	return buf.Bytes(), nil
}

func (e *implExporter) render(scripts models.Scripts) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(e.compress)
	pdf.SetAutoPageBreak(true, bottomMargin)

	family, tr := e.fonts(pdf)

	pdf.SetHeaderFunc(func() {
		pdf.SetFont(family, "", 12)
		pdf.CellFormat(0, lineHeight, tr(e.title), "", 1, "C", false, 0, "")
	})

	for _, s := range scripts {
		pdf.AddPage()
		pdf.SetFont(family, "B", 14)
		pdf.CellFormat(0, lineHeight, tr(models.SlideLabel(s.Key())), "", 1, "", false, 0, "")
		pdf.SetFont(family, "", 12)
		pdf.MultiCell(0, lineHeight, tr(s.Text), "", "", false)
	}

	return pdf
}

// fonts registers the configured TTFs, or falls back to the core font with
// a cp1252 translator for accented text.
func (e *implExporter) fonts(pdf *fpdf.Fpdf) (string, func(string) string) {
	if e.regular == nil {
		return coreFamily, pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.AddUTF8FontFromBytes(ttfFamily, "", e.regular)
	pdf.AddUTF8FontFromBytes(ttfFamily, "B", e.bold)
	return ttfFamily, func(s string) string { return s }
}
