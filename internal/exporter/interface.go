package exporter

import (
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

// Exporter renders scripts as one page per slide.
type Exporter interface {
	PDF(scripts models.Scripts) ([]byte, error)
	DOCX(scripts models.Scripts, outputPath string) error
}
