package pipeline

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// Process is the inbox handler used by the watcher.
func (p *implPipeline) Process(ctx context.Context, path string) error {
	res, err := p.Generate(ctx, Request{
		Path:    path,
		Start:   1,
		End:     math.MaxInt32,
		Minutes: p.cfg.Lecture.DefaultMinutes,
	})
	if err != nil {
		return err
	}

	pdfPath, err := p.exportPDF(ctx, path, res)
	if err != nil {
		p.logger.Warn(ctx, "Failed to export PDF for %s: %v", path, err)
	} else {
		p.logger.Info(ctx, "Exported: %s", pdfPath)
	}

	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	return nil
}

func (p *implPipeline) exportPDF(ctx context.Context, sourcePath string, res Result) (string, error) {
	data, err := p.exporter.PDF(res.Scripts)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(p.cfg.Paths.Exports, 0755); err != nil {
		return "", fmt.Errorf("create exports dir: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(res.RecordPath), filepath.Ext(res.RecordPath))
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	out := filepath.Join(p.cfg.Paths.Exports, base+"_"+name+".pdf")

	if err := os.WriteFile(out, data, 0644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return out, nil
}

// moveToArchived moves a processed source out of the inbox
func (p *implPipeline) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))
	p.logger.Info(ctx, "Archiving source: %s -> %s", path, dest)

	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
