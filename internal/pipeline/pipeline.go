package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/slide-narrator/internal/checkpoint"
	"github.com/nguyentantai21042004/slide-narrator/internal/logger"
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

// Generate runs one full pass. A failure before the first slide leaves no
// state behind; a failure while writing slides leaves a checkpoint that
// Resume can pick up.
func (p *implPipeline) Generate(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting script generation: %s (pages %d-%d, %d min)", req.source(), req.Start, req.End, req.Minutes)
	p.logger.Info(ctx, "========================================")

	// Step 1: Extract page texts
	doc, err := p.extract(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("extract pages: %w", err)
	}
	p.logger.Info(ctx, "Extracted %d pages (%d-%d of %d)", doc.Len(), doc.Start, doc.End, doc.TotalPages)

	// Step 2: Plan the time budget
	plan, err := p.planner.Plan(ctx, doc, req.Minutes)
	if err != nil {
		return Result{}, fmt.Errorf("plan times: %w", err)
	}
	p.logger.Info(ctx, "Time plan ready: %d entries, %ds total", len(plan.Slides), plan.Total())

	// Step 3: Open a checkpoint so finished slides survive a failure
	run := checkpoint.Run{
		Source: req.source(),
		Meta: models.RunMeta{
			SourceName:   doc.FileName,
			TotalPages:   doc.TotalPages,
			StartPage:    doc.Start,
			EndPage:      doc.End,
			TotalMinutes: req.Minutes,
		},
		Plan:  plan,
		Pages: doc.Pages,
	}
	if run.ID, err = p.checkpoints.Begin(run); err != nil {
		return Result{}, fmt.Errorf("begin checkpoint: %w", err)
	}

	// Step 4-5: Write every slide, then save
	res, err := p.finish(ctx, run)
	if err != nil {
		return Result{}, err
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Generation completed: %d slides", len(res.Scripts))
	p.logger.Info(ctx, "Run file: %s", res.RecordPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")
	return res, nil
}

func (p *implPipeline) extract(ctx context.Context, req Request) (models.SourceDocument, error) {
	if req.Reader != nil {
		return p.extractor.ExtractReader(ctx, req.source(), req.Reader, req.Size, req.Start, req.End)
	}

	doc, err := p.extractor.Extract(ctx, req.Path, req.Start, req.End)
	if err != nil {
		return models.SourceDocument{}, err
	}
	if req.SourceName != "" {
		doc.FileName = req.SourceName
	}
	return doc, nil
}

func (r Request) source() string {
	if r.SourceName != "" {
		return r.SourceName
	}
	return r.Path
}

func (p *implPipeline) Resume(ctx context.Context, runID string) (Result, error) {
	run, err := p.checkpoints.Load(runID)
	if err != nil {
		return Result{}, fmt.Errorf("load checkpoint: %w", err)
	}
	p.logger.Info(ctx, "Resuming run %s: %d of %d slides already written", run.ID, len(run.Scripts), len(run.Pages))

	return p.finish(ctx, run)
}

func (p *implPipeline) finish(ctx context.Context, run checkpoint.Run) (Result, error) {
	ctx = logger.WithFields(ctx, map[string]interface{}{"run_id": run.ID})

	scripts, err := p.writeSlides(ctx, run)
	if err != nil {
		return Result{}, err
	}

	path, err := p.store.Save(run.Meta, scripts, run.Pages, run.Meta.StartPage)
	if err != nil {
		return Result{}, fmt.Errorf("save run (checkpoint %s kept): %w", run.ID, err)
	}

	if err := p.checkpoints.Delete(run.ID); err != nil {
		p.logger.Warn(ctx, "Failed to delete checkpoint %s: %v", run.ID, err)
	}

	res := Result{
		RunID:      run.ID,
		RecordPath: path,
		Plan:       run.Plan,
		Scripts:    scripts,
	}
	if record, err := p.store.Open(filepath.Base(path)); err != nil {
		p.logger.Warn(ctx, "Failed to read back %s: %v", path, err)
	} else {
		res.Record = &record
	}
	return res, nil
}

// writeSlides generates the slides missing from run in ascending page order.
// Each prompt carries the literal text of the previous slide's script.
func (p *implPipeline) writeSlides(ctx context.Context, run checkpoint.Run) (models.Scripts, error) {
	scripts := run.Scripts.Clone()
	total := len(run.Pages)

	for idx := len(scripts); idx < total; idx++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		slide := run.Meta.StartPage + idx
		seconds := run.Plan.Seconds(slide, p.cfg.Lecture.DefaultSlideSeconds)
		p.logger.Info(ctx, "[%d/%d] Writing slide %d (%ds)", idx+1, total, slide, seconds)

		text, err := p.generator.Generate(ctx, models.SlideRequest{
			SlideNum:       slide,
			Content:        run.Pages[idx],
			Seconds:        seconds,
			Position:       models.PositionFor(idx, total),
			PreviousScript: scripts.Last(),
		})
		if err != nil {
			return nil, fmt.Errorf("write slide %d (resume run %s): %w", slide, run.ID, err)
		}

		if err := p.checkpoints.Append(run.ID, slide, text); err != nil {
			return nil, fmt.Errorf("checkpoint slide %d: %w", slide, err)
		}
		scripts = append(scripts, models.Script{Slide: slide, Text: text})

		p.logger.Info(ctx, "[DONE] Slide %d (%d chars)", slide, len(text))
	}

	return scripts, nil
}
