package main

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/slide-narrator/internal/checkpoint"
	"github.com/nguyentantai21042004/slide-narrator/internal/config"
	"github.com/nguyentantai21042004/slide-narrator/internal/exporter"
	"github.com/nguyentantai21042004/slide-narrator/internal/extractor"
	"github.com/nguyentantai21042004/slide-narrator/internal/llm"
	"github.com/nguyentantai21042004/slide-narrator/internal/logger"
	"github.com/nguyentantai21042004/slide-narrator/internal/pipeline"
	"github.com/nguyentantai21042004/slide-narrator/internal/planner"
	"github.com/nguyentantai21042004/slide-narrator/internal/scriptgen"
	"github.com/nguyentantai21042004/slide-narrator/internal/session"
	"github.com/nguyentantai21042004/slide-narrator/pkg/executor"
)

type app struct {
	cfg       *config.Config
	log       logger.Logger
	store     session.Store
	exporter  exporter.Exporter
	extractor extractor.Extractor
	client    llm.Client

	// opened by openPipeline; list, show and export never lock the bolt file
	checkpoints checkpoint.Store
	pipeline    pipeline.Pipeline
}

func newApp(cfg *config.Config, log logger.Logger) (*app, error) {
	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	// Fonts are resolved up front so a bad path fails before any model call.
	exp, err := exporter.New(cfg.Export)
	if err != nil {
		return nil, err
	}

	ext, err := extractor.New(cfg.Extractor, executor.New())
	if err != nil {
		return nil, err
	}

	// Commands that never call the model run without API keys.
	client, err := llm.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	if err != nil {
		client = missingKeys{err: err}
	}

	return &app{
		cfg:       cfg,
		log:       log,
		store:     session.New(cfg.Paths.Runs),
		exporter:  exp,
		extractor: ext,
		client:    client,
	}, nil
}

// openPipeline opens the checkpoint store and builds the pipeline on first use.
// The bolt file is exclusive, so only one generating process can hold it.
func (a *app) openPipeline() (pipeline.Pipeline, error) {
	if a.pipeline != nil {
		return a.pipeline, nil
	}

	cps, err := checkpoint.New(a.cfg.Paths.Checkpoints)
	if err != nil {
		return nil, fmt.Errorf("%w (is serve or watch already running?)", err)
	}
	a.checkpoints = cps

	a.pipeline = pipeline.New(a.cfg, pipeline.Deps{
		Extractor:   a.extractor,
		Planner:     planner.New(a.client, a.cfg.Lecture, a.cfg.Gemini.PlannerTemperature, a.log),
		Generator:   scriptgen.New(a.client, a.cfg.Lecture, a.cfg.Gemini.WriterTemperature, a.log),
		Store:       a.store,
		Checkpoints: cps,
		Exporter:    a.exporter,
		Logger:      a.log,
	})
	return a.pipeline, nil
}

func (a *app) Close() {
	if a.checkpoints != nil {
		_ = a.checkpoints.Close()
		a.checkpoints = nil
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Runs,
		cfg.Paths.Exports,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
