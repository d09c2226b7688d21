package pipeline

import (
	"github.com/nguyentantai21042004/slide-narrator/internal/checkpoint"
	"github.com/nguyentantai21042004/slide-narrator/internal/config"
	"github.com/nguyentantai21042004/slide-narrator/internal/exporter"
	"github.com/nguyentantai21042004/slide-narrator/internal/extractor"
	"github.com/nguyentantai21042004/slide-narrator/internal/logger"
	"github.com/nguyentantai21042004/slide-narrator/internal/planner"
	"github.com/nguyentantai21042004/slide-narrator/internal/scriptgen"
	"github.com/nguyentantai21042004/slide-narrator/internal/session"
)

// Deps are the collaborators of a Pipeline.
type Deps struct {
	Extractor   extractor.Extractor
	Planner     planner.Planner
	Generator   scriptgen.Generator
	Store       session.Store
	Checkpoints checkpoint.Store
	Exporter    exporter.Exporter
	Logger      logger.Logger
}

type implPipeline struct {
	cfg         *config.Config
	extractor   extractor.Extractor
	planner     planner.Planner
	generator   scriptgen.Generator
	store       session.Store
	checkpoints checkpoint.Store
	exporter    exporter.Exporter
	logger      logger.Logger
}

// New creates a new Pipeline instance
func New(cfg *config.Config, deps Deps) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		extractor:   deps.Extractor,
		planner:     deps.Planner,
		generator:   deps.Generator,
		store:       deps.Store,
		checkpoints: deps.Checkpoints,
		exporter:    deps.Exporter,
		logger:      deps.Logger,
	}
}
