package httpapi

import (
	"github.com/nguyentantai21042004/slide-narrator/internal/checkpoint"
	"github.com/nguyentantai21042004/slide-narrator/internal/exporter"
	"github.com/nguyentantai21042004/slide-narrator/internal/logger"
	"github.com/nguyentantai21042004/slide-narrator/internal/pipeline"
	"github.com/nguyentantai21042004/slide-narrator/internal/session"
)

// Handler holds shared dependencies for the route handlers.
type Handler struct {
	Pipeline    pipeline.Pipeline
	Store       session.Store
	Session     *session.RunSession
	Exporter    exporter.Exporter
	Logger      logger.Logger
	// Checkpoints must be the store the pipeline writes to.
	Checkpoints checkpoint.Store
}
