package planner

import (
	"github.com/nguyentantai21042004/slide-narrator/internal/config"
	"github.com/nguyentantai21042004/slide-narrator/internal/llm"
	"github.com/nguyentantai21042004/slide-narrator/internal/logger"
)

type implPlanner struct {
	client      llm.Client
	subject     string
	temperature float32
	logger      logger.Logger
}

// New creates a Planner. temperature stays low so allocations are stable
// between runs.
func New(client llm.Client, lecture config.LectureConfig, temperature float32, log logger.Logger) Planner {
	return &implPlanner{
		client:      client,
		subject:     lecture.Subject,
		temperature: temperature,
		logger:      log,
	}
}
