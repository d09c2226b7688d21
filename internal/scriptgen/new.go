package scriptgen

import (
	"github.com/nguyentantai21042004/slide-narrator/internal/config"
	"github.com/nguyentantai21042004/slide-narrator/internal/llm"
	"github.com/nguyentantai21042004/slide-narrator/internal/logger"
)

type implGenerator struct {
	client       llm.Client
	subject      string
	jurisdiction string
	temperature  float32
	logger       logger.Logger
}

// New creates a Generator.
func New(client llm.Client, lecture config.LectureConfig, temperature float32, log logger.Logger) Generator {
	return &implGenerator{
		client:       client,
		subject:      lecture.Subject,
		jurisdiction: lecture.Jurisdiction,
		temperature:  temperature,
		logger:       log,
	}
}
