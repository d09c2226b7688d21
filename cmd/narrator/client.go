package main

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/slide-narrator/internal/llm"
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

// missingKeys stands in for the model client when no API key is configured.
type missingKeys struct {
	err error
}

func (m missingKeys) Generate(ctx context.Context, req llm.Request) (string, error) {
	return "", fmt.Errorf("%w: %w (set GEMINI_API_KEY)", models.ErrModelCall, m.err)
}
