package llm

import (
	"context"
	"errors"
	"sync"

	"github.com/nguyentantai21042004/slide-narrator/internal/logger"
	"google.golang.org/genai"
)

type implClient struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	clients    map[string]*genai.Client
	model      string
	logger     logger.Logger

	call func(ctx context.Context, key string, req Request) (string, error)
}

// New creates a Gemini-backed Client that rotates through the supplied API
// keys when one hits a rate limit or quota.
func New(apiKeys []string, model string, log logger.Logger) (Client, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("at least one Gemini API key is required")
	}

	c := &implClient{
		apiKeys: apiKeys,
		clients: make(map[string]*genai.Client),
		model:   model,
		logger:  log,
	}
	c.call = c.callGemini
	return c, nil
}
