package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/slide-narrator/internal/models"
	"google.golang.org/genai"
)

// Generate sends the prompt, rotating API keys on 429 / quota errors.
func (c *implClient) Generate(ctx context.Context, req Request) (string, error) {
	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		key, idx := c.key()

		text, err := c.call(ctx, key, req)
		if err == nil {
			return text, nil
		}
		if isQuotaError(err) {
			c.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
			c.rotateKey(idx)
			lastErr = err
			continue
		}
		return "", fmt.Errorf("%w: %w", models.ErrModelCall, err)
	}

	return "", fmt.Errorf("%w: all API keys exhausted: %w", models.ErrModelCall, lastErr)
}

func (c *implClient) callGemini(ctx context.Context, key string, req Request) (string, error) {
	client, err := c.client(ctx, key)
	if err != nil {
		return "", err
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.JSON {
		cfg.ResponseMIMEType = "application/json"
	}

	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var sb strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		if sb.Len() > 0 {
			return sb.String(), nil
		}
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func (c *implClient) client(ctx context.Context, key string) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cl, ok := c.clients[key]; ok {
		return cl, nil
	}
	cl, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	c.clients[key] = cl
	return cl, nil
}

func (c *implClient) key() (string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKeys[c.currentKey], c.currentKey
}

// rotateKey advances past idx unless another caller already did.
func (c *implClient) rotateKey(idx int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentKey == idx {
		c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
	}
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// StripCodeFence removes a Markdown code fence wrapped around a model reply.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
