package scriptgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/slide-narrator/internal/llm"
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

// Generate returns the trimmed model output for one slide. The text is not
// checked for length or topic.
func (g *implGenerator) Generate(ctx context.Context, req models.SlideRequest) (string, error) {
	prompt := g.buildPrompt(req)
	g.logger.Debug(ctx, "Writing slide %d (%s, %ds)", req.SlideNum, req.Position, req.Seconds)

	text, err := g.client.Generate(ctx, llm.Request{
		Prompt:      prompt,
		Temperature: g.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate slide %d: %w", req.SlideNum, err)
	}

	return strings.TrimSpace(text), nil
}
