package llm

import "context"

// Request is a single prompt sent to the model.
type Request struct {
	Prompt      string
	Temperature float32
	// JSON asks the model for an application/json response.
	JSON bool
}

// Client sends prompts to a language model and returns the response text.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}
