package scriptgen

import (
	"context"

	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

// Generator writes the spoken narration for a single slide.
type Generator interface {
	Generate(ctx context.Context, req models.SlideRequest) (string, error)
}
