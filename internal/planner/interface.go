package planner

import (
	"context"

	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

// Planner asks the model to split the total lecture time across slides.
type Planner interface {
	Plan(ctx context.Context, doc models.SourceDocument, totalMinutes int) (models.TimePlan, error)
}
