package planner

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nguyentantai21042004/slide-narrator/internal/llm"
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

// Plan requests a JSON time plan for every page of doc. Any failure, including
// an empty plan, is an ErrModelCall and no partial plan is returned.
func (p *implPlanner) Plan(ctx context.Context, doc models.SourceDocument, totalMinutes int) (models.TimePlan, error) {
	if doc.Len() == 0 {
		return models.TimePlan{}, fmt.Errorf("%w: no slides to plan", models.ErrInvalidInput)
	}
	if totalMinutes < 1 {
		return models.TimePlan{}, fmt.Errorf("%w: total minutes must be positive", models.ErrInvalidInput)
	}

	prompt := buildPrompt(p.subject, doc, totalMinutes)
	p.logger.Debug(ctx, "Planning %d slides over %d minutes (prompt %d chars)", doc.Len(), totalMinutes, len(prompt))

	raw, err := p.client.Generate(ctx, llm.Request{
		Prompt:      prompt,
		Temperature: p.temperature,
		JSON:        true,
	})
	if err != nil {
		return models.TimePlan{}, fmt.Errorf("%w: plan times: %w", models.ErrModelCall, err)
	}

	var plan models.TimePlan
	if err := json.Unmarshal([]byte(llm.StripCodeFence(raw)), &plan); err != nil {
		return models.TimePlan{}, fmt.Errorf("%w: parse time plan: %w", models.ErrModelCall, err)
	}
	if len(plan.Slides) == 0 {
		return models.TimePlan{}, fmt.Errorf("%w: model returned an empty time plan", models.ErrModelCall)
	}

	p.check(ctx, doc, plan, totalMinutes*60)
	return plan, nil
}

// check logs deviations the model was asked to avoid. They are not fatal.
func (p *implPlanner) check(ctx context.Context, doc models.SourceDocument, plan models.TimePlan, totalSeconds int) {
	if got := plan.Total(); got != totalSeconds {
		p.logger.Warn(ctx, "Time plan sums to %ds, requested %ds", got, totalSeconds)
	}

	planned := make(map[int]bool, len(plan.Slides))
	for _, s := range plan.Slides {
		planned[s.SlideNum] = true
	}
	for i := range doc.Pages {
		if n := doc.SlideNum(i); !planned[n] {
			p.logger.Warn(ctx, "Time plan has no entry for slide %d, default will be used", n)
		}
	}
}
