package models

import (
	"encoding/json"
	"math"
)

// DefaultSlideSeconds is used for slides the time plan does not mention.
const DefaultSlideSeconds = 30

// SlideTime is one entry of the time plan as returned by the model.
type SlideTime struct {
	SlideNum int `json:"slide_num"`
	Seconds  int `json:"tempo_atribuido_segundos"`
}

// UnmarshalJSON accepts fractional numbers and rounds them to whole seconds.
func (s *SlideTime) UnmarshalJSON(data []byte) error {
	var raw struct {
		SlideNum float64 `json:"slide_num"`
		Seconds  float64 `json:"tempo_atribuido_segundos"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.SlideNum = int(math.Round(raw.SlideNum))
	s.Seconds = int(math.Round(raw.Seconds))
	return nil
}

// TimePlan is the per-slide duration allocation of a run.
type TimePlan struct {
	Slides []SlideTime `json:"plano"`
}

// Seconds returns the allocation of the first entry matching slide,
// or fallback when the plan has none.
func (p TimePlan) Seconds(slide, fallback int) int {
	for _, s := range p.Slides {
		if s.SlideNum == slide {
			return s.Seconds
		}
	}
	return fallback
}

// Total sums every allocation in the plan.
func (p TimePlan) Total() int {
	total := 0
	for _, s := range p.Slides {
		total += s.Seconds
	}
	return total
}
