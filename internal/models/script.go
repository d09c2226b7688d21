package models

import (
	"strconv"
)

// Position tells the writer where a slide sits in the run.
type Position string

const (
	PositionInitial      Position = "initial"
	PositionIntermediate Position = "intermediate"
	PositionFinal        Position = "final"
)

// PositionFor classifies the idx-th slide out of total.
// A single-slide run is initial.
func PositionFor(idx, total int) Position {
	switch {
	case idx == 0:
		return PositionInitial
	case idx == total-1:
		return PositionFinal
	default:
		return PositionIntermediate
	}
}

// SlideRequest carries everything needed to write one slide's narration.
type SlideRequest struct {
	SlideNum       int
	Content        string
	Seconds        int
	Position       Position
	PreviousScript string
}

// Script is the narration for one slide. Label is only set when the slide
// number could not be recovered from a loaded record.
type Script struct {
	Slide int
	Label string
	Text  string
}

// Key identifies the slide in headings and file labels.
func (s Script) Key() string {
	if s.Label != "" {
		return s.Label
	}
	return strconv.Itoa(s.Slide)
}

// Scripts is the ordered slide -> narration mapping of a session.
type Scripts []Script

// Last returns the most recently appended narration, or "" when empty.
func (ss Scripts) Last() string {
	if len(ss) == 0 {
		return ""
	}
	return ss[len(ss)-1].Text
}

// Clone returns a copy that shares no backing array with ss.
func (ss Scripts) Clone() Scripts {
	if ss == nil {
		return nil
	}
	out := make(Scripts, len(ss))
	copy(out, ss)
	return out
}
