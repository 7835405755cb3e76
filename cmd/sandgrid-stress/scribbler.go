package main

import (
	"math/rand/v2"

	"github.com/plus3/sandgrid/sketch"
)

// Scribbler generates pointer traffic: random-walk drags that start with a
// press, wander for a while and end with a release or by leaving the surface.
type Scribbler struct {
	rng           *rand.Rand
	width, height float64
	movesPerFrame int
	startChance   float64
	stopChance    float64
	step          float64

	drawing bool
	x, y    float64
}

// NewScribbler returns a deterministic scribbler for the given seed.
func NewScribbler(seed uint64, width, height float64, movesPerFrame int) *Scribbler {
	return &Scribbler{
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		width:         width,
		height:        height,
		movesPerFrame: max(movesPerFrame, 1),
		startChance:   0.2,
		stopChance:    0.02,
		step:          12,
	}
}

// Drawing reports whether a drag is in progress.
func (s *Scribbler) Drawing() bool {
	return s.drawing
}

// Next returns the events for one frame.
func (s *Scribbler) Next() []sketch.PointerEvent {
	if !s.drawing {
		if s.rng.Float64() >= s.startChance {
			return nil
		}
		s.drawing = true
		s.x = s.rng.Float64() * s.width
		s.y = s.rng.Float64() * s.height
		return []sketch.PointerEvent{{Kind: sketch.PointerDown, X: s.x, Y: s.y}}
	}

	events := make([]sketch.PointerEvent, 0, s.movesPerFrame+1)
	for range s.movesPerFrame {
		s.x += (s.rng.Float64()*2 - 1) * s.step
		s.y += (s.rng.Float64()*2 - 1) * s.step

		if s.x < 0 || s.x >= s.width || s.y < 0 || s.y >= s.height {
			s.drawing = false
			events = append(events, sketch.PointerEvent{Kind: sketch.PointerLeave, X: s.x, Y: s.y})
			return events
		}
		events = append(events, sketch.PointerEvent{Kind: sketch.PointerMove, X: s.x, Y: s.y})
	}

	if s.rng.Float64() < s.stopChance {
		s.drawing = false
		events = append(events, sketch.PointerEvent{Kind: sketch.PointerUp, X: s.x, Y: s.y})
	}
	return events
}
