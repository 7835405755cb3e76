package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/sandgrid/sketch"
)

// screenSurface draws a sketch frame onto the Ebiten screen image.
type screenSurface struct {
	screen     *ebiten.Image
	background color.RGBA
}

func (s *screenSurface) ClearRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), s.background, false)
}

func (s *screenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), c, true)
}

func (s *screenSurface) StrokeLines(lines []sketch.Line, width float64, c color.Color) {
	for _, l := range lines {
		vector.StrokeLine(s.screen, float32(l.X0), float32(l.Y0), float32(l.X1), float32(l.Y1), float32(width), c, true)
	}
}
