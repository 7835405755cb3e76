package sketch_test

import (
	"image/color"

	"github.com/plus3/sandgrid/sketch"
)

type opKind int

const (
	opClear opKind = iota
	opFill
	opStroke
)

type surfaceOp struct {
	kind       opKind
	x, y, w, h float64
	lines      []sketch.Line
	width      float64
	color      color.Color
}

type recordingSurface struct {
	ops []surfaceOp
}

func (r *recordingSurface) ClearRect(x, y, w, h float64) {
	r.ops = append(r.ops, surfaceOp{kind: opClear, x: x, y: y, w: w, h: h})
}

func (r *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	r.ops = append(r.ops, surfaceOp{kind: opFill, x: x, y: y, w: w, h: h, color: c})
}

func (r *recordingSurface) StrokeLines(lines []sketch.Line, width float64, c color.Color) {
	r.ops = append(r.ops, surfaceOp{kind: opStroke, lines: lines, width: width, color: c})
}

func (r *recordingSurface) kinds() []opKind {
	kinds := make([]opKind, len(r.ops))
	for i, op := range r.ops {
		kinds[i] = op.kind
	}
	return kinds
}

func (r *recordingSurface) reset() {
	r.ops = nil
}
