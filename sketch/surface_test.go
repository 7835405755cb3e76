package sketch_test

import (
	"image/color"
	"testing"

	"github.com/plus3/sandgrid/sketch"
	"github.com/stretchr/testify/assert"
)

var (
	white  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black  = color.RGBA{A: 255}
	red    = color.RGBA{R: 255, A: 255}
	yellow = color.RGBA{R: 255, G: 255, A: 255}
)

func TestImageSurfaceStartsWithBackground(t *testing.T) {
	surface := sketch.NewImageSurface(16, 16, white)
	img := surface.Image()

	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.Equal(t, white, img.RGBAAt(15, 15))
}

func TestImageSurfaceFillRect(t *testing.T) {
	surface := sketch.NewImageSurface(16, 16, white)
	surface.FillRect(2, 2, 4, 4, red)
	img := surface.Image()

	assert.Equal(t, red, img.RGBAAt(2, 2))
	assert.Equal(t, red, img.RGBAAt(5, 5))
	assert.Equal(t, white, img.RGBAAt(6, 6))
	assert.Equal(t, white, img.RGBAAt(1, 1))
}

func TestImageSurfaceFillRectClipped(t *testing.T) {
	surface := sketch.NewImageSurface(16, 16, white)

	assert.NotPanics(t, func() {
		surface.FillRect(-5, -5, 10, 10, red)
		surface.FillRect(10, 10, 100, 100, red)
	})

	img := surface.Image()
	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(4, 4))
	assert.Equal(t, white, img.RGBAAt(7, 7))
	assert.Equal(t, red, img.RGBAAt(15, 15))
}

func TestImageSurfaceStrokeLines(t *testing.T) {
	surface := sketch.NewImageSurface(20, 20, white)
	surface.StrokeLines([]sketch.Line{
		{X0: 0, Y0: 10, X1: 20, Y1: 10},
		{X0: 4, Y0: 0, X1: 4, Y1: 20},
	}, 2, black)
	img := surface.Image()

	assert.Equal(t, black, img.RGBAAt(15, 9))
	assert.Equal(t, black, img.RGBAAt(15, 10))
	assert.Equal(t, white, img.RGBAAt(15, 12))
	assert.Equal(t, black, img.RGBAAt(3, 2))
	assert.Equal(t, black, img.RGBAAt(4, 2))
	assert.Equal(t, white, img.RGBAAt(8, 2))
}

func TestImageSurfaceClearRect(t *testing.T) {
	surface := sketch.NewImageSurface(16, 16, white)
	surface.FillRect(0, 0, 16, 16, red)
	surface.ClearRect(0, 0, 8, 16)
	img := surface.Image()

	assert.Equal(t, white, img.RGBAAt(3, 3))
	assert.Equal(t, red, img.RGBAAt(12, 3))
}
