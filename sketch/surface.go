package sketch

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Line is a straight segment in surface pixels.
type Line struct {
	X0, Y0, X1, Y1 float64
}

// Surface is the drawing target of a frame. Coordinates are pixels with the
// origin at the top-left corner.
type Surface interface {
	// ClearRect resets the region to the surface background.
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, c color.Color)
	// StrokeLines strokes every line with the same width and color.
	StrokeLines(lines []Line, width float64, c color.Color)
}

// ImageSurface renders into an in-memory RGBA image. Fills and strokes are
// rasterised with anti-aliasing, the way a browser canvas would.
type ImageSurface struct {
	img        *image.RGBA
	background color.RGBA
	raster     *vector.Rasterizer
}

// NewImageSurface creates a w×h surface filled with background.
func NewImageSurface(w, h int, background color.RGBA) *ImageSurface {
	s := &ImageSurface{
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		background: background,
		raster:     vector.NewRasterizer(w, h),
	}
	s.ClearRect(0, 0, float64(w), float64(h))
	return s
}

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

func (s *ImageSurface) ClearRect(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(s.img.Bounds())
	draw.Draw(s.img, r, image.NewUniform(s.background), image.Point{}, draw.Src)
}

func (s *ImageSurface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s.begin()
	s.quad(x, y, x+w, y, x+w, y+h, x, y+h)
	s.flush(c)
}

func (s *ImageSurface) StrokeLines(lines []Line, width float64, c color.Color) {
	if width <= 0 || len(lines) == 0 {
		return
	}

	s.begin()
	half := width / 2
	for _, l := range lines {
		dx, dy := l.X1-l.X0, l.Y1-l.Y0
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*half, dx/length*half
		s.quad(
			l.X0+nx, l.Y0+ny,
			l.X1+nx, l.Y1+ny,
			l.X1-nx, l.Y1-ny,
			l.X0-nx, l.Y0-ny,
		)
	}
	s.flush(c)
}

func (s *ImageSurface) begin() {
	b := s.img.Bounds()
	s.raster.Reset(b.Dx(), b.Dy())
	s.raster.DrawOp = draw.Over
}

// quad adds a closed four-point path. Points are clamped to the image, which
// clips exactly for the axis-aligned shapes a sketch draws.
func (s *ImageSurface) quad(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	s.raster.MoveTo(s.clamp(x0, y0))
	s.raster.LineTo(s.clamp(x1, y1))
	s.raster.LineTo(s.clamp(x2, y2))
	s.raster.LineTo(s.clamp(x3, y3))
	s.raster.ClosePath()
}

func (s *ImageSurface) clamp(x, y float64) (float32, float32) {
	b := s.img.Bounds()
	return float32(min(max(x, 0), float64(b.Dx()))), float32(min(max(y, 0), float64(b.Dy())))
}

func (s *ImageSurface) flush(c color.Color) {
	s.raster.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
}
