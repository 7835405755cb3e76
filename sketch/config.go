package sketch

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidConfig is returned when a Config cannot describe a usable sketch.
var ErrInvalidConfig = errors.New("invalid sketch config")

// Config holds the constants of a sketch. DefaultConfig matches the classic
// 800×800 surface with a 60×60 grid.
type Config struct {
	Width         float64
	Height        float64
	Cells         int
	Gravity       float64
	ParticleColor color.RGBA
	GridColor     color.RGBA
	GridLineWidth float64
	Background    color.RGBA
}

// DefaultConfig returns the standard sketch constants.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        800,
		Cells:         60,
		Gravity:       0.2,
		ParticleColor: color.RGBA{R: 255, G: 255, A: 255},
		GridColor:     color.RGBA{A: 255},
		GridLineWidth: 1,
		Background:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Validate reports the first problem with c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !finite(c.Width) || !finite(c.Height) || c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: surface size %vx%v must be positive and finite", ErrInvalidConfig, c.Width, c.Height)
	case c.Cells <= 0:
		return fmt.Errorf("%w: cell count %d must be positive", ErrInvalidConfig, c.Cells)
	case !finite(c.Gravity) || c.Gravity <= 0:
		// Without a positive pull particles never reach the bottom.
		return fmt.Errorf("%w: gravity %v must be positive and finite", ErrInvalidConfig, c.Gravity)
	case !finite(c.GridLineWidth):
		return fmt.Errorf("%w: grid line width %v must be finite", ErrInvalidConfig, c.GridLineWidth)
	case c.GridLineWidth < 0:
		return fmt.Errorf("%w: grid line width %v must not be negative", ErrInvalidConfig, c.GridLineWidth)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
