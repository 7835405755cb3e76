package sketch

import "image/color"

// Particle is a square that falls straight down and settles on the bottom
// edge of the surface. X and Y are its top-left corner in pixels.
type Particle struct {
	X, Y      float64
	Size      float64
	VelocityY float64
	Gravity   float64
	Color     color.RGBA
	Settled   bool
}

// NewParticle creates a particle at rest at (x, y) sized to one grid cell.
func NewParticle(x, y float64, grid *Grid, cfg Config) Particle {
	return Particle{
		X:       x,
		Y:       y,
		Size:    grid.CellWidth,
		Gravity: cfg.Gravity,
		Color:   cfg.ParticleColor,
	}
}

// Update advances the particle by one frame. Once the bottom edge would pass
// surfaceHeight the particle is clamped onto it and frozen for good.
func (p *Particle) Update(surfaceHeight float64) {
	if p.Settled {
		return
	}

	p.VelocityY += p.Gravity
	p.Y += p.VelocityY

	if p.Y+p.Size > surfaceHeight {
		p.Y = surfaceHeight - p.Size
		p.VelocityY = 0
		p.Settled = true
	}
}

// Draw paints the particle as an opaque square.
func (p *Particle) Draw(s Surface) {
	s.FillRect(p.X, p.Y, p.Size, p.Size, p.Color)
}
