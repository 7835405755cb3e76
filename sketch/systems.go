package sketch

import (
	"time"

	"github.com/plus3/sandgrid/ecs"
)

// Canvas is the singleton holding the surface frames are drawn on. A nil
// Surface runs physics without drawing.
type Canvas struct {
	Surface Surface
}

// Metrics is the singleton summarising the last frame.
type Metrics struct {
	Frame     uint64
	Particles int
	Settled   int
	Spawned   int
	Events    int

	FrameTime    time.Duration
	AvgFrameTime time.Duration
	samples      []time.Duration
	lastFrame    time.Time
}

// FPS derives frames per second from the average frame time.
func (m *Metrics) FPS() float64 {
	if m.AvgFrameTime <= 0 {
		return 0
	}
	return float64(time.Second) / float64(m.AvgFrameTime)
}

// InputSystem applies queued pointer events in arrival order. Particles are
// spawned straight into storage so the rest of this frame updates and
// draws them.
type InputSystem struct {
	Pointer ecs.Singleton[Pointer]
	Grid    ecs.Singleton[Grid]
	Config  ecs.Singleton[Config]
	Metrics ecs.Singleton[Metrics]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	pointer := s.Pointer.Get()
	grid := s.Grid.Get()
	cfg := s.Config.Get()
	metrics := s.Metrics.Get()

	events := pointer.drain()
	metrics.Events = len(events)
	metrics.Spawned = 0

	for _, ev := range events {
		// Presses and moves off the surface never reach the canvas.
		switch ev.Kind {
		case PointerDown:
			if !grid.Contains(ev.X, ev.Y) {
				continue
			}
			pointer.Drawing = true
		case PointerMove:
			if !pointer.Drawing || !grid.Contains(ev.X, ev.Y) {
				continue
			}
		case PointerUp, PointerLeave:
			pointer.Drawing = false
			continue
		}

		x, y := grid.Snap(ev.X, ev.Y)
		frame.Storage.Spawn(NewParticle(x, y, grid, *cfg))
		metrics.Spawned++
	}
}

// CanvasSystem clears the surface and redraws the grid.
type CanvasSystem struct {
	Canvas ecs.Singleton[Canvas]
	Grid   ecs.Singleton[Grid]
}

func (s *CanvasSystem) Execute(frame *ecs.UpdateFrame) {
	surface := s.Canvas.Get().Surface
	if surface == nil {
		return
	}

	grid := s.Grid.Get()
	surface.ClearRect(0, 0, grid.Width, grid.Height)
	grid.Draw(surface)
}

// ParticleSystem updates then draws each particle in insertion order.
type ParticleSystem struct {
	Particles ecs.Query[struct{ *Particle }]
	Canvas    ecs.Singleton[Canvas]
	Grid      ecs.Singleton[Grid]
	Metrics   ecs.Singleton[Metrics]
}

func (s *ParticleSystem) Execute(frame *ecs.UpdateFrame) {
	surface := s.Canvas.Get().Surface
	height := s.Grid.Get().Height

	settled := 0
	for item := range s.Particles.Values() {
		p := item.Particle
		p.Update(height)
		if surface != nil {
			p.Draw(surface)
		}
		if p.Settled {
			settled++
		}
	}

	metrics := s.Metrics.Get()
	metrics.Particles = s.Particles.Len()
	metrics.Settled = settled
}

const frameSampleCount = 60

// MetricsSystem records frame numbers and wall-clock frame times.
type MetricsSystem struct {
	Metrics ecs.Singleton[Metrics]
}

func (s *MetricsSystem) Execute(frame *ecs.UpdateFrame) {
	metrics := s.Metrics.Get()
	metrics.Frame = frame.Number

	now := time.Now()
	if !metrics.lastFrame.IsZero() {
		metrics.FrameTime = now.Sub(metrics.lastFrame)

		if len(metrics.samples) >= frameSampleCount {
			metrics.samples = metrics.samples[1:]
		}
		metrics.samples = append(metrics.samples, metrics.FrameTime)

		var sum time.Duration
		for _, sample := range metrics.samples {
			sum += sample
		}
		metrics.AvgFrameTime = sum / time.Duration(len(metrics.samples))
	}
	metrics.lastFrame = now
}
