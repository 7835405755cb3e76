// Package sketch implements the falling-particle grid sketch: pointer input
// spawns grid-snapped particles that fall until they rest on the bottom of
// the surface. A Sketch owns all state and is advanced one frame at a time
// by its host.
package sketch

import (
	"fmt"
	"iter"

	"github.com/plus3/sandgrid/ecs"
)

// Sketch owns the particle storage, the frame scheduler and the singletons
// the systems share. It is not safe for concurrent use.
type Sketch struct {
	config    Config
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	pointer   *ecs.Singleton[Pointer]
	canvas    *ecs.Singleton[Canvas]
	metrics   *ecs.Singleton[Metrics]
	grid      *ecs.Singleton[Grid]
	particles *ecs.View[struct{ *Particle }]
}

// RegisterComponents registers the sketch's component types.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Particle](registry)
}

// New validates cfg and builds an empty sketch.
func New(cfg Config) (*Sketch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new sketch: %w", err)
	}

	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	ecs.NewSingleton[Config](storage, cfg)
	s := &Sketch{
		config:    cfg,
		storage:   storage,
		scheduler: ecs.NewScheduler(storage),
		grid:      ecs.NewSingleton[Grid](storage, NewGrid(cfg)),
		pointer:   ecs.NewSingleton[Pointer](storage),
		canvas:    ecs.NewSingleton[Canvas](storage),
		metrics:   ecs.NewSingleton[Metrics](storage),
		particles: ecs.NewView[struct{ *Particle }](storage),
	}

	s.scheduler.Register(&InputSystem{})
	s.scheduler.Register(&CanvasSystem{})
	s.scheduler.Register(&ParticleSystem{})
	s.scheduler.Register(&MetricsSystem{})

	return s, nil
}

// Push queues a pointer event; it takes effect at the next Step.
func (s *Sketch) Push(ev PointerEvent) {
	s.pointer.Get().Push(ev)
}

// SetSurface sets the surface subsequent frames draw on. nil disables drawing.
func (s *Sketch) SetSurface(surface Surface) {
	s.canvas.Get().Surface = surface
}

// Step runs one frame: apply pointer events, clear and redraw the grid, then
// update and draw every particle.
func (s *Sketch) Step() {
	s.scheduler.Once(1)
}

// Render draws the current state onto surface without advancing a frame.
func (s *Sketch) Render(surface Surface) {
	grid := s.grid.Get()
	surface.ClearRect(0, 0, grid.Width, grid.Height)
	grid.Draw(surface)

	for item := range s.particles.Values() {
		item.Particle.Draw(surface)
	}
}

// Len returns the number of particles ever created.
func (s *Sketch) Len() int {
	return s.particles.Count()
}

// Particles yields copies of all particles in insertion order.
func (s *Sketch) Particles() iter.Seq[Particle] {
	return func(yield func(Particle) bool) {
		for item := range s.particles.Values() {
			if !yield(*item.Particle) {
				return
			}
		}
	}
}

// Drawing reports whether a press is in progress.
func (s *Sketch) Drawing() bool {
	return s.pointer.Get().Drawing
}

// Metrics returns a copy of the last frame's metrics.
func (s *Sketch) Metrics() Metrics {
	return *s.metrics.Get()
}

// Config returns the configuration the sketch was built with.
func (s *Sketch) Config() Config {
	return s.config
}

// Grid returns the sketch's grid.
func (s *Sketch) Grid() Grid {
	return *s.grid.Get()
}

// Storage exposes the underlying storage for tooling such as the debug overlay.
func (s *Sketch) Storage() *ecs.Storage {
	return s.storage
}

// Scheduler exposes the frame scheduler for tooling and headless pacing.
func (s *Sketch) Scheduler() *ecs.Scheduler {
	return s.scheduler
}
