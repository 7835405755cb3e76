// Package ebiten connects the debugui windows to an Ebiten game loop through
// cimgui-go's Ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/sandgrid/ecs"
	"github.com/plus3/sandgrid/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Overlay is a self-contained debug world: its own storage holds the window
// entities and its scheduler runs ImguiSystem once per host frame.
type Overlay struct {
	backend   *ImguiBackend
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	input     *ecs.Singleton[debugui.ImguiInputState]
}

// NewOverlay creates the ImGui backend and the window that hosts it. The
// ImGui ini file is disabled.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	registry := ecs.NewComponentRegistry()
	debugui.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&debugui.ImguiSystem{})

	return &Overlay{
		backend:   &ImguiBackend{EbitenBackend: backend},
		storage:   storage,
		scheduler: scheduler,
		input:     ecs.NewSingleton[debugui.ImguiInputState](storage),
	}
}

// Add spawns a window.
func (o *Overlay) Add(item debugui.ImguiItem) {
	o.storage.Spawn(item)
}

// Update builds this frame's ImGui draw data.
func (o *Overlay) Update(dt float64) {
	// Begin ImGui frame before executing systems
	o.backend.BeginFrame()
	o.scheduler.Once(dt)
	// Deferred render functions ran in Once; close the frame
	o.backend.EndFrame()
}

// Draw renders the overlay on top of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

// Layout forwards the outside size to the backend.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}

// WantsMouse reports whether ImGui captured the mouse last frame.
func (o *Overlay) WantsMouse() bool {
	return o.input.Get().WantCaptureMouse
}

// WantsKeyboard reports whether ImGui captured the keyboard last frame.
func (o *Overlay) WantsKeyboard() bool {
	return o.input.Get().WantCaptureKeyboard
}
