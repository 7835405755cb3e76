package main

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/plus3/sandgrid/ecs/debugui"
	debugui_ebiten "github.com/plus3/sandgrid/ecs/debugui/ebiten"
	"github.com/plus3/sandgrid/sketch"
	"golang.org/x/image/font/basicfont"
)

var hudColor = color.RGBA{R: 200, A: 255}

// Game adapts a Sketch to ebiten.Game. Update turns polled mouse state into
// pointer events; Draw advances the sketch one frame onto the screen.
type Game struct {
	sketch  *sketch.Sketch
	tracker sketch.PointerTracker
	surface *screenSurface
	width   int
	height  int
	hud     bool

	overlay *debugui_ebiten.Overlay
	stats   *debugui.StatsWindow
}

func NewGame(s *sketch.Sketch, hud bool) *Game {
	cfg := s.Config()
	return &Game{
		sketch:  s,
		surface: &screenSurface{background: cfg.Background},
		width:   int(cfg.Width),
		height:  int(cfg.Height),
		hud:     hud,
	}
}

// EnableOverlay attaches the ImGui debug windows.
func (g *Game) EnableOverlay(overlay *debugui_ebiten.Overlay) {
	g.overlay = overlay
	g.stats = debugui.NewStatsWindow("Sketch Stats", g.sketch.Storage(), g.sketch.Scheduler(), 120)
	g.stats.Extra = g.renderSketchStats

	overlay.Add(g.stats.Item())
	overlay.Add(debugui.NewInspector(g.sketch.Storage(), 10).Item())
}

func (g *Game) renderSketchStats() {
	m := g.sketch.Metrics()
	imgui.Text(fmt.Sprintf("Particles: %d (%d settled)", m.Particles, m.Settled))
	imgui.Text(fmt.Sprintf("Spawned last frame: %d", m.Spawned))
	imgui.Text(fmt.Sprintf("Drawing: %t", g.sketch.Drawing()))
}

func (g *Game) Update() error {
	// Keys go to ImGui while it has keyboard focus
	keyboardFree := g.overlay == nil || !g.overlay.WantsKeyboard()
	if keyboardFree {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyH) {
			g.hud = !g.hud
		}
	}

	// Build the overlay first so its mouse capture is current
	if g.overlay != nil {
		g.overlay.Update(1.0 / float64(ebiten.TPS()))
	}

	// Turn polled mouse state into pointer events for the next frame
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	inside := ebiten.IsFocused() && x >= 0 && x < g.width && y >= 0 && y < g.height
	if g.overlay != nil && g.overlay.WantsMouse() {
		inside, pressed = false, false
	}

	for _, ev := range g.tracker.Sample(float64(x), float64(y), pressed, inside) {
		g.sketch.Push(ev)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Advance the sketch one frame straight onto the screen
	g.surface.screen = screen
	g.sketch.SetSurface(g.surface)
	g.sketch.Step()

	// HUD text sits above the particles
	if g.hud {
		m := g.sketch.Metrics()
		line := fmt.Sprintf("particles %d  settled %d  fps %.0f", m.Particles, m.Settled, m.FPS())
		text.Draw(screen, line, basicfont.Face7x13, 4, 13, hudColor)
	}

	// Draw ImGui overlay on top
	if g.overlay != nil {
		g.stats.Record(g.sketch.Metrics().FrameTime)
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(g.width, g.height)
	}
	return g.width, g.height
}
