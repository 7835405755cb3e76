package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/sandgrid/config"
	debugui_ebiten "github.com/plus3/sandgrid/ecs/debugui/ebiten"
	"github.com/plus3/sandgrid/sketch"
)

func main() {
	envFile := flag.String("env", ".env", "Optional .env file with SANDGRID_* settings.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	hud := flag.Bool("hud", false, "Show the particle count line (toggle with H).")
	scale := flag.Float64("scale", 1, "Window scale factor.")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	s, err := sketch.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create sketch: %v", err)
	}
	log.Printf("Sketch %vx%v with %d cells per side", cfg.Width, cfg.Height, cfg.Cells)

	game := NewGame(s, *hud)
	windowWidth := int(cfg.Width * *scale)
	windowHeight := int(cfg.Height * *scale)

	if *debug {
		game.EnableOverlay(debugui_ebiten.NewOverlay("sandgrid", windowWidth, windowHeight))
		log.Println("Debug overlay enabled")
	}

	ebiten.SetWindowTitle("sandgrid")
	ebiten.SetWindowSize(windowWidth, windowHeight)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
