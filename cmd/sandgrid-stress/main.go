package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/sandgrid/config"
	"github.com/plus3/sandgrid/sketch"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the run should last.")
	frames := flag.Int("frames", 0, "Stop after this many frames (0 for no limit).")
	interval := flag.Duration("interval", 0, "Pace frames at this interval (0 runs unpaced).")
	seed := flag.Uint64("seed", 1, "Seed for the scripted pointer traffic.")
	moves := flag.Int("moves", 4, "Pointer moves per frame while dragging.")
	render := flag.Bool("render", false, "Draw every frame into an in-memory image.")
	snapshot := flag.String("snapshot", "", "Write the final frame to this PNG file.")
	envFile := flag.String("env", ".env", "Optional .env file with SANDGRID_* settings.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting sandgrid stress run...")

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	s, err := sketch.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create sketch: %v", err)
	}

	var surface *sketch.ImageSurface
	if *render {
		surface = sketch.NewImageSurface(int(cfg.Width), int(cfg.Height), cfg.Background)
		s.SetSurface(surface)
	}

	scribbler := NewScribbler(*seed, cfg.Width, cfg.Height, *moves)
	report := &Report{
		Duration:       *duration,
		Frames:         *frames,
		Interval:       *interval,
		Seed:           *seed,
		Render:         *render,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	report.FrameTime.Samples = run(ctx, s, scribbler, *frames, *interval)
	report.TotalTime = time.Since(startTime)

	if *snapshot != "" {
		if err := writeSnapshot(*snapshot, s, surface); err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		log.Printf("Wrote snapshot to %s\n", *snapshot)
	}

	metrics := s.Metrics()
	report.TotalFrames = s.Scheduler().Frames()
	report.Particles = metrics.Particles
	report.Settled = metrics.Settled
	report.Archetypes = s.Storage().ArchetypeCount()
	report.Systems = s.Scheduler().GetStats().Systems
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Run finished.")

	fmt.Println("\n\n--- Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// run feeds scripted events and steps the sketch until ctx is done or the
// frame limit is reached. It returns the duration of each frame.
func run(ctx context.Context, s *sketch.Sketch, scribbler *Scribbler, frames int, interval time.Duration) []time.Duration {
	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	var samples []time.Duration
	for frames == 0 || len(samples) < frames {
		if tick != nil {
			select {
			case <-ctx.Done():
				return samples
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return samples
		}

		for _, ev := range scribbler.Next() {
			s.Push(ev)
		}

		start := time.Now()
		s.Step()
		samples = append(samples, time.Since(start))
	}
	return samples
}

// writeSnapshot saves the last rendered frame. Without one, the final state is
// drawn once, outside the timed frames.
func writeSnapshot(path string, s *sketch.Sketch, surface *sketch.ImageSurface) error {
	if surface == nil {
		cfg := s.Config()
		surface = sketch.NewImageSurface(int(cfg.Width), int(cfg.Height), cfg.Background)
		s.Render(surface)
	}
	return writePNG(path, surface)
}

func writePNG(path string, surface *sketch.ImageSurface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, surface.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
