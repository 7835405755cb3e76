package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/sandgrid/ecs"
	"github.com/plus3/sandgrid/sketch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScribblerIsDeterministic(t *testing.T) {
	a := NewScribbler(7, 800, 800, 4)
	b := NewScribbler(7, 800, 800, 4)

	for range 500 {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestScribblerEventShape(t *testing.T) {
	scribbler := NewScribbler(3, 800, 600, 4)

	drawing := false
	for range 2000 {
		for _, ev := range scribbler.Next() {
			switch ev.Kind {
			case sketch.PointerDown:
				require.False(t, drawing, "down while drawing")
				drawing = true
			case sketch.PointerMove:
				require.True(t, drawing, "move without press")
				require.GreaterOrEqual(t, ev.X, 0.0)
				require.Less(t, ev.X, 800.0)
				require.GreaterOrEqual(t, ev.Y, 0.0)
				require.Less(t, ev.Y, 600.0)
			case sketch.PointerUp, sketch.PointerLeave:
				require.True(t, drawing, "release without press")
				drawing = false
			}
		}
		require.Equal(t, drawing, scribbler.Drawing())
	}
}

func TestRunStopsAtFrameLimit(t *testing.T) {
	s, err := sketch.New(sketch.DefaultConfig())
	require.NoError(t, err)

	samples := run(context.Background(), s, NewScribbler(1, 800, 800, 4), 200, 0)

	assert.Len(t, samples, 200)
	assert.Equal(t, uint64(200), s.Scheduler().Frames())
	assert.Positive(t, s.Len())
}

func TestRunStopsOnContext(t *testing.T) {
	s, err := sketch.New(sketch.DefaultConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	samples := run(ctx, s, NewScribbler(1, 800, 800, 4), 0, time.Millisecond)
	assert.NotEmpty(t, samples)
	assert.Equal(t, uint64(len(samples)), s.Scheduler().Frames())
}

func TestSnapshotOutsideTimedFrames(t *testing.T) {
	s, err := sketch.New(sketch.DefaultConfig())
	require.NoError(t, err)

	samples := run(context.Background(), s, NewScribbler(1, 800, 800, 4), 100, 0)
	particles := s.Len()

	path := filepath.Join(t.TempDir(), "final.png")
	require.NoError(t, writeSnapshot(path, s, nil))

	assert.Equal(t, uint64(len(samples)), s.Scheduler().Frames())
	assert.Equal(t, particles, s.Len())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
}

func TestWritePNG(t *testing.T) {
	surface := sketch.NewImageSurface(32, 16, sketch.DefaultConfig().Background)
	path := filepath.Join(t.TempDir(), "frame.png")

	require.NoError(t, writePNG(path, surface))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
}

func TestStatsFinalize(t *testing.T) {
	stats := Stats{Samples: []time.Duration{3, 1, 2}}
	stats.Finalize()

	assert.Equal(t, time.Duration(1), stats.Min)
	assert.Equal(t, time.Duration(3), stats.Max)
	assert.Equal(t, time.Duration(2), stats.Avg)
	assert.Equal(t, time.Duration(2), stats.Last)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	report := &Report{
		Duration:    time.Second,
		Frames:      100,
		Seed:        9,
		TotalFrames: 100,
		Particles:   40,
		Settled:     25,
		Archetypes:  1,
		Systems: []ecs.SystemStats{
			{Name: "ParticleSystem", AvgDuration: time.Microsecond},
		},
		GCPauseMetrics: true,
	}
	report.FrameTime.Samples = []time.Duration{time.Millisecond}
	report.FrameTime.Finalize()

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Sandgrid Stress Report")
	assert.Contains(t, out, "**Frame Limit:** 100")
	assert.Contains(t, out, "**Frame Interval:** unpaced")
	assert.Contains(t, out, "**Particles:** 40 (25 settled, 15 falling)")
	assert.Contains(t, out, "- ParticleSystem: avg 1µs")
	assert.Contains(t, out, "## GC Pause Durations")
}
