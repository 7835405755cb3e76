// Package config builds a sketch.Config from an optional .env file and
// SANDGRID_* environment variables.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/plus3/sandgrid/sketch"
)

const (
	EnvWidth         = "SANDGRID_WIDTH"
	EnvHeight        = "SANDGRID_HEIGHT"
	EnvCells         = "SANDGRID_CELLS"
	EnvGravity       = "SANDGRID_GRAVITY"
	EnvParticleColor = "SANDGRID_PARTICLE_COLOR"
	EnvGridColor     = "SANDGRID_GRID_COLOR"
	EnvGridLineWidth = "SANDGRID_GRID_LINE_WIDTH"
	EnvBackground    = "SANDGRID_BACKGROUND"
)

// Load starts from sketch.DefaultConfig, applies values from the .env file at
// path and then from the process environment, which wins. A missing file is
// not an error; an empty path skips the file.
func Load(path string) (sketch.Config, error) {
	file := map[string]string{}
	if path != "" {
		values, err := godotenv.Read(path)
		switch {
		case err == nil:
			file = values
		case errors.Is(err, fs.ErrNotExist):
		default:
			return sketch.Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}

	cfg := sketch.DefaultConfig()
	p := parser{lookup: lookup}
	p.float(EnvWidth, &cfg.Width)
	p.float(EnvHeight, &cfg.Height)
	p.integer(EnvCells, &cfg.Cells)
	p.float(EnvGravity, &cfg.Gravity)
	p.color(EnvParticleColor, &cfg.ParticleColor)
	p.color(EnvGridColor, &cfg.GridColor)
	p.float(EnvGridLineWidth, &cfg.GridLineWidth)
	p.color(EnvBackground, &cfg.Background)
	if p.err != nil {
		return sketch.Config{}, p.err
	}

	if err := cfg.Validate(); err != nil {
		return sketch.Config{}, err
	}
	return cfg, nil
}

// parser records the first malformed value and ignores the rest.
type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) value(key string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (p *parser) float(key string, dst *float64) {
	v, ok := p.value(key)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.err = fmt.Errorf("parse %s: %w", key, err)
		return
	}
	*dst = f
}

func (p *parser) integer(key string, dst *int) {
	v, ok := p.value(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.err = fmt.Errorf("parse %s: %w", key, err)
		return
	}
	*dst = n
}

func (p *parser) color(key string, dst *color.RGBA) {
	v, ok := p.value(key)
	if !ok {
		return
	}
	c, err := ParseHexColor(v)
	if err != nil {
		p.err = fmt.Errorf("parse %s: %w", key, err)
		return
	}
	*dst = c
}

// ErrBadColor is returned for colors not written as #rrggbb.
var ErrBadColor = errors.New("color must be #rrggbb")

// ParseHexColor parses an opaque #rrggbb color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, nil
}
