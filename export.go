package main

import (
	"fmt"
	"image"
	"os"

	"github.com/iburimskiy/liquid-button/internal/blob"
	"github.com/iburimskiy/liquid-button/internal/config"
	"github.com/iburimskiy/liquid-button/internal/raster"
)

// exportButton is a button without a window: its surface is a software
// raster and its bounds sit at the surface origin plus the margin.
type exportButton struct {
	scheme  string
	bounds  image.Rectangle
	surface *raster.Surface
}

func (b *exportButton) Surface() blob.Surface { return b.surface }

func (b *exportButton) ColorScheme() string { return b.scheme }

func (b *exportButton) Bounds() image.Rectangle { return b.bounds }

// Scripted interaction, in frames.
const (
	scriptEnter = 0
	scriptLeave = 60
	scriptClick = 90
)

// script feeds the animator the inputs for frame i. c is the surface center
// and reach how far right of it the pointer drifts before leaving.
func script(a *blob.Animator, i int, c, reach float64) {
	switch {
	case i == scriptEnter:
		a.PointerEnter()
		a.PointerMove(c, c)
	case i < scriptLeave:
		a.PointerMove(c+reach*float64(i)/scriptLeave, c)
	case i == scriptLeave:
		a.PointerLeave(c+reach+10, c)
	case i == scriptClick:
		a.Click(c, c-reach/2)
	}
}

// export renders the scripted interaction for the first configured scheme
// and returns the number of frames written.
func export(cfg *config.Config) (int, error) {
	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		return 0, err
	}
	p := cfg.Params()
	m := int(cfg.Margin)
	b := &exportButton{
		scheme:  cfg.Schemes[0],
		bounds:  image.Rect(m, m, m+config.ButtonSize, m+config.ButtonSize),
		surface: raster.New(),
	}
	opts := []blob.Option{blob.WithParams(p)}
	if cfg.Seed != 0 {
		opts = append(opts, blob.WithSeed(cfg.Seed))
	}
	a, err := blob.New(b, opts...)
	if err != nil {
		return 0, err
	}

	c := float64(p.SurfaceSize) / 2
	reach := p.BaseRadius * 1.2
	for i := 0; i < cfg.Frames; i++ {
		script(a, i, c, reach)
		if err := a.Frame(); err != nil {
			return i, err
		}
		if _, err := b.surface.SavePNG(cfg.ExportDir, i); err != nil {
			return i, fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return cfg.Frames, nil
}
