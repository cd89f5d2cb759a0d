// Package game hosts liquid buttons in an ebiten window.
package game

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/liquid-button/internal/blob"
	"github.com/iburimskiy/liquid-button/internal/config"
)

var background = color.RGBA{R: 15, G: 23, B: 42, A: 255}

type Game struct {
	buttons []*button
	audio   *plopper

	width, height int

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

// New builds one button per configured scheme, laid out left to right.
func New(cfg *config.Config) (*Game, error) {
	p := cfg.Params()
	g := &Game{prevKey: map[ebiten.Key]bool{}}
	g.width, g.height = config.WindowSize(len(cfg.Schemes), p.SurfaceSize)

	inset := (p.SurfaceSize - config.ButtonSize) / 2
	stride := p.SurfaceSize + config.ButtonGap
	for i, name := range cfg.Schemes {
		surface, err := NewSurface()
		if err != nil {
			return nil, fmt.Errorf("compile gradient shader: %w", err)
		}
		x := config.WindowPadding + inset + i*stride
		y := config.WindowPadding + inset
		bounds := image.Rect(x, y, x+config.ButtonSize, y+config.ButtonSize)

		var opts []blob.Option
		if cfg.Seed != 0 {
			opts = append(opts, blob.WithSeed(cfg.Seed+uint64(i)))
		}
		b, err := newButton(name, bounds, surface, p, opts...)
		if err != nil {
			return nil, err
		}
		g.buttons = append(g.buttons, b)
	}

	if !cfg.Mute {
		a, err := newPlopper(beep.SampleRate(config.SampleRate), config.VisualRing)
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			g.audio = a
			if cfg.Sound != "" {
				if err := a.loadSample(cfg.Sound); err != nil {
					log.Printf("using synthesized plop: %v", err)
				}
			}
		}
	}
	return g, nil
}

func (g *Game) Size() (int, int) { return g.width, g.height }

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	p := pointer{
		x:            mouseX,
		y:            mouseY,
		justPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		justReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}

	level := g.audio.level()
	for _, b := range g.buttons {
		fb := b.handle(p)
		if fb.click {
			g.audio.play(1)
		}
		if fb.recoil > 0 {
			g.audio.play(fb.recoil)
		}
		b.tick(level)
	}

	if justPressed(ebiten.KeyO) && g.audio != nil {
		if err := g.audio.openSampleDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyM) && g.audio != nil {
		g.audio.muted = !g.audio.muted
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, b := range g.buttons {
		if err := b.draw(screen); err != nil {
			g.lastErr = err
		}
	}

	status := "Hover and click the buttons"
	switch {
	case g.audio == nil:
		status += " | no audio"
	case g.audio.muted:
		status += " | M: unmute, O: open sound"
	default:
		status += " | M: mute, O: open sound"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
