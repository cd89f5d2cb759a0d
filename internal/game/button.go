package game

import (
	"image"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/liquid-button/internal/blob"
	"github.com/iburimskiy/liquid-button/internal/config"
)

// button is one liquid button: the host element an animator binds to.
type button struct {
	scheme  string
	bounds  image.Rectangle
	surface blob.Surface
	anim    *blob.Animator
	params  blob.Params

	hovered bool
	pressed bool

	glow    harmonica.Spring
	glowPos float64
	glowVel float64
}

func (b *button) Surface() blob.Surface { return b.surface }

func (b *button) ColorScheme() string { return b.scheme }

func (b *button) Bounds() image.Rectangle { return b.bounds }

func newButton(scheme string, bounds image.Rectangle, surface blob.Surface, p blob.Params, opts ...blob.Option) (*button, error) {
	b := &button{
		scheme:  scheme,
		bounds:  bounds,
		surface: surface,
		params:  p,
		glow:    harmonica.NewSpring(harmonica.FPS(config.TPS), config.GlowFrequency, config.GlowDamping),
	}
	anim, err := blob.New(b, append([]blob.Option{blob.WithParams(p)}, opts...)...)
	if err != nil {
		return nil, err
	}
	b.anim = anim
	return b, nil
}

// pointer is the mouse state for one tick.
type pointer struct {
	x, y         int
	justPressed  bool
	justReleased bool
}

// feedback reports what the tick did that deserves a sound.
type feedback struct {
	recoil float64
	click  bool
}

// handle translates the mouse into enter/move/leave/click inputs, the way a
// browser delivers them to an element.
func (b *button) handle(p pointer) feedback {
	var fb feedback
	inside := image.Pt(p.x, p.y).In(b.bounds)
	lx, ly := b.anim.Local(float64(p.x), float64(p.y))

	switch {
	case inside && !b.hovered:
		b.hovered = true
		b.anim.PointerEnter()
		b.anim.PointerMove(lx, ly)
	case inside:
		b.anim.PointerMove(lx, ly)
	case b.hovered:
		b.hovered = false
		b.pressed = false
		if b.anim.Mode() == blob.PhaseNearEdge && b.anim.DropRadius() > b.params.RecoilMinRadius {
			fb.recoil = b.anim.DropRadius() / (b.params.DropMinRadius + b.params.DropRadiusGain)
		}
		b.anim.PointerLeave(lx, ly)
	}

	if inside && p.justPressed {
		b.pressed = true
	}
	if p.justReleased {
		if b.pressed && inside {
			b.anim.Click(lx, ly)
			fb.click = true
		}
		b.pressed = false
	}
	return fb
}

// tick advances the animator and eases the glow toward target.
func (b *button) tick(level float64) {
	b.anim.Tick()

	target := level * config.GlowPerLevel
	if b.hovered {
		target += config.GlowHover
	}
	b.glowPos, b.glowVel = b.glow.Update(b.glowPos, b.glowVel, target)
	b.anim.SetLook(blob.Look{ShadowAlpha: 0.6 + 0.4*clamp01(b.glowPos)})
}

// origin is where the surface is drawn: the button corner less the margin.
func (b *button) origin() (float64, float64) {
	return float64(b.bounds.Min.X) - b.params.Margin, float64(b.bounds.Min.Y) - b.params.Margin
}

func (b *button) draw(screen *ebiten.Image) error {
	if err := b.anim.Draw(); err != nil {
		return err
	}
	s, ok := b.surface.(*Surface)
	if !ok {
		return nil
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(b.origin())
	screen.DrawImage(s.Image(), op)
	return nil
}
