package blob

import (
	"image/color"
	"math"

	"github.com/iburimskiy/liquid-button/internal/scene"
)

// Look holds the host-controlled parts of rendering.
type Look struct {
	ShadowAlpha float64
}

func DefaultLook() Look {
	return Look{ShadowAlpha: 0.6}
}

const (
	shadowBlur    = 40
	shadowOffsetY = 15

	// Below these drop radii the drop is not drawn, or drawn without its
	// highlights.
	dropVisibleRadius   = 5
	dropHighlightRadius = 12
)

func white(a float64) color.NRGBA {
	return RGB{255, 255, 255}.NRGBA(a)
}

// Render draws s with palette sc. It does not modify s.
func Render(s State, sc Scheme, look Look, size int) *scene.Frame {
	f := &scene.Frame{
		Width:  size,
		Height: size,
		Shadow: &scene.Shadow{
			Color:   sc.Glow.NRGBA(look.ShadowAlpha),
			Blur:    shadowBlur,
			OffsetY: shadowOffsetY,
		},
	}
	c := s.BodyCenter()

	f.AddShadowed(BodyPath(s), scene.Radial(
		c.Add(scene.Pt(-20, -25)), c, s.BaseRadius+20,
		scene.Stop{Offset: 0, Color: sc.Light.NRGBA(1)},
		scene.Stop{Offset: 0.4, Color: sc.Main.NRGBA(1)},
		scene.Stop{Offset: 1, Color: sc.Dark.NRGBA(1)},
	))

	if s.Drop.Radius > dropVisibleRadius {
		renderBridge(f, s, sc, c)
		renderDrop(f, s, sc)
	}

	renderHighlights(f, s, c)
	renderReflection(f, c)
	return f
}

// BodyPath is the closed outline through the rim points. Each segment is the
// cubic form of a Catmull-Rom spline, so the curve passes through every rim
// point with a tangent set by its two neighbours.
func BodyPath(s State) scene.Path {
	c := s.BodyCenter()
	var pts [NumRimPoints]scene.Point
	for i, rp := range s.Rim {
		pts[i] = c.Polar(rp.BaseAngle, s.BaseRadius+rp.Offset)
	}

	var p scene.Path
	p.MoveTo(pts[0])
	for i := range pts {
		p0 := pts[(i-1+NumRimPoints)%NumRimPoints]
		p1 := pts[i]
		p2 := pts[(i+1)%NumRimPoints]
		p3 := pts[(i+2)%NumRimPoints]
		c1 := p1.Add(p2.Sub(p0).Mul(1.0 / 6))
		c2 := p2.Sub(p3.Sub(p1).Mul(1.0 / 6))
		p.CubicTo(c1, c2, p2)
	}
	p.Close()
	return p
}

func renderBridge(f *scene.Frame, s State, sc Scheme, c scene.Point) {
	b := BridgeShape(c, s.Drop.Pos, s.Drop.Radius, s.BaseRadius)
	perp := b.Angle + math.Pi/2
	mid := b.Mid()
	f.AddShadowed(b.Path(), scene.Linear(
		mid.Polar(perp, 20), mid.Polar(perp, -20),
		scene.Stop{Offset: 0, Color: sc.Dark.NRGBA(1)},
		scene.Stop{Offset: 0.5, Color: sc.Main.NRGBA(1)},
		scene.Stop{Offset: 1, Color: sc.Dark.NRGBA(1)},
	))
}

func renderDrop(f *scene.Frame, s State, sc Scheme) {
	d, r := s.Drop.Pos, s.Drop.Radius
	var p scene.Path
	p.Circle(d, r)
	f.AddShadowed(p, scene.Radial(
		d.Add(scene.Pt(-r*0.3, -r*0.3)), d, r,
		scene.Stop{Offset: 0, Color: sc.Light.NRGBA(1)},
		scene.Stop{Offset: 0.5, Color: sc.Main.NRGBA(1)},
		scene.Stop{Offset: 1, Color: sc.Dark.NRGBA(1)},
	))
}

func renderHighlights(f *scene.Frame, s State, c scene.Point) {
	var soft scene.Path
	soft.Ellipse(c.Add(scene.Pt(-18, -22)), 40, 28, -0.4)
	hc := c.Add(scene.Pt(-22, -28))
	f.Add(soft, scene.Radial(hc, hc, 45,
		scene.Stop{Offset: 0, Color: white(0.7)},
		scene.Stop{Offset: 0.3, Color: white(0.3)},
		scene.Stop{Offset: 0.6, Color: white(0.05)},
		scene.Stop{Offset: 1, Color: white(0)},
	))

	var glint scene.Path
	glint.Ellipse(c.Add(scene.Pt(-30, -35)), 8, 5, -0.5)
	f.Add(glint, scene.Solid(white(0.9)))

	if s.Drop.Radius <= dropHighlightRadius {
		return
	}
	d, r := s.Drop.Pos, s.Drop.Radius
	var sheen scene.Path
	sheen.Circle(d, r*0.9)
	f.Add(sheen, scene.Radial(d.Add(scene.Pt(-r*0.35, -r*0.35)), d, r,
		scene.Stop{Offset: 0, Color: white(0.6)},
		scene.Stop{Offset: 0.4, Color: white(0.1)},
		scene.Stop{Offset: 1, Color: white(0)},
	))

	var dropGlint scene.Path
	dropGlint.Ellipse(d.Add(scene.Pt(-r*0.3, -r*0.3)), r*0.2, r*0.12, -0.5)
	f.Add(dropGlint, scene.Solid(white(0.8)))
}

func renderReflection(f *scene.Frame, c scene.Point) {
	var rim scene.Path
	rim.Ellipse(c.Add(scene.Pt(22, 28)), 25, 18, 0.6)
	rc := c.Add(scene.Pt(25, 30))
	f.Add(rim, scene.Radial(rc, rc, 35,
		scene.Stop{Offset: 0, Color: white(0.15)},
		scene.Stop{Offset: 0.5, Color: white(0.05)},
		scene.Stop{Offset: 1, Color: white(0)},
	))
}
