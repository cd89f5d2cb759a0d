package scene

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type PaintKind uint8

const (
	PaintSolid PaintKind = iota
	PaintLinear
	PaintRadial
)

// Stop is a gradient color stop. Color is not premultiplied.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Paint is a fill style.
//
// A linear paint runs from Start to End. A radial paint is a two-circle
// gradient with a zero-radius start circle at Start (the focal point) and an
// end circle of Radius around End.
type Paint struct {
	Kind   PaintKind
	Color  color.NRGBA
	Start  Point
	End    Point
	Radius float64
	Stops  []Stop
}

func Solid(c color.NRGBA) Paint {
	return Paint{Kind: PaintSolid, Color: c}
}

func Linear(start, end Point, stops ...Stop) Paint {
	return Paint{Kind: PaintLinear, Start: start, End: end, Stops: stops}
}

func Radial(focal, center Point, radius float64, stops ...Stop) Paint {
	return Paint{Kind: PaintRadial, Start: focal, End: center, Radius: radius, Stops: stops}
}

// Param returns the gradient parameter for pt, clamped to [0, 1]. It is 0
// for solid paints.
func (p Paint) Param(pt Point) float64 {
	var t float64
	switch p.Kind {
	case PaintLinear:
		d := p.End.Sub(p.Start)
		dd := d.X*d.X + d.Y*d.Y
		if dd == 0 {
			return 0
		}
		v := pt.Sub(p.Start)
		t = (v.X*d.X + v.Y*d.Y) / dd
	case PaintRadial:
		t = radialParam(pt, p.Start, p.End, p.Radius)
	default:
		return 0
	}
	return clamp01(t)
}

// radialParam solves |pt - (f + t(c-f))| = t*r for the largest t, which is
// the canvas two-circle gradient with a zero start radius.
func radialParam(pt, f, c Point, r float64) float64 {
	d := c.Sub(f)
	v := pt.Sub(f)
	a := d.X*d.X + d.Y*d.Y - r*r
	b := v.X*d.X + v.Y*d.Y
	cc := v.X*v.X + v.Y*v.Y
	if math.Abs(a) < 1e-9 {
		if b == 0 {
			return 0
		}
		return cc / (2 * b)
	}
	disc := b*b - a*cc
	if disc < 0 {
		disc = 0
	}
	return (b - math.Sqrt(disc)) / a
}

// At returns the paint color at pt.
func (p Paint) At(pt Point) color.NRGBA {
	if p.Kind == PaintSolid || len(p.Stops) == 0 {
		return p.Color
	}
	return p.Sample(p.Param(pt))
}

// Sample interpolates the stops at t. Stops must be sorted by offset.
func (p Paint) Sample(t float64) color.NRGBA {
	stops := p.Stops
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return lerpNRGBA(a.Color, b.Color, (t-a.Offset)/span)
	}
	return stops[len(stops)-1].Color
}

// lerpNRGBA blends in sRGB space, as canvas gradients do.
func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).RGB255()
	alpha := math.Round(float64(a.A) + (float64(b.A)-float64(a.A))*t)
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
