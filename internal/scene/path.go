// Package scene describes a frame as backend-neutral fill commands.
//
// A Frame is an ordered list of filled paths. Each path is built from
// move, line and cubic segments only; circles and ellipses are expanded into
// cubics so every surface needs to understand the same three operations.
package scene

import "math"

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Polar returns the point at distance r from p in direction angle.
func (p Point) Polar(angle, r float64) Point {
	return Point{p.X + math.Cos(angle)*r, p.Y + math.Sin(angle)*r}
}

type SegmentOp uint8

const (
	OpMove SegmentOp = iota
	OpLine
	OpCubic
	OpClose
)

// Segment is one path operation. Move and Line use Pts[0]; Cubic uses
// Pts[0] and Pts[1] as control points and Pts[2] as the end point.
type Segment struct {
	Op  SegmentOp
	Pts [3]Point
}

type Path struct {
	Segs []Segment
}

func (p *Path) MoveTo(pt Point) {
	p.Segs = append(p.Segs, Segment{Op: OpMove, Pts: [3]Point{pt}})
}

func (p *Path) LineTo(pt Point) {
	p.Segs = append(p.Segs, Segment{Op: OpLine, Pts: [3]Point{pt}})
}

func (p *Path) CubicTo(c1, c2, end Point) {
	p.Segs = append(p.Segs, Segment{Op: OpCubic, Pts: [3]Point{c1, c2, end}})
}

func (p *Path) Close() {
	p.Segs = append(p.Segs, Segment{Op: OpClose})
}

// kappa is the control point distance for a quarter circle of radius 1.
const kappa = 0.5522847498307936

// Ellipse appends a closed ellipse centered at c with radii rx, ry, rotated
// by rot radians.
func (p *Path) Ellipse(c Point, rx, ry, rot float64) {
	sin, cos := math.Sincos(rot)
	tr := func(x, y float64) Point {
		return Point{c.X + x*cos - y*sin, c.Y + x*sin + y*cos}
	}
	kx, ky := rx*kappa, ry*kappa
	p.MoveTo(tr(rx, 0))
	p.CubicTo(tr(rx, ky), tr(kx, ry), tr(0, ry))
	p.CubicTo(tr(-kx, ry), tr(-rx, ky), tr(-rx, 0))
	p.CubicTo(tr(-rx, -ky), tr(-kx, -ry), tr(0, -ry))
	p.CubicTo(tr(kx, -ry), tr(rx, -ky), tr(rx, 0))
	p.Close()
}

func (p *Path) Circle(c Point, r float64) {
	p.Ellipse(c, r, r, 0)
}

// Bounds returns the bounding box of every point in the path, control points
// included. ok is false for an empty path.
func (p *Path) Bounds() (min, max Point, ok bool) {
	for _, s := range p.Segs {
		n := 0
		switch s.Op {
		case OpMove, OpLine:
			n = 1
		case OpCubic:
			n = 3
		}
		for _, pt := range s.Pts[:n] {
			if !ok {
				min, max, ok = pt, pt, true
				continue
			}
			min.X = math.Min(min.X, pt.X)
			min.Y = math.Min(min.Y, pt.Y)
			max.X = math.Max(max.X, pt.X)
			max.Y = math.Max(max.Y, pt.Y)
		}
	}
	return min, max, ok
}
