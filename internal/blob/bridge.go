package blob

import (
	"math"

	"github.com/iburimskiy/liquid-button/internal/scene"
)

// Bridge is the liquid neck joining the body to the drop: two cubic edges
// pinched to NeckWidth between anchors on the body rim and on the near side
// of the drop.
type Bridge struct {
	Dist      float64
	Angle     float64
	BaseWidth float64
	NeckWidth float64

	Start scene.Point // axis point on the body rim
	End   scene.Point // axis point just inside the drop

	// Outline in drawing order: BodyLeft, two controls, DropLeft, DropRight,
	// two controls, BodyRight.
	BodyLeft, BodyRight scene.Point
	DropLeft, DropRight scene.Point
	LeftC1, LeftC2      scene.Point
	RightC1, RightC2    scene.Point
}

// BridgeWidths returns the base and neck half-widths for a drop at distance
// dist from the body center.
func BridgeWidths(dist float64) (base, neck float64) {
	base = math.Max(12, 35-dist*0.15)
	neck = base * (0.3 + math.Max(0, 1-dist/80)*0.4)
	return base, neck
}

// BridgeShape builds the bridge between a body of bodyRadius at body and a
// drop of dropRadius at drop.
func BridgeShape(body, drop scene.Point, dropRadius, bodyRadius float64) Bridge {
	d := drop.Sub(body)
	b := Bridge{Dist: d.Len(), Angle: d.Angle()}
	b.BaseWidth, b.NeckWidth = BridgeWidths(b.Dist)

	perp := b.Angle + math.Pi/2
	b.Start = body.Polar(b.Angle, bodyRadius)
	b.End = drop.Polar(b.Angle, -dropRadius*0.9)

	reach := b.Dist * 0.3
	b.BodyLeft = b.Start.Polar(perp, b.BaseWidth)
	b.BodyRight = b.Start.Polar(perp, -b.BaseWidth)
	b.DropLeft = b.End.Polar(perp, dropRadius*0.7)
	b.DropRight = b.End.Polar(perp, -dropRadius*0.7)

	b.LeftC1 = b.Start.Polar(b.Angle, reach).Polar(perp, b.NeckWidth)
	b.LeftC2 = b.End.Polar(b.Angle, -reach).Polar(perp, b.NeckWidth)
	b.RightC1 = b.End.Polar(b.Angle, -reach).Polar(perp, -b.NeckWidth)
	b.RightC2 = b.Start.Polar(b.Angle, reach).Polar(perp, -b.NeckWidth)
	return b
}

func (b Bridge) Path() scene.Path {
	var p scene.Path
	p.MoveTo(b.BodyLeft)
	p.CubicTo(b.LeftC1, b.LeftC2, b.DropLeft)
	p.LineTo(b.DropRight)
	p.CubicTo(b.RightC1, b.RightC2, b.BodyRight)
	p.Close()
	return p
}

// Mid is the midpoint of the bridge axis.
func (b Bridge) Mid() scene.Point {
	return b.Start.Lerp(b.End, 0.5)
}
