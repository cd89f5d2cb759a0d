package blob

import (
	"math"

	"github.com/iburimskiy/liquid-button/internal/scene"
)

type InputKind uint8

const (
	InputEnter InputKind = iota
	InputMove
	InputLeave
	InputClick
)

func (k InputKind) String() string {
	switch k {
	case InputEnter:
		return "enter"
	case InputMove:
		return "move"
	case InputLeave:
		return "leave"
	case InputClick:
		return "click"
	}
	return "unknown"
}

// Input is a pointer event in surface coordinates. Enter ignores X and Y.
type Input struct {
	Kind InputKind
	X, Y float64
}

func (in Input) pos() scene.Point { return scene.Pt(in.X, in.Y) }

// Apply returns s with a single input applied. Inputs with a non-finite
// position are dropped.
func Apply(s State, in Input, p Params) State {
	if in.Kind != InputEnter && !finite(in.X, in.Y) {
		return s
	}
	switch in.Kind {
	case InputEnter:
		s.Pointer.Hovering = true
	case InputMove:
		s.Pointer.Pos = in.pos()
	case InputLeave:
		if s.Pointer.NearEdge && s.Drop.Radius > p.RecoilMinRadius {
			s = recoil(s, in.pos(), p)
		}
		s.Pointer.Hovering = false
		s.Pointer.NearEdge = false
		s.Drop.TargetRadius = 0
	case InputClick:
		s = splash(s, in.pos(), p)
	}
	return s
}

// recoil throws the body back from the exit point and ripples the rim on
// the exit side.
func recoil(s State, exit scene.Point, p Params) State {
	back := s.Center.Sub(exit)
	dist := back.Len()
	if dist == 0 {
		return s
	}
	s.Bounce.Velocity = back.Mul(p.ExitBounce / dist)

	impact := exit.Sub(s.Center).Angle()
	for i := range s.Rim {
		diff := math.Abs(s.Rim[i].BaseAngle - impact)
		s.Rim[i].Velocity += math.Cos(diff) * p.ExitRipple
	}
	return s
}

func splash(s State, at scene.Point, p Params) State {
	dir := at.Sub(s.Center)
	if dir.Len() == 0 {
		return s
	}
	impact := dir.Angle()
	for i := range s.Rim {
		s.Rim[i].Velocity += math.Cos(s.Rim[i].BaseAngle-impact) * p.ClickRipple
	}
	s.Bounce.Velocity.X += math.Cos(impact) * -p.ClickBounce
	s.Bounce.Velocity.Y += math.Sin(impact) * -p.ClickBounce
	return s
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
