package blob

import (
	"math"

	"github.com/iburimskiy/liquid-button/internal/scene"
)

const NumRimPoints = 40

// RimPoint is one control point of the body outline. Offset is the radial
// displacement from the base radius.
type RimPoint struct {
	BaseAngle float64
	Offset    float64
	Velocity  float64
}

// Drop is the secondary mass pulled out toward the pointer.
type Drop struct {
	Pos          scene.Point
	Radius       float64
	TargetRadius float64
}

// Bounce is the whole-shape displacement.
type Bounce struct {
	Offset   scene.Point
	Velocity scene.Point
}

type Pointer struct {
	Pos      scene.Point
	Hovering bool
	NearEdge bool
}

// State is the complete deformation state of one blob. It is a plain value:
// Update and Step return a new State and never share memory with the input.
type State struct {
	Time        float64
	// WobblePhase offsets Time in the idle wobble so blobs do not shimmer
	// in step.
	WobblePhase float64
	Center      scene.Point
	BaseRadius  float64
	Rim         [NumRimPoints]RimPoint
	Drop        Drop
	Bounce      Bounce
	Pointer     Pointer
}

// NewState returns the resting state for p with the given wobble phase.
func NewState(p Params, phase float64) State {
	half := float64(p.SurfaceSize) / 2
	c := scene.Pt(half, half)
	s := State{
		WobblePhase: phase,
		Center:      c,
		BaseRadius:  p.BaseRadius,
		Drop:        Drop{Pos: c},
		Pointer:     Pointer{Pos: c},
	}
	for i := range s.Rim {
		s.Rim[i].BaseAngle = float64(i) / NumRimPoints * 2 * math.Pi
	}
	return s
}

// BodyCenter is the center of the main body including the bounce offset.
func (s State) BodyCenter() scene.Point {
	return s.Center.Add(s.Bounce.Offset)
}

type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseHovering
	PhaseNearEdge
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseHovering:
		return "hovering"
	case PhaseNearEdge:
		return "near-edge"
	}
	return "unknown"
}

// Mode reports the interaction phase of the state.
func (s State) Mode() Phase {
	switch {
	case s.Pointer.NearEdge:
		return PhaseNearEdge
	case s.Pointer.Hovering:
		return PhaseHovering
	}
	return PhaseIdle
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
