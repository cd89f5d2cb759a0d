package blob

import (
	"math"
	"testing"

	"github.com/iburimskiy/liquid-button/internal/scene"
)

func TestBridgeWidths(t *testing.T) {
	tests := []struct {
		dist       float64
		base, neck float64
	}{
		{0, 35, 35 * 0.7},
		{40, 29, 29 * 0.5},
		{80, 23, 23 * 0.3},
		{153.4, 12, 12 * 0.3},
		{400, 12, 12 * 0.3},
	}
	for _, tt := range tests {
		base, neck := BridgeWidths(tt.dist)
		if math.Abs(base-tt.base) > 1e-9 || math.Abs(neck-tt.neck) > 1e-9 {
			t.Errorf("BridgeWidths(%v) = %v, %v, want %v, %v", tt.dist, base, neck, tt.base, tt.neck)
		}
	}
}

func TestBridgeNeckNeverBelowFloor(t *testing.T) {
	for d := 0.0; d < 300; d += 0.5 {
		base, neck := BridgeWidths(d)
		if base < 12 {
			t.Fatalf("base %v below floor at %v", base, d)
		}
		if neck < base*0.3-1e-12 || neck > base {
			t.Fatalf("neck %v outside [0.3, 1]×%v at %v", neck, base, d)
		}
	}
}

func near(a, b scene.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestBridgeShape(t *testing.T) {
	b := BridgeShape(scene.Pt(0, 0), scene.Pt(100, 0), 20, 75)

	if b.Dist != 100 || b.Angle != 0 {
		t.Fatalf("Dist, Angle = %v, %v", b.Dist, b.Angle)
	}
	if b.BaseWidth != 20 {
		t.Errorf("BaseWidth = %v, want 20", b.BaseWidth)
	}
	checks := []struct {
		name      string
		got, want scene.Point
	}{
		{"Start", b.Start, scene.Pt(75, 0)},
		{"End", b.End, scene.Pt(82, 0)},
		{"BodyLeft", b.BodyLeft, scene.Pt(75, 20)},
		{"BodyRight", b.BodyRight, scene.Pt(75, -20)},
		{"DropLeft", b.DropLeft, scene.Pt(82, 14)},
		{"DropRight", b.DropRight, scene.Pt(82, -14)},
		{"LeftC1", b.LeftC1, scene.Pt(105, 6)},
		{"LeftC2", b.LeftC2, scene.Pt(52, 6)},
		{"RightC1", b.RightC1, scene.Pt(52, -6)},
		{"RightC2", b.RightC2, scene.Pt(105, -6)},
		{"Mid", b.Mid(), scene.Pt(78.5, 0)},
	}
	for _, c := range checks {
		if !near(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	p := b.Path()
	ops := []scene.SegmentOp{scene.OpMove, scene.OpCubic, scene.OpLine, scene.OpCubic, scene.OpClose}
	if len(p.Segs) != len(ops) {
		t.Fatalf("path has %d segments, want %d", len(p.Segs), len(ops))
	}
	for i, op := range ops {
		if p.Segs[i].Op != op {
			t.Errorf("segment %d op = %v, want %v", i, p.Segs[i].Op, op)
		}
	}
}
