package blob

import (
	"math"
	"testing"

	"github.com/iburimskiy/liquid-button/internal/scene"
)

func TestRenderFillCounts(t *testing.T) {
	p := DefaultParams()
	sc, _ := LookupScheme("ocean")
	tests := []struct {
		name    string
		radius  float64
		fills   int
		casters int
	}{
		{"idle", 0, 4, 1},
		{"tiny drop", 5, 4, 1},
		{"drop without highlight", 8, 6, 3},
		{"drop at highlight threshold", 12, 6, 3},
		{"full drop", 30, 8, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(p, 0)
			s.Drop.Radius = tt.radius
			s.Drop.Pos = scene.Pt(230, 150)
			f := Render(s, sc, DefaultLook(), p.SurfaceSize)
			if len(f.Fills) != tt.fills {
				t.Errorf("len(Fills) = %d, want %d", len(f.Fills), tt.fills)
			}
			if got := len(f.Casters()); got != tt.casters {
				t.Errorf("len(Casters()) = %d, want %d", got, tt.casters)
			}
		})
	}
}

func TestRenderFrame(t *testing.T) {
	p := DefaultParams()
	sc, _ := LookupScheme("emerald")
	s := NewState(p, 0)
	f := Render(s, sc, Look{ShadowAlpha: 0.6}, p.SurfaceSize)

	if f.Width != 300 || f.Height != 300 {
		t.Errorf("frame size = %dx%d, want 300x300", f.Width, f.Height)
	}
	if f.Shadow == nil {
		t.Fatal("no shadow")
	}
	if want := sc.Glow.NRGBA(0.6); f.Shadow.Color != want {
		t.Errorf("shadow color = %v, want %v", f.Shadow.Color, want)
	}
	if f.Shadow.Blur != 40 || f.Shadow.OffsetY != 15 {
		t.Errorf("shadow blur/offset = %v/%v, want 40/15", f.Shadow.Blur, f.Shadow.OffsetY)
	}

	body := f.Fills[0].Paint
	if body.Kind != scene.PaintRadial || body.Radius != 95 {
		t.Errorf("body paint = %+v, want radial r95", body)
	}
	if body.Start != scene.Pt(130, 125) || body.End != scene.Pt(150, 150) {
		t.Errorf("body gradient %v -> %v", body.Start, body.End)
	}
	if c := body.Sample(0); c != sc.Light.NRGBA(1) {
		t.Errorf("body stop 0 = %v, want light", c)
	}
	if c := body.Sample(1); c != sc.Dark.NRGBA(1) {
		t.Errorf("body stop 1 = %v, want dark", c)
	}
}

func TestRenderFollowsBounce(t *testing.T) {
	p := DefaultParams()
	sc, _ := LookupScheme("sunset")
	s := NewState(p, 0)
	s.Bounce.Offset = scene.Pt(7, -3)
	f := Render(s, sc, DefaultLook(), p.SurfaceSize)
	if got := f.Fills[0].Paint.End; got != scene.Pt(157, 147) {
		t.Errorf("body gradient center = %v, want (157,147)", got)
	}
}

func TestBodyPathThroughRimPoints(t *testing.T) {
	p := DefaultParams()
	s := NewState(p, 0)
	for i := range s.Rim {
		s.Rim[i].Offset = float64(i%5) - 2
	}
	path := BodyPath(s)
	if n := len(path.Segs); n != NumRimPoints+2 {
		t.Fatalf("len(Segs) = %d, want %d", n, NumRimPoints+2)
	}
	c := s.BodyCenter()
	for i := 0; i < NumRimPoints; i++ {
		seg := path.Segs[i+1]
		if seg.Op != scene.OpCubic {
			t.Fatalf("segment %d op = %v, want cubic", i+1, seg.Op)
		}
		rp := s.Rim[(i+1)%NumRimPoints]
		want := c.Polar(rp.BaseAngle, s.BaseRadius+rp.Offset)
		if !near(seg.Pts[2], want) {
			t.Errorf("segment %d ends at %v, want %v", i+1, seg.Pts[2], want)
		}
	}
}

func TestBodyPathTangentsContinuous(t *testing.T) {
	p := DefaultParams()
	s := NewState(p, 0)
	for i := range s.Rim {
		s.Rim[i].Offset = 6 * math.Sin(float64(i))
	}
	path := BodyPath(s)
	for i := 1; i < NumRimPoints; i++ {
		in := path.Segs[i]
		out := path.Segs[i+1]
		joint := in.Pts[2]
		a := joint.Sub(in.Pts[1])
		b := out.Pts[0].Sub(joint)
		// Catmull-Rom control points are symmetric about the joint.
		if !near(a, b) {
			t.Errorf("joint %d: incoming %v, outgoing %v", i, a, b)
		}
	}
}
