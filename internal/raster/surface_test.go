package raster

import (
	"bytes"
	"image/png"
	"os"
	"testing"

	"github.com/iburimskiy/liquid-button/internal/blob"
	"github.com/iburimskiy/liquid-button/internal/scene"
)

func render(t *testing.T, s blob.State, scheme string) *Surface {
	t.Helper()
	p := blob.DefaultParams()
	sc, _ := blob.LookupScheme(scheme)
	surf := New()
	surf.SetSize(p.SurfaceSize, p.SurfaceSize)
	if err := surf.Present(blob.Render(s, sc, blob.DefaultLook(), p.SurfaceSize)); err != nil {
		t.Fatal(err)
	}
	return surf
}

func TestPresentUnsized(t *testing.T) {
	if err := New().Present(&scene.Frame{}); err == nil {
		t.Error("Present on an unsized surface succeeded")
	}
}

func TestRenderIdleBlob(t *testing.T) {
	s := blob.NewState(blob.DefaultParams(), 0)
	img := render(t, s, "emerald").Image()

	center := img.RGBAAt(150, 150)
	if center.A != 255 {
		t.Fatalf("center alpha = %d, want opaque", center.A)
	}
	if center.G < center.R || center.G < center.B {
		t.Errorf("center = %v, want an emerald tint", center)
	}
	if c := img.RGBAAt(2, 2); c.A != 0 {
		t.Errorf("corner = %v, want transparent", c)
	}
	// Below the body: only the glow shadow, offset downward.
	below := img.RGBAAt(150, 235)
	if below.A == 0 || below.A == 255 {
		t.Errorf("shadow pixel alpha = %d, want partial", below.A)
	}
	above := img.RGBAAt(150, 65)
	if above.A >= below.A {
		t.Errorf("shadow above (%d) not weaker than below (%d)", above.A, below.A)
	}
}

func TestRenderDrop(t *testing.T) {
	s := blob.NewState(blob.DefaultParams(), 0)
	s.Pointer.NearEdge = true
	s.Drop.Pos = scene.Pt(255, 150)
	s.Drop.Radius = 30
	img := render(t, s, "ocean").Image()

	if c := img.RGBAAt(255, 150); c.A != 255 {
		t.Errorf("drop center = %v, want opaque", c)
	}
	// The bridge fills the gap between the body rim and the drop.
	if c := img.RGBAAt(226, 150); c.A != 255 {
		t.Errorf("bridge pixel = %v, want opaque", c)
	}
}

func TestWritePNG(t *testing.T) {
	s := blob.NewState(blob.DefaultParams(), 0)
	surf := render(t, s, "sunset")

	var buf bytes.Buffer
	if err := surf.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 300 {
		t.Errorf("png bounds = %v", b)
	}

	dir := t.TempDir()
	path, err := surf.SavePNG(dir, 7)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved frame missing: %v", err)
	}
}
