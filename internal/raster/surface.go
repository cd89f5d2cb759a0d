// Package raster implements a software drawing surface on top of
// golang.org/x/image/vector. It renders the same frames as the window
// surface and backs headless export and rendering tests.
package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/iburimskiy/liquid-button/internal/scene"
)

var errNotSized = errors.New("raster: surface has no size")

// Surface renders frames into an RGBA image.
type Surface struct {
	img  *image.RGBA
	mask *image.Alpha
	z    *vector.Rasterizer
}

func New() *Surface {
	return &Surface{}
}

func (s *Surface) SetSize(w, h int) {
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	s.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	s.z = vector.NewRasterizer(w, h)
}

// Image is the last presented frame. It is overwritten by the next Present.
func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Present(f *scene.Frame) error {
	if s.img == nil {
		return errNotSized
	}
	b := s.img.Bounds()
	draw.Draw(s.img, b, image.Transparent, image.Point{}, draw.Src)

	if f.Shadow != nil {
		if casters := f.Casters(); len(casters) > 0 {
			s.drawShadow(f.Shadow, casters)
		}
	}
	for _, fl := range f.Fills {
		s.fill(s.img, fl.Path, paintSource(fl.Paint))
	}
	return nil
}

func (s *Surface) WritePNG(w io.Writer) error {
	if s.img == nil {
		return errNotSized
	}
	return png.Encode(w, s.img)
}

func (s *Surface) fill(dst draw.Image, p scene.Path, src image.Image) {
	b := dst.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	for _, seg := range p.Segs {
		switch seg.Op {
		case scene.OpMove:
			s.z.MoveTo(f32(seg.Pts[0]))
		case scene.OpLine:
			s.z.LineTo(f32(seg.Pts[0]))
		case scene.OpCubic:
			bx, by := f32(seg.Pts[0])
			cx, cy := f32(seg.Pts[1])
			dx, dy := f32(seg.Pts[2])
			s.z.CubeTo(bx, by, cx, cy, dx, dy)
		case scene.OpClose:
			s.z.ClosePath()
		}
	}
	s.z.Draw(dst, b, src, b.Min)
}

// drawShadow paints the union of the casters as a blurred silhouette. The
// blur is a down/up scale pair; the scale factor approximates a gaussian
// with sigma Blur/2.
func (s *Surface) drawShadow(sh *scene.Shadow, casters []scene.Fill) {
	b := s.mask.Bounds()
	draw.Draw(s.mask, b, image.Transparent, image.Point{}, draw.Src)
	for _, fl := range casters {
		s.fill(s.mask, fl.Path, image.Opaque)
	}

	blurred := s.mask
	if step := sh.Blur / 4; step > 1 {
		w := max(1, int(math.Ceil(float64(b.Dx())/step)))
		h := max(1, int(math.Ceil(float64(b.Dy())/step)))
		small := image.NewAlpha(image.Rect(0, 0, w, h))
		xdraw.BiLinear.Scale(small, small.Bounds(), s.mask, b, xdraw.Src, nil)
		blurred = image.NewAlpha(b)
		xdraw.BiLinear.Scale(blurred, b, small, small.Bounds(), xdraw.Src, nil)
	}

	off := image.Pt(int(math.Round(sh.OffsetX)), int(math.Round(sh.OffsetY)))
	draw.DrawMask(s.img, s.img.Bounds(), image.NewUniform(sh.Color), image.Point{}, blurred, b.Min.Sub(off), draw.Over)
}

func f32(p scene.Point) (float32, float32) {
	return float32(p.X), float32(p.Y)
}

// paintImage adapts a gradient paint to image.Image, sampling at pixel
// centers.
type paintImage struct {
	p scene.Paint
}

func paintSource(p scene.Paint) image.Image {
	if p.Kind == scene.PaintSolid || len(p.Stops) == 0 {
		return image.NewUniform(p.Color)
	}
	return paintImage{p: p}
}

func (g paintImage) ColorModel() color.Model { return color.NRGBAModel }

func (g paintImage) Bounds() image.Rectangle {
	return image.Rect(-1<<20, -1<<20, 1<<20, 1<<20)
}

func (g paintImage) At(x, y int) color.Color {
	return g.p.At(scene.Pt(float64(x)+0.5, float64(y)+0.5))
}
