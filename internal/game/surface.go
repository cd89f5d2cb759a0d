package game

import (
	_ "embed"
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/liquid-button/internal/scene"
)

//go:embed gradient.kage
var gradientSrc []byte

var errNotSized = errors.New("game: surface has no size")

// Surface draws frames into an offscreen ebiten image with the gradient
// shader. The shadow is blurred by repeated halving with linear filtering.
type Surface struct {
	img    *ebiten.Image
	mask   *ebiten.Image
	blur   []*ebiten.Image
	shader *ebiten.Shader

	vs []ebiten.Vertex
	is []uint16
}

func NewSurface() (*Surface, error) {
	sh, err := ebiten.NewShader(gradientSrc)
	if err != nil {
		return nil, err
	}
	return &Surface{shader: sh}, nil
}

func (s *Surface) SetSize(w, h int) {
	s.img = ebiten.NewImage(w, h)
	s.mask = ebiten.NewImage(w, h)
	s.blur = s.blur[:0]
	for _, sz := range blurChain(w, h, shadowLevels) {
		s.blur = append(s.blur, ebiten.NewImage(sz[0], sz[1]))
	}
}

// shadowLevels halvings give roughly the 40px canvas shadow blur on a
// 300px surface.
const shadowLevels = 3

func blurChain(w, h, levels int) [][2]int {
	var out [][2]int
	for i := 0; i < levels; i++ {
		w, h = max(1, (w+1)/2), max(1, (h+1)/2)
		out = append(out, [2]int{w, h})
	}
	return out
}

// Image is the last presented frame.
func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) Present(f *scene.Frame) error {
	if s.img == nil {
		return errNotSized
	}
	s.img.Clear()
	if f.Shadow != nil {
		if casters := f.Casters(); len(casters) > 0 {
			s.drawShadow(f.Shadow, casters)
		}
	}
	for _, fl := range f.Fills {
		s.fill(s.img, fl.Path, fl.Paint)
	}
	return nil
}

func (s *Surface) drawShadow(sh *scene.Shadow, casters []scene.Fill) {
	s.mask.Clear()
	opaque := scene.Solid(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	for _, fl := range casters {
		s.fill(s.mask, fl.Path, opaque)
	}

	src := s.mask
	for _, dst := range s.blur {
		dst.Clear()
		scaleInto(dst, src)
		src = dst
	}

	op := &ebiten.DrawImageOptions{}
	sw, shh := src.Bounds().Dx(), src.Bounds().Dy()
	op.GeoM.Scale(float64(s.img.Bounds().Dx())/float64(sw), float64(s.img.Bounds().Dy())/float64(shh))
	op.GeoM.Translate(sh.OffsetX, sh.OffsetY)
	op.ColorScale.ScaleWithColor(sh.Color)
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(src, op)
}

func scaleInto(dst, src *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Bounds().Dx())/float64(src.Bounds().Dx()), float64(dst.Bounds().Dy())/float64(src.Bounds().Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}

func (s *Surface) fill(dst *ebiten.Image, p scene.Path, paint scene.Paint) {
	var path vector.Path
	for _, seg := range p.Segs {
		switch seg.Op {
		case scene.OpMove:
			path.MoveTo(f32(seg.Pts[0]))
		case scene.OpLine:
			path.LineTo(f32(seg.Pts[0]))
		case scene.OpCubic:
			x1, y1 := f32(seg.Pts[0])
			x2, y2 := f32(seg.Pts[1])
			x3, y3 := f32(seg.Pts[2])
			path.CubicTo(x1, y1, x2, y2, x3, y3)
		case scene.OpClose:
			path.Close()
		}
	}
	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	if len(s.is) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesShaderOptions{
		Uniforms:  paintUniforms(paint),
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	}
	dst.DrawTrianglesShader(s.vs, s.is, s.shader, op)
}

func f32(p scene.Point) (float32, float32) {
	return float32(p.X), float32(p.Y)
}

// paintUniforms maps a paint to the gradient shader uniforms.
func paintUniforms(p scene.Paint) map[string]any {
	kind := float32(0)
	switch p.Kind {
	case scene.PaintLinear:
		kind = 1
	case scene.PaintRadial:
		kind = 2
	}

	stops := p.Stops
	if p.Kind == scene.PaintSolid || len(stops) == 0 {
		kind = 0
		stops = []scene.Stop{{Offset: 0, Color: p.Color}}
	}
	var offsets [4]float32
	var colors [4][]float32
	for i := 0; i < 4; i++ {
		st := stops[min(i, len(stops)-1)]
		if i >= len(stops) {
			st.Offset = 1
		}
		offsets[i] = float32(st.Offset)
		colors[i] = premultiplied(st.Color)
	}

	return map[string]any{
		"Kind":    kind,
		"Start":   []float32{float32(p.Start.X), float32(p.Start.Y)},
		"End":     []float32{float32(p.End.X), float32(p.End.Y)},
		"Radius":  float32(p.Radius),
		"Offsets": offsets[:],
		"Color0":  colors[0],
		"Color1":  colors[1],
		"Color2":  colors[2],
		"Color3":  colors[3],
	}
}

func premultiplied(c color.NRGBA) []float32 {
	a := float32(c.A) / 255
	return []float32{float32(c.R) / 255 * a, float32(c.G) / 255 * a, float32(c.B) / 255 * a, a}
}
