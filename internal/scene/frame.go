package scene

import "image/color"

// Shadow is a blurred, offset copy of every shadow-casting fill, drawn
// beneath the frame.
type Shadow struct {
	Color   color.NRGBA
	Blur    float64
	OffsetX float64
	OffsetY float64
}

type Fill struct {
	Path   Path
	Paint  Paint
	Shadow bool
}

// Frame is one rendered image: fills are painted in order over a cleared
// surface of Width×Height.
type Frame struct {
	Width, Height int
	Shadow        *Shadow
	Fills         []Fill
}

func (f *Frame) Add(path Path, paint Paint) {
	f.Fills = append(f.Fills, Fill{Path: path, Paint: paint})
}

func (f *Frame) AddShadowed(path Path, paint Paint) {
	f.Fills = append(f.Fills, Fill{Path: path, Paint: paint, Shadow: true})
}

// Casters returns the fills that cast the frame shadow.
func (f *Frame) Casters() []Fill {
	var out []Fill
	for _, fl := range f.Fills {
		if fl.Shadow {
			out = append(out, fl)
		}
	}
	return out
}
