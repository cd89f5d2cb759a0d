package blob

import "image/color"

type RGB struct {
	R, G, B uint8
}

// NRGBA returns the color with alpha a in [0, 1].
func (c RGB) NRGBA(a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(a)*255 + 0.5)}
}

// Scheme is the blob palette.
type Scheme struct {
	Name  string
	Main  RGB
	Light RGB
	Dark  RGB
	Glow  RGB
}

var schemes = []Scheme{
	{
		Name:  "ocean",
		Main:  RGB{14, 165, 233},
		Light: RGB{125, 211, 252},
		Dark:  RGB{3, 105, 161},
		Glow:  RGB{56, 189, 248},
	},
	{
		Name:  "emerald",
		Main:  RGB{52, 211, 153},
		Light: RGB{167, 243, 208},
		Dark:  RGB{16, 185, 129},
		Glow:  RGB{110, 231, 183},
	},
	{
		Name:  "sunset",
		Main:  RGB{251, 191, 36},
		Light: RGB{253, 230, 138},
		Dark:  RGB{245, 158, 11},
		Glow:  RGB{252, 211, 77},
	},
}

// LookupScheme returns the named scheme. ok is false when the name is
// unknown, in which case the first scheme is returned.
func LookupScheme(name string) (sc Scheme, ok bool) {
	for _, s := range schemes {
		if s.Name == name {
			return s, true
		}
	}
	return schemes[0], false
}

func SchemeNames() []string {
	names := make([]string, len(schemes))
	for i, s := range schemes {
		names[i] = s.Name
	}
	return names
}
