package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/iburimskiy/liquid-button/internal/blob"
)

const (
	// Button dimensions. The visible button is smaller than its drawing
	// surface; the surface overhangs it by the margin on every side.
	ButtonSize    = 180
	ButtonGap     = 40
	SurfaceMargin = 60
	MaxMargin     = 200

	WindowPadding = 40

	TPS = 60

	// Plop sound parameters
	SampleRate    = 44100
	VisualRing    = 4096
	GlowFrequency = 6.0
	GlowDamping   = 0.5
	GlowHover     = 0.15
	GlowPerLevel  = 0.6
)

var ErrUnknownScheme = errors.New("unknown color scheme")

// Config is the command line configuration.
type Config struct {
	Schemes     []string
	Margin      float64
	Sound       string
	Mute        bool
	ListSchemes bool
	ExportDir   string
	Frames      int
	Seed        uint64
}

// WindowSize returns the window size for n buttons whose drawing surfaces
// are surface pixels square.
func WindowSize(n, surface int) (int, int) {
	if n < 1 {
		n = 1
	}
	return 2*WindowPadding + n*surface + (n-1)*ButtonGap, 2*WindowPadding + surface
}

// Parse reads the command line. Unknown scheme names are kept and reported
// through Validate so the caller can decide whether to warn or fail.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		c       Config
		schemes string
	)
	fs.StringVar(&schemes, "schemes", strings.Join(blob.SchemeNames(), ","), "comma separated color schemes, one button each")
	fs.Float64Var(&c.Margin, "margin", SurfaceMargin, "distance the drawing surface extends past the button")
	fs.StringVar(&c.Sound, "sound", "", "wav, mp3 or flac file to play instead of the synthesized plop")
	fs.BoolVar(&c.Mute, "mute", false, "disable sound")
	fs.BoolVar(&c.ListSchemes, "list-schemes", false, "print the color schemes and exit")
	fs.StringVar(&c.ExportDir, "export", "", "render a scripted interaction to PNG frames in this directory and exit")
	fs.IntVar(&c.Frames, "frames", 150, "number of frames to export")
	fs.Uint64Var(&c.Seed, "seed", 0, "wobble seed (0 picks a random one)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	for _, s := range strings.Split(schemes, ",") {
		if s = strings.TrimSpace(s); s != "" {
			c.Schemes = append(c.Schemes, s)
		}
	}
	if len(c.Schemes) == 0 {
		c.Schemes = []string{blob.SchemeNames()[0]}
	}
	if math.IsNaN(c.Margin) || c.Margin < 0 || c.Margin > MaxMargin {
		return nil, usageError(fs, fmt.Errorf("margin %v: must be between 0 and %d", c.Margin, MaxMargin))
	}
	if c.Frames < 1 {
		return nil, usageError(fs, fmt.Errorf("frames %d: must be positive", c.Frames))
	}
	return &c, nil
}

// usageError reports err the way the flag package reports its own errors.
func usageError(fs *flag.FlagSet, err error) error {
	fmt.Fprintln(fs.Output(), err)
	fs.Usage()
	return err
}

// Validate reports every configured scheme that is not a known name.
func (c *Config) Validate() error {
	var errs []error
	for _, s := range c.Schemes {
		if _, ok := blob.LookupScheme(s); !ok {
			errs = append(errs, fmt.Errorf("%w %q", ErrUnknownScheme, s))
		}
	}
	return errors.Join(errs...)
}

// Params returns the blob parameters for this configuration.
func (c *Config) Params() blob.Params {
	p := blob.DefaultParams()
	p.Margin = c.Margin
	p.SurfaceSize = ButtonSize + 2*int(math.Ceil(c.Margin))
	return p
}
