package blob

import (
	"errors"
	"fmt"
	"image"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/iburimskiy/liquid-button/internal/scene"
)

var (
	ErrNoElement = errors.New("blob: no host element")
	ErrNoSurface = errors.New("blob: element has no drawing surface")
)

// Surface is where frames are drawn.
type Surface interface {
	SetSize(w, h int)
	Present(f *scene.Frame) error
}

// Element is the host widget an Animator is bound to.
type Element interface {
	// Surface returns the drawing surface, or nil if there is none.
	Surface() Surface
	// ColorScheme returns the configured scheme name; empty selects the
	// default scheme.
	ColorScheme() string
	// Bounds is the visible button rectangle in device coordinates.
	Bounds() image.Rectangle
}

type Option func(*options)

type options struct {
	params Params
	rng    *rand.Rand
}

func WithParams(p Params) Option {
	return func(o *options) { o.params = p }
}

// WithSeed makes the wobble phase deterministic.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// Animator binds a blob State to a host element. Pointer methods may be
// called at any time; the inputs are queued and applied at the start of the
// next Tick.
type Animator struct {
	el      Element
	surface Surface
	params  Params
	scheme  Scheme
	known   bool

	mu      sync.Mutex
	pending []Input

	state State
	look  Look
}

// New binds an animator to el and sizes its surface.
func New(el Element, opts ...Option) (*Animator, error) {
	if el == nil {
		return nil, ErrNoElement
	}
	o := options{params: DefaultParams()}
	for _, opt := range opts {
		opt(&o)
	}
	surface := el.Surface()
	if surface == nil {
		return nil, fmt.Errorf("bind %q: %w", el.ColorScheme(), ErrNoSurface)
	}

	var phase float64
	if o.rng != nil {
		phase = o.rng.Float64() * 2 * math.Pi
	} else {
		phase = rand.Float64() * 2 * math.Pi
	}

	a := &Animator{
		el:      el,
		surface: surface,
		params:  o.params,
		state:   NewState(o.params, phase),
		look:    DefaultLook(),
	}
	a.scheme, a.known = LookupScheme(el.ColorScheme())
	surface.SetSize(o.params.SurfaceSize, o.params.SurfaceSize)
	return a, nil
}

func (a *Animator) Scheme() Scheme { return a.scheme }

// SchemeKnown reports whether the element's scheme name was recognised.
func (a *Animator) SchemeKnown() bool { return a.known }

func (a *Animator) SetLook(l Look) { a.look = l }

// Local converts a device position to surface coordinates.
func (a *Animator) Local(x, y float64) (float64, float64) {
	o := a.el.Bounds().Min
	return x - float64(o.X) + a.params.Margin, y - float64(o.Y) + a.params.Margin
}

func (a *Animator) push(in Input) {
	a.mu.Lock()
	a.pending = append(a.pending, in)
	a.mu.Unlock()
}

func (a *Animator) PointerEnter() { a.push(Input{Kind: InputEnter}) }

func (a *Animator) PointerMove(x, y float64) { a.push(Input{Kind: InputMove, X: x, Y: y}) }

func (a *Animator) PointerLeave(x, y float64) { a.push(Input{Kind: InputLeave, X: x, Y: y}) }

func (a *Animator) Click(x, y float64) { a.push(Input{Kind: InputClick, X: x, Y: y}) }

// Tick applies queued inputs and advances the state once. It returns the
// inputs it applied.
func (a *Animator) Tick() []Input {
	a.mu.Lock()
	in := a.pending
	a.pending = nil
	a.mu.Unlock()

	a.state = Step(a.state, in, a.params)
	return in
}

// Draw renders the current state to the surface.
func (a *Animator) Draw() error {
	f := Render(a.state, a.scheme, a.look, a.params.SurfaceSize)
	if err := a.surface.Present(f); err != nil {
		return fmt.Errorf("present %s frame: %w", a.scheme.Name, err)
	}
	return nil
}

// Frame runs one Tick and one Draw.
func (a *Animator) Frame() error {
	a.Tick()
	return a.Draw()
}

// Mode reports the current interaction phase.
func (a *Animator) Mode() Phase { return a.state.Mode() }

// DropRadius is the current drop radius, used by hosts to scale feedback.
func (a *Animator) DropRadius() float64 { return a.state.Drop.Radius }
