// Package effects applies uniform alpha transparency to native windows.
//
// The controller never surfaces errors: transparency is cosmetic, and a
// missing compositing capability degrades to a silent no-op rather than
// disrupting the caller.
package effects

// Alpha bounds. Opaque disables transparency entirely.
const (
	MinAlpha uint8 = 1
	Opaque   uint8 = 255
)

// Window is an opaque handle to a native top-level window. The handle is
// borrowed from the windowing system; the controller never owns it.
type Window uintptr

// Styler reads and writes the layered compositing attribute on a window's
// extended style bits.
type Styler interface {
	// Layered reports whether the window currently has the layered
	// attribute set.
	Layered(w Window) bool

	// SetLayered sets or clears the layered attribute.
	SetLayered(w Window, on bool)
}

// Blend applies a uniform alpha value to a layered window. The zero color
// key is always passed through to the platform; only alpha blending is used.
type Blend func(w Window, alpha uint8) error

// Prober resolves the platform blend primitive at the point of use.
//
// Probe returns ok=false when the capability is absent (library or entry
// point missing). On ok=true the caller must invoke release when done; the
// prober holds the library handle only for the duration of one application.
type Prober interface {
	Probe() (blend Blend, release func(), ok bool)
}

// Controller turns a desired opacity level into platform calls.
type Controller struct {
	styler Styler
	prober Prober
	main   func() Window
}

// NewController builds a controller. main resolves the default window when
// Apply is called with a zero handle; it may be nil, in which case a zero
// handle is a no-op.
func NewController(styler Styler, prober Prober, main func() Window) *Controller {
	return &Controller{styler: styler, prober: prober, main: main}
}

// Apply sets the window's opacity. A zero window falls back to the default
// window resolver. Callers are responsible for range-clamping alpha; the
// controller applies exactly what it is given.
//
// Opaque clears the layered attribute unconditionally and never probes.
// Any lower value probes for the blend primitive first; if the capability
// is absent the window's style bits are left untouched.
func (c *Controller) Apply(w Window, alpha uint8) {
	if w == 0 && c.main != nil {
		w = c.main()
	}
	if w == 0 {
		return
	}

	if alpha == Opaque {
		c.styler.SetLayered(w, false)
		return
	}

	blend, release, ok := c.prober.Probe()
	if !ok {
		return
	}
	defer release()

	c.styler.SetLayered(w, true)
	_ = blend(w, alpha)
}

// Reset forces the window fully opaque. GUI startup calls this as soon as
// the window handle exists, before any configured opacity is applied.
func (c *Controller) Reset(w Window) {
	c.Apply(w, Opaque)
}
