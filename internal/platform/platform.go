package platform

import (
	"github.com/glazeapp/glaze/internal/effects"
	"github.com/glazeapp/glaze/internal/model"
)

// WindowLister enumerates top-level windows.
type WindowLister interface {
	// ListWindows returns visible top-level windows, optionally filtered.
	ListWindows(opts ListOptions) ([]model.Window, error)
}

// Compositor applies uniform alpha transparency to windows. It wraps the
// effects controller with the platform's style and blend primitives.
type Compositor interface {
	// Apply sets the window's opacity. A zero handle targets the current
	// foreground window. Alpha 255 disables transparency; lower values
	// require the layered-window capability and silently no-op without it.
	Apply(w effects.Window, alpha uint8)

	// Reset forces the window fully opaque.
	Reset(w effects.Window)

	// Supported reports whether the layered-window blend primitive can be
	// resolved right now. Probing is cheap and done fresh on each call.
	Supported() bool

	// Foreground returns the current foreground window, or zero.
	Foreground() effects.Window
}
