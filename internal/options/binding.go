package options

import "github.com/glazeapp/glaze/internal/effects"

// Applier applies an alpha level to a window. Both the effects controller
// and the platform compositor satisfy it.
type Applier interface {
	Apply(w effects.Window, alpha uint8)
}

// Binding connects the transparency option to an applier.
type Binding struct {
	store *Store
	ctrl  Applier
}

// NewBinding wires a store to an applier.
func NewBinding(store *Store, ctrl Applier) *Binding {
	return &Binding{store: store, ctrl: ctrl}
}

// SetOpacity validates a requested opacity level, stores the possibly
// coerced value, and applies it to the default window. When the option is
// not registered (unsupported platform) the call is a no-op at this layer.
func (b *Binding) SetOpacity(requested int) {
	opt, ok := b.store.Lookup(OpacityOption)
	if !ok {
		return
	}
	alpha := ClampAlpha(requested)
	opt.value = int(alpha)
	b.ctrl.Apply(0, alpha)
}

// SetOpacityOn is SetOpacity against an explicit window handle.
func (b *Binding) SetOpacityOn(w effects.Window, requested int) {
	opt, ok := b.store.Lookup(OpacityOption)
	if !ok {
		return
	}
	alpha := ClampAlpha(requested)
	opt.value = int(alpha)
	b.ctrl.Apply(w, alpha)
}

// Opacity returns the stored option value, or fully opaque when the option
// is not registered.
func (b *Binding) Opacity() int {
	opt, ok := b.store.Lookup(OpacityOption)
	if !ok {
		return int(effects.Opaque)
	}
	return opt.Value()
}
