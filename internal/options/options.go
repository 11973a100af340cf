// Package options holds the validated numeric settings glaze exposes and
// the binding that forwards opacity changes to the effects controller.
package options

import (
	"fmt"
	"sort"

	"github.com/glazeapp/glaze/internal/effects"
)

// IntOption describes a registered integer setting.
type IntOption struct {
	Name    string
	Default int
	Min     int
	Max     int

	value int
}

// Value returns the current stored value.
func (o *IntOption) Value() int { return o.value }

// Store is a registry of integer options. Options exist only when the
// hosting platform supports the feature they control; looking up an
// unregistered option is not an error, setting it is a no-op.
type Store struct {
	opts map[string]*IntOption
}

// NewStore creates an empty option store.
func NewStore() *Store {
	return &Store{opts: make(map[string]*IntOption)}
}

// Register adds an option initialized to its default. Registering the same
// name twice returns an error.
func (s *Store) Register(opt IntOption) error {
	if _, ok := s.opts[opt.Name]; ok {
		return fmt.Errorf("option %q already registered", opt.Name)
	}
	if opt.Min > opt.Max {
		return fmt.Errorf("option %q: min %d > max %d", opt.Name, opt.Min, opt.Max)
	}
	opt.value = opt.Default
	s.opts[opt.Name] = &opt
	return nil
}

// Lookup returns the option and whether it is registered.
func (s *Store) Lookup(name string) (*IntOption, bool) {
	o, ok := s.opts[name]
	return o, ok
}

// Names returns registered option names, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.opts))
	for n := range s.opts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// OpacityOption is the name of the window transparency setting.
const OpacityOption = "transparency"

// ClampAlpha validates a requested opacity level. Anything outside
// [1,255] — too high or too low — coerces to fully opaque, so an invalid
// request fails safe to "no effect" rather than to maximum translucency.
func ClampAlpha(v int) uint8 {
	if v < int(effects.MinAlpha) || v > int(effects.Opaque) {
		return effects.Opaque
	}
	return uint8(v)
}

// RegisterOpacity adds the transparency option when supported is true.
// On platforms without the compositing capability the option is absent
// entirely, not merely inert.
func (s *Store) RegisterOpacity(supported bool) error {
	if !supported {
		return nil
	}
	return s.Register(IntOption{
		Name:    OpacityOption,
		Default: int(effects.Opaque),
		Min:     int(effects.MinAlpha),
		Max:     int(effects.Opaque),
	})
}
