// Package platform defines the capability interfaces glaze needs from the
// host OS and the provider registry that build-tagged backends plug into.
package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the platform backends for the current OS.
type Provider struct {
	Lister     WindowLister
	Compositor Compositor
}

// ErrUnsupported is returned on platforms with no registered backend.
var ErrUnsupported = fmt.Errorf("glaze is not supported on %s/%s; layered window compositing requires windows", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win32 for the Windows registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
