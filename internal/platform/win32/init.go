//go:build windows

package win32

import "github.com/glazeapp/glaze/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Lister:     NewLister(),
			Compositor: NewCompositor(),
		}, nil
	}
}
