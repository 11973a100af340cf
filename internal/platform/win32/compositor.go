//go:build windows

package win32

import (
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/glazeapp/glaze/internal/effects"
)

const (
	gwlExStyle  int32 = -20
	wsExLayered       = 0x00080000
	lwaAlpha          = 0x00000002
)

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procGetWindowLongPtrW = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW = user32.NewProc("SetWindowLongPtrW")
)

// exStyler manipulates WS_EX_LAYERED on GWL_EXSTYLE.
type exStyler struct{}

func (exStyler) Layered(w effects.Window) bool {
	style, _, _ := procGetWindowLongPtrW.Call(uintptr(w), int32ToUintptr(gwlExStyle))
	return style&wsExLayered != 0
}

func (exStyler) SetLayered(w effects.Window, on bool) {
	style, _, _ := procGetWindowLongPtrW.Call(uintptr(w), int32ToUintptr(gwlExStyle))
	if on {
		style |= wsExLayered
	} else {
		style &^= wsExLayered
	}
	procSetWindowLongPtrW.Call(uintptr(w), int32ToUintptr(gwlExStyle), style)
}

// blendProber resolves SetLayeredWindowAttributes fresh on every call. The
// library handle lives only until release runs, so repeated option changes
// never leak handles, and availability is re-checked against whatever OS
// the process finds itself on.
type blendProber struct{}

func (blendProber) Probe() (effects.Blend, func(), bool) {
	lib, err := windows.LoadLibrary("user32.dll")
	if err != nil {
		return nil, nil, false
	}
	addr, err := windows.GetProcAddress(lib, "SetLayeredWindowAttributes")
	if err != nil {
		windows.FreeLibrary(lib)
		return nil, nil, false
	}
	blend := func(w effects.Window, alpha uint8) error {
		// Zero color key: pure alpha blending, no color-key transparency.
		r, _, callErr := syscall.SyscallN(addr, uintptr(w), 0, uintptr(alpha), lwaAlpha)
		if r == 0 {
			return callErr
		}
		return nil
	}
	return blend, func() { windows.FreeLibrary(lib) }, true
}

// Compositor implements platform.Compositor on top of the effects
// controller with the user32 style and blend primitives.
type Compositor struct {
	ctrl   *effects.Controller
	prober blendProber
}

// NewCompositor creates the Windows compositor. The default window resolver
// is the current foreground window.
func NewCompositor() *Compositor {
	c := &Compositor{}
	c.ctrl = effects.NewController(exStyler{}, c.prober, ForegroundWindow)
	return c
}

// Apply sets the window's opacity.
func (c *Compositor) Apply(w effects.Window, alpha uint8) {
	c.ctrl.Apply(w, alpha)
}

// Reset forces the window fully opaque.
func (c *Compositor) Reset(w effects.Window) {
	c.ctrl.Reset(w)
}

// Supported probes for the blend primitive and releases it immediately.
func (c *Compositor) Supported() bool {
	_, release, ok := c.prober.Probe()
	if ok {
		release()
	}
	return ok
}

// Foreground returns the current foreground window.
func (c *Compositor) Foreground() effects.Window {
	return ForegroundWindow()
}

func int32ToUintptr(v int32) uintptr {
	return uintptr(uint32(v))
}
