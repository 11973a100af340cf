//go:build windows

package win32

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/glazeapp/glaze/internal/effects"
	"github.com/glazeapp/glaze/internal/model"
	"github.com/glazeapp/glaze/internal/platform"
)

var (
	procEnumWindows              = user32.NewProc("EnumWindows")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
)

type rect struct {
	Left, Top, Right, Bottom int32
}

// ForegroundWindow returns the current foreground window, or zero.
func ForegroundWindow() effects.Window {
	h, _, _ := procGetForegroundWindow.Call()
	return effects.Window(h)
}

// Lister enumerates visible top-level windows.
type Lister struct{}

// NewLister creates the Windows window lister.
func NewLister() *Lister {
	return &Lister{}
}

// Callbacks registered with the runtime are never released, so the
// enumeration callback is created once and feeds a package-level slice
// guarded by enumMu.
var (
	enumMu      sync.Mutex
	enumHandles []uintptr
	enumProc    = syscall.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
		enumHandles = append(enumHandles, hwnd)
		return 1 // continue enumeration
	})
)

func enumWindows() ([]uintptr, error) {
	enumMu.Lock()
	defer enumMu.Unlock()
	enumHandles = enumHandles[:0]
	if r, _, err := procEnumWindows.Call(enumProc, 0); r == 0 {
		return nil, fmt.Errorf("enum windows: %w", err)
	}
	handles := make([]uintptr, len(enumHandles))
	copy(handles, enumHandles)
	return handles, nil
}

// ListWindows walks all top-level windows and returns the visible titled
// ones, filtered per opts.
func (l *Lister) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	handles, err := enumWindows()
	if err != nil {
		return nil, err
	}

	foreground := uintptr(ForegroundWindow())
	wins := []model.Window{}
	for _, hwnd := range handles {
		if visible, _, _ := procIsWindowVisible.Call(hwnd); visible == 0 {
			continue
		}
		title := windowTitle(hwnd)
		if title == "" {
			continue
		}

		var pid uint32
		procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))

		w := model.Window{
			App:     processName(pid),
			PID:     int(pid),
			Title:   title,
			Handle:  uint64(hwnd),
			Bounds:  windowBounds(hwnd),
			Focused: hwnd == foreground,
			Layered: exStyler{}.Layered(effects.Window(hwnd)),
		}

		if opts.PID != 0 && w.PID != opts.PID {
			continue
		}
		if opts.App != "" && !strings.Contains(strings.ToLower(w.App), strings.ToLower(opts.App)) {
			continue
		}
		if !w.MatchesTitle(opts.Title) {
			continue
		}
		wins = append(wins, w)
	}
	return wins, nil
}

func windowTitle(hwnd uintptr) string {
	length, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if length == 0 {
		return ""
	}
	buf := make([]uint16, length+1)
	procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), length+1)
	return syscall.UTF16ToString(buf)
}

func windowBounds(hwnd uintptr) [4]int {
	var r rect
	if ok, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r))); ok == 0 {
		return [4]int{}
	}
	return [4]int{int(r.Left), int(r.Top), int(r.Right - r.Left), int(r.Bottom - r.Top)}
}

// processName returns the base name of the process executable, or "" when
// the process cannot be opened (different session, elevated, gone).
func processName(pid uint32) string {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, windows.MAX_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return ""
	}
	return filepath.Base(windows.UTF16ToString(buf[:size]))
}
