package platform

import (
	"fmt"

	"github.com/glazeapp/glaze/internal/effects"
)

// ResolveTarget turns targeting options into a concrete window handle.
// Empty options fall back to the current foreground window.
func ResolveTarget(p *Provider, opts TargetOptions) (effects.Window, error) {
	if opts.Handle != 0 {
		return effects.Window(opts.Handle), nil
	}

	if opts.IsZero() {
		w := p.Compositor.Foreground()
		if w == 0 {
			return 0, fmt.Errorf("no foreground window")
		}
		return w, nil
	}

	wins, err := p.Lister.ListWindows(ListOptions{PID: opts.PID, Title: opts.Title})
	if err != nil {
		return 0, fmt.Errorf("list windows: %w", err)
	}
	if len(wins) == 0 {
		return 0, fmt.Errorf("no window matches %s", opts.describe())
	}
	return effects.Window(wins[0].Handle), nil
}

func (t TargetOptions) describe() string {
	switch {
	case t.Title != "" && t.PID != 0:
		return fmt.Sprintf("title %q pid %d", t.Title, t.PID)
	case t.Title != "":
		return fmt.Sprintf("title %q", t.Title)
	case t.PID != 0:
		return fmt.Sprintf("pid %d", t.PID)
	default:
		return "foreground"
	}
}
