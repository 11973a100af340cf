package platform

import (
	"errors"
	"testing"

	"github.com/glazeapp/glaze/internal/effects"
	"github.com/glazeapp/glaze/internal/model"
)

type fakeLister struct {
	windows []model.Window
	err     error
	lastOpt ListOptions
}

func (l *fakeLister) ListWindows(opts ListOptions) ([]model.Window, error) {
	l.lastOpt = opts
	if l.err != nil {
		return nil, l.err
	}
	var out []model.Window
	for _, w := range l.windows {
		if opts.PID != 0 && w.PID != opts.PID {
			continue
		}
		if !w.MatchesTitle(opts.Title) {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

type fakeCompositor struct {
	foreground effects.Window
	supported  bool
	applied    []struct {
		w     effects.Window
		alpha uint8
	}
}

func (c *fakeCompositor) Apply(w effects.Window, alpha uint8) {
	c.applied = append(c.applied, struct {
		w     effects.Window
		alpha uint8
	}{w, alpha})
}

func (c *fakeCompositor) Reset(w effects.Window) { c.Apply(w, effects.Opaque) }

func (c *fakeCompositor) Supported() bool { return c.supported }

func (c *fakeCompositor) Foreground() effects.Window { return c.foreground }

func testProvider() (*Provider, *fakeLister, *fakeCompositor) {
	lister := &fakeLister{windows: []model.Window{
		{PID: 10, Title: "readme.txt - Notepad", Handle: 101},
		{PID: 20, Title: "main.go - Vim", Handle: 202},
	}}
	comp := &fakeCompositor{foreground: 101, supported: true}
	return &Provider{Lister: lister, Compositor: comp}, lister, comp
}

func TestResolveTargetExplicitHandle(t *testing.T) {
	p, _, _ := testProvider()
	w, err := ResolveTarget(p, TargetOptions{Handle: 0xabc})
	if err != nil {
		t.Fatal(err)
	}
	if w != 0xabc {
		t.Errorf("w = %#x, want 0xabc", w)
	}
}

func TestResolveTargetForegroundFallback(t *testing.T) {
	p, _, _ := testProvider()
	w, err := ResolveTarget(p, TargetOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if w != 101 {
		t.Errorf("w = %d, want foreground 101", w)
	}
}

func TestResolveTargetNoForeground(t *testing.T) {
	p, _, comp := testProvider()
	comp.foreground = 0
	if _, err := ResolveTarget(p, TargetOptions{}); err == nil {
		t.Error("expected error when no foreground window")
	}
}

func TestResolveTargetByTitle(t *testing.T) {
	p, _, _ := testProvider()
	w, err := ResolveTarget(p, TargetOptions{Title: "vim"})
	if err != nil {
		t.Fatal(err)
	}
	if w != 202 {
		t.Errorf("w = %d, want 202", w)
	}
}

func TestResolveTargetByPID(t *testing.T) {
	p, _, _ := testProvider()
	w, err := ResolveTarget(p, TargetOptions{PID: 10})
	if err != nil {
		t.Fatal(err)
	}
	if w != 101 {
		t.Errorf("w = %d, want 101", w)
	}
}

func TestResolveTargetNoMatch(t *testing.T) {
	p, _, _ := testProvider()
	if _, err := ResolveTarget(p, TargetOptions{Title: "emacs"}); err == nil {
		t.Error("expected error for unmatched title")
	}
}

func TestResolveTargetListError(t *testing.T) {
	p, lister, _ := testProvider()
	lister.err = errors.New("boom")
	if _, err := ResolveTarget(p, TargetOptions{Title: "vim"}); err == nil {
		t.Error("expected error when listing fails")
	}
}
