package server

import (
	"testing"
	"time"

	"github.com/glazeapp/glaze/internal/model"
	"github.com/glazeapp/glaze/internal/platform"
)

type countingLister struct {
	calls   int
	windows []model.Window
}

func (l *countingLister) ListWindows(_ platform.ListOptions) ([]model.Window, error) {
	l.calls++
	return l.windows, nil
}

func TestWindowCacheHit(t *testing.T) {
	lister := &countingLister{windows: []model.Window{{Title: "a", Handle: 1}}}
	cache := newWindowCache(time.Minute)

	for i := 0; i < 3; i++ {
		wins, err := cache.listWindows(lister, platform.ListOptions{Title: "a"})
		if err != nil {
			t.Fatal(err)
		}
		if len(wins) != 1 {
			t.Fatalf("got %d windows, want 1", len(wins))
		}
	}
	if lister.calls != 1 {
		t.Errorf("lister called %d times, want 1 (cached)", lister.calls)
	}
}

func TestWindowCacheKeyedByScope(t *testing.T) {
	lister := &countingLister{}
	cache := newWindowCache(time.Minute)

	cache.listWindows(lister, platform.ListOptions{Title: "a"})
	cache.listWindows(lister, platform.ListOptions{Title: "b"})
	cache.listWindows(lister, platform.ListOptions{PID: 7})
	if lister.calls != 3 {
		t.Errorf("lister called %d times, want 3 (distinct scopes)", lister.calls)
	}
}

func TestWindowCacheDisabled(t *testing.T) {
	lister := &countingLister{}
	cache := newWindowCache(0)

	cache.listWindows(lister, platform.ListOptions{})
	cache.listWindows(lister, platform.ListOptions{})
	if lister.calls != 2 {
		t.Errorf("lister called %d times, want 2 (ttl 0 disables cache)", lister.calls)
	}
}

func TestWindowCacheInvalidateAll(t *testing.T) {
	lister := &countingLister{}
	cache := newWindowCache(time.Minute)

	cache.listWindows(lister, platform.ListOptions{})
	cache.invalidateAll()
	cache.listWindows(lister, platform.ListOptions{})
	if lister.calls != 2 {
		t.Errorf("lister called %d times, want 2 after invalidation", lister.calls)
	}
}

func TestParamHelpers(t *testing.T) {
	params := map[string]interface{}{
		"title": "vim",
		"alpha": float64(128),
		"all":   true,
	}
	if got := StringParam(params, "title", ""); got != "vim" {
		t.Errorf("StringParam = %q", got)
	}
	if got := StringParam(params, "missing", "def"); got != "def" {
		t.Errorf("StringParam default = %q", got)
	}
	if got := IntParam(params, "alpha", 0); got != 128 {
		t.Errorf("IntParam = %d", got)
	}
	if got := IntParam(params, "missing", 255); got != 255 {
		t.Errorf("IntParam default = %d", got)
	}
	if !BoolParam(params, "all", false) {
		t.Error("BoolParam = false, want true")
	}
	if BoolParam(params, "missing", false) {
		t.Error("BoolParam default = true, want false")
	}
}
