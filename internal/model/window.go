// Package model defines the data types shared between the platform layer
// and the output layer.
package model

import "strings"

// Window represents a top-level native window.
type Window struct {
	App     string `yaml:"app,omitempty"   json:"app,omitempty"`
	PID     int    `yaml:"pid"             json:"pid"`
	Title   string `yaml:"title"           json:"title"`
	Handle  uint64 `yaml:"handle"          json:"handle"`
	Bounds  [4]int `yaml:"bounds"          json:"bounds"`
	Focused bool   `yaml:"focused,omitempty" json:"focused,omitempty"`
	Layered bool   `yaml:"layered,omitempty" json:"layered,omitempty"`
}

// MatchesTitle reports whether the window title contains sub,
// case-insensitively. An empty sub matches everything.
func (w Window) MatchesTitle(sub string) bool {
	if sub == "" {
		return true
	}
	return strings.Contains(strings.ToLower(w.Title), strings.ToLower(sub))
}
