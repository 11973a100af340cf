package model

import "testing"

func TestMatchesTitle(t *testing.T) {
	w := Window{Title: "main.go — GoLand"}

	tests := []struct {
		sub  string
		want bool
	}{
		{"", true},
		{"goland", true},
		{"GOLAND", true},
		{"main.go", true},
		{"emacs", false},
	}
	for _, tt := range tests {
		if got := w.MatchesTitle(tt.sub); got != tt.want {
			t.Errorf("MatchesTitle(%q) = %v, want %v", tt.sub, got, tt.want)
		}
	}
}
