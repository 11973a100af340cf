package preview

import (
	"bytes"
	"image/png"
	"testing"
)

// cornerOfPanel picks a panel pixel away from the centered label.
const (
	sampleX = panelMargin + 5
	sampleY = panelMargin + 5
)

func TestRenderOpaquePanel(t *testing.T) {
	img := Render(255, 200, 200)
	got := img.RGBAAt(sampleX, sampleY)
	if got != panelColor {
		t.Errorf("alpha 255 panel pixel = %v, want solid %v", got, panelColor)
	}
}

func TestRenderTranslucentPanelBlends(t *testing.T) {
	img := Render(128, 200, 200)
	got := img.RGBAAt(sampleX, sampleY)

	backdrop := Render(255, 200, 200) // same geometry, read checker outside panel
	checker := backdrop.RGBAAt(1, 1)

	if got == panelColor {
		t.Error("alpha 128 panel pixel should not be the solid panel color")
	}
	if got == checker {
		t.Error("alpha 128 panel pixel should not be the bare backdrop")
	}
	// Roughly halfway on the red channel: panel 30, checker light/dark
	// 200/120; either blend lands well above 30 and below the backdrop.
	if got.R <= panelColor.R {
		t.Errorf("blend R = %d, want > %d", got.R, panelColor.R)
	}
}

func TestRenderNearTransparentPanel(t *testing.T) {
	solid := Render(255, 200, 200)
	faint := Render(1, 200, 200)
	if faint.RGBAAt(sampleX, sampleY) == solid.RGBAAt(sampleX, sampleY) {
		t.Error("alpha 1 should differ visibly from alpha 255")
	}
}

func TestRenderClampsTinyDimensions(t *testing.T) {
	img := Render(128, 1, 1)
	b := img.Bounds()
	if b.Dx() < 4*checkerCell || b.Dy() < 4*checkerCell {
		t.Errorf("bounds = %v, want at least %dx%d", b, 4*checkerCell, 4*checkerCell)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, 180, 160, 120); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 160 {
		t.Errorf("decoded width = %d, want 160", img.Bounds().Dx())
	}
}
