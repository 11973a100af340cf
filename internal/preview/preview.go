// Package preview renders a sample image showing what a given uniform alpha
// level looks like: a translucent window panel composited over a
// checkerboard backdrop, labeled with the alpha value.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	checkerCell = 16
	panelMargin = 24
)

var (
	checkerLight = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	checkerDark  = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	panelColor   = color.RGBA{R: 30, G: 60, B: 120, A: 255}
	labelColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

// Render produces a width x height preview of the given alpha level. The
// panel is blended with the same uniform-alpha math the compositor uses, so
// alpha 255 yields a solid panel and lower values let the backdrop through.
func Render(alpha uint8, width, height int) *image.RGBA {
	if width < 4*checkerCell {
		width = 4 * checkerCell
	}
	if height < 4*checkerCell {
		height = 4 * checkerCell
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	drawCheckerboard(img)

	panel := image.Rect(panelMargin, panelMargin, width-panelMargin, height-panelMargin)
	mask := image.NewUniform(color.Alpha{A: alpha})
	draw.DrawMask(img, panel, image.NewUniform(panelColor), image.Point{}, mask, image.Point{}, draw.Over)

	label := fmt.Sprintf("alpha %d", alpha)
	drawLabel(img, label, width/2, height/2)
	return img
}

// WritePNG encodes the preview for alpha into w.
func WritePNG(w io.Writer, alpha uint8, width, height int) error {
	if err := png.Encode(w, Render(alpha, width, height)); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}

func drawCheckerboard(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if (x/checkerCell+y/checkerCell)%2 == 0 {
				img.SetRGBA(x, y, checkerLight)
			} else {
				img.SetRGBA(x, y, checkerDark)
			}
		}
	}
}

// drawLabel draws text centered at (x, y) with a one-pixel outline for
// visibility on both checker colors.
func drawLabel(img *image.RGBA, text string, x, y int) {
	// basicfont.Face7x13: ~7px advance, 13px height
	offsetX := x - len(text)*7/2
	offsetY := y + 13/2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawString(img, text, offsetX+dx, offsetY+dy, outlineColor)
		}
	}
	drawString(img, text, offsetX, offsetY, labelColor)
}

func drawString(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	d.DrawString(text)
}
