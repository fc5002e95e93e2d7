package game

import "image/color"

// Surface is a 2D draw target in window pixels. It only receives draw calls;
// game code never reads back from it.
type Surface interface {
	Clear(c color.Color)
	DrawRect(at Position, w, h int, c color.Color)
	DrawText(s string, at Position, size int, c color.Color)
	Present()
}

var (
	colorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBlack = color.RGBA{A: 255}
	colorGreen = color.RGBA{R: 50, G: 200, B: 50, A: 255}
	colorRed   = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	colorBlue  = color.RGBA{R: 50, G: 50, B: 200, A: 255}
)

// Text sizes are point sizes; the 7x13 bitmap face is drawn at 1x for
// fontUnit and scaled linearly from there.
const (
	glyphAdvance = 7
	fontUnit     = 20
)

// textScale is the bitmap face scale for a text size.
func textScale(size int) float64 {
	return float64(size) / fontUnit
}

// textWidth estimates the pixel width of s at the given size.
func textWidth(s string, size int) int {
	return len(s) * glyphAdvance * size / fontUnit
}
