package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// ebitenSurface draws onto the screen image handed to Game.Draw.
type ebitenSurface struct {
	target *ebiten.Image
	face   text.Face
}

func newEbitenSurface() *ebitenSurface {
	return &ebitenSurface{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (s *ebitenSurface) Clear(c color.Color) {
	s.target.Fill(c)
}

func (s *ebitenSurface) DrawRect(at Position, w, h int, c color.Color) {
	vector.FillRect(s.target, float32(at.X), float32(at.Y), float32(w), float32(h), c, false)
}

func (s *ebitenSurface) DrawText(str string, at Position, size int, c color.Color) {
	op := &text.DrawOptions{}
	scale := textScale(size)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.target, str, s.face, op)
}

// Present is a no-op: ebiten shows the screen once Draw returns.
func (s *ebitenSurface) Present() {}
