package main

import (
	"image/color"

	"github.com/Garsondee/Portal-Snake/internal/game"
	"github.com/gdamore/tcell/v2"
)

// cellColumns is how many terminal columns one grid cell takes, so cells
// look roughly square.
const cellColumns = 2

// termSurface draws window-pixel coordinates onto a terminal grid. The left
// margin and portal land in grid column 0, the area in columns 1..cols and
// the right portal in column cols+1. Rows work the same way.
type termSurface struct {
	screen tcell.Screen
	cell   int
	margin int
}

func newTermSurface(screen tcell.Screen, cfg game.Config) *termSurface {
	return &termSurface{screen: screen, cell: cfg.HeadSize, margin: cfg.Margin}
}

// gridOf maps a window pixel coordinate to a grid index.
func (s *termSurface) gridOf(px int) int {
	return (px - s.margin + s.cell) / s.cell
}

// pixelOf is the inverse of gridOf for pointer input: the returned pixel
// snaps back to the grid index it came from.
func (s *termSurface) pixelOf(grid int) int {
	return (grid-1)*s.cell + s.margin
}

func (s *termSurface) Clear(c color.Color) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(tcell.FromImageColor(c)))
}

func (s *termSurface) DrawRect(at game.Position, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(tcell.FromImageColor(c))
	x0, x1 := s.gridOf(at.X), s.gridOf(at.X+w-1)
	y0, y1 := s.gridOf(at.Y), s.gridOf(at.Y+h-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			for i := 0; i < cellColumns; i++ {
				s.screen.SetContent(x*cellColumns+i, y, ' ', nil, style)
			}
		}
	}
}

// DrawText ignores size: every glyph is one terminal column.
func (s *termSurface) DrawText(str string, at game.Position, _ int, c color.Color) {
	style := tcell.StyleDefault.
		Foreground(tcell.FromImageColor(c)).
		Background(tcell.ColorBlack)
	col, row := s.gridOf(at.X)*cellColumns, s.gridOf(at.Y)
	for _, r := range str {
		s.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func (s *termSurface) Present() {
	s.screen.Show()
}

// pointerAt converts a terminal mouse position to window pixels.
func (s *termSurface) pointerAt(col, row int) game.Position {
	return game.Position{X: s.pixelOf(col / cellColumns), Y: s.pixelOf(row)}
}

// gridSize is the terminal size needed to show the whole window.
func gridSize(cfg game.Config) (cols, rows int) {
	s := &termSurface{cell: cfg.HeadSize, margin: cfg.Margin}
	return (s.gridOf(cfg.ScreenWidth-1) + 1) * cellColumns, s.gridOf(cfg.ScreenHeight-1) + 1
}
