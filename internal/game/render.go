package game

import (
	"fmt"
	"image/color"
)

// View is a read-only copy of one frame, enough to draw it or steer from it.
type View struct {
	State      State
	Config     Config
	Arena      Arena
	Segments   []Position
	Food       Position
	HasFood    bool
	Pointer    Position
	HasPointer bool
	Dir        Direction
	Velocity   int
	Cause      DeathCause
}

// View snapshots the session for drawing.
func (s *Session) View() View {
	return View{
		State:      s.state,
		Config:     s.cfg,
		Arena:      s.arena,
		Segments:   s.body.Segments(),
		Food:       s.food,
		HasFood:    s.hasFood,
		Pointer:    s.pointer,
		HasPointer: s.hasPointer,
		Dir:        s.dir,
		Velocity:   s.velocity,
		Cause:      s.run.Cause,
	}
}

// Render composes one frame onto surf.
func Render(surf Surface, v View) {
	surf.Clear(colorBlack)
	switch v.State {
	case StateWelcome:
		drawWelcome(surf, v)
	case StatePlaying:
		drawBoard(surf, v)
	case StateGameOver:
		drawBoard(surf, v)
		drawRestart(surf, v)
	}
	surf.Present()
}

func drawBoard(surf Surface, v View) {
	cfg, a := v.Config, v.Arena
	off := Position{X: cfg.Margin, Y: cfg.Margin}

	surf.DrawRect(off, a.Width, a.Height, colorWhite)

	// Portals sit in the margin beside the open band.
	py := cfg.ScreenHeight/2 - a.PortalHeight/2 + cfg.Margin
	surf.DrawRect(Position{X: cfg.ScreenWidth - cfg.PortalWidth, Y: py}, cfg.PortalWidth, a.PortalHeight, colorBlue)
	surf.DrawRect(Position{X: 0, Y: py}, cfg.PortalWidth, a.PortalHeight, colorBlue)

	cell := a.Cell
	drawCell := func(p Position, c color.Color) {
		if !a.Contains(p) {
			return
		}
		surf.DrawRect(Position{X: off.X + p.X, Y: off.Y + p.Y}, cell, cell, c)
	}
	if v.HasPointer {
		drawCell(v.Pointer, colorBlue)
	}
	for _, seg := range v.Segments {
		drawCell(seg, colorGreen)
	}
	if v.HasFood {
		drawCell(v.Food, colorRed)
	}
}

func drawWelcome(surf Surface, v View) {
	title := "~~~ Snake Game ~~~"
	surf.DrawText(title, Position{X: v.Config.ScreenWidth/2 - textWidth(title, 48)/2, Y: 50}, 48, colorWhite)
	surf.DrawText("Welcome! Keys are:", Position{X: 50, Y: 100}, 30, colorWhite)
	surf.DrawText("Keyboard arrows for moving, W to accelerate and S to brake", Position{X: 50, Y: 150}, 30, colorWhite)
	surf.DrawText("Press Enter to start.", Position{X: 50, Y: 200}, 30, colorWhite)
}

func drawRestart(surf Surface, v View) {
	surf.DrawText("Press Q to exit the game.", Position{X: 50, Y: 50}, 48, colorWhite)
	surf.DrawText("Press R to restart it.", Position{X: 50, Y: 100}, 48, colorWhite)
	summary := fmt.Sprintf("Length %d, crashed into %s. Press C to copy the run report.", len(v.Segments), causeText(v.Cause))
	surf.DrawText(summary, Position{X: 50, Y: 150}, 20, colorWhite)
}

func causeText(c DeathCause) string {
	if c == DeathSelf {
		return "itself"
	}
	return "the wall"
}
