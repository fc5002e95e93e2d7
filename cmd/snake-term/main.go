// Command snake-term plays the game in a terminal.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Garsondee/Portal-Snake/internal/game"
	"github.com/gdamore/tcell/v2"
)

var termKeys = map[tcell.Key]game.Key{
	tcell.KeyUp:    game.KeyUp,
	tcell.KeyDown:  game.KeyDown,
	tcell.KeyLeft:  game.KeyLeft,
	tcell.KeyRight: game.KeyRight,
	tcell.KeyEnter: game.KeyEnter,
}

var termRunes = map[rune]game.Key{
	'w': game.KeyW, 'W': game.KeyW,
	's': game.KeyS, 'S': game.KeyS,
	'q': game.KeyQ, 'Q': game.KeyQ,
	'r': game.KeyR, 'R': game.KeyR,
	'c': game.KeyC, 'C': game.KeyC,
}

// translator turns tcell events into session events. A pointer-up is sent
// when the held mouse buttons are all released.
type translator struct {
	surf    *termSurface
	buttons tcell.ButtonMask
}

func (t *translator) translate(ev tcell.Event) (game.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
			return game.QuitEvent(), true
		}
		if ev.Key() == tcell.KeyRune {
			if k, ok := termRunes[ev.Rune()]; ok {
				return game.KeyDownEvent(k), true
			}
			return game.Event{}, false
		}
		if k, ok := termKeys[ev.Key()]; ok {
			return game.KeyDownEvent(k), true
		}
	case *tcell.EventMouse:
		held := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
		released := t.buttons != 0 && held == 0
		t.buttons = held
		if released {
			col, row := ev.Position()
			return game.PointerUpEvent(t.surf.pointerAt(col, row)), true
		}
	}
	return game.Event{}, false
}

func run(screen tcell.Screen, s *game.Session) {
	surf := newTermSurface(screen, s.Config())
	tr := &translator{surf: surf}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	period := s.FramePeriod()
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	game.Render(surf, s.View())

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if e, ok := tr.translate(ev); ok {
				s.Push(e)
			}
		case <-ticker.C:
			s.Frame(period)
			if s.State() == game.StateExit {
				return
			}
			game.Render(surf, s.View())
			if p := s.FramePeriod(); p != period {
				period = p
				ticker.Reset(period)
			}
		}
	}
}

func main() {
	s, err := game.NewSession(game.DefaultConfig(), uint64(time.Now().UnixNano()))
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()

	cols, rows := gridSize(s.Config())
	if w, h := screen.Size(); w < cols || h < rows {
		screen.Fini()
		log.Fatalf("terminal is %dx%d, need at least %dx%d", w, h, cols, rows)
	}

	run(screen, s)
	screen.Fini()
	fmt.Print(game.RunReport(s))
}
