package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenKeys maps the keys the game listens to.
var ebitenKeys = map[ebiten.Key]Key{
	ebiten.KeyArrowUp:     KeyUp,
	ebiten.KeyArrowDown:   KeyDown,
	ebiten.KeyArrowLeft:   KeyLeft,
	ebiten.KeyArrowRight:  KeyRight,
	ebiten.KeyW:           KeyW,
	ebiten.KeyS:           KeyS,
	ebiten.KeyEnter:       KeyEnter,
	ebiten.KeyNumpadEnter: KeyEnter,
	ebiten.KeyQ:           KeyQ,
	ebiten.KeyR:           KeyR,
	ebiten.KeyC:           KeyC,
}

var pointerButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Game adapts a Session to ebiten. Ticks per second follow the velocity, so
// one Update is one frame of the session.
type Game struct {
	session *Session
	surface *ebitenSurface
	tps     int
	keys    []ebiten.Key
}

// New builds a game with the default 800x800 layout and a time-based seed.
func New() (*Game, error) {
	s, err := NewSession(DefaultConfig(), uint64(time.Now().UnixNano()))
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return NewWithSession(s), nil
}

// NewWithSession wraps an existing session.
func NewWithSession(s *Session) *Game {
	g := &Game{
		session: s,
		surface: newEbitenSurface(),
		tps:     s.Velocity(),
	}
	ebiten.SetTPS(g.tps)
	return g
}

// Session returns the wrapped session.
func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) Update() error {
	g.pollInput()

	g.session.Frame(time.Second / time.Duration(g.tps))
	if g.session.State() == StateExit {
		return ebiten.Termination
	}

	if v := g.session.Velocity(); v != g.tps {
		g.tps = v
		ebiten.SetTPS(v)
	}
	return nil
}

// pollInput turns this tick's window input into session events.
func (g *Game) pollInput() {
	if ebiten.IsWindowBeingClosed() {
		g.session.Push(QuitEvent())
		return
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := ebitenKeys[k]; ok {
			g.session.Push(KeyDownEvent(key))
		}
	}

	for _, b := range pointerButtons {
		if inpututil.IsMouseButtonJustReleased(b) {
			x, y := ebiten.CursorPosition()
			g.session.Push(PointerUpEvent(Position{X: x, Y: y}))
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.target = screen
	Render(g.surface, g.session.View())
}

func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.session.Config()
	return cfg.ScreenWidth, cfg.ScreenHeight
}
