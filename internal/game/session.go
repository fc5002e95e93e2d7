package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// State is the top-level game phase.
type State int

const (
	StateWelcome State = iota
	StatePlaying
	StateGameOver
	StateExit
)

var stateNames = [...]string{"welcome", "playing", "game_over", "exit"}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// DeathCause records why a run ended.
type DeathCause int

const (
	DeathNone DeathCause = iota
	DeathWall
	DeathSelf
)

func (d DeathCause) String() string {
	switch d {
	case DeathWall:
		return "wall"
	case DeathSelf:
		return "self"
	}
	return "none"
}

// RunStats summarises the current (or last) run.
type RunStats struct {
	ID          string
	Frames      int
	FoodEaten   int
	TopVelocity int
	Wraps       int
	Turns       int
	Cause       DeathCause
}

// Session owns all game state and runs the Welcome/Playing/GameOver machine.
// It is not safe for concurrent use; one loop goroutine drives it.
type Session struct {
	cfg   Config
	arena Arena
	seed  uint64

	state    State
	velocity int
	dir      Direction
	body     *Body
	food     Position
	hasFood  bool

	queue     *EventQueue
	moveTimer *Timer
	foodTimer *Timer
	spawner   *Spawner

	log   *EventLog
	frame int
	run   RunStats

	// Snapped pointer cell from the current frame, shown as a marker.
	pointer    Position
	hasPointer bool

	copyText func(string) error
}

// NewSession validates cfg and returns a session on the welcome screen.
// seed drives food placement.
func NewSession(cfg Config, seed uint64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	s := &Session{
		cfg:       cfg,
		arena:     cfg.Arena(),
		seed:      seed,
		state:     StateWelcome,
		queue:     NewEventQueue(cfg.QueueCapacity),
		moveTimer: NewTimer(TimerMovement, movementPeriod(cfg.StartVelocity)),
		foodTimer: NewTimer(TimerFood, cfg.FoodPeriod),
		spawner:   NewSpawner(seed),
		log:       NewEventLog(false),
		copyText:  writeClipboard,
	}
	s.reset()
	return s, nil
}

// reset restores the initial run variables.
func (s *Session) reset() {
	s.velocity = s.cfg.StartVelocity
	s.dir = Right
	s.body = NewBody(Position{})
	s.hasFood = false
	s.hasPointer = false
	s.moveTimer.SetPeriod(movementPeriod(s.velocity))
	s.foodTimer.SetPeriod(s.cfg.FoodPeriod)
	s.run = RunStats{TopVelocity: s.velocity}
}

// Push queues an event for the next frame. A full queue drops it.
func (s *Session) Push(e Event) bool {
	if !s.queue.Push(e) {
		s.log.Add(s.frame, s.runLabel(), CatInput, KeyDropped, e.String(), 0)
		return false
	}
	return true
}

// Frame runs one frame of dt: timers, event drain, then simulation.
func (s *Session) Frame(dt time.Duration) {
	if s.state == StateExit {
		return
	}
	s.hasPointer = false

	if s.state == StatePlaying {
		s.moveTimer.Advance(dt, s.queue)
		s.foodTimer.Advance(dt, s.queue)
	}

	for {
		e, ok := s.queue.Pop()
		if !ok {
			break
		}
		s.handle(e)
		if s.state == StateExit {
			s.queue.Clear()
			return
		}
	}

	if s.state == StatePlaying {
		s.simulate()
	}
	s.frame++
}

func (s *Session) handle(e Event) {
	if e.Kind == EventQuit {
		s.setState(StateExit)
		return
	}
	switch s.state {
	case StateWelcome:
		if e.Kind == EventKeyDown && e.Key == KeyEnter {
			s.startRun()
		}
	case StatePlaying:
		s.handlePlaying(e)
	case StateGameOver:
		if e.Kind != EventKeyDown {
			return
		}
		switch e.Key {
		case KeyR:
			s.startRun()
		case KeyQ:
			s.setState(StateExit)
		case KeyC:
			s.copyReport()
		}
	}
}

func (s *Session) handlePlaying(e Event) {
	switch e.Kind {
	case EventKeyDown:
		switch e.Key {
		case KeyRight:
			s.turn(Right)
		case KeyLeft:
			s.turn(Left)
		case KeyDown:
			s.turn(Down)
		case KeyUp:
			s.turn(Up)
		case KeyW:
			s.setVelocity(s.velocity + s.cfg.VelocityStep)
		case KeyS:
			s.setVelocity(s.velocity - s.cfg.VelocityStep)
		}
	case EventTimerFired:
		switch e.Timer {
		case TimerMovement:
			s.body.Step(s.dir, s.cfg.HeadSize)
		case TimerFood:
			if !s.hasFood {
				s.food = s.spawner.Spawn(s.arena)
				s.hasFood = true
				s.log.Add(s.frame, s.runLabel(), CatFood, KeySpawn, s.food.String(), 0)
			}
		}
	case EventPointerUp:
		p := Snap(e.Pos, s.cfg.HeadSize)
		s.body.SetHeadTarget(p)
		s.pointer, s.hasPointer = p, true
		s.log.Add(s.frame, s.runLabel(), CatMove, KeyTeleport, p.String(), 0)
	}
}

// turn accepts a perpendicular direction and moves at once so the turn shows
// without waiting for the movement timer.
func (s *Session) turn(d Direction) {
	if !CanTurn(s.dir, d) {
		return
	}
	s.log.Add(s.frame, s.runLabel(), CatMove, KeyTurn, fmt.Sprintf("%s → %s", s.dir, d), 0)
	s.dir = d
	s.run.Turns++
	s.body.Step(s.dir, s.cfg.HeadSize)
}

// setVelocity clamps v to the floor and reprograms the movement timer.
func (s *Session) setVelocity(v int) {
	if v < s.cfg.MinVelocity {
		v = s.cfg.MinVelocity
	}
	if v != s.velocity {
		s.log.Add(s.frame, s.runLabel(), CatSpeed, KeyVelocity,
			fmt.Sprintf("%d → %d", s.velocity, v), float64(v))
	}
	s.velocity = v
	if v > s.run.TopVelocity {
		s.run.TopVelocity = v
	}
	s.moveTimer.SetPeriod(movementPeriod(v))
}

// simulate is the per-frame update once events are drained:
// eat, commit movement, then walls, portals and self.
func (s *Session) simulate() {
	s.run.Frames++

	if s.hasFood && s.body.Head() == s.food {
		s.body.Grow()
		s.hasFood = false
		s.run.FoodEaten++
		s.log.Add(s.frame, s.runLabel(), CatFood, KeyEat,
			fmt.Sprintf("%s len=%d", s.food, s.body.Len()), float64(s.body.Len()))
	}

	s.body.Advance()

	head, out := s.arena.ResolveWalls(s.body.Head())
	switch out {
	case OutcomeWall:
		s.die(DeathWall)
		return
	case OutcomeWrapped:
		s.log.Add(s.frame, s.runLabel(), CatMove, KeyWrap,
			fmt.Sprintf("%s → %s", s.body.Head(), head), 0)
		s.body.WrapHeadX(head.X)
		s.run.Wraps++
	}

	if s.body.HitsSelf() {
		s.die(DeathSelf)
		return
	}

	s.log.AddVerbose(s.frame, s.runLabel(), CatMove, KeyPosition, s.body.Head().String(), 0)
}

func (s *Session) die(cause DeathCause) {
	s.run.Cause = cause
	s.log.Add(s.frame, s.runLabel(), CatDeath, KeyCause,
		fmt.Sprintf("%s at %s len=%d", cause, s.body.Head(), s.body.Len()), float64(s.body.Len()))
	s.setState(StateGameOver)
}

func (s *Session) startRun() {
	s.reset()
	s.run.ID = uuid.NewString()
	s.setState(StatePlaying)
}

func (s *Session) setState(next State) {
	if next == s.state {
		return
	}
	s.log.Add(s.frame, s.runLabel(), CatState, KeyChange, fmt.Sprintf("%s → %s", s.state, next), 0)
	s.state = next
}

func (s *Session) copyReport() {
	if err := CopyReport(s, s.copyText); err != nil {
		s.log.Add(s.frame, s.runLabel(), CatInput, KeyCopyFailed, err.Error(), 0)
	}
}

// runLabel is the short run ID used in log lines.
func (s *Session) runLabel() string {
	if len(s.run.ID) < 8 {
		return "--"
	}
	return s.run.ID[:8]
}

// SetClipboard replaces the function used to copy the run report.
func (s *Session) SetClipboard(fn func(string) error) {
	s.copyText = fn
}

// SetLog replaces the event log.
func (s *Session) SetLog(l *EventLog) {
	s.log = l
}

func (s *Session) State() State           { return s.state }
func (s *Session) Velocity() int          { return s.velocity }
func (s *Session) Direction() Direction   { return s.dir }
func (s *Session) Head() Position         { return s.body.Head() }
func (s *Session) Length() int            { return s.body.Len() }
func (s *Session) Segments() []Position   { return s.body.Segments() }
func (s *Session) Food() (Position, bool) { return s.food, s.hasFood }
func (s *Session) Run() RunStats          { return s.run }
func (s *Session) Log() *EventLog         { return s.log }
func (s *Session) FrameCount() int        { return s.frame }
func (s *Session) Seed() uint64           { return s.seed }
func (s *Session) Config() Config         { return s.cfg }
func (s *Session) Arena() Arena           { return s.arena }

// MovementPeriod returns the current movement timer period.
func (s *Session) MovementPeriod() time.Duration {
	return s.moveTimer.Period()
}

// FramePeriod is the wall time of one frame at the current velocity.
func (s *Session) FramePeriod() time.Duration {
	return time.Second / time.Duration(s.velocity)
}
