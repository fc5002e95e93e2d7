package game

import "fmt"

// Sim drives a Session without a window: each frame lasts one movement
// period at the current velocity, the same pacing the window build gets
// from ebiten's TPS. It supports deterministic seeding, scripted input and a
// structured event log.
type Sim struct {
	Session *Session
	Log     *EventLog

	cfg     Config
	seed    uint64
	verbose bool
	welcome bool
	clip    func(string) error
	frames  int
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // config, seed, verbose: applied before the session exists
	simOptState                      // body, direction, food: applied once the run has started
)

// SimOption is a builder function applied to a Sim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim)
}

// WithConfig replaces the default layout.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.cfg = cfg
	}}
}

// WithSeed sets the food RNG seed for deterministic runs.
func WithSeed(seed uint64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.seed = seed
	}}
}

// WithVerbose enables per-frame head position logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.verbose = v
	}}
}

// WithWelcome leaves the session on the welcome screen instead of starting a run.
func WithWelcome() SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.welcome = true
	}}
}

// WithClipboard captures report copies instead of using the system clipboard.
func WithClipboard(fn func(string) error) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.clip = fn
	}}
}

// WithBody replaces the body; segs[0] is the head.
func WithBody(segs ...Position) SimOption {
	return SimOption{simOptState, func(s *Sim) {
		s.Session.body = newBodyFrom(segs...)
	}}
}

// WithDirection sets the current heading.
func WithDirection(d Direction) SimOption {
	return SimOption{simOptState, func(s *Sim) {
		s.Session.dir = d
	}}
}

// WithFood places food at p.
func WithFood(p Position) SimOption {
	return SimOption{simOptState, func(s *Sim) {
		s.Session.food, s.Session.hasFood = p, true
	}}
}

// WithVelocity sets the velocity and movement timer without logging a change.
func WithVelocity(v int) SimOption {
	return SimOption{simOptState, func(s *Sim) {
		s.Session.velocity = v
		s.Session.run.TopVelocity = v
		s.Session.moveTimer.SetPeriod(movementPeriod(v))
	}}
}

// NewSim constructs a Sim in two passes: infrastructure options, then the
// session (started unless WithWelcome), then state options. It panics on an
// invalid config since that is a harness setup error.
func NewSim(opts ...SimOption) *Sim {
	s := &Sim{cfg: DefaultConfig(), seed: 1}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(s)
		}
	}
	session, err := NewSession(s.cfg, s.seed)
	if err != nil {
		panic(fmt.Sprintf("sim setup: %v", err))
	}
	s.Session = session
	s.Log = NewEventLog(s.verbose)
	session.SetLog(s.Log)
	if s.clip != nil {
		session.SetClipboard(s.clip)
	}
	if !s.welcome {
		session.startRun()
	}
	for _, o := range opts {
		if o.kind == simOptState {
			o.fn(s)
		}
	}
	return s
}

// Push queues events for the next frame.
func (s *Sim) Push(events ...Event) {
	for _, e := range events {
		s.Session.Push(e)
	}
}

// Frame runs one frame.
func (s *Sim) Frame() {
	s.Session.Frame(s.Session.FramePeriod())
	s.frames++
}

// RunFrames advances n frames, stopping early on exit.
func (s *Sim) RunFrames(n int) {
	for i := 0; i < n && s.Session.State() != StateExit; i++ {
		s.Frame()
	}
}

// RunScript advances n frames, pushing script[i] before frame i.
func (s *Sim) RunScript(script map[int][]Event, n int) {
	for i := 0; i < n && s.Session.State() != StateExit; i++ {
		s.Push(script[i]...)
		s.Frame()
	}
}

// RunUntil advances up to maxFrames, stopping early if predicate returns
// true. Returns the frame count at which the predicate was satisfied, or -1.
func (s *Sim) RunUntil(predicate func(*Sim) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		s.Frame()
		if predicate(s) {
			return s.frames
		}
	}
	return -1
}

// Driver chooses the input events for the coming frame.
type Driver func(v View) []Event

// RunDriven lets d steer until the run ends or maxFrames pass. It returns the
// number of frames played.
func (s *Sim) RunDriven(d Driver, maxFrames int) int {
	played := 0
	for played < maxFrames && s.Session.State() == StatePlaying {
		s.Push(d(s.Session.View())...)
		s.Frame()
		played++
	}
	return played
}

// Frames returns the number of frames run so far.
func (s *Sim) Frames() int {
	return s.frames
}

// SimSnapshot is a lightweight copy of the session at a frame.
type SimSnapshot struct {
	Frame    int
	State    State
	Head     Position
	Length   int
	Velocity int
	Dir      Direction
	Food     Position
	HasFood  bool
}

// Snapshot captures the current session state.
func (s *Sim) Snapshot() SimSnapshot {
	food, has := s.Session.Food()
	return SimSnapshot{
		Frame:    s.frames,
		State:    s.Session.State(),
		Head:     s.Session.Head(),
		Length:   s.Session.Length(),
		Velocity: s.Session.Velocity(),
		Dir:      s.Session.Direction(),
		Food:     food,
		HasFood:  has,
	}
}
