package game

import "fmt"

// EventKind enumerates everything the session reacts to.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventPointerUp
	EventQuit
	EventTimerFired
)

// Key is a frontend-independent key code.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyS
	KeyEnter
	KeyQ
	KeyR
	KeyC
)

var keyNames = [...]string{"none", "up", "down", "left", "right", "W", "S", "enter", "Q", "R", "C"}

func (k Key) String() string {
	if k >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// TimerID names the two soft timers.
type TimerID int

const (
	TimerMovement TimerID = iota
	TimerFood
)

func (t TimerID) String() string {
	if t == TimerMovement {
		return "movement"
	}
	return "food"
}

// Event is one queued input or timer notification. Only the field matching
// Kind is meaningful.
type Event struct {
	Kind  EventKind
	Key   Key
	Pos   Position
	Timer TimerID
}

func KeyDownEvent(k Key) Event         { return Event{Kind: EventKeyDown, Key: k} }
func PointerUpEvent(p Position) Event  { return Event{Kind: EventPointerUp, Pos: p} }
func QuitEvent() Event                 { return Event{Kind: EventQuit} }
func TimerFiredEvent(id TimerID) Event { return Event{Kind: EventTimerFired, Timer: id} }

func (e Event) String() string {
	switch e.Kind {
	case EventKeyDown:
		return "key " + e.Key.String()
	case EventPointerUp:
		return "pointer " + e.Pos.String()
	case EventQuit:
		return "quit"
	case EventTimerFired:
		return "timer " + e.Timer.String()
	}
	return "unknown"
}

// EventQueue is a bounded FIFO drained once per frame.
type EventQueue struct {
	buf  []Event
	head int
	n    int
}

// NewEventQueue creates a queue holding at most capacity events.
func NewEventQueue(capacity int) *EventQueue {
	return &EventQueue{buf: make([]Event, capacity)}
}

// Push appends e. A full queue drops it and returns false.
func (q *EventQueue) Push(e Event) bool {
	if q.n == len(q.buf) {
		return false
	}
	q.buf[(q.head+q.n)%len(q.buf)] = e
	q.n++
	return true
}

// Pop removes the oldest event.
func (q *EventQueue) Pop() (Event, bool) {
	if q.n == 0 {
		return Event{}, false
	}
	e := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return e, true
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return q.n
}

// Clear drops every pending event.
func (q *EventQueue) Clear() {
	q.head, q.n = 0, 0
}
