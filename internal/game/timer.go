package game

import "time"

// Timer is a soft periodic timer advanced by frame time.
type Timer struct {
	ID     TimerID
	period time.Duration
	acc    time.Duration
}

// NewTimer creates a timer that first fires one period from now.
func NewTimer(id TimerID, period time.Duration) *Timer {
	return &Timer{ID: id, period: period}
}

// Period returns the current period.
func (t *Timer) Period() time.Duration {
	return t.period
}

// SetPeriod reprograms the timer. Elapsed time is discarded, so the new
// period counts from now.
func (t *Timer) SetPeriod(p time.Duration) {
	t.period = p
	t.acc = 0
}

// Advance adds dt and posts one TimerFired event per whole elapsed period.
// It returns the number of firings.
func (t *Timer) Advance(dt time.Duration, q *EventQueue) int {
	if t.period <= 0 {
		return 0
	}
	t.acc += dt
	fired := 0
	for t.acc >= t.period {
		t.acc -= t.period
		q.Push(TimerFiredEvent(t.ID))
		fired++
	}
	return fired
}
