// Package touch decides whether a single-pointer gesture on a control is a tap.
//
// A Tracker owns the lifecycle of one touch session: it records where the
// pointer went down, reports pressed feedback, and at release compares the
// displacement against a threshold. Every handler runs synchronously inside
// the call that triggered it; nothing is queued or deferred.
package touch

import (
	"fmt"
	"math"
)

// DefaultThreshold is the maximum release displacement, in distance units,
// that still counts as a tap.
const DefaultThreshold = 20.0

// Point is a position in the control's local coordinate space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	d := p.Sub(q)
	return math.Hypot(d.X, d.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// State is the lifecycle state of a touch session.
type State uint8

const (
	// StateIdle means no gesture is in progress.
	StateIdle State = iota
	// StateTracking means a pointer is down on the control.
	StateTracking
	// StateCancelled is reported while cancellation feedback is delivered.
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTracking:
		return "tracking"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Outcome is the terminal decision of a session.
type Outcome uint8

const (
	// OutcomeNone is returned when End was called without an active session.
	OutcomeNone Outcome = iota
	// OutcomeFired means the release was within threshold.
	OutcomeFired
	// OutcomeSuppressed means the release was treated as a drag.
	OutcomeSuppressed
	// OutcomeCancelled means the host claimed the gesture.
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeFired:
		return "fired"
	case OutcomeSuppressed:
		return "suppressed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// Session is a snapshot of the tracker's in-flight touch.
type Session struct {
	// Start is only meaningful when State != StateIdle.
	Start     Point
	State     State
	Threshold float64
}

// Release describes a completed press-release pair.
type Release struct {
	Start    Point
	End      Point
	Distance float64
}

// Violation reports an out-of-order call. It is always a caller defect.
type Violation struct {
	Op    string
	State State
}

func (v Violation) Error() string {
	return fmt.Sprintf("touch: %s while %s", v.Op, v.State)
}

// Handlers receive the tracker's signals. Nil handlers are skipped.
type Handlers struct {
	OnPressedChanged func(pressed bool)
	OnTap            func(Release)
	OnSuppressed     func(Release)
	OnViolation      func(Violation)
}

// Tracker is the per-control touch state machine. The zero value is not
// usable; create one with NewTracker. A Tracker is confined to the goroutine
// delivering input events.
type Tracker struct {
	threshold float64
	handlers  Handlers

	state State
	start Point
}

// NewTracker returns an idle tracker. A threshold <= 0 selects
// DefaultThreshold.
func NewTracker(threshold float64, h Handlers) *Tracker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Tracker{threshold: threshold, handlers: h}
}

// Threshold reports the configured tap threshold.
func (t *Tracker) Threshold() float64 {
	return t.threshold
}

// State reports the current session state.
func (t *Tracker) State() State {
	return t.state
}

// Session returns a snapshot of the current session.
func (t *Tracker) Session() Session {
	s := Session{State: t.state, Threshold: t.threshold}
	if t.state != StateIdle {
		s.Start = t.start
	}
	return s
}

// Begin starts a session at p and reports pressed feedback before
// returning. It always asks the caller to keep tracking.
func (t *Tracker) Begin(p Point) bool {
	if t.state != StateIdle {
		t.violate("begin")
		return true
	}
	t.state = StateTracking
	t.start = p
	t.pressed(true)
	return true
}

// Continue relays movement. No decision is made here; cancellation is the
// host's call.
func (t *Tracker) Continue(p Point) bool {
	if t.state != StateTracking {
		t.violate("continue")
		return false
	}
	return true
}

// End terminates the session. A nil position means the host cancelled the
// gesture: only the pressed(false) feedback is reported.
func (t *Tracker) End(p *Point) Outcome {
	if t.state != StateTracking {
		t.violate("end")
		return OutcomeNone
	}
	start := t.start

	if p == nil {
		t.state = StateCancelled
		t.pressed(false)
		t.reset()
		return OutcomeCancelled
	}

	r := Release{Start: start, End: *p, Distance: start.Dist(*p)}
	t.reset()
	t.pressed(false)
	if r.Distance <= t.threshold {
		if h := t.handlers.OnTap; h != nil {
			h(r)
		}
		return OutcomeFired
	}
	if h := t.handlers.OnSuppressed; h != nil {
		h(r)
	}
	return OutcomeSuppressed
}

// Cancel is End(nil).
func (t *Tracker) Cancel() Outcome {
	return t.End(nil)
}

func (t *Tracker) reset() {
	t.state = StateIdle
	t.start = Point{}
}

func (t *Tracker) pressed(v bool) {
	if h := t.handlers.OnPressedChanged; h != nil {
		h(v)
	}
}

func (t *Tracker) violate(op string) {
	if h := t.handlers.OnViolation; h != nil {
		h(Violation{Op: op, State: t.state})
	}
}
