package touch

import (
	"github.com/alexisbeaulieu97/elevate/internal/logger"
)

// Participant is what a touch dispatcher delivers events to. Events for one
// touch arrive as OnTouchDown, any number of OnTouchMoved, then exactly one
// of OnTouchUp or OnTouchCancelled.
type Participant interface {
	// OnTouchDown reports whether the participant wants the rest of the touch.
	OnTouchDown(p Point) bool
	OnTouchMoved(p Point) bool
	OnTouchUp(p Point)
	// OnTouchCancelled is called when a competing gesture (a scroll) claimed
	// the touch.
	OnTouchCancelled()
}

// Registration is what a participant asks of the dispatcher.
type Registration struct {
	// DelaysTouches asks the dispatcher to hold the touch back until it is
	// sure no scroll will claim it.
	DelaysTouches bool
	// Exclusive forbids the dispatcher from handing the touch to a scroll.
	Exclusive bool
}

// AdapterOptions configures an Adapter.
type AdapterOptions struct {
	Threshold        float64
	OnPressedChanged func(pressed bool)
	OnTap            func(Release)
	OnSuppressed     func(Release)
	// OnCancelled runs after a session ends without an outcome.
	OnCancelled func()
	Logger      *logger.Logger
}

// Adapter bridges a dispatcher to a Tracker. It registers as an immediate,
// non-exclusive participant so an enclosing scroll can always win.
type Adapter struct {
	tracker     *Tracker
	onCancelled func()
	log         *logger.Logger
}

var _ Participant = (*Adapter)(nil)

// NewAdapter builds an adapter with its own tracker.
func NewAdapter(opts AdapterOptions) *Adapter {
	a := &Adapter{log: opts.Logger, onCancelled: opts.OnCancelled}
	a.tracker = NewTracker(opts.Threshold, Handlers{
		OnPressedChanged: opts.OnPressedChanged,
		OnTap:            opts.OnTap,
		OnSuppressed:     opts.OnSuppressed,
		OnViolation:      a.violation,
	})
	return a
}

// Registration returns the options the adapter requests from a dispatcher.
func (a *Adapter) Registration() Registration {
	return Registration{DelaysTouches: false, Exclusive: false}
}

// Session exposes the tracker's current session.
func (a *Adapter) Session() Session {
	return a.tracker.Session()
}

// Threshold reports the tracker's tap threshold.
func (a *Adapter) Threshold() float64 {
	return a.tracker.Threshold()
}

// OnTouchDown starts a session. A session still in flight is cancelled first
// so that two sessions never interleave.
func (a *Adapter) OnTouchDown(p Point) bool {
	if a.tracker.State() == StateTracking {
		a.log.Debug("touch down during active session; cancelling previous session")
		a.cancel()
	}
	return a.tracker.Begin(p)
}

// OnTouchMoved forwards movement. Tracking always continues.
func (a *Adapter) OnTouchMoved(p Point) bool {
	a.tracker.Continue(p)
	return true
}

// OnTouchUp ends the session at p.
func (a *Adapter) OnTouchUp(p Point) {
	a.tracker.End(&p)
}

// OnTouchCancelled ends the session without a tap outcome.
func (a *Adapter) OnTouchCancelled() {
	a.cancel()
}

func (a *Adapter) cancel() {
	if a.tracker.End(nil) == OutcomeCancelled && a.onCancelled != nil {
		a.onCancelled()
	}
}

func (a *Adapter) violation(v Violation) {
	a.log.WithFields(map[string]any{"op": v.Op, "state": v.State.String()}).Warn("touch event out of order")
}
