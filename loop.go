package cardtable

import (
	"errors"
	"fmt"
	"time"
)

// Clock schedules a single callback for the next display frame. The
// timestamp is in milliseconds and increases monotonically.
type Clock interface {
	RequestNextFrame(fn func(timestamp float64))
}

// SurfaceSource hands the loop its drawing surface for the current frame.
type SurfaceSource interface {
	Surface() (Surface, error)
}

// Loop advances and redraws every registered object once per clock tick.
// Each tick clears the surface, then calls Update(dt) immediately followed
// by Draw for each object in registration order. The loop re-arms the clock
// after every tick and stops only if the surface becomes unavailable.
type Loop struct {
	clock    Clock
	surfaces SurfaceSource
	registry *Registry
	log      *debugLogger

	// OnFatal, if set, is called once with the error that stopped the loop.
	OnFatal func(err error)

	lastTimestamp float64
	started       bool
	hasLast       bool
	stopped       bool
	frames        uint64
	err           error
}

// NewLoop creates a loop that draws registry onto surfaces, paced by clock.
func NewLoop(clock Clock, surfaces SurfaceSource, registry *Registry) *Loop {
	return &Loop{clock: clock, surfaces: surfaces, registry: registry}
}

// Start arms the clock for the first frame. Calling it again is a no-op.
func (l *Loop) Start() {
	if l.started {
		return
	}
	l.started = true
	l.clock.RequestNextFrame(l.tick)
}

// Err returns the error that stopped the loop, or nil while it runs.
func (l *Loop) Err() error {
	return l.err
}

// Running reports whether the loop has started and not stopped.
func (l *Loop) Running() bool {
	return l.started && !l.stopped
}

// Frames returns the number of completed ticks.
func (l *Loop) Frames() uint64 {
	return l.frames
}

func (l *Loop) tick(timestamp float64) {
	if l.stopped {
		return
	}
	surface, err := l.surfaces.Surface()
	switch {
	case err != nil && !errors.Is(err, ErrSurfaceUnavailable):
		err = fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	case err == nil && surface == nil:
		err = ErrSurfaceUnavailable
	}
	if err != nil {
		l.fail(fmt.Errorf("frame %d: %w", l.frames, err))
		return
	}

	var dt float64
	if l.hasLast {
		dt = timestamp - l.lastTimestamp
	}
	l.lastTimestamp = timestamp
	l.hasLast = true

	surface.Clear(surface.Bounds())
	for _, o := range l.registry.Objects() {
		o.Update(dt)
		o.Draw(surface)
	}
	l.frames++

	l.clock.RequestNextFrame(l.tick)
}

func (l *Loop) fail(err error) {
	l.stopped = true
	l.err = err
	l.log.errorf("render loop stopped: %v", err)
	if l.OnFatal != nil {
		l.OnFatal(err)
	}
}

// --- Ebitengine clock ---

// EbitenClock adapts Ebitengine's Draw cadence to the Clock interface. The
// owning ebiten.Game calls Fire from Draw; the pending callback runs with
// the milliseconds elapsed since the clock was created.
type EbitenClock struct {
	epoch   time.Time
	now     func() time.Time
	pending func(float64)
}

// NewEbitenClock creates a clock whose timestamps count from now.
func NewEbitenClock() *EbitenClock {
	return &EbitenClock{epoch: time.Now(), now: time.Now}
}

// RequestNextFrame stores fn to run on the next Fire. A later request
// replaces an earlier one that has not fired.
func (c *EbitenClock) RequestNextFrame(fn func(timestamp float64)) {
	c.pending = fn
}

// Fire runs the pending callback, if any. It reports whether one ran.
func (c *EbitenClock) Fire() bool {
	fn := c.pending
	if fn == nil {
		return false
	}
	c.pending = nil
	fn(float64(c.now().Sub(c.epoch)) / float64(time.Millisecond))
	return true
}
