package animation

import (
	"fmt"
	"time"

	"github.com/matt-g-everett/scenetx/easing"
)

// Infinite is the Duration of an animation that never finishes.
const Infinite time.Duration = -1

// Frame is what an update callback sees on each tick.
type Frame struct {
	// Progress is the eased progress of a finite animation. Always 0 for
	// infinite animations.
	Progress    float64
	Infinite    bool
	StartTime   time.Time
	CurrentTime time.Time
}

// Elapsed is the time since the manager started.
func (f Frame) Elapsed() time.Duration {
	return f.CurrentTime.Sub(f.StartTime)
}

// UpdateFunc applies one tick of an animation to caller-owned state. It runs
// on the goroutine calling Manager.Tick.
type UpdateFunc func(f Frame) error

// Options configures an Animation. Zero values give a linear animation
// with no delay; a zero Duration finishes on its first active tick.
type Options struct {
	Duration time.Duration
	Delay    time.Duration
	Easing   easing.Func
}

// An Animation is a timed task driven by a Manager.
type Animation struct {
	update   UpdateFunc
	duration time.Duration
	delay    time.Duration
	easing   easing.Func
	finished bool
}

// New creates an instance of an Animation.
func New(update UpdateFunc, opts Options) *Animation {
	a := new(Animation)
	a.update = update
	a.duration = opts.Duration
	a.delay = opts.Delay
	a.easing = opts.Easing
	if a.easing == nil {
		a.easing = easing.Linear
	}

	return a
}

// Infinite reports whether the animation runs until its manager stops.
func (a *Animation) Infinite() bool {
	return a.duration < 0
}

// Finished reports whether a finite animation has reached its end.
func (a *Animation) Finished() bool {
	return a.finished
}

// Tick advances the animation to now, given the manager's start time.
// Panics from the update callback are returned as errors.
func (a *Animation) Tick(start, now time.Time) (finished bool, err error) {
	if a.finished {
		return true, nil
	}

	activeAt := start.Add(a.delay)
	if now.Before(activeAt) {
		return false, nil
	}

	f := Frame{StartTime: start, CurrentTime: now}
	progress := 1.0
	if a.Infinite() {
		f.Infinite = true
	} else {
		if a.duration > 0 {
			progress = clamp(float64(now.Sub(activeAt))/float64(a.duration), 0, 1)
		}
		f.Progress = a.easing(progress)
	}

	if err := a.call(f); err != nil {
		return false, err
	}

	if !a.Infinite() && progress >= 1 {
		a.finished = true
	}
	return a.finished, nil
}

func (a *Animation) call(f Frame) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("animation update panicked: %v", r)
		}
	}()
	return a.update(f)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
