package scene

import (
	"math"
	"math/rand"
	"time"

	"github.com/matt-g-everett/scenetx/animation"
	"github.com/matt-g-everett/scenetx/util"
)

// BounceDelay is how long a bounce waits after the manager starts, long
// enough for the default appear animation to settle.
const BounceDelay = 2000 * time.Millisecond

// BounceSpec asks for an infinite vertical oscillation. Missing fields are
// randomised per object.
type BounceSpec struct {
	Amplitude *float64 `yaml:"amplitude,omitempty" json:"amplitude,omitempty"`
	PeriodMs  *float64 `yaml:"periodMs,omitempty" json:"periodMs,omitempty"`
	DelayMs   *int     `yaml:"delayMs,omitempty" json:"delayMs,omitempty"`
}

// NewBounceAnimation oscillates obj.Position.Y. Each tick adds only the
// change in the sine since the previous tick, so the bounce rides on top of
// anything else writing Y, such as an appear tween still in flight. A nil
// spec uses random amplitude and period.
func NewBounceAnimation(obj *Object, spec *BounceSpec, rng *rand.Rand) *animation.Animation {
	if spec == nil {
		spec = &BounceSpec{}
	}

	amplitude := orValue(spec.Amplitude, util.RandomRange(rng, 0.3, 0.3+1/1.5))
	period := orValue(spec.PeriodMs, util.RandomRange(rng, 700, 1000))
	delay := BounceDelay
	if spec.DelayMs != nil {
		delay = time.Duration(*spec.DelayMs) * time.Millisecond
	}

	var prev float64
	return animation.New(func(f animation.Frame) error {
		ms := float64(f.Elapsed()-delay) / float64(time.Millisecond)
		offset := amplitude * math.Sin(ms/period)
		obj.Position.Y += offset - prev
		prev = offset
		return nil
	}, animation.Options{Duration: animation.Infinite, Delay: delay})
}
