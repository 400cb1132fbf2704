// Package easing maps linear progress onto eased progress.
//
// Every curve takes t in [0, 1]. Inputs are not clamped: values outside the
// range, or NaN, are passed straight through the formula and the caller is
// responsible for keeping t in range. Elastic and back curves overshoot.
package easing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fogleman/ease"
	gease "github.com/tanema/gween/ease"
)

// Func maps normalised progress to eased progress.
type Func func(t float64) float64

// ErrUnknownCurve is returned by Lookup for names not in the table.
var ErrUnknownCurve = errors.New("unknown easing curve")

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// OutCubic starts fast and settles into the target: 1 - (1-t)^3.
func OutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// FromTween adapts a gween tween function to a unit curve.
func FromTween(fn gease.TweenFunc) Func {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

var table = map[string]Func{
	"linear":     Linear,
	"outCubic":   OutCubic,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"inOutCubic": ease.InOutCubic,
	"inQuart":    ease.InQuart,
	"outQuart":   ease.OutQuart,
	"inOutQuart": ease.InOutQuart,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"inExpo":     ease.InExpo,
	"outExpo":    ease.OutExpo,
	"inOutExpo":  ease.InOutExpo,
	"inCirc":     ease.InCirc,
	"outCirc":    ease.OutCirc,
	"inOutCirc":  ease.InOutCirc,

	"inElastic":    FromTween(gease.InElastic),
	"outElastic":   FromTween(gease.OutElastic),
	"inOutElastic": FromTween(gease.InOutElastic),
	"inBack":       FromTween(gease.InBack),
	"outBack":      FromTween(gease.OutBack),
	"inOutBack":    FromTween(gease.InOutBack),
	"inBounce":     FromTween(gease.InBounce),
	"outBounce":    FromTween(gease.OutBounce),
	"inOutBounce":  FromTween(gease.InOutBounce),
}

// Lookup resolves a curve by name. The empty name is Linear.
func Lookup(name string) (Func, error) {
	if name == "" {
		return Linear, nil
	}

	f, ok := table[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return f, nil
}

// Names lists every curve Lookup knows, sorted.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
