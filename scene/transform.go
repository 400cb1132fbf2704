package scene

import (
	"time"

	"github.com/matt-g-everett/scenetx/animation"
	"github.com/matt-g-everett/scenetx/easing"
)

// Vector3 is a position or Euler rotation.
type Vector3 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// Lerp interpolates from v towards to.
func (v Vector3) Lerp(to Vector3, t float64) Vector3 {
	return Vector3{
		X: lerp(v.X, to.X, t),
		Y: lerp(v.Y, to.Y, t),
		Z: lerp(v.Z, to.Z, t),
	}
}

// PartialVector is a Vector3 whose fields may be left out of a scene file.
type PartialVector struct {
	X *float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y *float64 `yaml:"y,omitempty" json:"y,omitempty"`
	Z *float64 `yaml:"z,omitempty" json:"z,omitempty"`
}

// Or fills missing fields from fallback.
func (p PartialVector) Or(fallback Vector3) Vector3 {
	return Vector3{
		X: orValue(p.X, fallback.X),
		Y: orValue(p.Y, fallback.Y),
		Z: orValue(p.Z, fallback.Z),
	}
}

// PartialTransform describes a transform where any field may be missing.
type PartialTransform struct {
	Position PartialVector `yaml:"position,omitempty" json:"position"`
	Rotation PartialVector `yaml:"rotation,omitempty" json:"rotation"`
	Scale    *float64      `yaml:"scale,omitempty" json:"scale,omitempty"`
}

// Apply writes the fields that are present onto obj.
func (p PartialTransform) Apply(obj *Object) {
	obj.Position = p.Position.Or(obj.Position)
	obj.Rotation = p.Rotation.Or(obj.Rotation)
	obj.Scale = orValue(p.Scale, obj.Scale)
}

// Target resolves the transform an appear animation ends on. Missing
// position and rotation fields keep the object's current value, a missing
// scale ends at 1.
func (p PartialTransform) Target(obj *Object) (position, rotation Vector3, scale float64) {
	return p.Position.Or(obj.Position), p.Rotation.Or(obj.Rotation), orValue(p.Scale, 1)
}

// Default timing of appear animations.
const (
	AppearDuration = 1500 * time.Millisecond
	AppearDelay    = 500 * time.Millisecond
)

// NewTransformAnimation tweens obj from its current transform to target.
func NewTransformAnimation(obj *Object, target PartialTransform, opts animation.Options) *animation.Animation {
	fromPosition, fromRotation, fromScale := obj.Position, obj.Rotation, obj.Scale
	toPosition, toRotation, toScale := target.Target(obj)

	if opts.Easing == nil {
		opts.Easing = easing.OutCubic
	}

	return animation.New(func(f animation.Frame) error {
		obj.Position = fromPosition.Lerp(toPosition, f.Progress)
		obj.Rotation = fromRotation.Lerp(toRotation, f.Progress)
		obj.Scale = lerp(fromScale, toScale, f.Progress)
		return nil
	}, opts)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func orValue(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
