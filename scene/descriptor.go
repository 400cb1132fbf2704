package scene

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matt-g-everett/scenetx/animation"
	"github.com/matt-g-everett/scenetx/easing"
)

// Kind tags what a renderer has to build for a Descriptor.
type Kind int

const (
	// ExtrudedShape is a vector-art outline extruded along z.
	ExtrudedShape Kind = iota + 1
	// StaticMesh is a prebuilt model loaded by name.
	StaticMesh
	// ProceduralObject is assembled from primitive Parts.
	ProceduralObject
)

var kindNames = map[Kind]string{
	ExtrudedShape:    "extruded",
	StaticMesh:       "mesh",
	ProceduralObject: "procedural",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind reverses Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: kind %q", ErrInvalidDescriptor, s)
}

// UnmarshalYAML reads a kind from its name.
func (k *Kind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML writes a kind as its name.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// MarshalText writes a kind as its name for JSON manifests.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ErrInvalidDescriptor is wrapped by Validate failures.
var ErrInvalidDescriptor = errors.New("invalid scene descriptor")

// ExtrudeSpec configures extrusion of a vector shape.
type ExtrudeSpec struct {
	Depth          float64 `yaml:"depth" json:"depth"`
	BevelThickness float64 `yaml:"bevelThickness" json:"bevelThickness"`
	BevelSize      float64 `yaml:"bevelSize" json:"bevelSize"`
}

// Part is one primitive of a procedural object. Params are geometry
// specific, in the order the renderer's constructor takes them.
type Part struct {
	Name     string        `yaml:"name" json:"name"`
	Geometry string        `yaml:"geometry" json:"geometry"`
	Params   []float64     `yaml:"params" json:"params"`
	Material *MaterialSpec `yaml:"material,omitempty" json:"material,omitempty"`
	Position PartialVector `yaml:"position,omitempty" json:"position"`
	Rotation PartialVector `yaml:"rotation,omitempty" json:"rotation"`
}

// AppearSpec asks for a one-shot tween to Target.
type AppearSpec struct {
	Target     PartialTransform `yaml:"target" json:"target"`
	DurationMs *int             `yaml:"durationMs,omitempty" json:"durationMs,omitempty"`
	DelayMs    *int             `yaml:"delayMs,omitempty" json:"delayMs,omitempty"`
	Easing     string           `yaml:"easing,omitempty" json:"easing,omitempty"`
}

// Options resolves timing and easing, falling back to the appear defaults.
func (a *AppearSpec) Options() (animation.Options, error) {
	opts := animation.Options{Duration: AppearDuration, Delay: AppearDelay, Easing: easing.OutCubic}
	if a.DurationMs != nil {
		opts.Duration = time.Duration(*a.DurationMs) * time.Millisecond
	}
	if a.DelayMs != nil {
		opts.Delay = time.Duration(*a.DelayMs) * time.Millisecond
	}
	if a.Easing != "" {
		f, err := easing.Lookup(a.Easing)
		if err != nil {
			return opts, err
		}
		opts.Easing = f
	}
	return opts, nil
}

// Descriptor declares one scene object.
type Descriptor struct {
	Name      string           `yaml:"name" json:"name"`
	Kind      Kind             `yaml:"kind" json:"kind"`
	Extrude   *ExtrudeSpec     `yaml:"extrude,omitempty" json:"extrude,omitempty"`
	Material  *MaterialSpec    `yaml:"material,omitempty" json:"material,omitempty"`
	Parts     []Part           `yaml:"parts,omitempty" json:"parts,omitempty"`
	Transform PartialTransform `yaml:"transform,omitempty" json:"transform"`
	Appear    *AppearSpec      `yaml:"appear,omitempty" json:"appear,omitempty"`
	Bounce    *BounceSpec      `yaml:"bounce,omitempty" json:"bounce,omitempty"`
}

// Validate checks the fields a builder depends on.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidDescriptor)
	}

	switch d.Kind {
	case ExtrudedShape:
		if d.Extrude == nil {
			return fmt.Errorf("%w: %s: extruded shape without extrude parameters", ErrInvalidDescriptor, d.Name)
		}
	case StaticMesh:
	case ProceduralObject:
		if len(d.Parts) == 0 {
			return fmt.Errorf("%w: %s: procedural object without parts", ErrInvalidDescriptor, d.Name)
		}
	default:
		return fmt.Errorf("%w: %s: kind %v", ErrInvalidDescriptor, d.Name, d.Kind)
	}

	if d.Material != nil {
		if _, err := d.Material.Resolve(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidDescriptor, d.Name, err)
		}
	}
	for _, p := range d.Parts {
		if p.Material == nil {
			continue
		}
		if _, err := p.Material.Resolve(); err != nil {
			return fmt.Errorf("%w: %s/%s: %v", ErrInvalidDescriptor, d.Name, p.Name, err)
		}
	}
	if d.Appear != nil {
		if _, err := d.Appear.Options(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidDescriptor, d.Name, err)
		}
	}
	return nil
}
