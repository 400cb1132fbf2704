// Package scene turns declarative object descriptors into animated objects.
package scene

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/matt-g-everett/scenetx/animation"
)

// A Loader fetches whatever a renderer needs before an object can be shown.
// FileLoader is the implementation used by the application.
type Loader interface {
	Load(ctx context.Context, d Descriptor) error
}

// Scene is the set of objects built from a list of descriptors.
type Scene struct {
	descriptors []Descriptor
	objects     []*Object
	gate        *AssetGate
}

// Objects returns the objects in descriptor order.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Object finds an object by name.
func (s *Scene) Object(name string) *Object {
	for _, o := range s.objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// Descriptors returns the descriptors the scene was built from.
func (s *Scene) Descriptors() []Descriptor {
	return s.descriptors
}

// Gate closes when every object's assets have been loaded.
func (s *Scene) Gate() *AssetGate {
	return s.gate
}

// Snapshot copies every object's transform.
func (s *Scene) Snapshot() []ObjectState {
	states := make([]ObjectState, len(s.objects))
	for i, o := range s.objects {
		states[i] = o.State()
	}
	return states
}

// Builder builds scenes and registers their animations with a manager.
type Builder struct {
	manager *animation.Manager
	loader  Loader
	rng     *rand.Rand
}

// NewBuilder creates an instance of a Builder. A nil loader treats every
// asset as immediately available; a nil rng uses the global source.
func NewBuilder(manager *animation.Manager, loader Loader, rng *rand.Rand) *Builder {
	b := new(Builder)
	b.manager = manager
	b.loader = loader
	b.rng = rng
	return b
}

// Build creates one object per descriptor and applies its initial transform.
// Appear and bounce animations are registered once the object's assets load,
// and the scene's gate closes when all of them have. A failed load is logged
// and the object stays where its initial transform put it.
func (b *Builder) Build(ctx context.Context, descriptors []Descriptor) (*Scene, error) {
	for i := range descriptors {
		if err := descriptors[i].Validate(); err != nil {
			return nil, fmt.Errorf("descriptor %d: %w", i, err)
		}
	}

	s := new(Scene)
	s.descriptors = descriptors
	s.objects = make([]*Object, len(descriptors))
	s.gate = NewAssetGate(len(descriptors))

	pending := make([][]*animation.Animation, len(descriptors))
	for i, d := range descriptors {
		obj := NewObject(d.Name, d.Kind)
		d.Transform.Apply(obj)
		s.objects[i] = obj

		animations, err := b.animationsFor(obj, d)
		if err != nil {
			return nil, fmt.Errorf("descriptor %d: %w", i, err)
		}
		pending[i] = animations
	}

	for i, d := range descriptors {
		if b.loader == nil {
			b.register(d, pending[i], s.gate)
			continue
		}
		go func(d Descriptor, animations []*animation.Animation) {
			if err := b.loader.Load(ctx, d); err != nil {
				log.Printf("Failed to load %s: %v", d.Name, err)
				animations = nil
			}
			b.register(d, animations, s.gate)
		}(d, pending[i])
	}

	return s, nil
}

func (b *Builder) animationsFor(obj *Object, d Descriptor) ([]*animation.Animation, error) {
	var animations []*animation.Animation
	if d.Appear != nil {
		opts, err := d.Appear.Options()
		if err != nil {
			return nil, err
		}
		animations = append(animations, NewTransformAnimation(obj, d.Appear.Target, opts))
	}
	if d.Bounce != nil {
		animations = append(animations, NewBounceAnimation(obj, d.Bounce, b.rng))
	}
	return animations, nil
}

func (b *Builder) register(d Descriptor, animations []*animation.Animation, gate *AssetGate) {
	if err := b.manager.AddAnimations(animations...); err != nil {
		log.Printf("Animations for %s not registered: %v", d.Name, err)
	}
	if err := gate.Resolve(d.Name); err != nil {
		log.Println(err)
	}
}
